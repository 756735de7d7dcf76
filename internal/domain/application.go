package domain

import "time"

// Application is the read-only surface of the application subsystem that
// scheduling needs: an existence check plus candidate contact details for
// notifications.
type Application struct {
	ID             string    `json:"id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
