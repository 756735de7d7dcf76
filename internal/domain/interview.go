package domain

import "time"

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomePass    Outcome = "pass"
	OutcomeFail    Outcome = "fail"
)

// Interview binds one application to one slot. For a given application at
// most one interview is in status "scheduled" at a time (enforced by a
// partial unique index). completed and cancelled are terminal.
type Interview struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	SlotID        string          `json:"slot_id"`
	InterviewerID string          `json:"interviewer_id"`
	Status        InterviewStatus `json:"status"`
	Outcome       Outcome         `json:"outcome"`
	ReviewNotes   string          `json:"review_notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
