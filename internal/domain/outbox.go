package domain

import "time"

type OutboxChannel string

const (
	OutboxChannelEmail OutboxChannel = "email"
	OutboxChannelChat  OutboxChannel = "chat"
)

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusDelivered OutboxStatus = "delivered"
	OutboxStatusDead      OutboxStatus = "dead"
)

// OutboxMessage is a notification that could not be delivered inline and is
// retried out-of-band. Delivery is at-least-once; after the attempt cap the
// message goes to the dead state and stays as a dead-letter record.
type OutboxMessage struct {
	ID            string        `json:"id"`
	Channel       OutboxChannel `json:"channel"`
	Recipient     string        `json:"recipient"`
	Subject       string        `json:"subject"`
	Body          string        `json:"body"`
	AttachmentICS string        `json:"attachment_ics,omitempty"`
	Attempts      int           `json:"attempts"`
	Status        OutboxStatus  `json:"status"`
	LastError     string        `json:"last_error,omitempty"`
	NextAttemptAt time.Time     `json:"next_attempt_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
