package ports

import (
	"context"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

type InterviewRepo interface {
	// Create reserves one unit of slot capacity and inserts the interview
	// in a single transaction. Returns domain.ErrSlotFull when the slot has
	// no free capacity and domain.ErrAlreadyScheduled when the application
	// already holds a scheduled interview.
	Create(ctx context.Context, iv *domain.Interview) error
	GetByID(ctx context.Context, id string) (*domain.Interview, error)
	GetByApplication(ctx context.Context, applicationID string) (*domain.Interview, error)
	List(ctx context.Context) ([]*domain.Interview, error)
	// Cancel moves a scheduled interview to cancelled and releases its slot
	// capacity. The bool reports whether the state actually changed;
	// cancelling an already-cancelled interview returns (iv, false, nil).
	Cancel(ctx context.Context, id string) (*domain.Interview, bool, error)
	// Complete moves a scheduled interview to completed, recording outcome
	// and notes.
	Complete(ctx context.Context, id string, outcome domain.Outcome, notes string) (*domain.Interview, error)
}
