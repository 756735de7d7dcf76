package ports

import (
	"context"
	"time"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Slot, error)
	// ListOpenBetween returns slots with free capacity starting in
	// [from, to), ordered by start time ascending. A zero `to` means no
	// upper bound.
	ListOpenBetween(ctx context.Context, from, to time.Time) ([]*domain.Slot, error)
	Delete(ctx context.Context, id, ownerID string) error
}
