package ports

import (
	"context"
	"time"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

type OutboxRepo interface {
	Enqueue(ctx context.Context, msg *domain.OutboxMessage) error
	// ListDue returns pending messages whose next attempt time has passed,
	// oldest first.
	ListDue(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	MarkDelivered(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, attempts int, lastError string, nextAttemptAt time.Time, dead bool) error
}
