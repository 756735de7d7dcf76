package ports

import (
	"context"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

// InterviewNotifier delivers calendar invites and alerts. Calls are
// fire-and-forget: delivery failure never fails the booking.
type InterviewNotifier interface {
	InterviewScheduled(ctx context.Context, app *domain.Application, slot *domain.Slot, iv *domain.Interview)
	InterviewCancelled(ctx context.Context, app *domain.Application, slot *domain.Slot, iv *domain.Interview)
}
