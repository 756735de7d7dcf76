package ports

import (
	"context"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

// ApplicationRepo is the read-only view of the application subsystem.
type ApplicationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Application, error)
}
