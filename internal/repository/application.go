package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

// ApplicationRepository reads the applications table owned by the
// application subsystem. Scheduling never writes to it.
type ApplicationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApplicationRepo(db *dbpg.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT id, candidate_name, candidate_email, status, created_at
			  FROM applications
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", storeErr(err))
	}

	var a domain.Application
	if err = row.Scan(&a.ID, &a.CandidateName, &a.CandidateEmail, &a.Status, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", storeErr(err))
	}

	return &a, nil
}
