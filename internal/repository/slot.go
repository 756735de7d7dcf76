package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO interview_slots (id, owner_id, start_time, end_time, capacity, booked_count, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OwnerID, s.StartTime, s.EndTime,
		s.Capacity, s.BookedCount, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", storeErr(err))
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT id, owner_id, start_time, end_time, capacity, booked_count, created_at, updated_at
			  FROM interview_slots
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", storeErr(err))
	}

	var s domain.Slot
	if err = row.Scan(
		&s.ID, &s.OwnerID, &s.StartTime, &s.EndTime,
		&s.Capacity, &s.BookedCount, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", storeErr(err))
	}

	return &s, nil
}

func (r *SlotRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Slot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT id, owner_id, start_time, end_time, capacity, booked_count, created_at, updated_at
			  FROM interview_slots
			  WHERE owner_id = $1
			  ORDER BY start_time`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list slots by owner: %w", storeErr(err))
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (r *SlotRepository) ListOpenBetween(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT id, owner_id, start_time, end_time, capacity, booked_count, created_at, updated_at
			  FROM interview_slots
			  WHERE booked_count < capacity
			    AND start_time >= $1
			    AND ($2::timestamptz IS NULL OR start_time < $2)
			  ORDER BY start_time`

	var upper any
	if !to.IsZero() {
		upper = to
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, upper)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", storeErr(err))
	}
	defer rows.Close()

	return scanSlots(rows)
}

func (r *SlotRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	query := `DELETE FROM interview_slots
			  WHERE id = $1 AND owner_id = $2 AND booked_count = 0`
	res, err := tx.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete slot: %w", storeErr(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot rows affected: %w", err)
	}
	if affected == 0 {
		// Determine why: missing, foreign owner, or still booked.
		var owner string
		var bookedCount int
		checkQuery := `SELECT owner_id, booked_count FROM interview_slots WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&owner, &bookedCount); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrSlotNotFound
			}
			return fmt.Errorf("check slot: %w", storeErr(scanErr))
		}
		if owner != ownerID {
			return domain.ErrNotSlotOwner
		}
		return domain.ErrSlotHasBookings
	}

	return tx.Commit()
}

func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.StartTime, &s.EndTime,
			&s.Capacity, &s.BookedCount, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
