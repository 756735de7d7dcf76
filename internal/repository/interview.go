package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

const interviewColumns = `id, application_id, slot_id, interviewer_id, status, outcome, review_notes, created_at, updated_at`

type InterviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInterviewRepo(db *dbpg.DB) *InterviewRepository {
	return &InterviewRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create books the interview's slot and inserts the interview record in one
// transaction. Capacity is taken with a conditional increment checked by
// RowsAffected, so two concurrent bookers of a capacity-1 slot can never
// both commit. Slot first, interview second: a failed insert rolls the
// reservation back with the transaction.
func (r *InterviewRepository) Create(ctx context.Context, iv *domain.Interview) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	reserveQuery := `UPDATE interview_slots
					 SET booked_count = booked_count + 1, updated_at = now()
					 WHERE id = $1 AND booked_count < capacity`
	res, err := tx.ExecContext(ctx, reserveQuery, iv.SlotID)
	if err != nil {
		return fmt.Errorf("reserve slot: %w", storeErr(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if affected == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM interview_slots WHERE id = $1)`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, iv.SlotID).Scan(&exists); scanErr != nil {
			return fmt.Errorf("check slot: %w", storeErr(scanErr))
		}
		if !exists {
			return domain.ErrSlotNotFound
		}
		return domain.ErrSlotFull
	}

	insertQuery := `INSERT INTO interviews (id, application_id, slot_id, interviewer_id, status, outcome, review_notes, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		iv.ID, iv.ApplicationID, iv.SlotID, iv.InterviewerID,
		iv.Status, iv.Outcome, iv.ReviewNotes, iv.CreatedAt, iv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyScheduled
		}
		return fmt.Errorf("insert interview: %w", storeErr(err))
	}

	return tx.Commit()
}

func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + interviewColumns + `
			  FROM interviews
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", storeErr(err))
	}

	return scanInterviewRow(row)
}

func (r *InterviewRepository) GetByApplication(ctx context.Context, applicationID string) (*domain.Interview, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + interviewColumns + `
			  FROM interviews
			  WHERE application_id = $1
			  ORDER BY created_at DESC
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get interview by application: %w", storeErr(err))
	}

	return scanInterviewRow(row)
}

func (r *InterviewRepository) List(ctx context.Context) ([]*domain.Interview, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + interviewColumns + `
			  FROM interviews
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", storeErr(err))
	}
	defer rows.Close()

	var res []*domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err = rows.Scan(
			&iv.ID, &iv.ApplicationID, &iv.SlotID, &iv.InterviewerID,
			&iv.Status, &iv.Outcome, &iv.ReviewNotes, &iv.CreatedAt, &iv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		res = append(res, &iv)
	}

	return res, rows.Err()
}

// Cancel flips a scheduled interview to cancelled and releases its slot
// capacity in the same transaction. An interview that is already cancelled
// is returned unchanged with changed=false.
func (r *InterviewRepository) Cancel(ctx context.Context, id string) (*domain.Interview, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	query := `UPDATE interviews
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + interviewColumns
	row := tx.QueryRowContext(ctx, query, id, domain.InterviewStatusCancelled, domain.InterviewStatusScheduled)

	iv, err := scanInterviewRow(row)
	if err != nil {
		if !errors.Is(err, domain.ErrInterviewNotFound) {
			return nil, false, err
		}
		// Nothing transitioned: missing, already cancelled, or completed.
		checkQuery := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
		current, checkErr := scanInterviewRow(tx.QueryRowContext(ctx, checkQuery, id))
		if checkErr != nil {
			return nil, false, checkErr
		}
		if current.Status == domain.InterviewStatusCancelled {
			return current, false, tx.Commit()
		}
		return nil, false, domain.ErrInterviewNotScheduled
	}

	releaseQuery := `UPDATE interview_slots
					 SET booked_count = booked_count - 1, updated_at = now()
					 WHERE id = $1 AND booked_count > 0`
	if _, err = tx.ExecContext(ctx, releaseQuery, iv.SlotID); err != nil {
		return nil, false, fmt.Errorf("release slot: %w", storeErr(err))
	}

	return iv, true, tx.Commit()
}

// Complete records the review outcome, moving scheduled -> completed. The
// transition is a single conditional update; a zero-row result is diagnosed
// afterwards to pick the right error.
func (r *InterviewRepository) Complete(ctx context.Context, id string, outcome domain.Outcome, notes string) (*domain.Interview, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	query := `UPDATE interviews
			  SET status = $2, outcome = $3, review_notes = $4, updated_at = now()
			  WHERE id = $1 AND status = $5
			  RETURNING ` + interviewColumns
	row := tx.QueryRowContext(
		ctx, query, id,
		domain.InterviewStatusCompleted, outcome, notes,
		domain.InterviewStatusScheduled,
	)

	iv, err := scanInterviewRow(row)
	if err != nil {
		if !errors.Is(err, domain.ErrInterviewNotFound) {
			return nil, err
		}
		var status string
		checkQuery := `SELECT status FROM interviews WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, domain.ErrInterviewNotFound
			}
			return nil, fmt.Errorf("check interview: %w", storeErr(scanErr))
		}
		return nil, domain.ErrInterviewNotScheduled
	}

	return iv, tx.Commit()
}

func scanInterviewRow(row *sql.Row) (*domain.Interview, error) {
	var iv domain.Interview
	if err := row.Scan(
		&iv.ID, &iv.ApplicationID, &iv.SlotID, &iv.InterviewerID,
		&iv.Status, &iv.Outcome, &iv.ReviewNotes, &iv.CreatedAt, &iv.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("scan interview: %w", storeErr(err))
	}

	return &iv, nil
}
