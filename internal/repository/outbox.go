package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

type OutboxRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOutboxRepo(db *dbpg.DB) *OutboxRepository {
	return &OutboxRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg *domain.OutboxMessage) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO notification_outbox (id, channel, recipient, subject, body, attachment_ics, attempts, status, last_error, next_attempt_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		msg.ID, msg.Channel, msg.Recipient, msg.Subject, msg.Body, msg.AttachmentICS,
		msg.Attempts, msg.Status, msg.LastError, msg.NextAttemptAt, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("enqueue notification: %w", storeErr(err))
	}

	return nil
}

func (r *OutboxRepository) ListDue(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT id, channel, recipient, subject, body, attachment_ics, attempts, status, last_error, next_attempt_at, created_at, updated_at
			  FROM notification_outbox
			  WHERE status = $1 AND next_attempt_at <= now()
			  ORDER BY next_attempt_at
			  LIMIT $2`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.OutboxStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list due notifications: %w", storeErr(err))
	}
	defer rows.Close()

	var res []*domain.OutboxMessage
	for rows.Next() {
		var m domain.OutboxMessage
		if err = rows.Scan(
			&m.ID, &m.Channel, &m.Recipient, &m.Subject, &m.Body, &m.AttachmentICS,
			&m.Attempts, &m.Status, &m.LastError, &m.NextAttemptAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

func (r *OutboxRepository) MarkDelivered(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `UPDATE notification_outbox
			  SET status = $2, updated_at = now()
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.OutboxStatusDelivered)
	if err != nil {
		return fmt.Errorf("mark delivered: %w", storeErr(err))
	}

	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string, attempts int, lastError string, nextAttemptAt time.Time, dead bool) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	status := domain.OutboxStatusPending
	if dead {
		status = domain.OutboxStatusDead
	}

	query := `UPDATE notification_outbox
			  SET attempts = $2, last_error = $3, next_attempt_at = $4, status = $5, updated_at = now()
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, attempts, lastError, nextAttemptAt, status)
	if err != nil {
		return fmt.Errorf("mark failed: %w", storeErr(err))
	}

	return nil
}
