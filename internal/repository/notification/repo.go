package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/edutrack/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotPending           = errors.New("notification is not pending")
	ErrClaimed              = errors.New("notification is being dispatched")
)

const columns = `id, recipient_group_id, message_text, schedule_time, repeat, status,
		       failure_reason, created_by, created_at, updated_at, dispatched_at`

const selectColumns = `
		SELECT ` + columns + `
		FROM notification_requests`

// Repository provides methods to interact with notification_requests table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pending request and returns it with the generated fields set.
func (r *Repository) Create(ctx context.Context, n model.NotificationRequest) (model.NotificationRequest, error) {
	query := `
		INSERT INTO notification_requests (
		    recipient_group_id, message_text, schedule_time, repeat, created_by
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at, updated_at;
    `

	err := r.db.QueryRowContext(
		ctx, query, n.RecipientGroupID, n.MessageText, nullTime(n.ScheduleTime), string(n.Repeat), n.CreatedBy,
	).Scan(&n.ID, &n.Status, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return model.NotificationRequest{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// GetByID retrieves a request by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.NotificationRequest, error) {
	query := selectColumns + `
		WHERE id = $1;
    `

	n, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotificationRequest{}, ErrNotificationNotFound
		}

		return model.NotificationRequest{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetStatus retrieves the status of a request by its ID.
func (r *Repository) GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM notification_requests
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// Claim takes a pending request for dispatch and returns it.
//
// Only one caller can hold the claim: concurrent claims of the same row
// get ErrClaimed, and a request that already left pending gets ErrNotPending.
// A claim taken before staleBefore is treated as abandoned and can be taken over.
func (r *Repository) Claim(ctx context.Context, id uuid.UUID, at, staleBefore time.Time) (model.NotificationRequest, error) {
	query := `
		UPDATE notification_requests
		SET claimed_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'pending'
		  AND (claimed_at IS NULL OR claimed_at < $3)
		RETURNING ` + columns + `;
    `

	n, err := scanRequest(r.db.QueryRowContext(ctx, query, id, at, staleBefore))
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.NotificationRequest{}, fmt.Errorf("failed to claim notification: %w", err)
	}

	status, err := r.GetStatus(ctx, id)
	if err != nil {
		return model.NotificationRequest{}, err
	}
	if status != model.StatusPending {
		return model.NotificationRequest{}, ErrNotPending
	}

	return model.NotificationRequest{}, ErrClaimed
}

// Resolve moves a pending request to a terminal status.
//
// Only pending rows are updated, so a request that already left pending
// yields ErrNotPending and is never moved back.
func (r *Repository) Resolve(ctx context.Context, id uuid.UUID, status model.Status, reason string, at time.Time) error {
	if !status.Terminal() {
		return fmt.Errorf("invalid target status %q", status)
	}

	query := `
		UPDATE notification_requests
		SET status = $1, failure_reason = $2, dispatched_at = $3, updated_at = $3
		WHERE id = $4 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, string(status), reason, at, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	if _, err := r.GetStatus(ctx, id); err != nil {
		return err
	}

	return ErrNotPending
}

// ListRecent retrieves up to limit requests, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]model.NotificationRequest, error) {
	query := selectColumns + `
		ORDER BY created_at DESC
		LIMIT $1;
    `

	return r.list(ctx, query, limit)
}

// ListPending retrieves every pending request, earliest schedule first.
func (r *Repository) ListPending(ctx context.Context) ([]model.NotificationRequest, error) {
	query := selectColumns + `
		WHERE status = 'pending'
		ORDER BY schedule_time ASC NULLS FIRST, created_at ASC;
    `

	return r.list(ctx, query)
}

// CountByStatus returns the number of requests in each status.
func (r *Repository) CountByStatus(ctx context.Context) (model.DashboardStats, error) {
	query := `
		SELECT status, COUNT(*)
		FROM notification_requests
		GROUP BY status;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to count notifications: %w", err)
	}
	defer rows.Close()

	var stats model.DashboardStats
	for rows.Next() {
		var (
			status model.Status
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return model.DashboardStats{}, err
		}

		switch status {
		case model.StatusPending:
			stats.Pending = count
		case model.StatusSent:
			stats.Sent = count
		case model.StatusFailed:
			stats.Failed = count
		}
		stats.Total += count
	}

	if err := rows.Err(); err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to count notifications: %w", err)
	}

	return stats, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]model.NotificationRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.NotificationRequest, 0)
	for rows.Next() {
		n, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(s scanner) (model.NotificationRequest, error) {
	var n model.NotificationRequest
	var scheduled, dispatched sql.NullTime

	err := s.Scan(
		&n.ID, &n.RecipientGroupID, &n.MessageText, &scheduled, &n.Repeat, &n.Status,
		&n.FailureReason, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt, &dispatched,
	)
	if err != nil {
		return model.NotificationRequest{}, err
	}

	if scheduled.Valid {
		n.ScheduleTime = &scheduled.Time
	}
	if dispatched.Valid {
		n.DispatchedAt = &dispatched.Time
	}

	return n, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}
