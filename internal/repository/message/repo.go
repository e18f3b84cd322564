package message

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/edutrack/internal/model"
)

// Repository stores messages returned by the messaging provider.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new message repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create records a dispatched message against the request that produced it.
func (r *Repository) Create(ctx context.Context, m model.Message) error {
	query := `
		INSERT INTO messages (id, request_id, chat_id, text, sent_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING;
    `

	sentAt := sql.NullTime{Time: m.SentAt, Valid: !m.SentAt.IsZero()}

	_, err := r.db.ExecContext(ctx, query, m.ID, m.RequestID, m.ChatID, m.Text, sentAt, string(m.Status))
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// ListByRequest returns the messages of a request in send order.
func (r *Repository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.Message, error) {
	query := `
		SELECT id, chat_id, text, sent_at, status
		FROM messages
		WHERE request_id = $1
		ORDER BY sent_at ASC NULLS LAST;
    `

	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		var (
			m      model.Message
			sentAt sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Text, &sentAt, &m.Status); err != nil {
			return nil, err
		}

		m.SentAt = sentAt.Time
		m.RequestID = requestID
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}
