package message

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/edutrack/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	requestID := uuid.New()
	sentAt := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO messages`)).
		WithArgs("m-1", requestID, "456", "Hello", sentAt, "sent").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), model.Message{
		ID:        "m-1",
		ChatID:    "456",
		Text:      "Hello",
		SentAt:    sentAt,
		Status:    model.StatusSent,
		RequestID: requestID,
	})
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO messages`)).
		WithArgs("m-2", requestID, "456", "Hello", nil, "pending").
		WillReturnError(errors.New("fk violation"))

	err = repo.Create(context.Background(), model.Message{
		ID:        "m-2",
		ChatID:    "456",
		Text:      "Hello",
		Status:    model.StatusPending,
		RequestID: requestID,
	})
	assert.ErrorContains(t, err, "failed to create message")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRequest(t *testing.T) {
	repo, mock := setupMockDB(t)

	requestID := uuid.New()
	sentAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE request_id = $1`)).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "chat_id", "text", "sent_at", "status"}).
			AddRow("m-1", "456", "Hello", sentAt, "sent").
			AddRow("m-2", "456", "Hello", nil, "pending"))

	list, err := repo.ListByRequest(context.Background(), requestID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, sentAt, list[0].SentAt)
	assert.True(t, list[1].SentAt.IsZero())
	assert.Equal(t, requestID, list[1].RequestID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
