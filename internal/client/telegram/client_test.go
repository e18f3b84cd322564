package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/edutrack/internal/client/remote"
	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/schema"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(remote.New(srv.URL), schema.New())
}

func TestClient_SendMessage_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/telegram/messages", r.URL.Path)

		var req schema.SendMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "m-1",
			"chat_id": req.ChatID,
			"text":    req.Text,
			"sent_at": time.Now().UTC(),
			"status":  "sent",
		})
	})

	for _, tc := range []struct{ chatID, text string }{
		{"456", "Hello"},
		{"-100200300", "Урок начинается через 10 минут"},
		{"group-a1", "Homework: unit 4, exercises 1-3"},
	} {
		msg, err := c.SendMessage(context.Background(), tc.chatID, tc.text)
		require.NoError(t, err)
		assert.Equal(t, tc.chatID, msg.ChatID)
		assert.Equal(t, tc.text, msg.Text)
		assert.Contains(t, []model.Status{model.StatusPending, model.StatusSent, model.StatusFailed}, msg.Status)
	}
}

func TestClient_SendMessage_MalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "m-1", "text": "Hello", "status": "sent"}`))
	})

	_, err := c.SendMessage(context.Background(), "456", "Hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrSchemaMismatch))
	assert.False(t, errors.Is(err, remote.ErrRemoteCallFailed))
}

func TestClient_SendMessage_InvalidRequest(t *testing.T) {
	called := false
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true })

	_, err := c.SendMessage(context.Background(), "456", "")
	assert.ErrorIs(t, err, schema.ErrSchemaMismatch)
	assert.False(t, called)
}

func TestClient_SendMessage_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.SendMessage(context.Background(), "456", "Hello")
	assert.ErrorIs(t, err, remote.ErrRemoteCallFailed)
}

func TestClient_ScheduleMessage(t *testing.T) {
	at := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/telegram/messages/schedule", r.URL.Path)

		var req schema.ScheduleMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, at.Equal(req.ScheduledAt))

		_, _ = w.Write([]byte(`{"id": "m-2", "chat_id": "456", "text": "Reminder", "status": "pending"}`))
	})

	msg, err := c.ScheduleMessage(context.Background(), "456", "Reminder", at)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, msg.Status)
}

func TestClient_GetMessageHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Path {
		case "/api/telegram/messages/456":
			_, _ = w.Write([]byte(`[]`))
		case "/api/telegram/messages/789":
			_, _ = w.Write([]byte(`[
				{"id": "1", "chat_id": "789", "text": "first", "status": "sent"},
				{"id": "2", "chat_id": "789", "text": "second", "status": "failed"}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	history, err := c.GetMessageHistory(context.Background(), "456")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	history, err = c.GetMessageHistory(context.Background(), "789")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "first", history[0].Text)
	assert.Equal(t, "second", history[1].Text)
}

func TestClient_GetMessageStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/telegram/messages/m-1/status", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": "m-1", "chat_id": "456", "text": "Hello", "status": "sent"}`))
	})

	msg, err := c.GetMessageStatus(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", msg.ID)
	assert.Equal(t, model.StatusSent, msg.Status)
}
