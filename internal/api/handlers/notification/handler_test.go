package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/edutrack/internal/client/remote"
	mocks "github.com/aliskhannn/edutrack/internal/mocks/api/handlers/notification"
	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/repository/notification"
	notifsvc "github.com/aliskhannn/edutrack/internal/service/notification"
)

var msk = time.FixedZone("MSK", 3*3600)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotificationService(ctrl)
	handler := NewHandler(mockService, validator.New(), msk)

	return handler, mockService
}

func newContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)

	return c, w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()

	var body struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Result, dst))
}

func TestHandler_Create_SendNow(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	c, w := newContext(http.MethodPost, "/api/notifications", CreateRequest{
		RecipientGroupID: "456",
		MessageText:      "Hello",
		CreatedBy:        "admin",
	})

	mockService.EXPECT().
		Submit(gomock.Any(), model.NotificationRequest{RecipientGroupID: "456", MessageText: "Hello", CreatedBy: "admin"}).
		Return(model.NotificationRequest{ID: id, RecipientGroupID: "456", MessageText: "Hello", Status: model.StatusSent}, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got model.NotificationRequest
	decodeResult(t, w, &got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, model.StatusSent, got.Status)
}

func TestHandler_Create_ScheduleTimeInZone(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/notifications", CreateRequest{
		RecipientGroupID: "456",
		MessageText:      "Lesson at 18:00",
		ScheduleTime:     "2025-09-15 17:50:00",
		Repeat:           "weekly",
	})

	want := time.Date(2025, 9, 15, 17, 50, 0, 0, msk)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.NotificationRequest) (model.NotificationRequest, error) {
			require.NotNil(t, n.ScheduleTime)
			assert.True(t, want.Equal(*n.ScheduleTime))
			assert.Equal(t, model.RepeatWeekly, n.Repeat)

			n.ID = uuid.New()
			n.Status = model.StatusPending
			return n, nil
		},
	)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Create_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed body", "{"},
		{"missing text", CreateRequest{RecipientGroupID: "456"}},
		{"missing recipient", CreateRequest{MessageText: "Hello"}},
		{"unknown repeat", CreateRequest{RecipientGroupID: "456", MessageText: "Hello", Repeat: "hourly"}},
		{"bad schedule time", CreateRequest{RecipientGroupID: "456", MessageText: "Hello", ScheduleTime: "tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupHandler(t)
			c, w := newContext(http.MethodPost, "/api/notifications", tt.body)

			handler.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_Create_InvalidRequestFromService(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/notifications", CreateRequest{RecipientGroupID: "456", MessageText: "   "})

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(model.NotificationRequest{}, fmt.Errorf("%w: message text is required", notifsvc.ErrInvalidRequest))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message text is required")
}

func TestHandler_Create_DispatchFailed(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	callErr := &remote.CallError{Method: http.MethodPost, Path: "/api/telegram/messages", StatusCode: 500, Err: errors.New("500 Internal Server Error")}

	c, w := newContext(http.MethodPost, "/api/notifications", CreateRequest{RecipientGroupID: "456", MessageText: "Hello"})

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(
		model.NotificationRequest{ID: id, Status: model.StatusFailed, FailureReason: callErr.Error()},
		fmt.Errorf("dispatch notification: %w", callErr),
	)

	handler.Create(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
	assert.Contains(t, w.Body.String(), "status 500")
}

func TestHandler_Create_DispatchFailedUnrecorded(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	callErr := &remote.CallError{Method: http.MethodPost, Path: "/api/telegram/messages", StatusCode: 503, Err: errors.New("503 Service Unavailable")}

	c, w := newContext(http.MethodPost, "/api/notifications", CreateRequest{RecipientGroupID: "456", MessageText: "Hello"})

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(
		model.NotificationRequest{ID: id, Status: model.StatusPending},
		fmt.Errorf("dispatch notification: %w: record failure: %v", callErr, errors.New("connection reset")),
	)

	handler.Create(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
	assert.Contains(t, w.Body.String(), "503 Service Unavailable")
	assert.Contains(t, w.Body.String(), "connection reset")
}

func TestHandler_Create_StoreFailed(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/notifications", CreateRequest{RecipientGroupID: "456", MessageText: "Hello"})

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(model.NotificationRequest{}, errors.New("create notification: connection refused"))

	handler.Create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Get(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()

	c, w := newContext(http.MethodGet, "/api/notifications/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Get(gomock.Any(), id).Return(model.NotificationRequest{ID: id, Status: model.StatusPending}, nil)

	handler.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/api/notifications/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Get(gomock.Any(), id).Return(model.NotificationRequest{}, notification.ErrNotificationNotFound)

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)

	for _, raw := range []string{"not-a-uuid", uuid.Nil.String()} {
		c, w := newContext(http.MethodGet, "/api/notifications/"+raw, nil)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		handler.Get(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestHandler_GetStatus(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	c, w := newContext(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().GetStatus(gomock.Any(), id).Return(model.StatusFailed, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": "failed"}`, w.Body.String())
}

func TestHandler_GetMessages(t *testing.T) {
	handler, mockService := setupHandler(t)

	id := uuid.New()
	sentAt := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	c, w := newContext(http.MethodGet, "/api/notifications/"+id.String()+"/messages", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Messages(gomock.Any(), id).Return([]model.Message{
		{ID: "m-1", RequestID: id, ChatID: "456", Text: "Hello", SentAt: sentAt, Status: model.StatusSent},
	}, nil)

	handler.GetMessages(c)
	require.Equal(t, http.StatusOK, w.Code)

	var got []model.Message
	decodeResult(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "m-1", got[0].ID)
	assert.Equal(t, model.StatusSent, got[0].Status)

	c, w = newContext(http.MethodGet, "/api/notifications/"+id.String()+"/messages", nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Messages(gomock.Any(), id).
		Return(nil, fmt.Errorf("get notification: %w", notification.ErrNotificationNotFound))

	handler.GetMessages(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRecent(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := newContext(http.MethodGet, "/api/notifications?limit=5", nil)

	mockService.EXPECT().ListRecent(gomock.Any(), 5).Return([]model.NotificationRequest{}, nil)

	handler.GetRecent(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": []}`, w.Body.String())

	c, w = newContext(http.MethodGet, "/api/notifications?limit=five", nil)

	handler.GetRecent(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
