package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/api/respond"
	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/repository/notification"
	notifsvc "github.com/aliskhannn/edutrack/internal/service/notification"
)

// notificationService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Submit(ctx context.Context, req model.NotificationRequest) (model.NotificationRequest, error)
	Get(ctx context.Context, id uuid.UUID) (model.NotificationRequest, error)
	GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error)
	ListRecent(ctx context.Context, count int) ([]model.NotificationRequest, error)
	Messages(ctx context.Context, id uuid.UUID) ([]model.Message, error)
}

// Handler handles HTTP requests related to notification requests.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	loc       *time.Location // zone of schedule times given without an offset
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationService, v *validator.Validate, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{service: s, validator: v, loc: loc}
}

// CreateRequest represents the JSON body expected in a notification creation request.
type CreateRequest struct {
	RecipientGroupID string `json:"recipient_group_id" validate:"required"`
	MessageText      string `json:"message_text" validate:"required"`
	ScheduleTime     string `json:"schedule_time"` // RFC 3339, or "2006-01-02 15:04:05" in the scheduler zone
	Repeat           string `json:"repeat" validate:"omitempty,oneof=none daily weekly"`
	CreatedBy        string `json:"created_by"`
}

// Create handles HTTP POST requests to submit a new notification request.
//
// A request without a schedule time is dispatched before the response is
// written; a failed dispatch is reported with 502 and the failure reason.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	scheduleTime, err := h.parseScheduleTime(req.ScheduleTime)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("schedule_time", req.ScheduleTime).Msg("failed to parse schedule_time")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid schedule_time format"))
		return
	}

	n := model.NotificationRequest{
		RecipientGroupID: req.RecipientGroupID,
		MessageText:      req.MessageText,
		ScheduleTime:     scheduleTime,
		Repeat:           model.Repeat(req.Repeat),
		CreatedBy:        req.CreatedBy,
	}

	created, err := h.service.Submit(c.Request.Context(), n)
	if err != nil {
		if errors.Is(err, notifsvc.ErrInvalidRequest) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("recipient", n.RecipientGroupID).Msg("failed to submit notification")

		if created.ID != uuid.Nil {
			respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("notification %s failed: %v", created.ID, err))
			return
		}
		if respond.Upstream(c.Writer, err) {
			return
		}

		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// Get handles HTTP GET requests to retrieve a notification request.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, id, err)
		return
	}

	respond.OK(c.Writer, n)
}

// GetStatus handles HTTP GET requests to retrieve the status of a notification request.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, id, err)
		return
	}

	respond.OK(c.Writer, status)
}

// GetMessages handles HTTP GET requests to list the provider messages of a request.
func (h *Handler) GetMessages(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	list, err := h.service.Messages(c.Request.Context(), id)
	if err != nil {
		h.failLookup(c, id, err)
		return
	}

	respond.OK(c.Writer, list)
}

// GetRecent handles HTTP GET requests to list the most recent requests.
//
// The optional "limit" query parameter caps the number of returned requests.
func (h *Handler) GetRecent(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = n
	}

	list, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) failLookup(c *ginext.Context, id uuid.UUID, err error) {
	if errors.Is(err, notification.ErrNotificationNotFound) {
		zlog.Logger.Warn().Interface("id", id).Err(err).Msg("notification not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		return
	}

	zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get notification")
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}

func (h *Handler) parseScheduleTime(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.ParseInLocation(time.DateTime, raw, h.loc)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
