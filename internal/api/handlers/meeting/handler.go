package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/api/respond"
	"github.com/aliskhannn/edutrack/internal/client/zoom"
	"github.com/aliskhannn/edutrack/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/meeting/mock.go -package=mocks
type meetingService interface {
	Create(ctx context.Context, topic string, startTime time.Time, duration int, timezone string) (model.Meeting, error)
	Upcoming(ctx context.Context) ([]model.Meeting, error)
	Get(ctx context.Context, id string) (model.Meeting, error)
	Delete(ctx context.Context, id string) error
}

// Handler serves the online class meetings.
type Handler struct {
	service   meetingService
	validator *validator.Validate
}

func NewHandler(s meetingService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// CreateRequest is the body of a create meeting request.
type CreateRequest struct {
	Topic     string    `json:"topic" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	Duration  int       `json:"duration" validate:"required,gt=0"` // minutes
	Timezone  string    `json:"timezone"`
}

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

	m, err := h.service.Create(c.Request.Context(), req.Topic, req.StartTime, req.Duration, req.Timezone)
	if err != nil {
		h.fail(c, "", err)
		return
	}

	respond.Created(c.Writer, m)
}

func (h *Handler) GetUpcoming(c *ginext.Context) {
	list, err := h.service.Upcoming(c.Request.Context())
	if err != nil {
		h.fail(c, "", err)
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) Get(c *ginext.Context) {
	id := c.Param("id")

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err)
		return
	}

	respond.OK(c.Writer, m)
}

func (h *Handler) Delete(c *ginext.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, id, err)
		return
	}

	respond.OK(c.Writer, "meeting deleted")
}

func (h *Handler) fail(c *ginext.Context, id string, err error) {
	if errors.Is(err, zoom.ErrMeetingNotFound) {
		zlog.Logger.Warn().Str("id", id).Err(err).Msg("meeting not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("meeting not found"))
		return
	}

	zlog.Logger.Error().Err(err).Str("id", id).Msg("meeting request failed")

	if respond.Upstream(c.Writer, err) {
		return
	}

	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
