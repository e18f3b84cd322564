package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/rabbitmq/queue"
	"github.com/aliskhannn/edutrack/internal/repository/notification"
	notifsvc "github.com/aliskhannn/edutrack/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Dispatch(ctx context.Context, id uuid.UUID) (model.NotificationRequest, error)
}

type Handler struct {
	service notificationService
}

func NewHandler(svc notificationService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage dispatches the request referenced by a due queue message.
// Delivery failures are already recorded on the request, so they are only logged.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DispatchMessage) {
	zlog.Logger.Info().Str("id", msg.ID.String()).Time("send_at", msg.SendAt).Msg("dispatching notification")

	req, err := h.service.Dispatch(ctx, msg.ID)
	switch {
	case err == nil:
		zlog.Logger.Info().Str("id", msg.ID.String()).Msg("notification dispatched")
	case errors.Is(err, notifsvc.ErrAlreadyDispatched):
		zlog.Logger.Info().Err(err).Str("id", msg.ID.String()).Msg("notification already dispatched, skipping")
	case errors.Is(err, notification.ErrNotificationNotFound):
		zlog.Logger.Warn().Interface("id", msg.ID).Msg("notification not found")
	default:
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Str("status", string(req.Status)).Msg("failed to dispatch notification")
	}
}
