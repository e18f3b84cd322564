package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/api/respond"
	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/service/dashboard"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/dashboard/mock.go -package=mocks
type readModel interface {
	RankingsFor(ctx context.Context, period model.Period) ([]model.RankingEntry, error)
	RecentNotifications(ctx context.Context, count int) ([]model.NotificationRequest, error)
	Stats(ctx context.Context) (model.DashboardStats, error)
}

// Handler serves the dashboard projections.
type Handler struct {
	reads readModel
}

func NewHandler(r readModel) *Handler {
	return &Handler{reads: r}
}

// GetRankings handles GET /rankings/:period.
func (h *Handler) GetRankings(c *ginext.Context) {
	period := model.Period(c.Param("period"))

	entries, err := h.reads.RankingsFor(c.Request.Context(), period)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidPeriod) {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("period must be one of daily, weekly, monthly"))
			return
		}

		zlog.Logger.Error().Err(err).Str("period", string(period)).Msg("failed to get rankings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, entries)
}

// GetNotifications handles GET /notifications?limit=N.
func (h *Handler) GetNotifications(c *ginext.Context) {
	count := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		count = n
	}

	list, err := h.reads.RecentNotifications(c.Request.Context(), count)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get recent notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, list)
}

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.reads.Stats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}
