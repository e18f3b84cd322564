package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/edutrack/internal/mocks/api/handlers/dashboard"
	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/service/dashboard"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	return c, w
}

func TestHandler_GetRankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	reads := mocks.NewMockreadModel(ctrl)
	handler := NewHandler(reads)

	c, w := newContext("/api/dashboard/rankings/weekly")
	c.Params = gin.Params{{Key: "period", Value: "weekly"}}

	reads.EXPECT().RankingsFor(gomock.Any(), model.PeriodWeekly).Return([]model.RankingEntry{
		{UserID: "u1", Period: model.PeriodWeekly, TotalPoints: 30},
		{UserID: "u2", Period: model.PeriodWeekly, TotalPoints: 20},
	}, nil)

	handler.GetRankings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestHandler_GetRankings_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid period", fmt.Errorf("%w: yearly", dashboard.ErrInvalidPeriod), http.StatusBadRequest},
		{"database down", errors.New("list rankings: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reads := mocks.NewMockreadModel(ctrl)
			handler := NewHandler(reads)

			c, w := newContext("/api/dashboard/rankings/yearly")
			c.Params = gin.Params{{Key: "period", Value: "yearly"}}

			reads.EXPECT().RankingsFor(gomock.Any(), model.Period("yearly")).Return(nil, tt.err)

			handler.GetRankings(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_GetNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	reads := mocks.NewMockreadModel(ctrl)
	handler := NewHandler(reads)

	c, w := newContext("/api/dashboard/notifications?limit=3")
	reads.EXPECT().RecentNotifications(gomock.Any(), 3).Return([]model.NotificationRequest{}, nil)

	handler.GetNotifications(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext("/api/dashboard/notifications")
	reads.EXPECT().RecentNotifications(gomock.Any(), 0).Return([]model.NotificationRequest{}, nil)

	handler.GetNotifications(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext("/api/dashboard/notifications?limit=-1")

	handler.GetNotifications(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	reads := mocks.NewMockreadModel(ctrl)
	handler := NewHandler(reads)

	c, w := newContext("/api/dashboard/stats")
	reads.EXPECT().Stats(gomock.Any()).Return(model.DashboardStats{Pending: 1, Sent: 4, Failed: 2, Total: 7}, nil)

	handler.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result": {"pending": 1, "sent": 4, "failed": 2, "total": 7}}`, w.Body.String())
}
