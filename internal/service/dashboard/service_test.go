package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/edutrack/internal/mocks/service/dashboard"
	"github.com/aliskhannn/edutrack/internal/model"
)

func TestService_RankingsFor_Ordering(t *testing.T) {
	ctrl := gomock.NewController(t)

	rankings := mocks.NewMockrankingRepository(ctrl)
	svc := NewService(rankings, nil, 0)

	base := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	rankings.EXPECT().ListByPeriod(gomock.Any(), model.PeriodWeekly).Return([]model.RankingEntry{
		{UserID: "late-tie", TotalPoints: 40, LastUpdated: base.Add(2 * time.Hour)},
		{UserID: "low", TotalPoints: 5, LastUpdated: base},
		{UserID: "top", TotalPoints: 90, LastUpdated: base.Add(time.Hour)},
		{UserID: "early-tie", TotalPoints: 40, LastUpdated: base.Add(time.Hour)},
	}, nil)

	entries, err := svc.RankingsFor(context.Background(), model.PeriodWeekly)
	require.NoError(t, err)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	assert.Equal(t, []string{"top", "early-tie", "late-tie", "low"}, ids)

	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
	}
}

func TestService_RankingsFor_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewService(mocks.NewMockrankingRepository(ctrl), nil, 0)

	_, err := svc.RankingsFor(context.Background(), model.Period("yearly"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_RankingsFor_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)

	rankings := mocks.NewMockrankingRepository(ctrl)
	svc := NewService(rankings, nil, 0)

	dbErr := errors.New("connection refused")
	rankings.EXPECT().ListByPeriod(gomock.Any(), model.PeriodDaily).Return(nil, dbErr)

	_, err := svc.RankingsFor(context.Background(), model.PeriodDaily)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_RecentNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)

	notifications := mocks.NewMocknotificationRepository(ctrl)
	svc := NewService(nil, notifications, 10)

	now := time.Now()
	older := model.NotificationRequest{ID: uuid.New(), CreatedAt: now.Add(-time.Hour)}
	newer := model.NotificationRequest{ID: uuid.New(), CreatedAt: now}

	notifications.EXPECT().ListRecent(gomock.Any(), 10).Return([]model.NotificationRequest{older, newer}, nil)

	list, err := svc.RecentNotifications(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)

	notifications := mocks.NewMocknotificationRepository(ctrl)
	svc := NewService(nil, notifications, 0)

	want := model.DashboardStats{Pending: 1, Sent: 3, Failed: 2, Total: 6}
	notifications.EXPECT().CountByStatus(gomock.Any()).Return(want, nil)

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
