// Package dashboard serves the read-only projections shown on the admin dashboard.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aliskhannn/edutrack/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dashboard/mock.go -package=mocks

var ErrInvalidPeriod = errors.New("invalid ranking period")

// ReadModel is implemented by Service and by its cached decorator.
type ReadModel interface {
	RankingsFor(ctx context.Context, period model.Period) ([]model.RankingEntry, error)
	RecentNotifications(ctx context.Context, count int) ([]model.NotificationRequest, error)
	Stats(ctx context.Context) (model.DashboardStats, error)
}

type rankingRepository interface {
	ListByPeriod(ctx context.Context, period model.Period) ([]model.RankingEntry, error)
}

type notificationRepository interface {
	ListRecent(ctx context.Context, limit int) ([]model.NotificationRequest, error)
	CountByStatus(ctx context.Context) (model.DashboardStats, error)
}

type Service struct {
	rankings      rankingRepository
	notifications notificationRepository
	recentLimit   int
}

func NewService(rankings rankingRepository, notifications notificationRepository, recentLimit int) *Service {
	if recentLimit <= 0 {
		recentLimit = 20
	}

	return &Service{rankings: rankings, notifications: notifications, recentLimit: recentLimit}
}

// RankingsFor returns the entries of period ordered by total points, highest
// first; ties go to the entry updated earliest.
func (s *Service) RankingsFor(ctx context.Context, period model.Period) ([]model.RankingEntry, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	entries, err := s.rankings.ListByPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}

		return entries[i].LastUpdated.Before(entries[j].LastUpdated)
	})

	return entries, nil
}

// RecentNotifications returns up to count requests by creation time, newest first.
func (s *Service) RecentNotifications(ctx context.Context, count int) ([]model.NotificationRequest, error) {
	if count <= 0 {
		count = s.recentLimit
	}

	list, err := s.notifications.ListRecent(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("list recent notifications: %w", err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list, nil
}

func (s *Service) Stats(ctx context.Context) (model.DashboardStats, error) {
	stats, err := s.notifications.CountByStatus(ctx)
	if err != nil {
		return model.DashboardStats{}, fmt.Errorf("count notifications: %w", err)
	}

	return stats, nil
}
