package dashboard

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/model"
)

//go:generate mockgen -source=cached.go -destination=../../mocks/service/dashboard/cached_mock.go -package=mocks

type jsonCache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, v interface{}) error
}

// Cached serves a ReadModel through a TTL cache. Cache failures fall back to
// the wrapped ReadModel.
type Cached struct {
	next  ReadModel
	cache jsonCache
}

func NewCached(next ReadModel, cache jsonCache) *Cached {
	return &Cached{next: next, cache: cache}
}

func (c *Cached) RankingsFor(ctx context.Context, period model.Period) ([]model.RankingEntry, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	return readThrough(ctx, c.cache, "rankings:"+string(period), func() ([]model.RankingEntry, error) {
		return c.next.RankingsFor(ctx, period)
	})
}

func (c *Cached) RecentNotifications(ctx context.Context, count int) ([]model.NotificationRequest, error) {
	return readThrough(ctx, c.cache, fmt.Sprintf("recent:%d", count), func() ([]model.NotificationRequest, error) {
		return c.next.RecentNotifications(ctx, count)
	})
}

func (c *Cached) Stats(ctx context.Context) (model.DashboardStats, error) {
	return readThrough(ctx, c.cache, "stats", func() (model.DashboardStats, error) {
		return c.next.Stats(ctx)
	})
}

func readThrough[T any](ctx context.Context, cache jsonCache, key string, load func() (T, error)) (T, error) {
	var cached T

	hit, err := cache.Get(ctx, key, &cached)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to read dashboard cache")
	}
	if hit {
		return cached, nil
	}

	fresh, err := load()
	if err != nil {
		return fresh, err
	}

	if err := cache.Set(ctx, key, fresh); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to write dashboard cache")
	}

	return fresh, nil
}
