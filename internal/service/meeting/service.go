// Package meeting keeps a read-through cache of the meeting provider's data.
// The provider remains the source of truth.
package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/meeting/mock.go -package=mocks

const upcomingKey = "upcoming"

type meetingClient interface {
	CreateMeeting(ctx context.Context, topic string, startTime time.Time, duration int, timezone string) (model.Meeting, error)
	GetUpcomingMeetings(ctx context.Context) ([]model.Meeting, error)
	GetMeeting(ctx context.Context, id string) (model.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error
}

type jsonCache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, v interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

type Service struct {
	client meetingClient
	cache  jsonCache
}

func NewService(client meetingClient, cache jsonCache) *Service {
	return &Service{client: client, cache: cache}
}

// Create creates a meeting at the provider and caches it.
func (s *Service) Create(ctx context.Context, topic string, startTime time.Time, duration int, timezone string) (model.Meeting, error) {
	m, err := s.client.CreateMeeting(ctx, topic, startTime, duration, timezone)
	if err != nil {
		return model.Meeting{}, fmt.Errorf("create meeting: %w", err)
	}

	s.invalidate(ctx, upcomingKey)
	s.store(ctx, m.ID, m)

	return m, nil
}

// Upcoming returns the provider's upcoming meetings.
func (s *Service) Upcoming(ctx context.Context) ([]model.Meeting, error) {
	var cached []model.Meeting
	if s.load(ctx, upcomingKey, &cached) {
		return cached, nil
	}

	list, err := s.client.GetUpcomingMeetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get upcoming meetings: %w", err)
	}

	s.store(ctx, upcomingKey, list)

	return list, nil
}

// Get returns one meeting.
func (s *Service) Get(ctx context.Context, id string) (model.Meeting, error) {
	var cached model.Meeting
	if s.load(ctx, id, &cached) {
		return cached, nil
	}

	m, err := s.client.GetMeeting(ctx, id)
	if err != nil {
		return model.Meeting{}, fmt.Errorf("get meeting: %w", err)
	}

	s.store(ctx, id, m)

	return m, nil
}

// Delete deletes a meeting at the provider and drops it from the cache.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteMeeting(ctx, id); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}

	s.invalidate(ctx, id, upcomingKey)

	return nil
}

func (s *Service) load(ctx context.Context, key string, dst interface{}) bool {
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to read meeting cache")
		return false
	}

	return hit
}

func (s *Service) store(ctx context.Context, key string, v interface{}) {
	if err := s.cache.Set(ctx, key, v); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to write meeting cache")
	}
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		zlog.Logger.Error().Err(err).Strs("keys", keys).Msg("failed to invalidate meeting cache")
	}
}
