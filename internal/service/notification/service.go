package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/rabbitmq/queue"
	"github.com/aliskhannn/edutrack/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

var (
	ErrInvalidRequest    = errors.New("invalid notification request")
	ErrAlreadyDispatched = errors.New("notification already dispatched")
	ErrProviderRejected  = errors.New("provider reported the message as failed")
)

// defaultClaimTTL bounds how long a crashed dispatcher can hold a request.
const defaultClaimTTL = 5 * time.Minute

type dispatchPublisher interface {
	Publish(msg queue.DispatchMessage, strategy retry.Strategy) error
}

type requestRepository interface {
	Create(ctx context.Context, n model.NotificationRequest) (model.NotificationRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.NotificationRequest, error)
	Claim(ctx context.Context, id uuid.UUID, at, staleBefore time.Time) (model.NotificationRequest, error)
	GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error)
	Resolve(ctx context.Context, id uuid.UUID, status model.Status, reason string, at time.Time) error
	ListRecent(ctx context.Context, limit int) ([]model.NotificationRequest, error)
	ListPending(ctx context.Context) ([]model.NotificationRequest, error)
}

type messageRepository interface {
	Create(ctx context.Context, msg model.Message) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.Message, error)
}

type messenger interface {
	SendMessage(ctx context.Context, chatID, text string) (model.Message, error)
	ScheduleMessage(ctx context.Context, chatID, text string, scheduledAt time.Time) (model.Message, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Options tune the scheduler.
type Options struct {
	Strategy       retry.Strategy // cache and queue retries, never applied to dispatch
	RemoteDeferral bool           // hand future requests to the provider's scheduler
	Location       *time.Location // wall clock used for repeat follow-ups
	RecentLimit    int            // default count for ListRecent
	ClaimTTL       time.Duration  // age after which an unfinished claim may be taken over
}

// Service owns the pending -> sent | failed lifecycle of notification requests.
type Service struct {
	repo      requestRepository
	messages  messageRepository
	messenger messenger
	queue     dispatchPublisher
	cache     cache
	opts      Options
	now       func() time.Time
}

// NewService creates a new notification scheduler.
func NewService(
	repo requestRepository,
	messages messageRepository,
	messenger messenger,
	queue dispatchPublisher,
	cache cache,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 20
	}
	if opts.ClaimTTL <= 0 {
		opts.ClaimTTL = defaultClaimTTL
	}

	return &Service{
		repo:      repo,
		messages:  messages,
		messenger: messenger,
		queue:     queue,
		cache:     cache,
		opts:      opts,
		now:       time.Now,
	}
}

// Submit stores a new pending request and dispatches it when it is due.
//
// A request scheduled in the future is handed to the delayed-dispatch queue,
// or to the provider when remote deferral is enabled. If the immediate
// dispatch fails the stored request is returned together with the error.
func (s *Service) Submit(ctx context.Context, req model.NotificationRequest) (model.NotificationRequest, error) {
	req.RecipientGroupID = strings.TrimSpace(req.RecipientGroupID)
	req.MessageText = strings.TrimSpace(req.MessageText)

	if req.RecipientGroupID == "" {
		return model.NotificationRequest{}, fmt.Errorf("%w: recipient group is required", ErrInvalidRequest)
	}
	if req.MessageText == "" {
		return model.NotificationRequest{}, fmt.Errorf("%w: message text is required", ErrInvalidRequest)
	}
	if req.Repeat == "" {
		req.Repeat = model.RepeatNone
	}
	if !req.Repeat.Valid() {
		return model.NotificationRequest{}, fmt.Errorf("%w: unknown repeat %q", ErrInvalidRequest, req.Repeat)
	}

	created, err := s.store(ctx, req)
	if err != nil {
		return model.NotificationRequest{}, err
	}

	if created.DueAt(s.now()) || s.opts.RemoteDeferral {
		return s.Dispatch(ctx, created.ID)
	}

	s.enqueue(created)

	return created, nil
}

// Dispatch performs the single delivery attempt of a pending request.
//
// The request is claimed before the provider is called, so concurrent or
// repeated dispatches of the same ID send at most once; the losers get
// ErrAlreadyDispatched. Success records the provider's Message and marks the
// request sent. A client failure, or a Message the provider reports as failed,
// marks it failed with the reason and is returned.
func (s *Service) Dispatch(ctx context.Context, id uuid.UUID) (model.NotificationRequest, error) {
	claimedAt := s.now()

	req, err := s.repo.Claim(ctx, id, claimedAt, claimedAt.Add(-s.opts.ClaimTTL))
	if err != nil {
		if errors.Is(err, notification.ErrNotPending) || errors.Is(err, notification.ErrClaimed) {
			return model.NotificationRequest{ID: id}, fmt.Errorf("%w: %w", ErrAlreadyDispatched, err)
		}

		return model.NotificationRequest{}, fmt.Errorf("claim notification: %w", err)
	}

	msg, sendErr := s.deliver(ctx, req)
	now := s.now()

	if sendErr != nil {
		zlog.Logger.Error().Err(sendErr).Str("id", id.String()).Msg("dispatch failed")
		return req, s.fail(ctx, &req, sendErr, now)
	}

	msg.RequestID = id
	if err := s.messages.Create(ctx, msg); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Str("message_id", msg.ID).Msg("failed to record message")
	}

	if msg.Status == model.StatusFailed {
		zlog.Logger.Warn().Str("id", id.String()).Str("message_id", msg.ID).Msg("provider reported message as failed")
		return req, s.fail(ctx, &req, fmt.Errorf("%w: message %s", ErrProviderRejected, msg.ID), now)
	}

	if err := s.resolve(ctx, &req, model.StatusSent, "", now); err != nil {
		return req, err
	}

	zlog.Logger.Info().Str("id", id.String()).Str("message_id", msg.ID).Msg("notification sent")

	if req.Repeat != model.RepeatNone {
		s.followUp(ctx, req)
	}

	return req, nil
}

// Messages returns the provider messages recorded for a request.
func (s *Service) Messages(ctx context.Context, id uuid.UUID) ([]model.Message, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}

	list, err := s.messages.ListByRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return list, nil
}

// Get returns a request by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.NotificationRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.NotificationRequest{}, fmt.Errorf("get notification: %w", err)
	}

	return req, nil
}

// GetStatus returns the status of a request, reading the cache first.
func (s *Service) GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, s.opts.Strategy, id.String())
	if err == nil && cached != "" {
		return model.Status(cached), nil
	}

	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	status, err := s.repo.GetStatus(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, id, status)

	return status, nil
}

// ListRecent returns up to count requests, newest first.
func (s *Service) ListRecent(ctx context.Context, count int) ([]model.NotificationRequest, error) {
	if count <= 0 {
		count = s.opts.RecentLimit
	}

	list, err := s.repo.ListRecent(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("list recent notifications: %w", err)
	}

	return list, nil
}

// Recover re-publishes every pending request and returns how many were queued.
func (s *Service) Recover(ctx context.Context) (int, error) {
	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending notifications: %w", err)
	}

	queued := 0
	for _, req := range pending {
		if s.enqueue(req) {
			queued++
		}
	}

	return queued, nil
}

func (s *Service) deliver(ctx context.Context, req model.NotificationRequest) (model.Message, error) {
	if s.opts.RemoteDeferral && !req.DueAt(s.now()) {
		return s.messenger.ScheduleMessage(ctx, req.RecipientGroupID, req.MessageText, *req.ScheduleTime)
	}

	return s.messenger.SendMessage(ctx, req.RecipientGroupID, req.MessageText)
}

// fail marks req failed with cause as the reason and returns the dispatch error.
// If the failure cannot be recorded the request stays pending and both errors
// are reported.
func (s *Service) fail(ctx context.Context, req *model.NotificationRequest, cause error, at time.Time) error {
	if err := s.resolve(ctx, req, model.StatusFailed, cause.Error(), at); err != nil {
		return fmt.Errorf("dispatch notification: %w: record failure: %v", cause, err)
	}

	return fmt.Errorf("dispatch notification: %w", cause)
}

func (s *Service) resolve(ctx context.Context, req *model.NotificationRequest, status model.Status, reason string, at time.Time) error {
	err := s.repo.Resolve(ctx, req.ID, status, reason, at)
	if errors.Is(err, notification.ErrNotPending) {
		return ErrAlreadyDispatched
	}
	if err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}

	req.Status = status
	req.FailureReason = reason
	req.UpdatedAt = at
	req.DispatchedAt = &at

	s.cacheStatus(ctx, req.ID, status)

	return nil
}

// followUp stores the next occurrence of a repeating request and queues it.
// The sent request itself is left untouched.
func (s *Service) followUp(ctx context.Context, req model.NotificationRequest) {
	now := s.now()
	anchor := now
	if req.ScheduleTime != nil {
		anchor = *req.ScheduleTime
	}

	// occurrences missed while the request waited are skipped, not replayed
	after := anchor
	if now.After(after) {
		after = now
	}

	next, err := nextOccurrence(anchor, after, req.Repeat, s.opts.Location)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", req.ID.String()).Msg("failed to compute next occurrence")
		return
	}

	followUp := model.NotificationRequest{
		RecipientGroupID: req.RecipientGroupID,
		MessageText:      req.MessageText,
		ScheduleTime:     &next,
		Repeat:           req.Repeat,
		CreatedBy:        req.CreatedBy,
	}

	created, err := s.store(ctx, followUp)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", req.ID.String()).Msg("failed to store follow-up notification")
		return
	}

	s.enqueue(created)

	zlog.Logger.Info().
		Str("id", req.ID.String()).
		Str("next_id", created.ID.String()).
		Time("send_at", next).
		Msg("follow-up notification scheduled")
}

func (s *Service) store(ctx context.Context, req model.NotificationRequest) (model.NotificationRequest, error) {
	req.Status = model.StatusPending

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return model.NotificationRequest{}, fmt.Errorf("create notification: %w", err)
	}

	s.cacheStatus(ctx, created.ID, created.Status)

	return created, nil
}

func (s *Service) enqueue(req model.NotificationRequest) bool {
	sendAt := s.now()
	if req.ScheduleTime != nil {
		sendAt = *req.ScheduleTime
	}

	err := s.queue.Publish(queue.DispatchMessage{ID: req.ID, SendAt: sendAt}, s.opts.Strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", req.ID.String()).Msg("failed to publish notification")
		return false
	}

	return true
}

func (s *Service) cacheStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, s.opts.Strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification")
	}
}
