package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/model"
	"github.com/aliskhannn/edutrack/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

type notificationConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DispatchMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DispatchMessage)
}

type notificationService interface {
	GetStatus(ctx context.Context, id uuid.UUID) (model.Status, error)
}

// Notifier consumes the delayed-dispatch queue with a pool of workers.
type Notifier struct {
	queue   notificationConsumer
	handler messageHandler
	service notificationService
	now     func() time.Time
}

func NewNotifier(q notificationConsumer, h messageHandler, s notificationService) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		service: s,
		now:     time.Now,
	}
}

// Run blocks until ctx is done and every worker and parked message has returned.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.DispatchMessage, workerCount*10)

	go func() {
		if err := n.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Info().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Info().Int("worker", id).Msg("worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Info().Int("worker", id).Msg("channel closed, shutting down")
						return
					}

					n.process(ctx, &wg, msg)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("notifier stopped")
}

func (n *Notifier) process(ctx context.Context, wg *sync.WaitGroup, msg queue.DispatchMessage) {
	status, err := n.service.GetStatus(ctx, msg.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to get notification status")
		return
	}

	if status != model.StatusPending {
		zlog.Logger.Info().Str("id", msg.ID.String()).Str("status", string(status)).Msg("notification is not pending, skipping")
		return
	}

	wait := msg.SendAt.Sub(n.now())
	if wait <= 0 {
		n.handler.HandleMessage(ctx, msg)
		return
	}

	// Not due yet: park it so the worker can take the next message.
	wg.Add(1)
	go func() {
		defer wg.Done()

		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			n.handler.HandleMessage(ctx, msg)
		}
	}()
}
