package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/edutrack/internal/config"
)

// DispatchMessage asks a worker to dispatch a pending request once SendAt is reached.
type DispatchMessage struct {
	ID     uuid.UUID `json:"id"`
	SendAt time.Time `json:"send_at"`
}

// DispatchQueue is the delayed-dispatch queue of notification requests.
type DispatchQueue struct {
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	routingKey string
}

// NewDispatchQueue declares the exchange, the main queue and its dead-letter queue.
func NewDispatchQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*DispatchQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	return &DispatchQueue{
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:   rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)),
		routingKey: cfg.RoutingKey,
	}, nil
}

// Publish sends msg to the exchange, retrying according to strategy.
func (q *DispatchQueue) Publish(msg DispatchMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes incoming messages into out until ctx is done.
func (q *DispatchQueue) Consume(ctx context.Context, out chan<- DispatchMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				msg, err := Decode(m)
				if err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
					continue
				}

				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}

// Decode parses a raw queue body.
func Decode(body []byte) (DispatchMessage, error) {
	var msg DispatchMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return DispatchMessage{}, err
	}

	if msg.ID == uuid.Nil {
		return DispatchMessage{}, fmt.Errorf("message without id")
	}

	return msg, nil
}
