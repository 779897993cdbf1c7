// Package queue carries due notifications from the dispatcher to the notifier
// workers over RabbitMQ.
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

	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/scheduler"
)

const contentType = "application/json"

// Topology names the exchange and queues the notification queue declares.
type Topology struct {
	Exchange   string
	Queue      string
	RetryQueue string
	DLQ        string
	RoutingKey string
	RetryTTL   time.Duration // how long a message waits in the retry queue before going back to the main one
}

// NotificationMessage is a due notification on its way to the delivery channels.
type NotificationMessage struct {
	Identifier string     `json:"identifier"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	FireAt     time.Time  `json:"fire_at"`
}

// Text is what the delivery channels send.
func (m NotificationMessage) Text() string {
	return m.Title + "\n" + m.Body
}

// MessageFromRequest converts a due notification request into a queue message.
func MessageFromRequest(req model.NotificationRequest) NotificationMessage {
	msg := NotificationMessage{
		Identifier: req.Identifier,
		Title:      req.Content.Title,
		Body:       req.Content.Body,
		FireAt:     req.FireAt(),
	}

	if id, ok := scheduler.ProductIDFromKey(req.Identifier); ok {
		msg.ProductID = &id
	}

	return msg
}

// NotificationQueue publishes and consumes notification messages.
type NotificationQueue struct {
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	routingKey string
}

// NewNotificationQueue declares the exchange, the main queue, a TTL retry
// queue that dead-letters back into the main one and a DLQ for messages the
// main queue rejects.
func NewNotificationQueue(ch *rabbitmq.Channel, t Topology) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(t.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	if _, err := qm.DeclareQueue(t.DLQ, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	_, err := qm.DeclareQueue(t.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args: map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": t.Queue,
			"x-message-ttl":             int32(t.RetryTTL / time.Millisecond),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(t.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args: map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": t.DLQ,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, t.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	return &NotificationQueue{
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:   rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)),
		routingKey: t.RoutingKey,
	}, nil
}

// Publish sends msg to the exchange.
func (q *NotificationQueue) Publish(msg NotificationMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.publisher.PublishWithRetry(body, q.routingKey, contentType, strategy)
}

// Consume decodes incoming messages into out until ctx is done. Messages that
// fail to decode are logged and dropped.
func (q *NotificationQueue) Consume(ctx context.Context, out chan<- NotificationMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}

// forward decodes bodies from in into out. Once ctx is done it keeps reading
// in and discards what arrives so the consumer feeding in never blocks; it
// returns when in is closed.
func forward(ctx context.Context, in <-chan []byte, out chan<- NotificationMessage) {
	for m := range in {
		if ctx.Err() != nil {
			zlog.Logger.Warn().Msg("consumer stopped, dropping message")
			continue
		}

		msg, err := Decode(m)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			zlog.Logger.Warn().Str("identifier", msg.Identifier).Msg("consumer stopped, dropping message")
		}
	}
}

// Decode parses a message body.
func Decode(body []byte) (NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return NotificationMessage{}, err
	}

	return msg, nil
}
