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
)

const (
	ExchangeName  = "capsule-mail"
	MainQueueName = "capsule-mail-queue"
	DLQName       = "capsule-mail-dlq"
	RoutingKey    = "mail"
)

// EmailMessage is one queued email job.
type EmailMessage struct {
	ID        uuid.UUID `json:"id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type (
	publishFunc func(body []byte, strategy retry.Strategy) error
	consumeFunc func(out chan []byte, strategy retry.Strategy) error
)

// EmailQueue publishes email jobs and streams them back to delivery workers.
type EmailQueue struct {
	publish  publishFunc
	consume  consumeFunc
	strategy retry.Strategy // used by Send
}

// NewEmailQueue declares the exchange, the main queue and its dead-letter queue on ch.
func NewEmailQueue(ch *rabbitmq.Channel, strategy retry.Strategy) (*EmailQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	if _, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args: map[string]interface{}{
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": DLQName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return newEmailQueue(
		func(body []byte, s retry.Strategy) error {
			return pub.PublishWithRetry(body, RoutingKey, "application/json", s)
		},
		func(out chan []byte, s retry.Strategy) error {
			return cons.ConsumeWithRetry(out, s)
		},
		strategy,
	), nil
}

func newEmailQueue(publish publishFunc, consume consumeFunc, strategy retry.Strategy) *EmailQueue {
	return &EmailQueue{publish: publish, consume: consume, strategy: strategy}
}

// Send enqueues one email. Delivery and its retries happen in the delivery worker.
func (q *EmailQueue) Send(to, subject, body string) error {
	return q.Publish(EmailMessage{
		ID:        uuid.New(),
		To:        to,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}, q.strategy)
}

// Publish encodes msg as JSON and publishes it with the given strategy.
func (q *EmailQueue) Publish(msg EmailMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := q.publish(body, strategy); err != nil {
		return fmt.Errorf("failed to publish email %s: %w", msg.ID, err)
	}

	return nil
}

// Consume decodes queued jobs into out until ctx is done. Undecodable payloads are
// logged and dropped.
func (q *EmailQueue) Consume(ctx context.Context, out chan<- EmailMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg EmailMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal email message")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return q.consume(msgChan, strategy)
}
