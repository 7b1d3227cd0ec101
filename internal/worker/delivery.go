package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/rabbitmq/queue"
)

//go:generate mockgen -source=delivery.go -destination=../mocks/worker/delivery_mock.go -package=mocks

type emailConsumer interface {
	Consume(ctx context.Context, out chan<- queue.EmailMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.EmailMessage, strategy retry.Strategy) bool
}

// Delivery drains the email queue with a fixed pool of workers.
type Delivery struct {
	consumer emailConsumer
	handler  messageHandler
}

func NewDelivery(c emailConsumer, h messageHandler) *Delivery {
	return &Delivery{
		consumer: c,
		handler:  h,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (d *Delivery) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.EmailMessage, workerCount*10)

	go func() {
		if err := d.consumer.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume email messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Debug().Int("worker", id).Msg("delivery worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("delivery worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						return
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("email delivery stopped")
}
