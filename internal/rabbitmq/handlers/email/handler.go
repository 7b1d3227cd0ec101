package email

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/email/mock.go -package=mocks
type mailSender interface {
	Send(to, subject, body string) error
}

// Handler delivers queued email jobs over SMTP.
type Handler struct {
	sender mailSender
}

func NewHandler(sender mailSender) *Handler {
	return &Handler{
		sender: sender,
	}
}

// HandleMessage sends msg, retrying with strategy. It reports whether the email was
// delivered. A final failure is logged and the job is dropped.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.EmailMessage, strategy retry.Strategy) bool {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.sender.Send(msg.To, msg.Subject, msg.Body)
		}
	}, strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("email_id", msg.ID.String()).
			Str("to", msg.To).
			Msg("failed to deliver queued email")
		return false
	}

	zlog.Logger.Info().Str("email_id", msg.ID.String()).Str("to", msg.To).Msg("queued email delivered")
	return true
}
