package unlock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
	"github.com/aliskhannn/capsule-unlocker/internal/repository/capsule"
)

type flagWriter interface {
	MarkCapsuleNotified(ctx context.Context, id uuid.UUID) (bool, error)
	MarkEntriesNotified(ctx context.Context, capsuleID uuid.UUID, entryIDs []uuid.UUID) (int64, error)
}

// DispatcherOptions tunes delivery and write-back.
type DispatcherOptions struct {
	Retry           retry.Strategy // applied to flag writes
	SendConcurrency int            // max in-flight sends per item
}

// Dispatcher notifies the recipients of unlocked items and persists the notified flag.
type Dispatcher struct {
	store       flagWriter
	resolver    *Resolver
	notifier    Notifier
	messages    Messages
	retry       retry.Strategy
	concurrency int
}

func NewDispatcher(store flagWriter, resolver *Resolver, notifier Notifier, messages Messages, opts DispatcherOptions) *Dispatcher {
	if opts.Retry.Attempts < 1 {
		opts.Retry.Attempts = 1
	}
	if opts.SendConcurrency < 1 {
		opts.SendConcurrency = 1
	}

	return &Dispatcher{
		store:       store,
		resolver:    resolver,
		notifier:    notifier,
		messages:    messages,
		retry:       opts.Retry,
		concurrency: opts.SendConcurrency,
	}
}

type outgoing struct {
	to      model.MemberDetail
	subject string
	body    string
}

// DispatchPersonal notifies the creator of an unlocked personal capsule and marks the
// capsule notified whatever the send outcome was.
func (d *Dispatcher) DispatchPersonal(ctx context.Context, c model.Capsule, report *model.CycleReport) {
	recipients, err := d.resolver.Creator(ctx, c)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("capsule_id", c.ID.String()).Msg("failed to resolve capsule creator, will retry next tick")
		report.Skipped++
		return
	}

	if len(recipients) == 0 {
		zlog.Logger.Warn().Str("capsule_id", c.ID.String()).Msg("personal capsule has no reachable creator, marking notified without sending")
	}

	msgs := make([]outgoing, 0, len(recipients))
	for _, to := range recipients {
		subject, body := d.messages.Personal(c, to)
		msgs = append(msgs, outgoing{to: to, subject: subject, body: body})
	}

	attempted, failed := d.sendAll(c.ID, msgs)
	report.SendsAttempted += attempted
	report.SendsFailed += failed

	var (
		transitioned bool
		markErr      error
	)
	err = retry.Do(func() error {
		transitioned, markErr = d.store.MarkCapsuleNotified(ctx, c.ID)
		if errors.Is(markErr, capsule.ErrCapsuleNotFound) {
			return nil
		}
		return markErr
	}, d.retry)
	if errors.Is(markErr, capsule.ErrCapsuleNotFound) {
		zlog.Logger.Warn().Str("capsule_id", c.ID.String()).Msg("capsule was deleted before it could be marked notified")
		return
	}
	if err != nil {
		zlog.Logger.Error().Err(err).Str("capsule_id", c.ID.String()).Msg("failed to mark capsule notified, will retry next tick")
		report.WriteFailures++
		return
	}

	if !transitioned {
		zlog.Logger.Warn().Str("capsule_id", c.ID.String()).Msg("capsule was already marked notified by another cycle")
		return
	}

	report.CapsulesNotified++
	zlog.Logger.Info().
		Str("capsule_id", c.ID.String()).
		Int("sent", attempted-failed).
		Int("failed", failed).
		Msgf("notified personal capsule creator for capsule %q", c.Title)
}

// DispatchCollaborative notifies every member once per entry that is due at now and
// marks all those entries notified with a single write.
func (d *Dispatcher) DispatchCollaborative(ctx context.Context, c model.Capsule, now time.Time, report *model.CycleReport) {
	due := c.EligibleEntries(now)
	if len(due) == 0 {
		return
	}

	recipients, err := d.resolver.Members(ctx, c)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("capsule_id", c.ID.String()).Msg("failed to resolve capsule members, will retry next tick")
		report.Skipped += len(due)
		return
	}

	if len(recipients) == 0 {
		zlog.Logger.Warn().Str("capsule_id", c.ID.String()).Int("entries", len(due)).
			Msg("collaborative capsule has no reachable members, marking entries notified without sending")
	}

	msgs := make([]outgoing, 0, len(due)*len(recipients))
	entryIDs := make([]uuid.UUID, 0, len(due))
	for _, e := range due {
		entryIDs = append(entryIDs, e.ID)
		for _, to := range recipients {
			subject, body := d.messages.EntryUnlocked(c, e, to)
			msgs = append(msgs, outgoing{to: to, subject: subject, body: body})
		}
	}

	attempted, failed := d.sendAll(c.ID, msgs)
	report.SendsAttempted += attempted
	report.SendsFailed += failed

	var (
		transitioned int64
		markErr      error
	)
	err = retry.Do(func() error {
		transitioned, markErr = d.store.MarkEntriesNotified(ctx, c.ID, entryIDs)
		if errors.Is(markErr, capsule.ErrCapsuleNotFound) {
			return nil
		}
		return markErr
	}, d.retry)
	if errors.Is(markErr, capsule.ErrCapsuleNotFound) {
		zlog.Logger.Warn().Str("capsule_id", c.ID.String()).Int("entries", len(entryIDs)).
			Msg("capsule was deleted before its entries could be marked notified")
		return
	}
	if err != nil {
		zlog.Logger.Error().Err(err).Str("capsule_id", c.ID.String()).Int("entries", len(entryIDs)).
			Msg("failed to mark entries notified, will retry next tick")
		report.WriteFailures++
		return
	}

	report.EntriesNotified += int(transitioned)
	zlog.Logger.Info().
		Str("capsule_id", c.ID.String()).
		Int64("entries", transitioned).
		Int("sent", attempted-failed).
		Int("failed", failed).
		Msgf("notified members for unlocked memory entries in capsule %q", c.Title)
}

// sendAll delivers msgs with bounded concurrency and returns once every send has
// finished. A failure or panic in one send never affects the others.
func (d *Dispatcher) sendAll(capsuleID uuid.UUID, msgs []outgoing) (attempted, failed int) {
	if len(msgs) == 0 {
		return 0, 0
	}

	var (
		wg       sync.WaitGroup
		failures atomic.Int64
		sem      = make(chan struct{}, d.concurrency)
	)

	for _, m := range msgs {
		wg.Add(1)
		sem <- struct{}{}

		go func(m outgoing) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := d.send(m); err != nil {
				failures.Add(1)
				zlog.Logger.Error().Err(err).
					Str("capsule_id", capsuleID.String()).
					Str("to", m.to.Email).
					Msg("failed to send unlock notification")
			}
		}(m)
	}

	wg.Wait()

	return len(msgs), int(failures.Load())
}

func (d *Dispatcher) send(m outgoing) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()

	return d.notifier.Send(m.to.Email, m.subject, m.body)
}
