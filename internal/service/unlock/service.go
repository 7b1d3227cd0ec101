// Package unlock implements the scan-and-notify cycle: find capsules and memory
// entries whose unlock instant has passed, notify their recipients once and persist
// the notified flag.
package unlock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/unlock/mock.go -package=mocks

type capsuleStore interface {
	FindDuePersonal(ctx context.Context, now time.Time) ([]model.Capsule, error)
	FindCollaborativeWithEntries(ctx context.Context) ([]model.Capsule, error)
	MarkCapsuleNotified(ctx context.Context, id uuid.UUID) (bool, error)
	MarkEntriesNotified(ctx context.Context, capsuleID uuid.UUID, entryIDs []uuid.UUID) (int64, error)
}

type userDirectory interface {
	FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
}

// Notifier delivers one message to one address. It does not retry.
type Notifier interface {
	Send(to, subject, body string) error
}

// Clock is the time source of a cycle.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// Service runs complete unlock cycles.
type Service struct {
	scanner    *Scanner
	dispatcher *Dispatcher
	clock      Clock
}

// NewService creates a Service. A nil clock means SystemClock.
func NewService(scanner *Scanner, dispatcher *Dispatcher, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock
	}

	return &Service{scanner: scanner, dispatcher: dispatcher, clock: clock}
}

// RunCycle processes personal capsules and then collaborative capsules against a
// single reading of the clock. Every error is logged and counted in the report;
// none is returned.
func (s *Service) RunCycle(ctx context.Context) model.CycleReport {
	now := s.clock.Now()
	report := model.CycleReport{StartedAt: now}

	personal, err := s.scanner.ScanPersonal(ctx, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("personal capsule unlock scan failed")
		report.ScanFailures++
	}
	report.CapsulesScanned += len(personal)

	for _, c := range personal {
		s.dispatcher.DispatchPersonal(ctx, c, &report)
	}

	collaborative, err := s.scanner.ScanCollaborative(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("collaborative memory unlock scan failed")
		report.ScanFailures++
	}
	report.CapsulesScanned += len(collaborative)

	for _, c := range collaborative {
		s.dispatcher.DispatchCollaborative(ctx, c, now, &report)
	}

	report.FinishedAt = s.clock.Now()

	return report
}
