package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/worker/scheduler_mock.go -package=mocks

type cycleRunner interface {
	RunCycle(ctx context.Context) model.CycleReport
}

// CycleLock serializes cycles across instances.
type CycleLock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// CycleReporter receives every finished cycle report.
type CycleReporter interface {
	Report(ctx context.Context, report model.CycleReport) error
}

var (
	// ErrCycleInFlight is returned when a cycle is already running in this process.
	ErrCycleInFlight = errors.New("unlock cycle already in flight")
	// ErrLockNotAcquired is returned when another instance holds the cycle lock.
	ErrLockNotAcquired = errors.New("unlock cycle lock held by another instance")
)

const defaultInterval = time.Minute

// SchedulerOptions configures a Scheduler. Lock and Reporters are optional.
type SchedulerOptions struct {
	Interval   time.Duration
	RunOnStart bool
	Lock       CycleLock
	Reporters  []CycleReporter
}

// Scheduler runs unlock cycles on a fixed interval, one at a time.
type Scheduler struct {
	runner     cycleRunner
	lock       CycleLock
	reporters  []CycleReporter
	interval   time.Duration
	runOnStart bool

	inFlight atomic.Bool
	cycleMu  sync.Mutex // held for the duration of a cycle

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewScheduler(runner cycleRunner, opts SchedulerOptions) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}

	return &Scheduler{
		runner:     runner,
		lock:       opts.Lock,
		reporters:  opts.Reporters,
		interval:   opts.Interval,
		runOnStart: opts.RunOnStart,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the tick loop. It returns immediately; calling it twice is a no-op.
// The loop ends when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	go s.loop(ctx)
}

// Stop ends the tick loop and waits for an in-flight cycle to finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })

	if s.started.Load() {
		<-s.done
	}

	// a cycle triggered through RunOnce may still be running
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.interval).Msg("unlock scheduler started")

	if s.runOnStart {
		s.tick(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("unlock scheduler stopped")
			return
		case <-s.stop:
			zlog.Logger.Info().Msg("unlock scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	_, err := s.RunOnce(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrCycleInFlight), errors.Is(err, ErrLockNotAcquired):
		zlog.Logger.Debug().Err(err).Msg("tick skipped")
	default:
		zlog.Logger.Error().Err(err).Msg("unlock cycle failed")
	}
}

// RunOnce runs one cycle now. It returns ErrCycleInFlight when a cycle is already
// running here and ErrLockNotAcquired when one is running elsewhere. The cycle is not
// cancelled when ctx is.
func (s *Scheduler) RunOnce(ctx context.Context) (model.CycleReport, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return model.CycleReport{}, ErrCycleInFlight
	}
	defer s.inFlight.Store(false)

	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	ctx = context.WithoutCancel(ctx)

	if s.lock != nil {
		acquired, err := s.lock.TryLock(ctx)
		if err != nil {
			return model.CycleReport{}, fmt.Errorf("acquire cycle lock: %w", err)
		}
		if !acquired {
			return model.CycleReport{}, ErrLockNotAcquired
		}

		defer func() {
			if err := s.lock.Unlock(ctx); err != nil {
				zlog.Logger.Warn().Err(err).Msg("failed to release cycle lock")
			}
		}()
	}

	report, err := s.runCycle(ctx)
	if err != nil {
		return model.CycleReport{}, err
	}

	zlog.Logger.Info().
		Int("scanned", report.CapsulesScanned).
		Int("capsules_notified", report.CapsulesNotified).
		Int("entries_notified", report.EntriesNotified).
		Int("sends_failed", report.SendsFailed).
		Int("write_failures", report.WriteFailures).
		Dur("took", report.Duration()).
		Msg("unlock cycle finished")

	for _, r := range s.reporters {
		if err := r.Report(ctx, report); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to report unlock cycle")
		}
	}

	return report, nil
}

func (s *Scheduler) runCycle(ctx context.Context) (report model.CycleReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unlock cycle panicked: %v", r)
		}
	}()

	return s.runner.RunCycle(ctx), nil
}
