package main

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/config"
	"github.com/aliskhannn/capsule-unlocker/internal/lock"
	emailmsg "github.com/aliskhannn/capsule-unlocker/internal/rabbitmq/handlers/email"
	"github.com/aliskhannn/capsule-unlocker/internal/rabbitmq/queue"
	capsulerepo "github.com/aliskhannn/capsule-unlocker/internal/repository/capsule"
	reportrepo "github.com/aliskhannn/capsule-unlocker/internal/repository/report"
	"github.com/aliskhannn/capsule-unlocker/internal/service/report"
	"github.com/aliskhannn/capsule-unlocker/internal/service/unlock"
	"github.com/aliskhannn/capsule-unlocker/internal/worker"
	"github.com/aliskhannn/capsule-unlocker/pkg/email"
	"github.com/aliskhannn/capsule-unlocker/pkg/telegram"
)

// app is the wired unlock worker.
type app struct {
	cfg       *config.Config
	db        *dbpg.DB
	reports   *reportrepo.Repository
	scheduler *worker.Scheduler
	delivery  *worker.Delivery // nil in direct mode

	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, func() error { return closeDB(db) })

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		a.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	a.closers = append(a.closers, rdb.Close)

	a.reports = reportrepo.NewRepository(rdb, cfg.Retry)

	mailer := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	var notifier unlock.Notifier = mailer
	if cfg.Notifications.Mode == config.ModeQueue {
		q, err := a.openQueue()
		if err != nil {
			a.Close()
			return nil, err
		}

		notifier = q
		a.delivery = worker.NewDelivery(q, emailmsg.NewHandler(mailer))
	}

	capsules := capsulerepo.NewRepository(db)

	dispatcher := unlock.NewDispatcher(
		capsules,
		unlock.NewResolver(capsules),
		notifier,
		unlock.Messages{
			FrontendURL: cfg.Notifications.FrontendURL,
			Signature:   cfg.Notifications.Signature,
		},
		unlock.DispatcherOptions{
			Retry:           cfg.Retry,
			SendConcurrency: cfg.Notifications.SendConcurrency,
		},
	)
	service := unlock.NewService(unlock.NewScanner(capsules), dispatcher, unlock.SystemClock)

	opts := worker.SchedulerOptions{
		Interval:   cfg.Scheduler.Interval,
		RunOnStart: cfg.Scheduler.RunOnStart,
		Reporters:  []worker.CycleReporter{a.reports},
	}
	if cfg.Scheduler.LockEnabled {
		opts.Lock = lock.NewRedisLock(rdb, cfg.Scheduler.LockKey, cfg.Scheduler.LockTTL)
	}
	if cfg.Telegram.Token != "" {
		opts.Reporters = append(opts.Reporters,
			report.NewTelegramReporter(telegram.NewClient(cfg.Telegram.Token), cfg.Telegram.ChatID))
	}

	a.scheduler = worker.NewScheduler(service, opts)

	return a, nil
}

func openDB(cfg *config.Config) (*dbpg.DB, error) {
	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

func closeDB(db *dbpg.DB) error {
	if err := db.Master.Close(); err != nil {
		return fmt.Errorf("close master DB: %w", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			return fmt.Errorf("close slave DB %d: %w", i, err)
		}
	}

	return nil
}

func (a *app) openQueue() (*queue.EmailQueue, error) {
	conn, err := rabbitmq.Connect(a.cfg.RabbitMQ.URL(), a.cfg.RabbitMQ.Retries, a.cfg.RabbitMQ.Pause)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	a.closers = append(a.closers, conn.Close)

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	a.closers = append(a.closers, ch.Close)

	q, err := queue.NewEmailQueue(ch, a.cfg.Retry)
	if err != nil {
		return nil, fmt.Errorf("create email queue: %w", err)
	}

	return q, nil
}

// Close releases connections in reverse order of opening.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close resource")
		}
	}
	a.closers = nil
}
