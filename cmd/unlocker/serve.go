package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/api/handlers/unlock"
	"github.com/aliskhannn/capsule-unlocker/internal/api/router"
	"github.com/aliskhannn/capsule-unlocker/internal/api/server"
	"github.com/aliskhannn/capsule-unlocker/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the unlock scheduler and the ops API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var wg sync.WaitGroup
	if a.delivery != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.delivery.Run(ctx, cfg.Retry, cfg.Workers.Count)
		}()
	}

	a.scheduler.Start(ctx)

	r := router.New(unlock.NewHandler(a.scheduler, a.reports))
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Error().Err(err).Msg("ops server stopped")
			stop()
		}
	}()

	zlog.Logger.Info().
		Str("addr", cfg.Server.HTTPPort).
		Str("mode", cfg.Notifications.Mode).
		Bool("lock", cfg.Scheduler.LockEnabled).
		Msg("capsule unlocker started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// lets a running cycle finish its sends and flag writes
	a.scheduler.Stop()
	wg.Wait()

	zlog.Logger.Info().Msg("capsule unlocker stopped")

	return nil
}
