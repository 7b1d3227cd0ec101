package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/capsule-unlocker/internal/model"
)

//go:generate mockgen -source=repo.go -destination=../../mocks/repository/report/mock.go -package=mocks

// ErrNoReport is returned when no cycle has finished yet.
var ErrNoReport = errors.New("no cycle report yet")

const lastReportKey = "capsule-unlocker:last-cycle"

// readStrategy reads the last report once; a missing key is final.
var readStrategy = retry.Strategy{Attempts: 1}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Repository keeps the most recent cycle report in Redis so every instance can
// serve it.
type Repository struct {
	cache    cache
	strategy retry.Strategy
}

func NewRepository(c cache, strategy retry.Strategy) *Repository {
	return &Repository{cache: c, strategy: strategy}
}

// Report stores r as the latest cycle report.
func (r *Repository) Report(ctx context.Context, report model.CycleReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal cycle report: %w", err)
	}

	if err := r.cache.SetWithRetry(ctx, r.strategy, lastReportKey, string(data)); err != nil {
		return fmt.Errorf("save cycle report: %w", err)
	}

	return nil
}

// Last returns the latest cycle report or ErrNoReport. The read is not retried.
func (r *Repository) Last(ctx context.Context) (model.CycleReport, error) {
	data, err := r.cache.GetWithRetry(ctx, readStrategy, lastReportKey)
	if errors.Is(err, redis.Nil) {
		return model.CycleReport{}, ErrNoReport
	}
	if err != nil {
		return model.CycleReport{}, fmt.Errorf("load cycle report: %w", err)
	}

	var report model.CycleReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return model.CycleReport{}, fmt.Errorf("unmarshal cycle report: %w", err)
	}

	return report, nil
}
