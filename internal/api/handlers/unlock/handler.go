package unlock

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/capsule-unlocker/internal/api/respond"
	"github.com/aliskhannn/capsule-unlocker/internal/model"
	"github.com/aliskhannn/capsule-unlocker/internal/repository/report"
	"github.com/aliskhannn/capsule-unlocker/internal/worker"
)

// cycleRunner triggers an unlock cycle outside the schedule.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/unlock/mock.go -package=mocks
type cycleRunner interface {
	RunOnce(ctx context.Context) (model.CycleReport, error)
}

// reportReader returns the report of the latest finished cycle.
type reportReader interface {
	Last(ctx context.Context) (model.CycleReport, error)
}

// Handler serves the operational endpoints of the unlock worker.
type Handler struct {
	runner  cycleRunner
	reports reportReader
}

// NewHandler creates a new Handler instance.
func NewHandler(runner cycleRunner, reports reportReader) *Handler {
	return &Handler{runner: runner, reports: reports}
}

// Health reports that the process is up.
func (h *Handler) Health(c *ginext.Context) {
	c.String(http.StatusOK, "ok")
}

// Status returns the latest cycle report, or 404 before the first cycle finished.
func (h *Handler) Status(c *ginext.Context) {
	last, err := h.reports.Last(c.Request.Context())
	if err != nil {
		if errors.Is(err, report.ErrNoReport) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no unlock cycle has finished yet"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to load last cycle report")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, last)
}

// Run starts a cycle right away and returns its report. It answers 409 when a cycle
// is already running here or on another instance.
func (h *Handler) Run(c *ginext.Context) {
	result, err := h.runner.RunOnce(c.Request.Context())
	if err != nil {
		if errors.Is(err, worker.ErrCycleInFlight) || errors.Is(err, worker.ErrLockNotAcquired) {
			zlog.Logger.Warn().Err(err).Msg("manual unlock cycle rejected")
			respond.Fail(c.Writer, http.StatusConflict, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("manual unlock cycle failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}
