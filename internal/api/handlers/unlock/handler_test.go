package unlock

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/capsule-unlocker/internal/mocks/api/handlers/unlock"
	"github.com/aliskhannn/capsule-unlocker/internal/model"
	"github.com/aliskhannn/capsule-unlocker/internal/repository/report"
	"github.com/aliskhannn/capsule-unlocker/internal/worker"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockcycleRunner, *mocks.MockreportReader) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockcycleRunner(ctrl)
	reports := mocks.NewMockreportReader(ctrl)

	return NewHandler(runner, reports), runner, reports
}

func newContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)

	return c, w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) model.CycleReport {
	t.Helper()

	var body struct {
		Result model.CycleReport `json:"result"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	return body.Result
}

func TestHandler_Health(t *testing.T) {
	handler, _, _ := setupHandler(t)
	c, w := newContext(http.MethodGet, "/healthz")

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestHandler_Status_Success(t *testing.T) {
	handler, _, reports := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/unlock/status")

	last := model.CycleReport{
		StartedAt:        time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		CapsulesNotified: 3,
	}
	reports.EXPECT().Last(gomock.Any()).Return(last, nil)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decodeResult(t, w).CapsulesNotified)
}

func TestHandler_Status_NoCycleYet(t *testing.T) {
	handler, _, reports := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/unlock/status")

	reports.EXPECT().Last(gomock.Any()).Return(model.CycleReport{}, report.ErrNoReport)

	handler.Status(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Status_Error(t *testing.T) {
	handler, _, reports := setupHandler(t)
	c, w := newContext(http.MethodGet, "/api/unlock/status")

	reports.EXPECT().Last(gomock.Any()).Return(model.CycleReport{}, errors.New("i/o timeout"))

	handler.Status(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Run(t *testing.T) {
	tests := []struct {
		name       string
		runErr     error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "in flight", runErr: worker.ErrCycleInFlight, wantStatus: http.StatusConflict},
		{name: "lock held elsewhere", runErr: worker.ErrLockNotAcquired, wantStatus: http.StatusConflict},
		{name: "lock error", runErr: fmt.Errorf("acquire cycle lock: %w", errors.New("dial tcp")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, runner, _ := setupHandler(t)
			c, w := newContext(http.MethodPost, "/api/unlock/run")

			result := model.CycleReport{EntriesNotified: 4}
			if tt.runErr != nil {
				result = model.CycleReport{}
			}
			runner.EXPECT().RunOnce(gomock.Any()).Return(result, tt.runErr)

			handler.Run(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 4, decodeResult(t, w).EntriesNotified)
			}
		})
	}
}
