package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/capsule-unlocker/internal/api/handlers/unlock"
	mocks "github.com/aliskhannn/capsule-unlocker/internal/mocks/api/handlers/unlock"
	"github.com/aliskhannn/capsule-unlocker/internal/model"
	"github.com/aliskhannn/capsule-unlocker/internal/worker"
)

func TestRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockcycleRunner(ctrl)
	reports := mocks.NewMockreportReader(ctrl)

	runner.EXPECT().RunOnce(gomock.Any()).Return(model.CycleReport{}, worker.ErrCycleInFlight)
	reports.EXPECT().Last(gomock.Any()).Return(model.CycleReport{SendsAttempted: 1}, nil)

	e := New(unlock.NewHandler(runner, reports))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/api/unlock/status", http.StatusOK},
		{http.MethodPost, "/api/unlock/run", http.StatusConflict},
		{http.MethodGet, "/api/unlock/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
	}
}
