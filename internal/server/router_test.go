package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch-systems/zonewatch/internal/augment"
	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/export"
	"github.com/zonewatch-systems/zonewatch/internal/generator"
	"github.com/zonewatch-systems/zonewatch/internal/handlers"
	"github.com/zonewatch-systems/zonewatch/internal/pipeline"
	"github.com/zonewatch-systems/zonewatch/internal/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Default()
	cfg.Data.Dir = t.TempDir()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	exporter, err := export.New(cfg.Data.Dir)
	require.NoError(t, err)

	svc := service.New(cfg,
		pipeline.New(cfg, augment.NoopCapability{}, logger),
		generator.New(cfg, 42),
		exporter,
		logger,
	)
	return NewRouter(handlers.NewHandler(svc))
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"layout", http.MethodGet, "/api/v1/layout", http.StatusOK},
		{"report before run", http.MethodGet, "/api/v1/report", http.StatusNotFound},
		{"export", http.MethodGet, "/api/v1/export", http.StatusOK},
		{"run analysis", http.MethodPost, "/api/v1/analysis/run", http.StatusOK},
		{"run analysis wrong method", http.MethodGet, "/api/v1/analysis/run", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
