package server

import (
	"net/http"
	"os"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zonewatch-systems/zonewatch/internal/handlers"
	"github.com/zonewatch-systems/zonewatch/internal/middleware"
)

// NewRouter constructs the API router with request-ID propagation and
// request logging.
func NewRouter(h *handlers.Handler) http.Handler {
	r := mux.NewRouter()

	// Health check and metrics
	r.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Analysis API
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analysis/run", h.RunAnalysis).Methods(http.MethodPost)
	api.HandleFunc("/report", h.GetReport).Methods(http.MethodGet)
	api.HandleFunc("/layout", h.GetLayout).Methods(http.MethodGet)
	api.HandleFunc("/export", h.Export).Methods(http.MethodGet)

	return middleware.RequestID(gorilla.CombinedLoggingHandler(os.Stdout, r))
}
