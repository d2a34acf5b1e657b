// Package handlers implements the HTTP API surface over the analysis
// service.
package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/zonewatch-systems/zonewatch/internal/httputil"
	"github.com/zonewatch-systems/zonewatch/internal/service"
)

// Handler holds HTTP handlers for the analysis API.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler instance.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// RunAnalysis handles POST /api/v1/analysis/run: generates a fresh dataset,
// runs the pipeline, and returns the daily report.
func (h *Handler) RunAnalysis(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GenerateAndAnalyze(r.Context())
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// GetReport handles GET /api/v1/report: returns the most recent report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.LastReport()
	if err != nil {
		if errors.Is(err, service.ErrNoReport) {
			httputil.WriteError(w, http.StatusNotFound, "No report available yet")
			return
		}
		httputil.WriteError(w, http.StatusInternalServerError, "Failed to load report")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// GetLayout handles GET /api/v1/layout: returns the facility grid.
func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.svc.Layout())
}

// Export handles GET /api/v1/export: streams the artifact zip bundle.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	// Buffer the archive so a late failure can still produce a clean error
	// response instead of a truncated download.
	var buf bytes.Buffer
	name, err := h.svc.ExportBundle(&buf)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename=`+name)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
