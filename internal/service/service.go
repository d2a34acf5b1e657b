// Package service holds the application-level operations behind the HTTP
// handlers and the CLI: dataset generation, pipeline runs, report access and
// artifact export.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/export"
	"github.com/zonewatch-systems/zonewatch/internal/generator"
	"github.com/zonewatch-systems/zonewatch/internal/layout"
	"github.com/zonewatch-systems/zonewatch/internal/models"
	"github.com/zonewatch-systems/zonewatch/internal/pipeline"
)

// ErrNoReport indicates no analysis has run yet in this process.
var ErrNoReport = errors.New("no report available")

// Service wires the generator, the analysis pipeline and the exporter, and
// keeps the most recent report in memory.
type Service struct {
	cfg      *config.Config
	pipe     *pipeline.Pipeline
	gen      *generator.Generator
	exporter *export.Exporter
	logger   *slog.Logger

	mu         sync.RWMutex
	lastReport *models.DailyReport
}

// New creates a service instance.
func New(cfg *config.Config, pipe *pipeline.Pipeline, gen *generator.Generator, exporter *export.Exporter, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		pipe:     pipe,
		gen:      gen,
		exporter: exporter,
		logger:   logger,
	}
}

// GenerateAndAnalyze generates a fresh synthetic dataset, runs the full
// analysis pipeline over it, persists the artifact dumps, and returns the
// report. The report is produced even when augmentation is degraded; only
// export failures surface as errors.
func (s *Service) GenerateAndAnalyze(ctx context.Context) (*models.DailyReport, error) {
	events := s.gen.Dataset(1)
	return s.Analyze(ctx, events)
}

// Analyze runs the pipeline over the given events and persists artifacts.
func (s *Service) Analyze(ctx context.Context, events []models.Event) (*models.DailyReport, error) {
	result := s.pipe.Run(ctx, events)

	if err := s.exporter.WriteEvents(events); err != nil {
		return nil, fmt.Errorf("failed to persist events: %w", err)
	}
	if err := s.exporter.WritePrompts(result.Prompts); err != nil {
		return nil, fmt.Errorf("failed to persist prompts: %w", err)
	}
	if err := s.exporter.WriteReport(result.Report); err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}

	s.mu.Lock()
	s.lastReport = result.Report
	s.mu.Unlock()

	return result.Report, nil
}

// LastReport returns the most recent report of this process.
func (s *Service) LastReport() (*models.DailyReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastReport == nil {
		return nil, ErrNoReport
	}
	return s.lastReport, nil
}

// Layout renders the facility grid.
func (s *Service) Layout() layout.Grid {
	return layout.Build(s.cfg.Facility)
}

// ExportBundle writes the artifact zip to w and returns the attachment name.
func (s *Service) ExportBundle(w io.Writer) (string, error) {
	if err := s.exporter.Bundle(w); err != nil {
		return "", err
	}
	return s.exporter.AttachmentName(time.Now()), nil
}
