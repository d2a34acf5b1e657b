// Package pipeline orchestrates the two-stage analysis: the deterministic
// violation detection and risk scoring per person, followed by best-effort
// natural-language augmentation and the daily aggregate pass, with running
// token and cost accounting.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zonewatch-systems/zonewatch/internal/augment"
	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/detect"
	"github.com/zonewatch-systems/zonewatch/internal/logging"
	"github.com/zonewatch-systems/zonewatch/internal/metrics"
	"github.com/zonewatch-systems/zonewatch/internal/models"
)

// Fallback narrative values used when augmentation fails or is disabled.
// These are the exact values surfaced in incidents and reports.
const (
	FallbackSummary      = "AI summary failed."
	FallbackDailySummary = "AI summary generation failed."
	NoIncidentsSummary   = "No incidents to summarize."
)

var (
	// FallbackRecommendation replaces the recommendation list when every
	// augmentation attempt for an incident fails.
	FallbackRecommendation = []string{"Review logs."}

	// FallbackActionableItems replaces the actionable items when the daily
	// aggregate call fails.
	FallbackActionableItems = []string{"Check logs."}
)

// Pipeline runs the full analysis over one day of events.
type Pipeline struct {
	catalog    map[string]config.Rule
	roster     []config.Person
	capability augment.Capability
	policy     augment.RetryPolicy
	model      string
	costIn     float64
	costOut    float64
	workers    int
	logger     *slog.Logger
}

// Result is one pipeline invocation's output: the report plus the exact
// prompts sent upstream, keyed for the export dumps.
type Result struct {
	Report  *models.DailyReport
	Prompts map[string]string
}

// New builds a pipeline from configuration. The capability is injected so
// callers control whether augmentation is live, disabled, or faked.
func New(cfg *config.Config, capability augment.Capability, logger *slog.Logger) *Pipeline {
	workers := cfg.Pipeline.Workers
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		catalog:    cfg.Rules,
		roster:     cfg.Personnel,
		capability: capability,
		policy: augment.RetryPolicy{
			Retries: cfg.Augment.Retries,
			Backoff: cfg.Augment.RetryBackoff,
		},
		model:   cfg.Augment.Model,
		costIn:  cfg.Augment.CostInputPerMillionTok,
		costOut: cfg.Augment.CostOutputPerMillionTok,
		workers: workers,
		logger:  logger,
	}
}

// flaggedPerson is a person whose journey produced violations, pending
// augmentation.
type flaggedPerson struct {
	person    config.Person
	events    []models.Event
	analysis  *models.JourneyAnalysis
	prompt    string
	narrative *augment.IncidentNarrative
}

// Run executes the pipeline over the given events. The report is always
// produced: augmentation failures degrade individual narrative fields, and a
// person with malformed events is skipped without aborting the run.
func (p *Pipeline) Run(ctx context.Context, events []models.Event) *Result {
	start := time.Now()
	metrics.EventsAnalyzedTotal.Add(float64(len(events)))

	pending := p.analyzeAll(events)
	usage := &usageAccumulator{}
	p.augmentAll(ctx, pending, usage)

	prompts := make(map[string]string, len(pending)+1)
	incidents := make([]models.Incident, 0, len(pending))
	for _, f := range pending {
		prompts["incident_prompt_"+f.person.Name] = f.prompt
		incidents = append(incidents, buildIncident(f))
	}
	metrics.IncidentsTotal.Add(float64(len(incidents)))

	summary := p.dailySummary(ctx, incidents, usage, prompts)

	report := &models.DailyReport{
		ID:           uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Analysis:     incidents,
		DailySummary: summary,
		Events:       events,
		UsageStats:   p.usageStats(usage),
	}

	elapsed := time.Since(start)
	metrics.PipelineDuration.Observe(elapsed.Seconds())
	p.logger.Info("pipeline run complete",
		logging.ReportID(report.ID),
		logging.Incidents(len(incidents)),
		logging.Tokens(report.UsageStats.TotalTokens),
		logging.Duration(elapsed.Milliseconds()))

	return &Result{Report: report, Prompts: prompts}
}

// analyzeAll groups events by person in roster order and runs the
// deterministic stage. Persons with no events or no violations drop out;
// persons with malformed events are logged and skipped.
func (p *Pipeline) analyzeAll(events []models.Event) []*flaggedPerson {
	byPerson := make(map[string][]models.Event, len(p.roster))
	for _, person := range p.roster {
		byPerson[person.ID] = nil
	}
	for _, e := range events {
		if _, known := byPerson[e.PersonID]; known {
			byPerson[e.PersonID] = append(byPerson[e.PersonID], e)
		}
	}

	var pending []*flaggedPerson
	for _, person := range p.roster {
		personEvents := byPerson[person.ID]
		if len(personEvents) == 0 {
			continue
		}

		analysis, err := detect.AnalyzeJourney(personEvents, p.catalog)
		if err != nil {
			metrics.PersonsSkippedTotal.Inc()
			p.logger.Error("journey analysis failed",
				logging.PersonID(person.ID), logging.Error(err))
			continue
		}
		if analysis == nil {
			continue
		}

		for _, v := range analysis.Violations {
			metrics.ViolationsTotal.WithLabelValues(string(v.Type)).Inc()
		}
		p.logger.Debug("journey flagged",
			logging.PersonID(person.ID),
			logging.Violations(len(analysis.Violations)),
			logging.RiskScore(analysis.RiskScore))

		pending = append(pending, &flaggedPerson{
			person:   person,
			events:   personEvents,
			analysis: analysis,
			prompt:   augment.IncidentPrompt(person.ID, person.AuthorizedZones, analysis, personEvents),
		})
	}
	return pending
}

// augmentAll requests narratives for all flagged persons on a bounded worker
// pool. Each person's computation is independent; token counters are the
// only shared state and accumulate under the accumulator's mutex. Results
// land on the flaggedPerson entries, so report order stays roster order
// regardless of completion order.
func (p *Pipeline) augmentAll(ctx context.Context, pending []*flaggedPerson, usage *usageAccumulator) {
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for _, f := range pending {
		wg.Add(1)
		sem <- struct{}{}
		go func(f *flaggedPerson) {
			defer wg.Done()
			defer func() { <-sem }()

			raw, u, err := augment.CompleteWithRetry(ctx, p.capability,
				augment.IncidentSystemRole, f.prompt, p.policy, augment.ValidateIncidentResponse)
			if err != nil {
				metrics.AugmentationCallsTotal.WithLabelValues("incident", callStatus(err)).Inc()
				return
			}

			narrative, err := augment.ParseIncidentNarrative(raw)
			if err != nil {
				metrics.AugmentationCallsTotal.WithLabelValues("incident", "failure").Inc()
				p.logger.Warn("narrative parse failed",
					logging.PersonID(f.person.ID), logging.Error(err))
				return
			}

			usage.add(u)
			recordUsageMetrics("incident", u)
			f.narrative = narrative
		}(f)
	}

	wg.Wait()
}

// buildIncident finalizes one incident, applying placeholder substitution on
// success and the fixed fallback narrative otherwise.
func buildIncident(f *flaggedPerson) models.Incident {
	incident := models.Incident{
		PersonID:   f.person.ID,
		PersonName: f.person.Name,
		Violations: f.analysis.Violations,
		Issues:     f.analysis.Issues,
		RiskScore:  f.analysis.RiskScore,
	}

	if f.narrative == nil {
		incident.Summary = FallbackSummary
		incident.Recommendation = append([]string(nil), FallbackRecommendation...)
		return incident
	}

	f.narrative.Substitute(f.person.Name)
	incident.Summary = f.narrative.Summary
	incident.Recommendation = []string(f.narrative.Recommendation)
	return incident
}

// dailySummary runs the aggregate pass. An empty incident list short-circuits
// to the fixed "no incidents" summary without touching the capability.
func (p *Pipeline) dailySummary(ctx context.Context, incidents []models.Incident, usage *usageAccumulator, prompts map[string]string) models.DailySummary {
	if len(incidents) == 0 {
		return models.DailySummary{
			Summary:         rawString(NoIncidentsSummary),
			ActionableItems: []json.RawMessage{},
		}
	}

	prompt, err := augment.DailyPrompt(incidents)
	if err != nil {
		p.logger.Error("daily prompt build failed", logging.Error(err))
		return fallbackDailySummary()
	}
	prompts["daily_summary_prompt"] = prompt

	raw, u, err := augment.CompleteWithRetry(ctx, p.capability,
		augment.DailySystemRole, prompt, p.policy, augment.ValidateDailyResponse)
	if err != nil {
		metrics.AugmentationCallsTotal.WithLabelValues("daily", callStatus(err)).Inc()
		return fallbackDailySummary()
	}

	var summary models.DailySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		metrics.AugmentationCallsTotal.WithLabelValues("daily", "failure").Inc()
		p.logger.Warn("daily summary parse failed", logging.Error(err))
		return fallbackDailySummary()
	}

	usage.add(u)
	recordUsageMetrics("daily", u)
	if summary.ActionableItems == nil {
		summary.ActionableItems = []json.RawMessage{}
	}
	return summary
}

func fallbackDailySummary() models.DailySummary {
	items := make([]json.RawMessage, 0, len(FallbackActionableItems))
	for _, item := range FallbackActionableItems {
		items = append(items, rawString(item))
	}
	return models.DailySummary{
		Summary:         rawString(FallbackDailySummary),
		ActionableItems: items,
	}
}

func (p *Pipeline) usageStats(u *usageAccumulator) models.UsageStats {
	in, out := u.totals()
	inputCost := float64(in) / 1_000_000 * p.costIn
	outputCost := float64(out) / 1_000_000 * p.costOut
	return models.UsageStats{
		Model:        p.model,
		InputTokens:  in,
		OutputTokens: out,
		TotalTokens:  in + out,
		InputCost:    fmt.Sprintf("%.6f", inputCost),
		OutputCost:   fmt.Sprintf("%.6f", outputCost),
		TotalCost:    fmt.Sprintf("%.6f", inputCost+outputCost),
	}
}

// usageAccumulator sums token usage across concurrent augmentation calls.
type usageAccumulator struct {
	mu     sync.Mutex
	input  int64
	output int64
}

func (a *usageAccumulator) add(u augment.Usage) {
	a.mu.Lock()
	a.input += u.InputTokens
	a.output += u.OutputTokens
	a.mu.Unlock()
}

func (a *usageAccumulator) totals() (int64, int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.input, a.output
}

func callStatus(err error) string {
	if errors.Is(err, augment.ErrNotConfigured) {
		return "disabled"
	}
	return "failure"
}

func recordUsageMetrics(kind string, u augment.Usage) {
	metrics.AugmentationCallsTotal.WithLabelValues(kind, "success").Inc()
	metrics.AugmentationTokensTotal.WithLabelValues("input").Add(float64(u.InputTokens))
	metrics.AugmentationTokensTotal.WithLabelValues("output").Add(float64(u.OutputTokens))
}

func rawString(s string) json.RawMessage {
	encoded, _ := json.Marshal(s)
	return encoded
}
