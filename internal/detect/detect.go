// Package detect implements the deterministic violation detection and risk
// scoring engine. Everything here is a pure function of the event sequence
// and the rule catalog; no I/O, no external calls.
package detect

import (
	"fmt"
	"sort"

	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/models"
)

// Operating hours: access before afterHoursStart or at/after afterHoursEnd
// counts as after-hours.
const (
	afterHoursStart = 8
	afterHoursEnd   = 18
)

// AnalyzeJourney scans one person's event journey and produces its local
// analysis. Returns (nil, nil) when the journey yields no violations; that
// person contributes no incident, which is distinct from an incident with a
// zero score. A malformed event fails the whole journey.
func AnalyzeJourney(events []models.Event, catalog map[string]config.Rule) (*models.JourneyAnalysis, error) {
	violations, err := DetectViolations(events, catalog)
	if err != nil {
		return nil, err
	}
	if len(violations) == 0 {
		return nil, nil
	}

	issues, score := Score(violations, catalog)
	return &models.JourneyAnalysis{
		Violations: violations,
		Issues:     issues,
		RiskScore:  score,
	}, nil
}

// DetectViolations applies the detection rules to a single person's events,
// sorted by timestamp. Source order is preserved in the result; duplicates
// are allowed except for after_hours_access, which is emitted at most once
// per journey.
func DetectViolations(events []models.Event, catalog map[string]config.Rule) ([]models.Violation, error) {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	for i := range sorted {
		if err := sorted[i].Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	// Callers do not guarantee pre-sorted journeys. Timestamps validated
	// above, so string order equals chronological order for this layout.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	defaultAllowed := 5
	if rule, ok := catalog[string(models.ViolationLoitering)]; ok && rule.ThresholdMinutes > 0 {
		defaultAllowed = rule.ThresholdMinutes
	}

	var violations []models.Violation
	afterHoursSeen := false
	for _, event := range sorted {
		if event.EventType == models.EventPersonEntered && !event.Authorized {
			violations = append(violations, models.Violation{
				Type: models.ViolationUnauthorizedAccess,
				Zone: event.Zone,
			})
		}

		if event.EventType == models.EventPersonExited {
			duration := 0
			if event.DurationMinutes != nil {
				duration = *event.DurationMinutes
			}
			// Threshold observed at event time wins; the catalog only
			// supplies the default when the event carries none.
			allowed := defaultAllowed
			if event.AllowedMinutes != nil {
				allowed = *event.AllowedMinutes
			}
			if duration > allowed {
				violations = append(violations, models.Violation{
					Type: models.ViolationLoitering,
					Zone: event.Zone,
				})
			}
		}

		if !afterHoursSeen {
			ts, err := event.Time()
			if err != nil {
				return nil, err
			}
			if hour := ts.Hour(); hour < afterHoursStart || hour >= afterHoursEnd {
				violations = append(violations, models.Violation{
					Type: models.ViolationAfterHoursAccess,
					Zone: event.Zone,
				})
				afterHoursSeen = true
			}
		}
	}

	return violations, nil
}
