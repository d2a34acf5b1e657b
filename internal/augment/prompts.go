package augment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zonewatch-systems/zonewatch/internal/models"
)

// PersonPlaceholder is the anonymization token the capability is instructed
// to use in place of the subject's real identity. Substitution back to the
// display name happens only after a successful response.
const PersonPlaceholder = "[PERSON_NAME]"

// System role strings for the two request kinds.
const (
	IncidentSystemRole = "You are a security AI writing an incident summary in JSON."
	DailySystemRole    = "You are a security manager creating a daily report in JSON."
)

// IncidentPrompt builds the per-person narrative request. The subject is
// referred to only by ID and placeholder; the display name never leaves the
// process.
func IncidentPrompt(personID string, authorizedZones []string, analysis *models.JourneyAnalysis, events []models.Event) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("%s | %s in %s", e.Timestamp, e.EventType, e.Zone))
	}

	return fmt.Sprintf(`A security analysis for person ID '%s' has flagged violations with a risk score of %d.
This person is authorized for the following zones: %s.
The detected violations are:
- %s

Based on the full event log below, write a human-readable narrative summary and provide actionable recommendations.
IMPORTANT: In your response, use the placeholder '%s' instead of the person's actual ID.

Event Log:
%s

Respond with a single JSON object with two keys:
1. "summary": A narrative of the person's journey (e.g., "%s entered the warehouse at...").
2. "recommendation": A list of brief, actionable steps (e.g., "Issue a formal warning to %s").`,
		personID,
		analysis.RiskScore,
		formatZones(authorizedZones),
		analysis.Issues,
		PersonPlaceholder,
		strings.Join(lines, "\n"),
		PersonPlaceholder,
		PersonPlaceholder,
	)
}

// DailyPrompt builds the aggregate analytical request over the day's
// incidents: per incident, the person identifier and a violation-type to
// zone mapping.
func DailyPrompt(incidents []models.Incident) (string, error) {
	type promptIncident struct {
		PersonID string            `json:"person_id"`
		Issues   map[string]string `json:"issues"`
	}

	compact := make([]promptIncident, 0, len(incidents))
	for _, inc := range incidents {
		issues := make(map[string]string, len(inc.Violations))
		for _, v := range inc.Violations {
			issues[string(v.Type)] = v.Zone
		}
		compact = append(compact, promptIncident{PersonID: inc.PersonID, Issues: issues})
	}

	encoded, err := json.MarshalIndent(compact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode incidents: %w", err)
	}

	return fmt.Sprintf(`You are a security shift supervisor analyzing all incidents from the day. Your task is to identify patterns and provide a high-level analytical summary.

Today's Incidents:
%s

Based on the data, respond with a single JSON object with two keys:
1. "summary": An analytical overview object with keys "offenders" (a list of objects with "person_id" and "violations"), "hot_spot_zones", and "common_violations".
2. "actionable_items": A list of objects with well argumented actionable recomendations, where each object has an "action" and other relevant details.`, encoded), nil
}

func formatZones(zones []string) string {
	if len(zones) == 0 {
		return "none"
	}
	return strings.Join(zones, ", ")
}
