package augment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonewatch-systems/zonewatch/internal/models"
)

func TestIncidentPrompt(t *testing.T) {
	analysis := &models.JourneyAnalysis{
		Violations: []models.Violation{
			{Type: models.ViolationUnauthorizedAccess, Zone: "Vault"},
		},
		Issues:    "unauthorized_access",
		RiskScore: 50,
	}
	events := []models.Event{
		{Timestamp: "2025-11-06T09:05:00", EventType: models.EventPersonEntered, Zone: "Vault"},
	}

	prompt := IncidentPrompt("P3", []string{"Server Room"}, analysis, events)

	assert.Contains(t, prompt, "person ID 'P3'")
	assert.Contains(t, prompt, "risk score of 50")
	assert.Contains(t, prompt, "Server Room")
	assert.Contains(t, prompt, "unauthorized_access")
	assert.Contains(t, prompt, PersonPlaceholder)
	assert.Contains(t, prompt, "2025-11-06T09:05:00 | person_entered in Vault")
	assert.NotContains(t, prompt, "Charlie", "display names must never reach the capability")
}

func TestIncidentPrompt_NoAuthorizedZones(t *testing.T) {
	analysis := &models.JourneyAnalysis{Issues: "loitering", RiskScore: 25}
	prompt := IncidentPrompt("P3", nil, analysis, nil)
	assert.Contains(t, prompt, "authorized for the following zones: none")
}

func TestDailyPrompt(t *testing.T) {
	incidents := []models.Incident{
		{
			PersonID: "P1",
			Violations: []models.Violation{
				{Type: models.ViolationLoitering, Zone: "Vault"},
				{Type: models.ViolationAfterHoursAccess, Zone: "Entrance"},
			},
		},
		{
			PersonID: "P3",
			Violations: []models.Violation{
				{Type: models.ViolationUnauthorizedAccess, Zone: "Server Room"},
			},
		},
	}

	prompt, err := DailyPrompt(incidents)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"person_id": "P1"`)
	assert.Contains(t, prompt, `"person_id": "P3"`)
	assert.Contains(t, prompt, `"loitering": "Vault"`)
	assert.Contains(t, prompt, "hot_spot_zones")
	assert.Contains(t, prompt, "actionable_items")
	// No names anywhere in the aggregate request either.
	assert.False(t, strings.Contains(prompt, "person_name"))
}
