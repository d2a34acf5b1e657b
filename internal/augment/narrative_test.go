package augment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncidentNarrative_RecommendationShapes(t *testing.T) {
	narrative, err := ParseIncidentNarrative(json.RawMessage(`{"summary": "s", "recommendation": ["a", "b"]}`))
	require.NoError(t, err)
	assert.Equal(t, RecommendationList{"a", "b"}, narrative.Recommendation)

	narrative, err = ParseIncidentNarrative(json.RawMessage(`{"recommendation": "just one"}`))
	require.NoError(t, err)
	assert.Equal(t, RecommendationList{"just one"}, narrative.Recommendation)

	narrative, err = ParseIncidentNarrative(json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Empty(t, narrative.Summary)
	assert.Empty(t, narrative.Recommendation)
}

func TestSubstitute(t *testing.T) {
	narrative := &IncidentNarrative{
		Summary: "[PERSON_NAME] entered the Vault",
		Recommendation: RecommendationList{
			"Issue a formal warning to [PERSON_NAME]",
			"Escort [PERSON_NAME] out; notify [PERSON_NAME]'s supervisor",
		},
	}

	narrative.Substitute("Alice")

	assert.Equal(t, "Alice entered the Vault", narrative.Summary)
	assert.Equal(t, RecommendationList{
		"Issue a formal warning to Alice",
		"Escort Alice out; notify Alice's supervisor",
	}, narrative.Recommendation)
}

func TestSubstitute_Idempotent(t *testing.T) {
	narrative := &IncidentNarrative{Summary: "[PERSON_NAME] left"}
	narrative.Substitute("Bob")
	first := narrative.Summary
	narrative.Substitute("Bob")
	assert.Equal(t, first, narrative.Summary)
}

func TestSubstitute_AbsentFieldsSkipped(t *testing.T) {
	narrative := &IncidentNarrative{Recommendation: RecommendationList{"Warn [PERSON_NAME]"}}
	narrative.Substitute("Alice")
	assert.Empty(t, narrative.Summary)
	assert.Equal(t, RecommendationList{"Warn Alice"}, narrative.Recommendation)
}
