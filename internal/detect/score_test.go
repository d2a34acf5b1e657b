package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/models"
)

func violations(types ...models.ViolationType) []models.Violation {
	out := make([]models.Violation, len(types))
	for i, t := range types {
		out[i] = models.Violation{Type: t, Zone: "Vault"}
	}
	return out
}

func TestScore_RepeatEscalationIsLinear(t *testing.T) {
	catalog := config.DefaultRules()

	// Two unauthorized entries: 50 * (1 + 0.5) = 75, not 100.
	issues, score := Score(violations(
		models.ViolationUnauthorizedAccess,
		models.ViolationUnauthorizedAccess,
	), catalog)
	assert.Equal(t, "unauthorized_access", issues)
	assert.Equal(t, 75, score)

	// Three: 50 * (1 + 2*0.5) = 100.
	_, score = Score(violations(
		models.ViolationUnauthorizedAccess,
		models.ViolationUnauthorizedAccess,
		models.ViolationUnauthorizedAccess,
	), catalog)
	assert.Equal(t, 100, score)
}

func TestScore_SingleTypeNoMultiplier(t *testing.T) {
	_, score := Score(violations(models.ViolationLoitering), config.DefaultRules())
	assert.Equal(t, 25, score)
}

func TestScore_CrossCategoryMultiplierTruncates(t *testing.T) {
	catalog := config.DefaultRules()

	// 50 + 25 = 75 -> 75 * 1.2 = 90.
	_, score := Score(violations(
		models.ViolationUnauthorizedAccess,
		models.ViolationLoitering,
	), catalog)
	assert.Equal(t, 90, score)

	// 25 + 15 = 40 -> 40 * 1.2 = 48.
	_, score = Score(violations(
		models.ViolationLoitering,
		models.ViolationAfterHoursAccess,
	), catalog)
	assert.Equal(t, 48, score)
}

func TestScore_Truncation(t *testing.T) {
	catalog := map[string]config.Rule{
		"loitering":           {Penalty: 7},
		"unauthorized_access": {Penalty: 7},
	}
	// 14 * 1.2 = 16.8 -> 16, never rounded up.
	_, score := Score(violations(
		models.ViolationLoitering,
		models.ViolationUnauthorizedAccess,
	), catalog)
	assert.Equal(t, 16, score)
}

func TestScore_OrderIndependent(t *testing.T) {
	catalog := config.DefaultRules()
	a := violations(
		models.ViolationUnauthorizedAccess,
		models.ViolationLoitering,
		models.ViolationUnauthorizedAccess,
	)
	b := violations(
		models.ViolationLoitering,
		models.ViolationUnauthorizedAccess,
		models.ViolationUnauthorizedAccess,
	)

	issuesA, scoreA := Score(a, catalog)
	issuesB, scoreB := Score(b, catalog)
	assert.Equal(t, issuesA, issuesB)
	assert.Equal(t, scoreA, scoreB)
}

func TestScore_UnknownTypeCountsForMultiplierOnly(t *testing.T) {
	catalog := config.DefaultRules()
	vs := append(violations(models.ViolationLoitering), models.Violation{Type: "tailgating", Zone: "Vault"})

	issues, score := Score(vs, catalog)
	// Unknown type appears in the label...
	assert.Equal(t, "loitering, tailgating", issues)
	// ...adds no penalty, but still triggers the multiplier: 25 * 1.2 = 30.
	assert.Equal(t, 30, score)
}

func TestScore_Empty(t *testing.T) {
	issues, score := Score(nil, config.DefaultRules())
	assert.Equal(t, "", issues)
	assert.Equal(t, 0, score)
	assert.GreaterOrEqual(t, score, 0)
}
