package detect

import (
	"sort"
	"strings"

	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/models"
)

// crossCategoryMultiplier aggravates journeys spanning more than one
// distinct violation type.
const crossCategoryMultiplier = 1.2

// repeatEscalation is the fraction of the base penalty each repeat
// occurrence of the same type adds (linear, not compounding).
const repeatEscalation = 0.5

// Score aggregates a violation list into its issues label and risk score.
// The label is the sorted, comma-joined set of distinct type names; the
// score is deterministic in the multiset of types, independent of order.
// Types absent from the catalog contribute zero penalty but still count as a
// distinct category for the multiplier and appear in the label.
func Score(violations []models.Violation, catalog map[string]config.Rule) (string, int) {
	counts := make(map[models.ViolationType]int)
	for _, v := range violations {
		counts[v.Type]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	var subtotal float64
	for t, count := range counts {
		rule, ok := catalog[string(t)]
		if !ok {
			continue
		}
		subtotal += rule.Penalty * (1 + float64(count-1)*repeatEscalation)
	}

	if len(counts) > 1 {
		subtotal *= crossCategoryMultiplier
	}

	// Truncation, not rounding.
	return strings.Join(types, ", "), int(subtotal)
}
