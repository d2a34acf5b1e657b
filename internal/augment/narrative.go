package augment

import (
	"encoding/json"
	"strings"
)

// RecommendationList accepts either a single string or a list of strings on
// the wire; the capability has been observed returning both shapes.
type RecommendationList []string

func (r *RecommendationList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = RecommendationList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*r = RecommendationList(many)
	return nil
}

// IncidentNarrative is the parsed per-person narrative response. Either
// field may be absent; substitution is skipped for absent fields.
type IncidentNarrative struct {
	Summary        string             `json:"summary"`
	Recommendation RecommendationList `json:"recommendation"`
}

// ParseIncidentNarrative decodes a validated narrative response.
func ParseIncidentNarrative(raw json.RawMessage) (*IncidentNarrative, error) {
	var narrative IncidentNarrative
	if err := json.Unmarshal(raw, &narrative); err != nil {
		return nil, err
	}
	return &narrative, nil
}

// Substitute replaces every occurrence of the anonymization placeholder in
// the summary and in each recommendation element with the display name. The
// operation is pure string replacement: identical inputs always yield
// byte-identical narrative fields.
func (n *IncidentNarrative) Substitute(displayName string) {
	if n.Summary != "" {
		n.Summary = strings.ReplaceAll(n.Summary, PersonPlaceholder, displayName)
	}
	for i, rec := range n.Recommendation {
		n.Recommendation[i] = strings.ReplaceAll(rec, PersonPlaceholder, displayName)
	}
}
