package models

import (
	"encoding/json"
	"time"
)

// ViolationType identifies a rule breach detected in a journey.
type ViolationType string

const (
	ViolationUnauthorizedAccess ViolationType = "unauthorized_access"
	ViolationLoitering          ViolationType = "loitering"
	ViolationAfterHoursAccess   ViolationType = "after_hours_access"
)

// Violation is one detected rule breach, owned by exactly one journey
// analysis.
type Violation struct {
	Type ViolationType `json:"type"`
	Zone string        `json:"zone"`
}

// JourneyAnalysis is the deterministic local analysis of one person's event
// journey. It is nil-valued (absent) for a person with zero violations; such
// a person contributes no incident at all.
type JourneyAnalysis struct {
	Violations []Violation `json:"violations"`
	Issues     string      `json:"issues"`
	RiskScore  int         `json:"risk_score"`
}

// Incident merges a journey analysis with identity and the best-effort
// narrative fields. On augmentation failure the narrative fields carry fixed
// fallback text; the incident itself is never dropped.
type Incident struct {
	PersonID       string      `json:"person_id"`
	PersonName     string      `json:"person_name"`
	Violations     []Violation `json:"violations"`
	Issues         string      `json:"issues"`
	RiskScore      int         `json:"risk_score"`
	Summary        string      `json:"summary,omitempty"`
	Recommendation []string    `json:"recommendation,omitempty"`
}

// DailySummary is the aggregate analytical pass over the day's incidents.
// Summary is LLM-shaped and intentionally loose: an analytical object on
// success, a plain string on the fallback paths.
type DailySummary struct {
	Summary         json.RawMessage   `json:"summary"`
	ActionableItems []json.RawMessage `json:"actionable_items"`
}

// UsageStats accounts tokens and monetary cost across every successful
// external call in one pipeline run. Cost fields are six-decimal strings.
type UsageStats struct {
	Model        string `json:"model"`
	InputTokens  int64  `json:"input_tokens"`
	OutputTokens int64  `json:"output_tokens"`
	TotalTokens  int64  `json:"total_tokens"`
	InputCost    string `json:"input_cost"`
	OutputCost   string `json:"output_cost"`
	TotalCost    string `json:"total_cost"`
}

// DailyReport is the final product of one pipeline invocation.
type DailyReport struct {
	ID           string       `json:"id"`
	GeneratedAt  time.Time    `json:"generated_at"`
	Analysis     []Incident   `json:"analysis"`
	DailySummary DailySummary `json:"daily_summary"`
	Events       []Event      `json:"events"`
	UsageStats   UsageStats   `json:"usage_stats"`
}
