package logging

import "log/slog"

// Common field names for consistent logging across the service.
const (
	FieldService    = "service"
	FieldPersonID   = "person_id"
	FieldZone       = "zone"
	FieldRiskScore  = "risk_score"
	FieldViolations = "violations"
	FieldIncidents  = "incidents"
	FieldReportID   = "report_id"
	FieldTokens     = "tokens"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// PersonID returns a slog attribute for a person identifier.
func PersonID(id string) slog.Attr {
	return slog.String(FieldPersonID, id)
}

// Zone returns a slog attribute for a facility zone name.
func Zone(name string) slog.Attr {
	return slog.String(FieldZone, name)
}

// RiskScore returns a slog attribute for a computed risk score.
func RiskScore(score int) slog.Attr {
	return slog.Int(FieldRiskScore, score)
}

// Violations returns a slog attribute for a violation count.
func Violations(count int) slog.Attr {
	return slog.Int(FieldViolations, count)
}

// Incidents returns a slog attribute for an incident count.
func Incidents(count int) slog.Attr {
	return slog.Int(FieldIncidents, count)
}

// ReportID returns a slog attribute for a daily report ID.
func ReportID(id string) slog.Attr {
	return slog.String(FieldReportID, id)
}

// Tokens returns a slog attribute for a token count.
func Tokens(count int64) slog.Attr {
	return slog.Int64(FieldTokens, count)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
