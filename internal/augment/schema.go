package augment

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Response schemas are deliberately lenient: a response missing one of the
// narrative fields is usable (substitution is simply skipped for it), but a
// field of the wrong shape is a validation failure for the retry policy.
const incidentResponseSchema = `{
	"type": "object",
	"properties": {
		"summary": {"type": "string"},
		"recommendation": {
			"anyOf": [
				{"type": "string"},
				{"type": "array", "items": {"type": "string"}}
			]
		}
	}
}`

const dailyResponseSchema = `{
	"type": "object",
	"properties": {
		"summary": {},
		"actionable_items": {"type": "array"}
	}
}`

var (
	incidentSchema = jsonschema.MustCompileString("incident_response.json", incidentResponseSchema)
	dailySchema    = jsonschema.MustCompileString("daily_response.json", dailyResponseSchema)
)

// ValidateIncidentResponse checks a per-person narrative response.
func ValidateIncidentResponse(raw json.RawMessage) error {
	return validate(incidentSchema, raw)
}

// ValidateDailyResponse checks the aggregate daily summary response.
func ValidateDailyResponse(raw json.RawMessage) error {
	return validate(dailySchema, raw)
}

func validate(schema *jsonschema.Schema, raw json.RawMessage) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("response failed schema validation: %w", err)
	}
	return nil
}
