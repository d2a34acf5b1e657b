package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() Event {
	return Event{
		Timestamp:  "2025-11-06T09:15:00",
		PersonID:   "P1",
		Zone:       "Vault",
		EventType:  EventPersonEntered,
		Authorized: false,
	}
}

func TestEventValidate(t *testing.T) {
	duration := 7

	tests := []struct {
		name    string
		mutate  func(*Event)
		wantErr string
	}{
		{"valid", func(e *Event) {}, ""},
		{"missing person", func(e *Event) { e.PersonID = "" }, "missing person_id"},
		{"missing zone", func(e *Event) { e.Zone = "" }, "missing zone"},
		{"unknown type", func(e *Event) { e.EventType = "teleported" }, "unknown event_type"},
		{"bad timestamp", func(e *Event) { e.Timestamp = "2025-11-06 09:15:00" }, "unparseable timestamp"},
		{"timezone suffix rejected", func(e *Event) { e.Timestamp = "2025-11-06T09:15:00Z" }, "unparseable timestamp"},
		{"duration on wrong variant", func(e *Event) { e.DurationMinutes = &duration }, "only valid on person_exited"},
		{"negative duration", func(e *Event) {
			e.EventType = EventPersonExited
			d := -1
			e.DurationMinutes = &d
		}, "negative duration_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEventValidate_ExitVariantCarriesDurations(t *testing.T) {
	duration, allowed := 7, 5
	e := validEvent()
	e.EventType = EventPersonExited
	e.DurationMinutes = &duration
	e.AllowedMinutes = &allowed

	assert.NoError(t, e.Validate())
}

func TestEventTime(t *testing.T) {
	e := validEvent()
	ts, err := e.Time()
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 15, ts.Minute())
}

func TestEventJSON_OptionalFieldsOmitted(t *testing.T) {
	e := validEvent()
	data, err := json.Marshal(e)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "duration_minutes")
	assert.NotContains(t, string(data), "camera_id")
	assert.NotContains(t, string(data), "coords")
	assert.Contains(t, string(data), `"authorized":false`)
}
