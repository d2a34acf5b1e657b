package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the wire format for event timestamps: local facility
// time, no timezone designator.
const TimestampLayout = "2006-01-02T15:04:05"

// EventType tags the variant of a movement event.
type EventType string

const (
	EventEnterWarehouse EventType = "enter_warehouse"
	EventExitWarehouse  EventType = "exit_warehouse"
	EventPersonEntered  EventType = "person_entered"
	EventPersonExited   EventType = "person_exited"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventEnterWarehouse, EventExitWarehouse, EventPersonEntered, EventPersonExited:
		return true
	}
	return false
}

// Coords is a (row, col) grid position within the facility.
type Coords struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Event is a single person-movement observation. It is a tagged variant
// keyed by EventType: DurationMinutes and AllowedMinutes are carried only by
// person_exited events. Events are immutable once generated.
type Event struct {
	Timestamp       string    `json:"timestamp"`
	PersonID        string    `json:"person_id"`
	PersonName      string    `json:"person_name,omitempty"`
	Zone            string    `json:"zone"`
	EventType       EventType `json:"event_type"`
	Authorized      bool      `json:"authorized"`
	CameraID        string    `json:"camera_id,omitempty"`
	Coords          *Coords   `json:"coords,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	AllowedMinutes  *int      `json:"allowed_minutes,omitempty"`
}

// Time parses the event timestamp.
func (e *Event) Time() (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, e.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", e.Timestamp, err)
	}
	return ts, nil
}

// Validate checks required fields plus the variant-specific constraints of
// the event's type.
func (e *Event) Validate() error {
	if e.PersonID == "" {
		return fmt.Errorf("event missing person_id")
	}
	if e.Zone == "" {
		return fmt.Errorf("event missing zone")
	}
	if !e.EventType.Valid() {
		return fmt.Errorf("unknown event_type %q", e.EventType)
	}
	if _, err := e.Time(); err != nil {
		return err
	}
	if e.EventType != EventPersonExited {
		if e.DurationMinutes != nil || e.AllowedMinutes != nil {
			return fmt.Errorf("duration fields are only valid on %s events", EventPersonExited)
		}
	}
	if e.DurationMinutes != nil && *e.DurationMinutes < 0 {
		return fmt.Errorf("negative duration_minutes %d", *e.DurationMinutes)
	}
	return nil
}
