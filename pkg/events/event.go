package events

import "time"

const TypeSearchResultSelected = "SEARCH_RESULT_SELECTED"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SEARCH_RESULT_SELECTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
