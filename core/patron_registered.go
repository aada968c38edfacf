package core

import (
	"time"
)

// PatronRegisteredEventType is the event type identifier.
const PatronRegisteredEventType = "PatronRegistered"

// PatronRegistered represents when a new patron is registered at the desk.
type PatronRegistered struct {
	EventType  EventTypeString
	PatronID   PatronIDInt
	Username   string
	Tier       string
	OccurredAt OccurredAtTS
}

// BuildPatronRegistered creates a new PatronRegistered event.
func BuildPatronRegistered(patronID PatronIDInt, username string, tier PatronTier, occurredAt time.Time) PatronRegistered {
	event := PatronRegistered{
		EventType:  PatronRegisteredEventType,
		PatronID:   patronID,
		Username:   username,
		Tier:       tier.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e PatronRegistered) IsEventType() string {
	return PatronRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PatronRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PatronRegistered) IsErrorEvent() bool {
	return false
}
