package core

import (
	"time"
)

// HoldPlacedEventType is the event type identifier.
const HoldPlacedEventType = "HoldPlaced"

// HoldPlaced represents when a patron joins the reservation queue of an item.
type HoldPlaced struct {
	EventType  EventTypeString
	ItemID     ItemIDInt
	PatronID   PatronIDInt
	OccurredAt OccurredAtTS
}

// BuildHoldPlaced creates a new HoldPlaced event.
func BuildHoldPlaced(itemID ItemIDInt, patronID PatronIDInt, occurredAt time.Time) HoldPlaced {
	event := HoldPlaced{
		EventType:  HoldPlacedEventType,
		ItemID:     itemID,
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e HoldPlaced) IsEventType() string {
	return HoldPlacedEventType
}

// HasOccurredAt returns when this event occurred.
func (e HoldPlaced) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e HoldPlaced) IsErrorEvent() bool {
	return false
}
