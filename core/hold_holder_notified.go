package core

import (
	"time"
)

// HoldHolderNotifiedEventType is the event type identifier.
const HoldHolderNotifiedEventType = "HoldHolderNotified"

// HoldHolderNotified represents when the patron at the head of an item's
// reservation queue is told the item became available. Purely advisory -
// it grants no loan by itself.
type HoldHolderNotified struct {
	EventType  EventTypeString
	ItemID     ItemIDInt
	PatronID   PatronIDInt
	OccurredAt OccurredAtTS
}

// BuildHoldHolderNotified creates a new HoldHolderNotified event.
func BuildHoldHolderNotified(itemID ItemIDInt, patronID PatronIDInt, occurredAt time.Time) HoldHolderNotified {
	event := HoldHolderNotified{
		EventType:  HoldHolderNotifiedEventType,
		ItemID:     itemID,
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e HoldHolderNotified) IsEventType() string {
	return HoldHolderNotifiedEventType
}

// HasOccurredAt returns when this event occurred.
func (e HoldHolderNotified) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e HoldHolderNotified) IsErrorEvent() bool {
	return false
}
