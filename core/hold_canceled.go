package core

import (
	"time"
)

// HoldCanceledEventType is the event type identifier.
const HoldCanceledEventType = "HoldCanceled"

// HoldCanceled represents when a patron's reservation for an item is canceled.
type HoldCanceled struct {
	EventType  EventTypeString
	ItemID     ItemIDInt
	PatronID   PatronIDInt
	OccurredAt OccurredAtTS
}

// BuildHoldCanceled creates a new HoldCanceled event.
func BuildHoldCanceled(itemID ItemIDInt, patronID PatronIDInt, occurredAt time.Time) HoldCanceled {
	event := HoldCanceled{
		EventType:  HoldCanceledEventType,
		ItemID:     itemID,
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e HoldCanceled) IsEventType() string {
	return HoldCanceledEventType
}

// HasOccurredAt returns when this event occurred.
func (e HoldCanceled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e HoldCanceled) IsErrorEvent() bool {
	return false
}
