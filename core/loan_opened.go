package core

import (
	"time"
)

// LoanOpenedEventType is the event type identifier.
const LoanOpenedEventType = "LoanOpened"

// LoanOpened represents when a catalog item is lent to a patron.
type LoanOpened struct {
	EventType  EventTypeString
	ItemID     ItemIDInt
	PatronID   PatronIDInt
	OccurredAt OccurredAtTS
}

// BuildLoanOpened creates a new LoanOpened event.
func BuildLoanOpened(itemID ItemIDInt, patronID PatronIDInt, occurredAt time.Time) LoanOpened {
	event := LoanOpened{
		EventType:  LoanOpenedEventType,
		ItemID:     itemID,
		PatronID:   patronID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e LoanOpened) IsEventType() string {
	return LoanOpenedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanOpened) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanOpened) IsErrorEvent() bool {
	return false
}
