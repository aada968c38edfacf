package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanSettledEventType is the event type identifier.
const LoanSettledEventType = "LoanSettled"

// LoanSettled represents when a patron returns a catalog item and the loan is
// closed. Fine carries the overdue fine applied on settlement (zero when the
// return was within the allotted window).
type LoanSettled struct {
	EventType  EventTypeString
	ItemID     ItemIDInt
	PatronID   PatronIDInt
	Fine       decimal.Decimal
	OccurredAt OccurredAtTS
}

// BuildLoanSettled creates a new LoanSettled event.
func BuildLoanSettled(itemID ItemIDInt, patronID PatronIDInt, fine decimal.Decimal, occurredAt time.Time) LoanSettled {
	event := LoanSettled{
		EventType:  LoanSettledEventType,
		ItemID:     itemID,
		PatronID:   patronID,
		Fine:       fine,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e LoanSettled) IsEventType() string {
	return LoanSettledEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanSettled) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanSettled) IsErrorEvent() bool {
	return false
}
