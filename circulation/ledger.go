package circulation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openshelf/library-circulation-go/core"
)

// Ledger is the authoritative record of currently outstanding loans, keyed by
// item ID. Keying on the item enforces the "at most one active loan per item"
// invariant structurally: Issue rejects when a record already exists for the
// key, and Settle deletes the record the instant the return is processed.
type Ledger struct {
	active map[core.ItemIDInt]core.LoanRecord
}

// NewLedger creates an empty loan ledger.
func NewLedger() *Ledger {
	return &Ledger{
		active: make(map[core.ItemIDInt]core.LoanRecord),
	}
}

// Issue opens a loan for the given item and patron at the given time.
//
// Business Rules:
//
//	GIVEN: A catalog item and a patron, both resolved by the caller
//	WHEN: A borrow request is received
//	THEN: A loan record keyed by the item ID is created with borrowed-at = now,
//	      the item is marked unavailable, and the patron's loan count is incremented
//	ERROR: ErrNotBorrowable if the item is a reference-only variant
//	ERROR: ErrItemUnavailable if the item is currently on loan
//	ERROR: ErrBorrowLimitExceeded if the patron is at the tier limit or the fine ceiling
//
// Rejections leave the item, the patron, and the ledger untouched.
func (l *Ledger) Issue(item *core.CatalogItem, patron *core.Patron, now time.Time) error {
	if !item.IsBorrowable() {
		return fmt.Errorf("%w: item %d", core.ErrNotBorrowable, item.ID())
	}

	if _, onLoan := l.active[item.ID()]; onLoan || !item.IsAvailable() {
		return fmt.Errorf("%w: item %d", core.ErrItemUnavailable, item.ID())
	}

	if !patron.CanBorrow() {
		return fmt.Errorf("%w: patron %d", core.ErrBorrowLimitExceeded, patron.ID())
	}

	l.active[item.ID()] = core.LoanRecord{
		ItemID:     item.ID(),
		PatronID:   patron.ID(),
		BorrowedAt: now,
	}
	item.SetAvailability(false)
	patron.RecordBorrow()

	return nil
}

// Settle closes the loan for the given item at the given time and returns the
// fine applied (zero for a timely return).
//
// Business Rules:
//
//	GIVEN: A catalog item and a patron, both resolved by the caller
//	WHEN: A return request is received
//	THEN: fine = max(0, wholeDays(borrowed-at, now) - patron's allotted days) * item fine rate,
//	      applied to the patron's balance when positive; the item is marked
//	      available, the patron's loan count is decremented, and the loan
//	      record is deleted from the ledger
//	ERROR: ErrNoActiveLoan if no loan record exists for the item
//	ERROR: ErrOwnershipMismatch if the record's patron is not the requesting patron
//
// The allotted days come from the patron's tier, not from the item - see
// core.OverdueFine. Rejections leave all state untouched.
func (l *Ledger) Settle(item *core.CatalogItem, patron *core.Patron, now time.Time) (decimal.Decimal, error) {
	record, ok := l.active[item.ID()]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: item %d", core.ErrNoActiveLoan, item.ID())
	}

	if record.PatronID != patron.ID() {
		return decimal.Zero, fmt.Errorf("%w: item %d, patron %d", core.ErrOwnershipMismatch, item.ID(), patron.ID())
	}

	fine := core.OverdueFine(record.BorrowedAt, now, patron.LoanDurationDays(), item.FineRatePerDay())
	if fine.IsPositive() {
		patron.AddFine(fine)
	}

	item.SetAvailability(true)
	patron.RecordReturn()
	delete(l.active, item.ID())

	return fine, nil
}

// ActiveLoan returns the outstanding loan record for the item, if any.
func (l *Ledger) ActiveLoan(itemID core.ItemIDInt) (core.LoanRecord, bool) {
	record, ok := l.active[itemID]

	return record, ok
}

// OutstandingByPatron returns the number of ledger records held by the patron.
func (l *Ledger) OutstandingByPatron(patronID core.PatronIDInt) int {
	count := 0
	for _, record := range l.active {
		if record.PatronID == patronID {
			count++
		}
	}

	return count
}

// OutstandingCount returns the total number of open loans.
func (l *Ledger) OutstandingCount() int {
	return len(l.active)
}
