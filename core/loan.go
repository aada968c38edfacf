package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRecord is the record of a single outstanding loan. It exists in the
// Ledger, keyed by item ID, only while the loan is open; it is deleted the
// instant the return is settled, never archived.
type LoanRecord struct {
	ItemID     ItemIDInt
	PatronID   PatronIDInt
	BorrowedAt time.Time
}

const hoursPerDay = 24

// OverdueFine computes the fine owed when a loan opened at borrowedAt is
// settled at returnedAt. This is a pure function with no side effects.
//
// Business Rule:
//
//	fine = max(0, wholeDays(borrowedAt, returnedAt) - allottedDays) * ratePerDay
//
// Elapsed time is truncated to whole days of wall-clock time. allottedDays is
// the borrowing PATRON's tier allotment, not a property of the item, so the
// grace period differs per borrower for the same item.
func OverdueFine(borrowedAt, returnedAt time.Time, allottedDays int, ratePerDay decimal.Decimal) decimal.Decimal {
	daysOut := int(returnedAt.Sub(borrowedAt).Hours() / hoursPerDay)

	lateDays := daysOut - allottedDays
	if lateDays <= 0 {
		return decimal.Zero
	}

	return ratePerDay.Mul(decimal.NewFromInt(int64(lateDays)))
}
