package core

import (
	"github.com/shopspring/decimal"
)

// PatronTier is the privilege class of a patron, fixing the borrow limit and
// the loan duration at construction.
type PatronTier int

const (
	// TierStandard is the default patron tier.
	TierStandard PatronTier = iota
	// TierExtended is the extended-privilege tier (staff/librarians).
	TierExtended
)

// String returns a human-readable name for the patron tier.
func (t PatronTier) String() string {
	if t == TierExtended {
		return "Extended"
	}

	return "Standard"
}

const (
	standardMaxLoans = 5
	standardLoanDays = 14

	// Extended privileges are effectively unbounded.
	extendedMaxLoans = 1000
	extendedLoanDays = 365
)

// FineCeiling is the accumulated-fine balance at which borrowing is blocked.
var FineCeiling = decimal.NewFromInt(100)

// Patron is a registered library user. Identity, credential and tier are
// immutable after construction; the active-loan counter and fine balance are
// mutated only through the methods below.
type Patron struct {
	id          PatronIDInt
	username    string
	credential  string
	tier        PatronTier
	activeLoans int
	fineBalance decimal.Decimal
}

// BuildStandardPatron creates a patron with standard privileges (5 concurrent loans, 14 loan days).
func BuildStandardPatron(id PatronIDInt, username, credential string) *Patron {
	return &Patron{
		id:          id,
		username:    username,
		credential:  credential,
		tier:        TierStandard,
		fineBalance: decimal.Zero,
	}
}

// BuildExtendedPatron creates a patron with extended privileges (effectively unbounded loans, 365 loan days).
func BuildExtendedPatron(id PatronIDInt, username, credential string) *Patron {
	patron := BuildStandardPatron(id, username, credential)
	patron.tier = TierExtended

	return patron
}

// ID returns the unique patron identifier.
func (p *Patron) ID() PatronIDInt { return p.id }

// Username returns the patron's username.
func (p *Patron) Username() string { return p.username }

// Tier returns the patron's privilege tier.
func (p *Patron) Tier() PatronTier { return p.tier }

// ActiveLoans returns the number of currently outstanding loans.
func (p *Patron) ActiveLoans() int { return p.activeLoans }

// FineBalance returns the accumulated fine balance.
func (p *Patron) FineBalance() decimal.Decimal { return p.fineBalance }

// MaxConcurrentLoans returns the tier's maximum number of simultaneous loans.
func (p *Patron) MaxConcurrentLoans() int {
	if p.tier == TierExtended {
		return extendedMaxLoans
	}

	return standardMaxLoans
}

// LoanDurationDays returns the tier's allotted loan duration in days.
// Fine computation subtracts this PATRON-specific allotment, so the same item
// carries a different implicit grace period depending on who borrowed it.
func (p *Patron) LoanDurationDays() int {
	if p.tier == TierExtended {
		return extendedLoanDays
	}

	return standardLoanDays
}

// Authenticate compares the given credential against the stored one.
// Plain comparison - there is deliberately no hashing in this system.
func (p *Patron) Authenticate(credential string) bool {
	return credential == p.credential
}

// CanBorrow reports whether the patron may take another loan:
// below the tier's loan limit AND below the fine ceiling.
func (p *Patron) CanBorrow() bool {
	return p.activeLoans < p.MaxConcurrentLoans() && p.fineBalance.LessThan(FineCeiling)
}

// RecordBorrow increments the active-loan counter. The caller must have
// checked CanBorrow first; this call never itself rejects.
func (p *Patron) RecordBorrow() {
	p.activeLoans++
}

// RecordReturn decrements the active-loan counter, floored at zero.
func (p *Patron) RecordReturn() {
	if p.activeLoans > 0 {
		p.activeLoans--
	}
}

// AddFine adds amount to the fine balance. The caller guarantees a
// non-negative amount; there is no rejection here.
func (p *Patron) AddFine(amount decimal.Decimal) {
	p.fineBalance = p.fineBalance.Add(amount)
}

// PayFine subtracts amount from the fine balance, clamped at zero.
// Overpayment is silently discarded - there is no credit or refund concept.
func (p *Patron) PayFine(amount decimal.Decimal) {
	p.fineBalance = p.fineBalance.Sub(amount)
	if p.fineBalance.IsNegative() {
		p.fineBalance = decimal.Zero
	}
}
