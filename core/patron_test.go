package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openshelf/library-circulation-go/core"
)

func Test_Patron_TierPolicy_Constants(t *testing.T) {
	standard := core.BuildStandardPatron(1, "alice", "secret")
	extended := core.BuildExtendedPatron(2, "bob", "hunter2")

	assert.Equal(t, 5, standard.MaxConcurrentLoans())
	assert.Equal(t, 14, standard.LoanDurationDays())

	assert.Equal(t, 1000, extended.MaxConcurrentLoans())
	assert.Equal(t, 365, extended.LoanDurationDays())
}

func Test_Patron_CanBorrow_BlockedAtTierLoanLimit(t *testing.T) {
	// arrange
	patron := core.BuildStandardPatron(1, "alice", "secret")

	// act - take the full allowance of 5 loans
	for i := 0; i < 5; i++ {
		assert.True(t, patron.CanBorrow(), "loan %d should still be allowed", i+1)
		patron.RecordBorrow()
	}

	// assert
	assert.False(t, patron.CanBorrow())
	assert.Equal(t, 5, patron.ActiveLoans())
}

func Test_Patron_CanBorrow_BlockedAtFineCeiling(t *testing.T) {
	// arrange
	patron := core.BuildStandardPatron(1, "alice", "secret")
	patron.AddFine(decimal.RequireFromString("99.99"))

	// assert - still below the ceiling
	assert.True(t, patron.CanBorrow())

	// act - reach exactly 100.0
	patron.AddFine(decimal.RequireFromString("0.01"))

	// assert
	assert.False(t, patron.CanBorrow())
}

func Test_Patron_RecordReturn_FlooredAtZero(t *testing.T) {
	patron := core.BuildStandardPatron(1, "alice", "secret")

	patron.RecordReturn()

	assert.Equal(t, 0, patron.ActiveLoans())
}

func Test_Patron_PayFine_OverpaymentClampedAtZero(t *testing.T) {
	// arrange
	patron := core.BuildStandardPatron(1, "alice", "secret")
	patron.AddFine(decimal.RequireFromString("12.50"))

	// act - pay more than is owed
	patron.PayFine(decimal.RequireFromString("20"))

	// assert - no credit, no refund
	assert.True(t, patron.FineBalance().IsZero(),
		"expected zero balance, got %s", patron.FineBalance())
}

func Test_Patron_PayFine_PartialPaymentReducesBalance(t *testing.T) {
	patron := core.BuildStandardPatron(1, "alice", "secret")
	patron.AddFine(decimal.RequireFromString("12.50"))

	patron.PayFine(decimal.RequireFromString("2.50"))

	assert.True(t, patron.FineBalance().Equal(decimal.RequireFromString("10")),
		"expected balance 10, got %s", patron.FineBalance())
}

func Test_Patron_Authenticate_PlainCredentialMatch(t *testing.T) {
	patron := core.BuildStandardPatron(1, "alice", "secret")

	assert.True(t, patron.Authenticate("secret"))
	assert.False(t, patron.Authenticate("wrong"))
	assert.False(t, patron.Authenticate(""))
}
