package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openshelf/library-circulation-go/core"
)

func Test_OverdueFine(t *testing.T) {
	t0 := time.Unix(0, 0).UTC()

	testCases := []struct {
		name         string
		daysOut      int
		allottedDays int
		ratePerDay   string
		expectedFine string
	}{
		{
			name:         "returned within the window",
			daysOut:      10,
			allottedDays: 14,
			ratePerDay:   "1",
			expectedFine: "0",
		},
		{
			name:         "returned exactly at the allotment",
			daysOut:      14,
			allottedDays: 14,
			ratePerDay:   "1",
			expectedFine: "0",
		},
		{
			name:         "six days late at standard rate",
			daysOut:      20,
			allottedDays: 14,
			ratePerDay:   "1",
			expectedFine: "6",
		},
		{
			name:         "six days late at reduced rate",
			daysOut:      20,
			allottedDays: 14,
			ratePerDay:   "0.5",
			expectedFine: "3",
		},
		{
			name:         "six days late at periodical rate",
			daysOut:      20,
			allottedDays: 14,
			ratePerDay:   "0.7",
			expectedFine: "4.2",
		},
		{
			name:         "extended allotment absorbs what would fine a standard patron",
			daysOut:      20,
			allottedDays: 365,
			ratePerDay:   "1",
			expectedFine: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			returnedAt := t0.Add(time.Duration(tc.daysOut) * 24 * time.Hour)
			rate := decimal.RequireFromString(tc.ratePerDay)

			fine := core.OverdueFine(t0, returnedAt, tc.allottedDays, rate)

			expected := decimal.RequireFromString(tc.expectedFine)
			assert.True(t, fine.Equal(expected), "expected fine %s, got %s", expected, fine)
		})
	}
}

func Test_OverdueFine_TruncatesPartialDays(t *testing.T) {
	// arrange - 15 days minus one hour out, against a 14 day allotment
	t0 := time.Unix(0, 0).UTC()
	returnedAt := t0.Add(15*24*time.Hour - time.Hour)

	// act
	fine := core.OverdueFine(t0, returnedAt, 14, decimal.NewFromInt(1))

	// assert - only whole elapsed days count, so the loan is not yet late
	assert.True(t, fine.IsZero(), "expected zero fine, got %s", fine)
}
