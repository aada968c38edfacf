package core_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openshelf/library-circulation-go/core"
)

func Test_CatalogItem_PolicyTable_PerVariant(t *testing.T) {
	testCases := []struct {
		name         string
		item         *core.CatalogItem
		isBorrowable bool
		fineRate     string
	}{
		{
			name:         "standard item",
			item:         core.BuildStandardItem(1, "Clean Architecture", "Robert C. Martin", "Software", "2017", 432),
			isBorrowable: true,
			fineRate:     "1",
		},
		{
			name:         "reduced-rate item",
			item:         core.BuildReducedRateItem(2, "Calculus", "Spivak", "Math", "1994", 680, "Undergraduate", "Mathematics"),
			isBorrowable: true,
			fineRate:     "0.5",
		},
		{
			name:         "periodical",
			item:         core.BuildPeriodical(3, "Communications of the ACM", "ACM", "CS", "2024-06", 96, 6),
			isBorrowable: true,
			fineRate:     "0.7",
		},
		{
			name:         "reference item",
			item:         core.BuildReferenceItem(4, "Oxford English Dictionary", "OUP", "Reference", "1989", 21728),
			isBorrowable: false,
			fineRate:     "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isBorrowable, tc.item.IsBorrowable())

			expectedRate := decimal.RequireFromString(tc.fineRate)
			assert.True(t, tc.item.FineRatePerDay().Equal(expectedRate),
				"expected fine rate %s, got %s", expectedRate, tc.item.FineRatePerDay())
		})
	}
}

func Test_CatalogItem_IsAvailable_InitiallyTrue(t *testing.T) {
	item := core.BuildStandardItem(1, "Dune", "Frank Herbert", "SF", "1965", 412)

	assert.True(t, item.IsAvailable())
}

func Test_CatalogItem_SetAvailability_FlipsTheFlag(t *testing.T) {
	// arrange
	item := core.BuildStandardItem(1, "Dune", "Frank Herbert", "SF", "1965", 412)

	// act
	item.SetAvailability(false)

	// assert
	assert.False(t, item.IsAvailable())

	// act again
	item.SetAvailability(true)

	// assert
	assert.True(t, item.IsAvailable())
}

func Test_CatalogItem_VariantMetadata_IsPreserved(t *testing.T) {
	reduced := core.BuildReducedRateItem(2, "Calculus", "Spivak", "Math", "1994", 680, "Undergraduate", "Mathematics")
	periodical := core.BuildPeriodical(3, "CACM", "ACM", "CS", "2024-06", 96, 6)

	assert.Equal(t, "Undergraduate", reduced.Level())
	assert.Equal(t, "Mathematics", reduced.Field())
	assert.Equal(t, core.KindReducedRate, reduced.Kind())

	assert.Equal(t, 6, periodical.IssueNumber())
	assert.Equal(t, core.KindPeriodical, periodical.Kind())
}
