package core

import (
	"github.com/shopspring/decimal"
)

// ItemKind is the closed set of catalog item variants. Each kind fixes the
// fine-rate multiplier and the borrow-eligibility flag at construction; these
// are policy constants, not runtime state.
type ItemKind int

const (
	// KindStandard is a regular circulating item.
	KindStandard ItemKind = iota
	// KindReducedRate is a circulating item with a reduced fine rate (e.g. a textbook), carrying level and field metadata.
	KindReducedRate
	// KindPeriodical is a circulating item identified by an issue number.
	KindPeriodical
	// KindReference is a non-circulating, reference-only item.
	KindReference
)

// String returns a human-readable name for the item kind.
func (k ItemKind) String() string {
	switch k {
	case KindReducedRate:
		return "ReducedRate"
	case KindPeriodical:
		return "Periodical"
	case KindReference:
		return "Reference"
	default:
		return "Standard"
	}
}

var (
	fineRateStandard    = decimal.NewFromInt(1)
	fineRateReducedRate = decimal.RequireFromString("0.5")
	fineRatePeriodical  = decimal.RequireFromString("0.7")
)

// CatalogItem is a book-like catalog entry. Descriptive fields are immutable
// after construction; only the availability flag changes, and only the Ledger
// flips it. The invariant that a non-borrowable item is never marked on-loan
// is upheld by the Ledger rejecting Issue for such items.
type CatalogItem struct {
	id          ItemIDInt
	title       string
	author      string
	category    string
	publishDate string
	pages       int
	kind        ItemKind
	level       string // reduced-rate items only
	field       string // reduced-rate items only
	issueNumber int    // periodicals only
	available   bool
}

// BuildStandardItem creates a regular circulating catalog item, initially available.
func BuildStandardItem(id ItemIDInt, title, author, category, publishDate string, pages int) *CatalogItem {
	return &CatalogItem{
		id:          id,
		title:       title,
		author:      author,
		category:    category,
		publishDate: publishDate,
		pages:       pages,
		kind:        KindStandard,
		available:   true,
	}
}

// BuildReducedRateItem creates a reduced-rate circulating item with level and field metadata.
func BuildReducedRateItem(id ItemIDInt, title, author, category, publishDate string, pages int, level, field string) *CatalogItem {
	item := BuildStandardItem(id, title, author, category, publishDate, pages)
	item.kind = KindReducedRate
	item.level = level
	item.field = field

	return item
}

// BuildPeriodical creates a periodical with an issue number.
func BuildPeriodical(id ItemIDInt, title, author, category, publishDate string, pages, issueNumber int) *CatalogItem {
	item := BuildStandardItem(id, title, author, category, publishDate, pages)
	item.kind = KindPeriodical
	item.issueNumber = issueNumber

	return item
}

// BuildReferenceItem creates a non-circulating, reference-only item.
func BuildReferenceItem(id ItemIDInt, title, author, category, publishDate string, pages int) *CatalogItem {
	item := BuildStandardItem(id, title, author, category, publishDate, pages)
	item.kind = KindReference

	return item
}

// ID returns the unique item identifier.
func (i *CatalogItem) ID() ItemIDInt { return i.id }

// Title returns the item title.
func (i *CatalogItem) Title() string { return i.title }

// Author returns the item author.
func (i *CatalogItem) Author() string { return i.author }

// Category returns the item category.
func (i *CatalogItem) Category() string { return i.category }

// PublishDate returns the publish date as entered at intake.
func (i *CatalogItem) PublishDate() string { return i.publishDate }

// Pages returns the page count.
func (i *CatalogItem) Pages() int { return i.pages }

// Kind returns the item variant.
func (i *CatalogItem) Kind() ItemKind { return i.kind }

// Level returns the level metadata of a reduced-rate item (empty otherwise).
func (i *CatalogItem) Level() string { return i.level }

// Field returns the field metadata of a reduced-rate item (empty otherwise).
func (i *CatalogItem) Field() string { return i.field }

// IssueNumber returns the issue number of a periodical (zero otherwise).
func (i *CatalogItem) IssueNumber() int { return i.issueNumber }

// IsBorrowable reports whether this item may be lent out.
// It is false only for the reference variant.
func (i *CatalogItem) IsBorrowable() bool {
	return i.kind != KindReference
}

// FineRatePerDay returns the per-day monetary penalty multiplier for this item variant.
func (i *CatalogItem) FineRatePerDay() decimal.Decimal {
	switch i.kind {
	case KindReducedRate:
		return fineRateReducedRate
	case KindPeriodical:
		return fineRatePeriodical
	case KindReference:
		return decimal.Zero
	default:
		return fineRateStandard
	}
}

// IsAvailable reports whether the item is currently on the shelf (not on loan).
func (i *CatalogItem) IsAvailable() bool { return i.available }

// SetAvailability flips the availability flag. Pure state mutation, no error conditions.
func (i *CatalogItem) SetAvailability(available bool) { i.available = available }
