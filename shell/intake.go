package shell

import (
	"fmt"

	"github.com/openshelf/library-circulation-go/core"
)

// Variant selectors as entered at the console.
const (
	itemSelectorReducedRate = 0
	itemSelectorPeriodical  = 1
	itemSelectorReference   = 2

	patronSelectorExtended = 1
)

// RunIntake collects the initial patron and catalog entries before login:
// first a count-prefixed batch of patrons, then a batch of items. Duplicate
// IDs are reported and discarded by the desk.
func (s *Session) RunIntake() {
	s.enterPatrons()
	s.enterItems()
}

func (s *Session) enterPatrons() {
	n := s.readInt("Enter number of patrons to add: ")
	for i := 0; i < n; i++ {
		id := s.readInt(fmt.Sprintf("Patron #%d ID: ", i+1))
		fmt.Fprint(s.out, "Username: ")
		username := s.readLine()
		fmt.Fprint(s.out, "Password: ")
		credential := s.readLine()
		tier := s.readInt("Patron Type (0=Standard, 1=Extended): ")

		var patron *core.Patron
		if tier == patronSelectorExtended {
			patron = core.BuildExtendedPatron(id, username, credential)
		} else {
			patron = core.BuildStandardPatron(id, username, credential)
		}

		if err := s.desk.AddPatron(patron); err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			continue
		}
		fmt.Fprintln(s.out, "Patron added.")
	}
}

func (s *Session) enterItems() {
	n := s.readInt("Enter number of items to add: ")
	for i := 0; i < n; i++ {
		id := s.readInt(fmt.Sprintf("Item #%d ID: ", i+1))
		fmt.Fprint(s.out, "Title: ")
		title := s.readLine()
		fmt.Fprint(s.out, "Author: ")
		author := s.readLine()
		fmt.Fprint(s.out, "Category: ")
		category := s.readLine()
		fmt.Fprint(s.out, "Publish Date: ")
		publishDate := s.readLine()
		pages := s.readInt("Number of pages: ")
		selector := s.readInt("Item Type (0=ReducedRate, 1=Periodical, 2=Reference): ")

		var item *core.CatalogItem
		switch selector {
		case itemSelectorReducedRate:
			fmt.Fprint(s.out, "Level: ")
			level := s.readLine()
			fmt.Fprint(s.out, "Field: ")
			field := s.readLine()
			item = core.BuildReducedRateItem(id, title, author, category, publishDate, pages, level, field)
		case itemSelectorPeriodical:
			issue := s.readInt("Issue Number: ")
			item = core.BuildPeriodical(id, title, author, category, publishDate, pages, issue)
		case itemSelectorReference:
			item = core.BuildReferenceItem(id, title, author, category, publishDate, pages)
		default:
			item = core.BuildStandardItem(id, title, author, category, publishDate, pages)
		}

		if err := s.desk.AddItem(item); err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			continue
		}
		fmt.Fprintln(s.out, "Item added.")
	}
}
