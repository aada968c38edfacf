package shell

import (
	"fmt"
	"io"

	"github.com/openshelf/library-circulation-go/core"
	"github.com/openshelf/library-circulation-go/journal"
)

// RenderItem writes one catalog item in the catalog listing format, with a
// variant-specific detail line where the variant carries extra metadata.
func RenderItem(w io.Writer, item *core.CatalogItem) {
	status := "Available"
	if !item.IsAvailable() {
		status = "Borrowed"
	}

	fmt.Fprintf(w, "ID: %d | Title: %s | Author: %s | Category: %s | Publish Date: %s | Pages: %d | Status: %s\n",
		item.ID(), item.Title(), item.Author(), item.Category(), item.PublishDate(), item.Pages(), status)

	switch item.Kind() {
	case core.KindReducedRate:
		fmt.Fprintf(w, "   Level: %s | Field: %s\n", item.Level(), item.Field())
	case core.KindPeriodical:
		fmt.Fprintf(w, "   Issue Number: %d\n", item.IssueNumber())
	case core.KindReference:
		fmt.Fprintln(w, "   (Reference item - cannot be borrowed)")
	}
}

// RenderPatron writes one patron in the patron listing format.
func RenderPatron(w io.Writer, patron *core.Patron) {
	fmt.Fprintf(w, "PatronID: %d | Username: %s | Tier: %s | Borrowed Items: %d | Fines: %s\n",
		patron.ID(), patron.Username(), patron.Tier(), patron.ActiveLoans(), patron.FineBalance().String())
}

// RenderEntry writes one journal entry: timestamp, event type, raw payload.
func RenderEntry(w io.Writer, entry journal.Entry) {
	fmt.Fprintf(w, "%s  %s  %s\n", entry.OccurredAt.Format("2006-01-02 15:04:05"), entry.EventType, entry.PayloadJSON)
}
