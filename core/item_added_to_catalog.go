package core

import (
	"time"
)

// ItemAddedToCatalogEventType is the event type identifier.
const ItemAddedToCatalogEventType = "ItemAddedToCatalog"

// ItemAddedToCatalog represents when a new catalog item is registered at the desk.
type ItemAddedToCatalog struct {
	EventType  EventTypeString
	ItemID     ItemIDInt
	Title      string
	Kind       string
	OccurredAt OccurredAtTS
}

// BuildItemAddedToCatalog creates a new ItemAddedToCatalog event.
func BuildItemAddedToCatalog(itemID ItemIDInt, title string, kind ItemKind, occurredAt time.Time) ItemAddedToCatalog {
	event := ItemAddedToCatalog{
		EventType:  ItemAddedToCatalogEventType,
		ItemID:     itemID,
		Title:      title,
		Kind:       kind.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e ItemAddedToCatalog) IsEventType() string {
	return ItemAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ItemAddedToCatalog) IsErrorEvent() bool {
	return false
}
