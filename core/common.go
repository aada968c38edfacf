package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// ItemIDInt represents a catalog item identifier
type ItemIDInt = int

// PatronIDInt represents a patron identifier
type PatronIDInt = int

// EventTypeString represents a domain event type identifier
type EventTypeString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
