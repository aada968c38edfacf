package journal

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/openshelf/library-circulation-go/core"
)

// ErrMappingToEntryFailed is returned when domain event serialization fails.
var ErrMappingToEntryFailed = errors.New("mapping to journal entry failed")

// DefaultCapacity is the number of entries kept when no capacity is configured.
const DefaultCapacity = 100

// Entries is an alias type for a slice of Entry.
type Entries = []Entry

// Entry is a DTO (data transfer object) holding one recorded activity.
//
// It is built on scalars to be completely agnostic of the implementation of
// domain events in the rest of the system. While its properties are exported,
// it should only be constructed through Journal.Record.
type Entry struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// Journal is a bounded, in-memory activity trail. Oldest entries are dropped
// once capacity is reached.
type Journal struct {
	capacity int
	entries  Entries
}

// New creates a Journal keeping at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Journal{
		capacity: capacity,
		entries:  make(Entries, 0, capacity),
	}
}

// Record serializes the domain event and its metadata and appends the entry,
// evicting the oldest entry when the journal is at capacity.
func (j *Journal) Record(event core.DomainEvent, metadata EventMetadata) error {
	payloadJSON, err := jsoniter.ConfigFastest.Marshal(event)
	if err != nil {
		return errors.Join(ErrMappingToEntryFailed, err)
	}

	metadataJSON, err := jsoniter.ConfigFastest.Marshal(metadata)
	if err != nil {
		return errors.Join(ErrMappingToEntryFailed, err)
	}

	entry := Entry{
		EventType:    event.IsEventType(),
		OccurredAt:   event.HasOccurredAt(),
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}

	if len(j.entries) == j.capacity {
		j.entries = j.entries[1:]
	}

	j.entries = append(j.entries, entry)

	return nil
}

// Len returns the number of entries currently held.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Recent returns up to n of the most recent entries in chronological order
// (oldest of the selection first). n <= 0 returns everything held.
func (j *Journal) Recent(n int) Entries {
	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}

	selection := j.entries[len(j.entries)-n:]

	out := make(Entries, n)
	copy(out, selection)

	return out
}
