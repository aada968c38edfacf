package journal_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-circulation-go/core"
	"github.com/openshelf/library-circulation-go/journal"
)

func givenMetadata(t *testing.T) journal.EventMetadata {
	t.Helper()

	uid := uuid.New()

	return journal.BuildEventMetadata(uid, uid, uid)
}

func Test_Journal_Record_SerializesEventAndMetadata(t *testing.T) {
	// arrange
	j := journal.New(journal.DefaultCapacity)
	occurredAt := time.Unix(0, 0).UTC()
	event := core.BuildLoanOpened(1, 7, occurredAt)
	metadata := givenMetadata(t)

	// act
	err := j.Record(event, metadata)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, j.Len())

	entry := j.Recent(1)[0]
	assert.Equal(t, core.LoanOpenedEventType, entry.EventType)
	assert.Equal(t, occurredAt, entry.OccurredAt)

	var payload core.LoanOpened
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(entry.PayloadJSON, &payload))
	assert.Equal(t, 1, payload.ItemID)
	assert.Equal(t, 7, payload.PatronID)

	roundTripped, err := journal.EventMetadataFrom(entry)
	require.NoError(t, err)
	assert.Equal(t, metadata, roundTripped)
}

func Test_Journal_AtCapacity_EvictsOldestEntry(t *testing.T) {
	// arrange - capacity of two
	j := journal.New(2)
	t0 := time.Unix(0, 0).UTC()

	require.NoError(t, j.Record(core.BuildLoanOpened(1, 7, t0), givenMetadata(t)))
	require.NoError(t, j.Record(core.BuildLoanOpened(2, 7, t0.Add(time.Minute)), givenMetadata(t)))

	// act
	require.NoError(t, j.Record(core.BuildLoanOpened(3, 7, t0.Add(2*time.Minute)), givenMetadata(t)))

	// assert - the first entry is gone, order preserved
	require.Equal(t, 2, j.Len())

	entries := j.Recent(0)
	var first core.LoanOpened
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(entries[0].PayloadJSON, &first))
	assert.Equal(t, 2, first.ItemID)
}

func Test_Journal_Recent_ReturnsNewestEntriesChronologically(t *testing.T) {
	// arrange
	j := journal.New(10)
	t0 := time.Unix(0, 0).UTC()
	for i := 1; i <= 5; i++ {
		event := core.BuildLoanOpened(i, 7, t0.Add(time.Duration(i)*time.Minute))
		require.NoError(t, j.Record(event, givenMetadata(t)))
	}

	// act
	entries := j.Recent(2)

	// assert - the two newest, oldest of the selection first
	require.Len(t, entries, 2)

	var fourth, fifth core.LoanOpened
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(entries[0].PayloadJSON, &fourth))
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal(entries[1].PayloadJSON, &fifth))
	assert.Equal(t, 4, fourth.ItemID)
	assert.Equal(t, 5, fifth.ItemID)
}

func Test_Journal_New_NonPositiveCapacityFallsBackToDefault(t *testing.T) {
	j := journal.New(0)
	t0 := time.Unix(0, 0).UTC()

	for i := 0; i < journal.DefaultCapacity+5; i++ {
		require.NoError(t, j.Record(core.BuildLoanOpened(i, 7, t0), givenMetadata(t)))
	}

	assert.Equal(t, journal.DefaultCapacity, j.Len())
}
