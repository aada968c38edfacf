package circulation

import (
	"fmt"

	"github.com/openshelf/library-circulation-go/core"
)

// DefaultHoldQueueCapacity is the maximum number of patrons waiting on one item.
const DefaultHoldQueueCapacity = 10

// ReservationShelf holds one bounded FIFO queue of waiting patron IDs per
// item. Queues are created lazily on the first reservation and removed again
// once drained.
type ReservationShelf struct {
	capacity int
	queues   map[core.ItemIDInt][]core.PatronIDInt
}

// NewReservationShelf creates an empty shelf with DefaultHoldQueueCapacity per item.
func NewReservationShelf() *ReservationShelf {
	return &ReservationShelf{
		capacity: DefaultHoldQueueCapacity,
		queues:   make(map[core.ItemIDInt][]core.PatronIDInt),
	}
}

// Reserve appends the patron to the tail of the item's queue.
//
// Business Rules:
//
//	ERROR: ErrDuplicateReservation if the patron is already in the item's queue
//	ERROR: ErrReservationQueueFull if the queue holds DefaultHoldQueueCapacity entries
//
// Rejections leave the queue unchanged.
func (s *ReservationShelf) Reserve(item *core.CatalogItem, patron *core.Patron) error {
	queue := s.queues[item.ID()]

	for _, waitingID := range queue {
		if waitingID == patron.ID() {
			return fmt.Errorf("%w: item %d, patron %d", core.ErrDuplicateReservation, item.ID(), patron.ID())
		}
	}

	if len(queue) >= s.capacity {
		return fmt.Errorf("%w: item %d", core.ErrReservationQueueFull, item.ID())
	}

	s.queues[item.ID()] = append(queue, patron.ID())

	return nil
}

// NotifyNext pops and returns the patron at the head of the item's queue.
// The second return value is false when no one is waiting. Purely advisory:
// the popped patron still has to go through Issue to get the loan.
func (s *ReservationShelf) NotifyNext(itemID core.ItemIDInt) (core.PatronIDInt, bool) {
	queue, ok := s.queues[itemID]
	if !ok || len(queue) == 0 {
		return 0, false
	}

	next := queue[0]

	if len(queue) == 1 {
		delete(s.queues, itemID)
	} else {
		s.queues[itemID] = queue[1:]
	}

	return next, true
}

// Cancel removes all occurrences of the patron from the item's queue in
// place, preserving the relative order of the remaining entries. A missing
// queue or an absent patron is a silent no-op, never an error. It reports
// whether anything was actually removed.
func (s *ReservationShelf) Cancel(itemID core.ItemIDInt, patronID core.PatronIDInt) bool {
	queue, ok := s.queues[itemID]
	if !ok {
		return false
	}

	remaining := queue[:0]
	for _, waitingID := range queue {
		if waitingID != patronID {
			remaining = append(remaining, waitingID)
		}
	}

	removed := len(remaining) < len(queue)

	if len(remaining) == 0 {
		delete(s.queues, itemID)
		return removed
	}

	s.queues[itemID] = remaining

	return removed
}

// QueueLength returns the number of patrons waiting on the item.
func (s *ReservationShelf) QueueLength(itemID core.ItemIDInt) int {
	return len(s.queues[itemID])
}
