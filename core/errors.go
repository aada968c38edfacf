package core

import "errors"

// Sentinel errors for every business rule violation the circulation engine can
// report. All of them are non-fatal: callers surface the message and the
// system stays in its prior consistent state. Match with errors.Is, the engine
// wraps them with entity context.
var (
	// ErrDuplicateID is returned when an item or patron with an already-registered ID is added.
	ErrDuplicateID = errors.New("id already registered")

	// ErrItemNotFound is returned when an unknown item ID is referenced.
	ErrItemNotFound = errors.New("item not found")

	// ErrPatronNotFound is returned when an unknown patron ID is referenced.
	ErrPatronNotFound = errors.New("patron not found")

	// ErrNotBorrowable is returned when a loan is requested for a reference-only item.
	ErrNotBorrowable = errors.New("item cannot be borrowed")

	// ErrItemUnavailable is returned when a loan is requested for an item that is already on loan.
	ErrItemUnavailable = errors.New("item is not available")

	// ErrBorrowLimitExceeded is returned when the patron is at the tier loan limit or the fine ceiling.
	ErrBorrowLimitExceeded = errors.New("patron cannot borrow more items or has high fines")

	// ErrNoActiveLoan is returned when a return is requested for an item with no outstanding loan.
	ErrNoActiveLoan = errors.New("no active loan for this item")

	// ErrOwnershipMismatch is returned when a patron tries to return an item somebody else borrowed.
	ErrOwnershipMismatch = errors.New("this patron did not borrow this item")

	// ErrReservationQueueFull is returned when an item's hold queue is at capacity.
	ErrReservationQueueFull = errors.New("reservation queue is full")

	// ErrDuplicateReservation is returned when a patron already holds a reservation for the item.
	ErrDuplicateReservation = errors.New("patron has already reserved this item")
)
