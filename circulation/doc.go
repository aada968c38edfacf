// Package circulation implements the circulation engine of the library
// system: the Ledger of outstanding loans, the ReservationShelf of per-item
// hold queues, and the orchestrating Desk that owns the item and patron
// registries.
//
// Only the Desk resolves identifiers to entities. The Ledger and the
// ReservationShelf operate on references passed in and never look anything
// up themselves. All operations are synchronous and in-memory; rejected
// operations leave every piece of state untouched.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'application' layer.
package circulation
