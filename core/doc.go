// Package core contains the functional core of the library circulation system:
// catalog items, patrons, loan records, fine computation, the error taxonomy,
// and the domain events describing circulation activity.
//
// Everything in this package is a pure value or a pure policy query. Side
// effects are confined to the availability flag on a CatalogItem and the
// loan/fine counters on a Patron, both mutated only through their methods.
// The package performs no I/O and never looks up entities - callers pass
// references in.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
