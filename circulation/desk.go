package circulation

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openshelf/library-circulation-go/core"
	"github.com/openshelf/library-circulation-go/journal"
)

// Desk orchestrates circulation. It owns the item and patron registries,
// resolves identifiers before delegating to the Ledger or the
// ReservationShelf, stamps the current time on every delegation, and emits a
// domain event into the journal for each successful state change.
//
// The desk serves one request at a time; there is no locking discipline
// because the console surface is strictly synchronous.
type Desk struct {
	items   map[core.ItemIDInt]*core.CatalogItem
	patrons map[core.PatronIDInt]*core.Patron
	ledger  *Ledger
	shelf   *ReservationShelf
	clock   func() time.Time
	logger  Logger
	journal *journal.Journal
}

// NewDesk creates a Desk with empty registries and optional configuration.
func NewDesk(opts ...Option) *Desk {
	desk := &Desk{
		items:   make(map[core.ItemIDInt]*core.CatalogItem),
		patrons: make(map[core.PatronIDInt]*core.Patron),
		ledger:  NewLedger(),
		shelf:   NewReservationShelf(),
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(desk)
	}

	return desk
}

// ReturnReceipt reports the outcome of a successful return: the fine applied
// (zero for a timely return) and, when the item had holds, the patron who was
// notified that it became available.
type ReturnReceipt struct {
	Fine             decimal.Decimal
	Notified         bool
	NotifiedPatronID core.PatronIDInt
}

// AddItem registers a catalog item. A duplicate ID is rejected with
// ErrDuplicateID and the duplicate is discarded - the existing entry is never
// overwritten.
func (d *Desk) AddItem(item *core.CatalogItem) error {
	if _, exists := d.items[item.ID()]; exists {
		d.warn("item rejected, id already registered", "item_id", item.ID())
		return fmt.Errorf("%w: item %d", core.ErrDuplicateID, item.ID())
	}

	d.items[item.ID()] = item
	d.record(core.BuildItemAddedToCatalog(item.ID(), item.Title(), item.Kind(), d.clock()))
	d.info("item added to catalog", "item_id", item.ID(), "kind", item.Kind().String())

	return nil
}

// AddPatron registers a patron. Duplicate handling mirrors AddItem.
func (d *Desk) AddPatron(patron *core.Patron) error {
	if _, exists := d.patrons[patron.ID()]; exists {
		d.warn("patron rejected, id already registered", "patron_id", patron.ID())
		return fmt.Errorf("%w: patron %d", core.ErrDuplicateID, patron.ID())
	}

	d.patrons[patron.ID()] = patron
	d.record(core.BuildPatronRegistered(patron.ID(), patron.Username(), patron.Tier(), d.clock()))
	d.info("patron registered", "patron_id", patron.ID(), "tier", patron.Tier().String())

	return nil
}

// Authenticate resolves the patron and compares the credential (plaintext
// match). An unknown ID and a wrong credential are indistinguishable to the
// caller.
func (d *Desk) Authenticate(patronID core.PatronIDInt, credential string) (*core.Patron, bool) {
	patron, exists := d.patrons[patronID]
	if !exists || !patron.Authenticate(credential) {
		d.warn("authentication failed", "patron_id", patronID)
		return nil, false
	}

	return patron, true
}

// Borrow resolves both IDs and delegates to the Ledger.
func (d *Desk) Borrow(patronID core.PatronIDInt, itemID core.ItemIDInt) error {
	patron, item, err := d.resolve(patronID, itemID)
	if err != nil {
		return err
	}

	now := d.clock()
	if err := d.ledger.Issue(item, patron, now); err != nil {
		d.warn("borrow rejected", "item_id", itemID, "patron_id", patronID, "reason", err.Error())
		return err
	}

	d.record(core.BuildLoanOpened(itemID, patronID, now))
	d.info("loan opened", "item_id", itemID, "patron_id", patronID)

	return nil
}

// Return resolves both IDs, settles the loan, and - on success - pops the
// item's hold queue. The notification is a best-effort UI signal, not
// transactional with the return.
func (d *Desk) Return(patronID core.PatronIDInt, itemID core.ItemIDInt) (ReturnReceipt, error) {
	patron, item, err := d.resolve(patronID, itemID)
	if err != nil {
		return ReturnReceipt{Fine: decimal.Zero}, err
	}

	now := d.clock()
	fine, err := d.ledger.Settle(item, patron, now)
	if err != nil {
		d.warn("return rejected", "item_id", itemID, "patron_id", patronID, "reason", err.Error())
		return ReturnReceipt{Fine: decimal.Zero}, err
	}

	d.record(core.BuildLoanSettled(itemID, patronID, fine, now))
	d.info("loan settled", "item_id", itemID, "patron_id", patronID, "fine", fine.String())

	receipt := ReturnReceipt{Fine: fine}

	if nextID, ok := d.shelf.NotifyNext(itemID); ok {
		receipt.Notified = true
		receipt.NotifiedPatronID = nextID
		d.record(core.BuildHoldHolderNotified(itemID, nextID, now))
		d.info("hold holder notified", "item_id", itemID, "patron_id", nextID)
	}

	return receipt, nil
}

// Reserve resolves both IDs and delegates to the ReservationShelf.
func (d *Desk) Reserve(patronID core.PatronIDInt, itemID core.ItemIDInt) error {
	patron, item, err := d.resolve(patronID, itemID)
	if err != nil {
		return err
	}

	if err := d.shelf.Reserve(item, patron); err != nil {
		d.warn("reservation rejected", "item_id", itemID, "patron_id", patronID, "reason", err.Error())
		return err
	}

	d.record(core.BuildHoldPlaced(itemID, patronID, d.clock()))
	d.info("hold placed", "item_id", itemID, "patron_id", patronID)

	return nil
}

// CancelHold resolves both IDs and removes the patron from the item's queue.
// An absent reservation is a silent no-op, per the shelf contract.
func (d *Desk) CancelHold(patronID core.PatronIDInt, itemID core.ItemIDInt) error {
	_, item, err := d.resolve(patronID, itemID)
	if err != nil {
		return err
	}

	if d.shelf.Cancel(item.ID(), patronID) {
		d.record(core.BuildHoldCanceled(itemID, patronID, d.clock()))
		d.info("hold canceled", "item_id", itemID, "patron_id", patronID)
	}

	return nil
}

// PayFine resolves the patron and applies a payment to the fine balance
// (clamped at zero, overpayment discarded).
func (d *Desk) PayFine(patronID core.PatronIDInt, amount decimal.Decimal) error {
	patron, exists := d.patrons[patronID]
	if !exists {
		return fmt.Errorf("%w: patron %d", core.ErrPatronNotFound, patronID)
	}

	patron.PayFine(amount)
	d.info("fine payment applied", "patron_id", patronID, "amount", amount.String(), "balance", patron.FineBalance().String())

	return nil
}

// Items returns a snapshot of the catalog, sorted by item ID.
func (d *Desk) Items() []*core.CatalogItem {
	items := make([]*core.CatalogItem, 0, len(d.items))
	for _, item := range d.items {
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID() < items[j].ID() })

	return items
}

// Patrons returns a snapshot of the registered patrons, sorted by patron ID.
func (d *Desk) Patrons() []*core.Patron {
	patrons := make([]*core.Patron, 0, len(d.patrons))
	for _, patron := range d.patrons {
		patrons = append(patrons, patron)
	}

	sort.Slice(patrons, func(i, j int) bool { return patrons[i].ID() < patrons[j].ID() })

	return patrons
}

// Ledger exposes the loan ledger read model (for rendering and invariant checks).
func (d *Desk) Ledger() *Ledger {
	return d.ledger
}

// Shelf exposes the reservation shelf read model.
func (d *Desk) Shelf() *ReservationShelf {
	return d.shelf
}

// resolve maps both identifiers to entities, patron first, mirroring the
// order in which the desk validates requests.
func (d *Desk) resolve(patronID core.PatronIDInt, itemID core.ItemIDInt) (*core.Patron, *core.CatalogItem, error) {
	patron, exists := d.patrons[patronID]
	if !exists {
		d.warn("unknown patron referenced", "patron_id", patronID)
		return nil, nil, fmt.Errorf("%w: patron %d", core.ErrPatronNotFound, patronID)
	}

	item, exists := d.items[itemID]
	if !exists {
		d.warn("unknown item referenced", "item_id", itemID)
		return nil, nil, fmt.Errorf("%w: item %d", core.ErrItemNotFound, itemID)
	}

	return patron, item, nil
}

// record journals a domain event with fresh metadata. Journal failures are
// logged and swallowed - the journal is an observability aid, never part of
// the transaction.
func (d *Desk) record(event core.DomainEvent) {
	if d.journal == nil {
		return
	}

	uid := uuid.New()
	metadata := journal.BuildEventMetadata(uid, uid, uid)

	if err := d.journal.Record(event, metadata); err != nil {
		d.error("journaling activity failed", "event_type", event.IsEventType(), "err", err.Error())
	}
}

func (d *Desk) info(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Info(msg, args...)
	}
}

func (d *Desk) warn(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Warn(msg, args...)
	}
}

func (d *Desk) error(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Error(msg, args...)
	}
}
