package order

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/party"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// UnsetID is the id of an order whose id was never set.
const UnsetID = -1

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the fulfillment domain.
//
// Order follows these invariants:
//   - the id is set at most once and is never negative
//   - item references are unique within the order
//   - shipment ids are unique within the order
//   - shipments cannot be added or removed once the order is closed
//   - "closed" is derived from the shipments, never stored
//
// Every mutator validates before it commits, so a failed call leaves the
// order untouched.
type Order struct {
	mu sync.Mutex

	// id is the business identifier, UnsetID until SetID
	id int

	// date is the order date, zero until SetDate
	date time.Time

	// destination is the delivery recipient
	destination *party.Person

	// customer placed the order
	customer *party.Customer

	// items are unique by reference, in insertion order
	items []*packing.Item

	// shipments are unique by id, in insertion order
	shipments []*shipment.Shipment

	guard guard.ConstructorGuard
}

// Summary holds the derived figures of an order.
type Summary struct {
	ID             int
	Items          int
	RemainingItems int
	Closed         bool
	Cost           float64
	Shipments      []shipment.Summary
}

// NewOrder creates an empty order with UnsetID.
//
// Example:
//
//	o := order.NewOrder()
//	if err := o.SetID(42); err != nil {
//	    return err
//	}
//	item, _ := packing.NewItem("ITEM1", "book", 1, 1, 1)
//	added, err := o.Add(item)
func NewOrder() *Order {
	return &Order{
		id:    UnsetID,
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreOrder reconstructs an Order from persistent storage.
//
// Parameters:
//   - id: business id, UnsetID or a non-negative value
//   - date: order date, zero when it was never set
//   - destination, customer: optional parties
//   - items: order items, unique by reference
//   - shipments: restored shipments, unique by id
//
// Returns:
//   - *Order: the restored aggregate
//   - error: every invalid argument, joined
func RestoreOrder(
	id int,
	date time.Time,
	destination *party.Person,
	customer *party.Customer,
	items []*packing.Item,
	shipments []*shipment.Shipment,
) (*Order, error) {
	o := NewOrder()

	var idErr error
	if id != UnsetID {
		idErr = o.setID(id)
	}

	var customerErr error
	if customer != nil {
		customerErr = o.setCustomer(customer)
	}

	var destinationErr error
	if destination != nil {
		destinationErr = o.setDestination(*destination)
	}

	if err := errors.Join(
		idErr,
		customerErr,
		destinationErr,
		o.restoreItems(items),
		o.restoreShipments(shipments),
	); err != nil {
		return nil, err
	}
	o.date = date

	return o, nil
}

// ID returns the business id, UnsetID when it was never set.
func (o *Order) ID() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.id
}

// SetID sets the order id. The id can be set once; setting the same value
// again is a no-op.
//
// Returns:
//   - nil on success
//   - *errs.ValueIsOutOfRangeError for a negative id
//   - *errs.OrderStateError when a different id is already set
func (o *Order) SetID(id int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.id != UnsetID {
		if o.id == id {
			return nil
		}
		return errs.NewOrderStateError(fmt.Sprint(o.id), fmt.Sprintf("order id is already set, cannot change it to %d", id))
	}
	return o.setID(id)
}

// Date returns the order date and whether it was set.
func (o *Order) Date() (time.Time, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.date, !o.date.IsZero()
}

// SetDate sets the order date. The day, month and year must form a real
// calendar date.
func (o *Order) SetDate(day, month, year int) error {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year < 1 || date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, month, day))
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.date = date
	return nil
}

// Destination returns the delivery recipient and whether it was set.
func (o *Order) Destination() (party.Person, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destination == nil {
		return party.Person{}, false
	}
	return *o.destination, true
}

// SetDestination sets the delivery recipient.
func (o *Order) SetDestination(destination party.Person) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.setDestination(destination)
}

// Customer returns the customer, nil when it was never set.
func (o *Order) Customer() *party.Customer {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.customer
}

// SetCustomer sets the customer. A nil customer is an order-state error.
func (o *Order) SetCustomer(customer *party.Customer) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.setCustomer(customer)
}

// Add appends an item to the order.
//
// Returns:
//   - true, nil: the item was added
//   - false, nil: an item with the same reference already exists
//   - false, *errs.OrderStateError: the item is nil or not constructed
func (o *Order) Add(item *packing.Item) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := item.Validate(); err != nil {
		return false, errs.NewOrderStateErrorWithCause(o.reference(), "item is required", err)
	}
	if o.indexOfItem(item.Reference()) >= 0 {
		return false, nil
	}

	o.items = append(o.items, item)
	return true, nil
}

// Items returns the order items in insertion order. The slice is a copy.
func (o *Order) Items() []*packing.Item {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.items)
}

// FindItem returns the item with the given reference.
func (o *Order) FindItem(reference string) (*packing.Item, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOfItem(reference)
	if idx < 0 {
		return nil, false
	}
	return o.items[idx], true
}

// NumberOfItems returns how many items the order holds.
func (o *Order) NumberOfItems() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.items)
}

// AddShipment attaches a shipment to the order.
//
// Returns:
//   - true, nil: the shipment was attached
//   - false, nil: a shipment with the same id is already attached
//   - false, *errs.OrderStateError: the shipment is nil or the order is closed
func (o *Order) AddShipment(s *shipment.Shipment) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkShipmentArg(s); err != nil {
		return false, err
	}
	if o.indexOfShipment(s.ID()) >= 0 {
		return false, nil
	}

	o.shipments = append(o.shipments, s)
	return true, nil
}

// RemoveShipment detaches the shipment with the same id as s. A missing
// shipment returns false, nil. The rules of AddShipment apply.
func (o *Order) RemoveShipment(s *shipment.Shipment) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkShipmentArg(s); err != nil {
		return false, err
	}

	idx := o.indexOfShipment(s.ID())
	if idx < 0 {
		return false, nil
	}

	o.shipments = slices.Delete(o.shipments, idx, idx+1)
	return true, nil
}

// Shipments returns the shipments in insertion order. The slice is a copy.
func (o *Order) Shipments() []*shipment.Shipment {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.shipments)
}

// FindShipment returns the shipment with the given id.
func (o *Order) FindShipment(id kernel.UUID) (*shipment.Shipment, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOfShipment(id)
	if idx < 0 {
		return nil, false
	}
	return o.shipments[idx], true
}

// ChangeShipmentStatus moves one of the order's shipments to status.
//
// Returns:
//   - nil on success
//   - *errs.ObjectNotFoundError when the order has no such shipment
//   - any error of shipment.Shipment.ChangeStatus, unwrapped
func (o *Order) ChangeShipmentStatus(id kernel.UUID, status shipment.Status) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.shipment(id)
	if err != nil {
		return err
	}
	return s.ChangeStatus(status)
}

// AddContainerToShipment adds a sealed container to one of the order's
// shipments. Every packed item must be an item of this order.
func (o *Order) AddContainerToShipment(id kernel.UUID, c *packing.Container) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.shipment(id)
	if err != nil {
		return false, err
	}

	if c != nil {
		for _, packed := range c.PackedItems() {
			if o.indexOfItem(packed.Reference()) < 0 {
				return false, errs.NewContainerError(c.Reference(),
					fmt.Sprintf("item %s is not part of order %d", packed.Reference(), o.id))
			}
		}
	}

	return s.AddContainer(c)
}

// RemoveContainerFromShipment removes a container from one of the order's
// shipments by reference.
func (o *Order) RemoveContainerFromShipment(id kernel.UUID, reference string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, err := o.shipment(id)
	if err != nil {
		return false, err
	}
	return s.RemoveContainerByReference(reference)
}

// NumberOfRemainingItemsToSend counts the items that are not yet confirmed
// as sent. See RemainingItemsToSend.
func (o *Order) NumberOfRemainingItemsToSend() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.remainingItems())
}

// RemainingItemsToSend returns the items not yet confirmed as sent, in
// order. An item is sent only when a container of a SHIPPED or RECEIVED
// shipment holds it; items that are unpacked, or packed only in shipments
// in earlier or cancelled states, remain.
func (o *Order) RemainingItemsToSend() []*packing.Item {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.remainingItems()
}

// IsClosed reports whether no item remains to be sent. An order without
// items is closed.
func (o *Order) IsClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.isClosed()
}

// Validate checks construction and validates every shipment, which
// validates every container. The first error is returned unwrapped.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	return o.validate()
}

// Close validates the whole order and then cancels every shipment that was
// not received. Received shipments keep their status.
//
// Every cancellation is checked before any is applied, so on error no
// shipment changes.
//
// Example:
//
//	if err := o.Close(); err != nil {
//	    // *errs.ContainerError, *errs.PositionError or *errs.OrderStateError
//	}
func (o *Order) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.validate(); err != nil {
		return err
	}

	toCancel := make([]*shipment.Shipment, 0, len(o.shipments))
	for _, s := range o.shipments {
		if s.Status() == shipment.Received {
			continue
		}
		if err := s.Status().CanTransitionTo(shipment.Cancelled); err != nil {
			return err
		}
		toCancel = append(toCancel, s)
	}

	for _, s := range toCancel {
		if err := s.ChangeStatus(shipment.Cancelled); err != nil {
			return err
		}
	}
	return nil
}

// Cost sums the cost of RECEIVED shipments. Other shipments cost nothing.
func (o *Order) Cost() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cost()
}

// Clean removes every CANCELLED shipment and returns how many were removed.
func (o *Order) Clean() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	before := len(o.shipments)
	o.shipments = slices.DeleteFunc(o.shipments, func(s *shipment.Shipment) bool {
		return s.Status() == shipment.Cancelled
	})
	return before - len(o.shipments)
}

// Summary reports the derived figures of the order under a single lock.
func (o *Order) Summary() Summary {
	o.mu.Lock()
	defer o.mu.Unlock()

	shipments := make([]shipment.Summary, 0, len(o.shipments))
	for _, s := range o.shipments {
		shipments = append(shipments, s.Summary())
	}

	remaining := len(o.remainingItems())
	return Summary{
		ID:             o.id,
		Items:          len(o.items),
		RemainingItems: remaining,
		Closed:         remaining == 0,
		Cost:           o.cost(),
		Shipments:      shipments,
	}
}

func (o *Order) validate() error {
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}
	for _, s := range o.shipments {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) remainingItems() []*packing.Item {
	remaining := make([]*packing.Item, 0, len(o.items))
	for _, item := range o.items {
		if !o.isSent(item.Reference()) {
			remaining = append(remaining, item)
		}
	}
	return remaining
}

func (o *Order) isSent(reference string) bool {
	for _, s := range o.shipments {
		if s.Status().IsDelivered() && s.ContainsItem(reference) {
			return true
		}
	}
	return false
}

func (o *Order) isClosed() bool {
	return len(o.remainingItems()) == 0
}

func (o *Order) cost() float64 {
	total := 0.0
	for _, s := range o.shipments {
		if s.Status() == shipment.Received {
			total += s.Cost()
		}
	}
	return total
}

func (o *Order) shipment(id kernel.UUID) (*shipment.Shipment, error) {
	idx := o.indexOfShipment(id)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("shipmentID", id.String())
	}
	return o.shipments[idx], nil
}

func (o *Order) checkShipmentArg(s *shipment.Shipment) error {
	if s == nil {
		return errs.NewOrderStateError(o.reference(), "shipment is required")
	}
	if o.isClosed() {
		return errs.NewOrderStateError(o.reference(), "order is closed")
	}
	return nil
}

func (o *Order) indexOfItem(reference string) int {
	return slices.IndexFunc(o.items, func(item *packing.Item) bool {
		return item.Reference() == reference
	})
}

func (o *Order) indexOfShipment(id kernel.UUID) int {
	return slices.IndexFunc(o.shipments, func(s *shipment.Shipment) bool {
		return s.ID().IsEqual(id)
	})
}

func (o *Order) reference() string {
	if o.id == UnsetID {
		return ""
	}
	return fmt.Sprint(o.id)
}

func (o *Order) setID(id int) error {
	if id < 0 {
		return errs.NewValueIsOutOfRangeError("id", id, 0, "max int")
	}
	o.id = id
	return nil
}

func (o *Order) setDestination(destination party.Person) error {
	if err := destination.Validate(); err != nil {
		return errs.NewOrderStateErrorWithCause(o.reference(), "destination is required", err)
	}
	o.destination = &destination
	return nil
}

func (o *Order) setCustomer(customer *party.Customer) error {
	if err := customer.Validate(); err != nil {
		return errs.NewOrderStateErrorWithCause(o.reference(), "customer is required", err)
	}
	o.customer = customer
	return nil
}

func (o *Order) restoreItems(items []*packing.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if o.indexOfItem(item.Reference()) >= 0 {
			return errs.NewOrderStateError(o.reference(), fmt.Sprintf("item %s is listed twice", item.Reference()))
		}
		o.items = append(o.items, item)
	}
	return nil
}

func (o *Order) restoreShipments(shipments []*shipment.Shipment) error {
	for _, s := range shipments {
		if err := s.Validate(); err != nil {
			return err
		}
		if o.indexOfShipment(s.ID()) >= 0 {
			return errs.NewOrderStateError(o.reference(), fmt.Sprintf("shipment %s is listed twice", s.ID()))
		}
		o.shipments = append(o.shipments, s)
	}
	return nil
}
