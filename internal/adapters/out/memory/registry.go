// Package memory provides an in-process order registry and a unit of work
// over it. It backs the CLI and tests, where no database is configured.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.OrderRepository = (*OrderRegistry)(nil)

// OrderRegistry stores order aggregates by id. Orders are shared by
// pointer: the aggregate's own mutex guards its state and the registry's
// RWMutex guards the map.
type OrderRegistry struct {
	mu     sync.RWMutex
	orders map[int]*order.Order
}

// NewOrderRegistry creates an empty registry.
func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{
		orders: make(map[int]*order.Order),
	}
}

// Add registers a new order. The id must be set; a taken id yields
// ports.ErrOrderAlreadyExists.
func (r *OrderRegistry) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateForStorage(aggregate); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, ok := r.orders[id]; ok {
		return ports.ErrOrderAlreadyExists
	}
	r.orders[id] = aggregate
	return nil
}

// Update replaces a registered order.
func (r *OrderRegistry) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateForStorage(aggregate); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, ok := r.orders[id]; !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	r.orders[id] = aggregate
	return nil
}

func (r *OrderRegistry) Get(ctx context.Context, id int) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// GetAll returns every order sorted by id.
func (r *OrderRegistry) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.filter(ctx, func(*order.Order) bool { return true })
}

// GetByCustomer returns the orders of one customer sorted by id.
func (r *OrderRegistry) GetByCustomer(ctx context.Context, customerID int) ([]*order.Order, error) {
	return r.filter(ctx, func(o *order.Order) bool {
		c := o.Customer()
		return c != nil && c.ID() == customerID
	})
}

func (r *OrderRegistry) Remove(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	delete(r.orders, id)
	return nil
}

// Len reports the number of registered orders.
func (r *OrderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func (r *OrderRegistry) filter(ctx context.Context, keep func(*order.Order) bool) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return result, nil
}

func validateForStorage(aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == order.UnsetID {
		return errs.NewValueIsRequiredError("orderID")
	}
	return nil
}
