// Package ports defines the contracts between the fulfillment core and its
// adapters: persistence, document import and export, and event publishing.
package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
)

// ErrOrderAlreadyExists is returned by OrderRepository.Add for a taken id.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their whole subtree: items, shipments, containers
// and packed items, customer and destination.
type OrderRepository interface {
	// Add persists a new order. The order id must be set and not taken;
	// a taken id yields ErrOrderAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// A missing order yields *errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// A missing order yields *errs.ObjectNotFoundError.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll retrieves every order, sorted by id.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByCustomer retrieves the orders of one customer, sorted by id.
	GetByCustomer(ctx context.Context, customerID int) ([]*order.Order, error)

	// Remove deletes an order and its subtree.
	// A missing order yields *errs.ObjectNotFoundError.
	Remove(ctx context.Context, id int) error
}
