// Package queries contains read-only operations over stored orders.
// Query handlers never modify state and never open a transaction.
package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderReader loads order aggregates for reporting. Closed status, remaining
// items and cost are derived by the aggregate, so queries read whole orders
// rather than projecting columns.
//
// ports.OrderRepository satisfies OrderReader.
type OrderReader interface {
	Get(ctx context.Context, id int) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
	GetByCustomer(ctx context.Context, customerID int) ([]*order.Order, error)
}
