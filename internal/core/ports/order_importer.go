package ports

import (
	"context"
	"io"

	"fulfillment/internal/core/domain/model/order"
)

// OrderImporter turns an order document into a new Order with its id, date,
// parties and items set. The order has no shipments.
type OrderImporter interface {
	Import(ctx context.Context, document io.Reader) (*order.Order, error)
}
