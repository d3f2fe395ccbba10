package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// OrderExporter writes order and chart documents and returns the location
// of each written document.
type OrderExporter interface {
	// ExportOrder writes the order document. The order date and id must be set.
	ExportOrder(ctx context.Context, o *order.Order) (string, error)

	// ExportChart writes a chart document under the given name.
	ExportChart(ctx context.Context, name string, chart services.Chart) (string, error)
}
