package queries

import (
	"cmp"
	"context"
	"slices"

	"fulfillment/internal/core/domain/model/order"
)

// GetOrdersQueryHandler lists orders sorted by id.
type GetOrdersQueryHandler struct {
	orders OrderReader
}

// NewGetOrdersQueryHandler creates the handler.
func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns an empty, non-nil slice when nothing matches.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		found []*order.Order
		err   error
	)
	if customerID, ok := query.CustomerID(); ok {
		found, err = h.orders.GetByCustomer(ctx, customerID)
	} else {
		found, err = h.orders.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]GetOrdersQueryResponse, 0, len(found))
	for _, o := range found {
		summary := o.Summary()
		line := GetOrdersQueryResponse{
			ID:             summary.ID,
			Items:          summary.Items,
			RemainingItems: summary.RemainingItems,
			Shipments:      len(summary.Shipments),
			Closed:         summary.Closed,
			Cost:           summary.Cost,
		}
		if customer := o.Customer(); customer != nil {
			line.CustomerID = customer.ID()
			line.CustomerName = customer.Name()
		}
		result = append(result, line)
	}

	slices.SortFunc(result, func(a, b GetOrdersQueryResponse) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return result, nil
}
