package queries

import (
	"context"
)

// GetOrderSummaryQueryHandler reads one order and reports its summary.
type GetOrderSummaryQueryHandler struct {
	orders OrderReader
}

// NewGetOrderSummaryQueryHandler creates the handler.
func NewGetOrderSummaryQueryHandler(orders OrderReader) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{orders: orders}
}

// Handle returns *errs.ObjectNotFoundError (from the reader) for unknown ids.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	resp := GetOrderSummaryQueryResponse{Summary: o.Summary()}
	if date, ok := o.Date(); ok {
		resp.Date = &date
	}
	if customer := o.Customer(); customer != nil {
		resp.CustomerID = customer.ID()
		resp.CustomerName = customer.Name()
	}

	return resp, nil
}
