package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves the derived figures of one order: remaining
// items, closed flag, cost and a line per shipment.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(42)
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order summary: %w", err)
//	}
//	fmt.Printf("%d of %d items left to send\n", summary.RemainingItems, summary.Items)
type GetOrderSummaryQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates the query for a non-negative order id.
func NewGetOrderSummaryQuery(orderID int) (GetOrderSummaryQuery, error) {
	if orderID < 0 {
		return GetOrderSummaryQuery{}, errs.NewValueIsOutOfRangeError("orderID", orderID, 0, "max int")
	}
	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

func (q GetOrderSummaryQuery) OrderID() int {
	return q.orderID
}

// GetOrderSummaryQueryResponse is the order summary plus its date and customer.
// Date is nil and CustomerID is zero when they were never set.
type GetOrderSummaryQueryResponse struct {
	order.Summary

	Date         *time.Time
	CustomerID   int
	CustomerName string
}
