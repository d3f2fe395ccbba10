package queries

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetCustomerOrdersQuery constructor",
	)
)

// GetOrdersQuery lists stored orders, optionally limited to one customer.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("order %d closed=%t\n", o.ID, o.Closed)
//	}
type GetOrdersQuery struct {
	customerID int
	byCustomer bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery lists every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCustomerOrdersQuery lists the orders of one customer.
func NewGetCustomerOrdersQuery(customerID int) (GetOrdersQuery, error) {
	if customerID <= 0 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("customerID", customerID, 1, "max int")
	}
	return GetOrdersQuery{
		customerID: customerID,
		byCustomer: true,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter and whether one is set.
func (q GetOrdersQuery) CustomerID() (int, bool) {
	return q.customerID, q.byCustomer
}

// GetOrdersQueryResponse is one line of the order list.
type GetOrdersQueryResponse struct {
	ID             int
	CustomerID     int
	CustomerName   string
	Items          int
	RemainingItems int
	Shipments      int
	Closed         bool
	Cost           float64
}
