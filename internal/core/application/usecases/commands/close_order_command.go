package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
)

// CloseOrderCommand closes an order once every item has been received.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand validates the order id.
func NewCloseOrderCommand(orderID int) (CloseOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return CloseOrderCommand{}, err
	}
	return CloseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

func (c CloseOrderCommand) OrderID() int {
	return c.orderID
}
