package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand attaches a new, empty shipment to an order.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(42, kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	added, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    int
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the order and shipment ids.
func NewCreateShipmentCommand(orderID int, shipmentID kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateOrderID(orderID),
		shipmentID.Validate(),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	cmd.orderID = orderID
	cmd.shipmentID = shipmentID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) OrderID() int {
	return c.orderID
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func validateOrderID(orderID int) error {
	if orderID < 0 {
		return errs.NewValueIsOutOfRangeError("orderID", orderID, 0, "max int")
	}
	return nil
}
