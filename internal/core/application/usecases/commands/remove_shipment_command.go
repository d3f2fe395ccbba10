package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRemoveShipmentCommandIsNotConstructed = errors.New(
		"RemoveShipmentCommand must be created via NewRemoveShipmentCommand constructor",
	)
)

// RemoveShipmentCommand detaches a shipment from an order.
type RemoveShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    int
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveShipmentCommand validates the order and shipment ids.
func NewRemoveShipmentCommand(orderID int, shipmentID kernel.UUID) (RemoveShipmentCommand, error) {
	if err := errors.Join(
		validateOrderID(orderID),
		shipmentID.Validate(),
	); err != nil {
		return RemoveShipmentCommand{}, err
	}

	return RemoveShipmentCommand{
		orderID:    orderID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentCommandIsNotConstructed)
}

func (c RemoveShipmentCommand) OrderID() int {
	return c.orderID
}

func (c RemoveShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
