package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
		"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
	)
)

// ChangeShipmentStatusCommand moves a shipment of an order to a new status.
//
// Example:
//
//	cmd, err := NewChangeShipmentStatusCommand(42, shipmentID, shipment.Closed)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrOrderState) {
//	    // illegal transition, the shipment kept its status
//	}
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    int
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand validates ids and the target status.
func NewChangeShipmentStatusCommand(
	orderID int,
	shipmentID kernel.UUID,
	status shipment.Status,
) (ChangeShipmentStatusCommand, error) {
	if err := errors.Join(
		validateOrderID(orderID),
		shipmentID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return ChangeShipmentStatusCommand{
		orderID:    orderID,
		shipmentID: shipmentID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

func (c ChangeShipmentStatusCommand) OrderID() int {
	return c.orderID
}

func (c ChangeShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c ChangeShipmentStatusCommand) Status() shipment.Status {
	return c.status
}
