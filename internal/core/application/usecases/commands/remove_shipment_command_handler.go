package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// RemoveShipmentCommandHandler detaches a shipment from its order.
type RemoveShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveShipmentCommandHandler creates the handler.
func NewRemoveShipmentCommandHandler(uowFactory OrderUoWFactory) RemoveShipmentCommandHandler {
	return RemoveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the shipment. An unknown shipment yields
// *errs.ObjectNotFoundError; a closed order yields *errs.OrderStateError.
func (h RemoveShipmentCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	s, ok := o.FindShipment(cmd.ShipmentID())
	if !ok {
		return errs.NewObjectNotFoundError("shipmentID", cmd.ShipmentID().String())
	}

	if _, err = o.RemoveShipment(s); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
