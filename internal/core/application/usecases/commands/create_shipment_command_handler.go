package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler attaches a new shipment awaiting treatment
// to an existing order.
type CreateShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateShipmentCommandHandler creates the handler.
func NewCreateShipmentCommandHandler(uowFactory OrderUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns false, nil when the order already has a shipment with the
// same id. A closed order rejects new shipments with *errs.OrderStateError.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID())
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	added, err := o.AddShipment(s)
	if err != nil || !added {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
