package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"
)

// PackContainerCommandHandler builds a container from order items and
// attaches it to a shipment.
type PackContainerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPackContainerCommandHandler creates the handler.
func NewPackContainerCommandHandler(uowFactory OrderUoWFactory) PackContainerCommandHandler {
	return PackContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle packs and closes the container, then adds it to the shipment.
//
// Returns false, nil when the shipment already holds a container with the
// same reference. Packing failures surface as *errs.ContainerError or
// *errs.PositionError, unknown items as *errs.ObjectNotFoundError.
func (h PackContainerCommandHandler) Handle(ctx context.Context, cmd PackContainerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	c, err := h.pack(o, cmd)
	if err != nil {
		return false, err
	}

	added, err := o.AddContainerToShipment(cmd.ShipmentID(), c)
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

func (h PackContainerCommandHandler) pack(o *order.Order, cmd PackContainerCommand) (*packing.Container, error) {
	c, err := packing.NewContainer(cmd.Reference(), cmd.FillColor(), cmd.EdgeColor())
	if err != nil {
		return nil, err
	}

	for _, p := range cmd.Placements() {
		item, ok := o.FindItem(p.ItemReference)
		if !ok {
			return nil, errs.NewObjectNotFoundError("itemReference", p.ItemReference)
		}
		added, err := c.AddItem(item, p.Position, p.Color)
		if err != nil {
			return nil, err
		}
		if !added {
			return nil, errs.NewContainerError(cmd.Reference(), "item "+p.ItemReference+" is placed twice")
		}
	}

	if err = c.Close(); err != nil {
		return nil, err
	}
	return c, nil
}
