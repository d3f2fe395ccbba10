package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// ChangeShipmentStatusCommandHandler applies a shipment status transition
// and publishes shipment.status_changed once it is persisted.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventNotifier
}

// NewChangeShipmentStatusCommandHandler creates the handler. The publisher may be nil.
func NewChangeShipmentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		events:     newEventNotifier(publisher, logger),
	}
}

// Handle changes the status. Domain errors are returned unwrapped and the
// stored order is left untouched.
func (h ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
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

	if err = o.ChangeShipmentStatus(cmd.ShipmentID(), cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.notify(ctx, ports.OrderEvent{
		Type:       ports.ShipmentStatusChanged,
		OrderID:    cmd.OrderID(),
		ShipmentID: cmd.ShipmentID().String(),
		Status:     cmd.Status().String(),
	})
	return nil
}
