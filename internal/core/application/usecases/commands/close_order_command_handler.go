package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// CloseOrderCommandHandler closes an order, cancelling its undelivered
// shipments, and publishes order.closed.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventNotifier
}

// NewCloseOrderCommandHandler creates the handler. The publisher may be nil.
func NewCloseOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newEventNotifier(publisher, logger),
	}
}

// Handle closes the order: every shipment not yet received is cancelled.
// Items still to send do not block closing. A container or position error
// from validation, or a shipment that cannot be cancelled, is returned and
// nothing is persisted.
func (h CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	if err = o.Close(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.events.notify(ctx, ports.OrderEvent{Type: ports.OrderClosed, OrderID: cmd.OrderID()})
	return nil
}
