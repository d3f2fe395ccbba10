package commands

import (
	"bytes"
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// ImportOrderCommandHandler parses an order document and registers the order.
//
// Example:
//
//	handler := NewImportOrderCommandHandler(uowFactory, importer, publisher, logger)
//	cmd, _ := NewImportOrderCommand(document)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrOrderAlreadyExists) {
//	    // the document was imported before
//	}
type ImportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	importer   ports.OrderImporter
	events     eventNotifier
}

// NewImportOrderCommandHandler creates the handler. The publisher may be nil.
func NewImportOrderCommandHandler(
	uowFactory OrderUoWFactory,
	importer ports.OrderImporter,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ImportOrderCommandHandler {
	return ImportOrderCommandHandler{
		uowFactory: uowFactory,
		importer:   importer,
		events:     newEventNotifier(publisher, logger),
	}
}

// Handle imports the document and returns the id of the new order.
// Publishes order.imported after the commit.
func (h ImportOrderCommandHandler) Handle(ctx context.Context, cmd ImportOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := h.importer.Import(ctx, bytes.NewReader(cmd.Document()))
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.events.notify(ctx, ports.OrderEvent{Type: ports.OrderImported, OrderID: o.ID()})
	return o.ID(), nil
}
