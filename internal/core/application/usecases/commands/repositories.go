// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// eventNotifier publishes events after a successful commit. The change is
// already persisted at that point, so a delivery failure is logged and not
// returned to the caller.
type eventNotifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventNotifier(publisher ports.EventPublisher, logger *slog.Logger) eventNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return eventNotifier{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (n eventNotifier) notify(ctx context.Context, event ports.OrderEvent) {
	if n.publisher == nil {
		return
	}
	event.OccurredAt = n.now().UTC()
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish event",
			"type", event.Type,
			"order_id", event.OrderID,
			"error", err,
		)
	}
}
