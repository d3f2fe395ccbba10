package commands

import (
	"context"
)

// CleanOrdersCommandHandler removes cancelled shipments in a single transaction.
type CleanOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCleanOrdersCommandHandler creates the handler.
func NewCleanOrdersCommandHandler(uowFactory OrderUoWFactory) CleanOrdersCommandHandler {
	return CleanOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of shipments removed across all orders.
// Only orders that changed are written back.
func (h CleanOrdersCommandHandler) Handle(ctx context.Context, cmd CleanOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, o := range orders {
		n := o.Clean()
		if n == 0 {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		removed += n
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
