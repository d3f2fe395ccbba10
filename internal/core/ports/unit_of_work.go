package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes the order changes of one command. Transactional
// implementations hide writes made through OrderRepository until Commit.
//
// Handlers follow the same shape everywhere:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//	// load, mutate and save orders
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit and Rollback fail when no transaction is open, so the deferred
	// Rollback after a successful Commit returns an error that is discarded.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
}
