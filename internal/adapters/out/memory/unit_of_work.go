package memory

import (
	"context"
	"errors"

	"fulfillment/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside Begin.
var ErrNoTransaction = errors.New("no active unit of work")

// UnitOfWorkFactory hands out units of work over one registry.
type UnitOfWorkFactory struct {
	registry *OrderRegistry
}

// NewUnitOfWorkFactory creates a factory for the registry.
func NewUnitOfWorkFactory(registry *OrderRegistry) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{registry: registry}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{registry: f.registry}
}

// UnitOfWork mirrors the transaction lifecycle of the database unit of work
// without isolation: repository writes reach the registry immediately and
// Rollback does not undo them. Aggregates validate before they mutate, so a
// failed command never leaves a half-applied order behind.
type UnitOfWork struct {
	registry *OrderRegistry
	active   bool
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.active = false
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.active = false
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.registry
}
