package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrCleanOrdersCommandIsNotConstructed = errors.New(
		"CleanOrdersCommand must be created via NewCleanOrdersCommand constructor",
	)
)

// CleanOrdersCommand drops cancelled shipments from every stored order.
type CleanOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanOrdersCommand creates the command.
func NewCleanOrdersCommand() CleanOrdersCommand {
	return CleanOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CleanOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCleanOrdersCommandIsNotConstructed)
}
