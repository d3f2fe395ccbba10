package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrExportOrderCommandIsNotConstructed = errors.New(
		"ExportOrderCommand must be created via NewExportOrderCommand constructor",
	)
	ErrExportChartsCommandIsNotConstructed = errors.New(
		"ExportChartsCommand must be created via NewExportChartsCommand constructor",
	)
)

// ExportOrderCommand writes an order document and its items-sent chart.
type ExportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewExportOrderCommand validates the order id.
func NewExportOrderCommand(orderID int) (ExportOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return ExportOrderCommand{}, err
	}
	return ExportOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExportOrderCommand) Validate() error {
	return c.guard.Validate(ErrExportOrderCommandIsNotConstructed)
}

func (c ExportOrderCommand) OrderID() int {
	return c.orderID
}

// ExportChartsCommand writes the charts aggregated over every stored order.
type ExportChartsCommand struct {
	guard guard.ConstructorGuard
}

// NewExportChartsCommand creates the command.
func NewExportChartsCommand() ExportChartsCommand {
	return ExportChartsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExportChartsCommand) Validate() error {
	return c.guard.Validate(ErrExportChartsCommandIsNotConstructed)
}
