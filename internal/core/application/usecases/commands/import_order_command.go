package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrImportOrderCommandIsNotConstructed = errors.New(
		"ImportOrderCommand must be created via NewImportOrderCommand constructor",
	)
)

// ImportOrderCommand carries an order document (JSON or YAML) to register.
//
// Example:
//
//	cmd, err := NewImportOrderCommand(body)
//	if err != nil {
//	    return fmt.Errorf("invalid document: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type ImportOrderCommand struct { //nolint:recvcheck //using for validation
	document []byte

	guard guard.ConstructorGuard
}

// NewImportOrderCommand creates the command. The document must not be empty.
func NewImportOrderCommand(document []byte) (ImportOrderCommand, error) {
	if len(document) == 0 {
		return ImportOrderCommand{}, errs.NewValueIsRequiredError("document")
	}

	return ImportOrderCommand{
		document: document,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportOrderCommand) Validate() error {
	return c.guard.Validate(ErrImportOrderCommandIsNotConstructed)
}

// Document returns the raw order document.
func (c ImportOrderCommand) Document() []byte {
	return c.document
}
