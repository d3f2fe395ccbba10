package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPackContainerCommandIsNotConstructed = errors.New(
		"PackContainerCommand must be created via NewPackContainerCommand constructor",
	)
)

// Placement puts one order item at a position inside the container being packed.
type Placement struct {
	ItemReference string
	Position      kernel.Position
	Color         kernel.Color
}

// PackContainerCommand packs order items into a new container, closes it and
// attaches it to a shipment of the same order.
//
// Example:
//
//	cmd, err := NewPackContainerCommand(42, shipmentID, "C1", kernel.White(), kernel.Black(),
//	    []Placement{{ItemReference: "A1", Position: kernel.MustNewPosition(0, 0, 0), Color: kernel.Red()}})
//	if err != nil {
//	    return err
//	}
//	added, err := handler.Handle(ctx, cmd)
type PackContainerCommand struct { //nolint:recvcheck //using for validation
	orderID    int
	shipmentID kernel.UUID
	reference  string
	fill       kernel.Color
	edge       kernel.Color
	placements []Placement

	guard guard.ConstructorGuard
}

// NewPackContainerCommand validates identifiers, colours and every placement.
func NewPackContainerCommand(
	orderID int,
	shipmentID kernel.UUID,
	reference string,
	fill, edge kernel.Color,
	placements []Placement,
) (PackContainerCommand, error) {
	cmd := PackContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateOrderID(orderID),
		shipmentID.Validate(),
		cmd.setReference(reference),
		fill.Validate(),
		edge.Validate(),
		cmd.setPlacements(placements),
	); err != nil {
		return PackContainerCommand{}, err
	}
	cmd.orderID = orderID
	cmd.shipmentID = shipmentID
	cmd.fill = fill
	cmd.edge = edge

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackContainerCommand) Validate() error {
	return c.guard.Validate(ErrPackContainerCommandIsNotConstructed)
}

func (c PackContainerCommand) OrderID() int {
	return c.orderID
}

func (c PackContainerCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c PackContainerCommand) Reference() string {
	return c.reference
}

func (c PackContainerCommand) FillColor() kernel.Color {
	return c.fill
}

func (c PackContainerCommand) EdgeColor() kernel.Color {
	return c.edge
}

// Placements returns a copy of the requested placements.
func (c PackContainerCommand) Placements() []Placement {
	out := make([]Placement, len(c.placements))
	copy(out, c.placements)
	return out
}

func (c *PackContainerCommand) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	c.reference = reference
	return nil
}

func (c *PackContainerCommand) setPlacements(placements []Placement) error {
	if len(placements) == 0 {
		return errs.NewValueIsRequiredError("placements")
	}

	var errList []error
	for i, p := range placements {
		if strings.TrimSpace(p.ItemReference) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("placements[%d].itemReference", i)))
		}
		if err := p.Position.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("placements[%d]: %w", i, err))
		}
		if err := p.Color.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("placements[%d]: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.placements = make([]Placement, len(placements))
	copy(c.placements, placements)
	return nil
}
