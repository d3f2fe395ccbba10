package packing

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is a unit of an order, identified by its reference.
type Item struct {
	reference   string
	description string
	dimensions  kernel.Dimensions
	guard       guard.ConstructorGuard
}

// NewItem creates an Item. The reference must not be blank and every
// dimension must be positive.
func NewItem(reference, description string, depth, height, length int) (*Item, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	dimensions, err := kernel.NewDimensions(depth, height, length)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", reference, err)
	}

	return &Item{
		reference:   reference,
		description: description,
		dimensions:  dimensions,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Item was built by NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) Reference() string {
	return i.reference
}

func (i *Item) Description() string {
	return i.description
}

// SetDescription is the only mutation an item allows.
func (i *Item) SetDescription(description string) {
	i.description = description
}

func (i *Item) Dimensions() kernel.Dimensions {
	return i.dimensions
}

func (i *Item) Depth() int {
	return i.dimensions.Depth()
}

func (i *Item) Height() int {
	return i.dimensions.Height()
}

func (i *Item) Length() int {
	return i.dimensions.Length()
}

func (i *Item) Volume() int {
	return i.dimensions.Volume()
}

func (i *Item) String() string {
	return fmt.Sprintf("Item(%s, %s)", i.reference, i.dimensions)
}
