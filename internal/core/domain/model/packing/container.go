package packing

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Capacity shared by every container.
const (
	ContainerLength = 5
	ContainerHeight = 5
	ContainerDepth  = 5
	ContainerVolume = 5
)

// ErrContainerIsNotConstructed is returned when a zero-value Container is used.
var ErrContainerIsNotConstructed = errs.NewValueIsRequiredError(
	"container must be created via NewContainer or RestoreContainer constructors")

// Container is a fixed-capacity box holding packed items, unique by item
// reference. While open, items can be added, moved and removed; Close
// validates the contents and seals the container for good.
//
// Container is not safe for concurrent use. Containers are owned by a
// shipment of an order and guarded by the order's lock.
//
// Example:
//
//	c, _ := packing.NewContainer("C1", kernel.Blue(), kernel.Black())
//	item, _ := packing.NewItem("ITEM1", "book", 1, 1, 1)
//	if _, err := c.AddItem(item, kernel.MustNewPosition(0, 0, 0), kernel.Blue()); err != nil {
//	    return err
//	}
//	if err := c.Close(); err != nil {
//	    // *errs.ContainerError or *errs.PositionError
//	}
type Container struct {
	reference string
	fill      kernel.Color
	edge      kernel.Color
	items     []PackedItem
	closed    bool
	guard     guard.ConstructorGuard
}

// NewContainer creates an open, empty container.
//
// Parameters:
//   - reference: unique identifier of the container, must not be blank
//   - fill: container fill colour
//   - edge: container edge colour
//
// Returns:
//   - *Container: the open container
//   - error: every invalid argument, joined
func NewContainer(reference string, fill, edge kernel.Color) (*Container, error) {
	c := &Container{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setReference(reference),
		c.setColors(fill, edge),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContainer rebuilds a persisted container. A closed container must
// still satisfy Validate, so corrupted rows cannot produce a sealed container
// that breaks capacity or placement rules.
func RestoreContainer(
	reference string,
	fill, edge kernel.Color,
	items []PackedItem,
	closed bool,
) (*Container, error) {
	c, err := NewContainer(reference, fill, edge)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if c.indexOf(item.Reference()) >= 0 {
			return nil, errs.NewContainerError(reference, fmt.Sprintf("item %s is packed twice", item.Reference()))
		}
		c.items = append(c.items, item)
	}

	if closed {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		c.closed = true
	}

	return c, nil
}

// Reference returns the container's identifier.
func (c *Container) Reference() string {
	return c.reference
}

// FillColor returns the container fill colour.
func (c *Container) FillColor() kernel.Color {
	return c.fill
}

// EdgeColor returns the container edge colour.
func (c *Container) EdgeColor() kernel.Color {
	return c.edge
}

// IsClosed reports whether the container has been sealed.
func (c *Container) IsClosed() bool {
	return c.closed
}

// Length, Height, Depth and Volume expose the shared capacity constants.
func (c *Container) Length() int { return ContainerLength }
func (c *Container) Height() int { return ContainerHeight }
func (c *Container) Depth() int  { return ContainerDepth }
func (c *Container) Volume() int { return ContainerVolume }

// AddItem packs a copy of item at position. Fill and edge colours of the
// packed item both start as color.
//
// Returns:
//   - true, nil: the item was packed
//   - false, nil: an item with the same reference is already packed
//   - false, *errs.ContainerError: the container is closed, or an argument is
//     nil or a zero value
//
// AddItem does not check capacity or placement; Validate and Close do.
func (c *Container) AddItem(item *Item, position kernel.Position, color kernel.Color) (bool, error) {
	if c.closed {
		return false, errs.NewContainerError(c.reference, "container is closed")
	}

	packed, err := NewPackedItem(item, position, color, color)
	if err != nil {
		var containerErr *errs.ContainerError
		if errors.As(err, &containerErr) && containerErr.Reference == "" {
			containerErr.Reference = c.reference
		}
		return false, err
	}

	if c.indexOf(packed.Reference()) >= 0 {
		return false, nil
	}

	c.items = append(c.items, packed)
	return true, nil
}

// RemoveItem unpacks the item with the same reference as item.
// It returns false, nil when no such item is packed.
func (c *Container) RemoveItem(item *Item) (bool, error) {
	if c.closed {
		return false, errs.NewContainerError(c.reference, "container is closed")
	}
	if err := item.Validate(); err != nil {
		return false, errs.NewContainerErrorWithCause(c.reference, "item is required", err)
	}

	idx := c.indexOf(item.Reference())
	if idx < 0 {
		return false, nil
	}

	c.items = slices.Delete(c.items, idx, idx+1)
	return true, nil
}

// MoveItem repositions a packed item. It returns false, nil when no item
// with that reference is packed.
func (c *Container) MoveItem(reference string, position kernel.Position) (bool, error) {
	if c.closed {
		return false, errs.NewContainerError(c.reference, "container is closed")
	}

	idx := c.indexOf(reference)
	if idx < 0 {
		return false, nil
	}

	if err := c.items[idx].Reposition(position); err != nil {
		return false, err
	}
	return true, nil
}

// Validate checks the packed items against the container capacity.
//
// Checks run in this order and the first failure is returned:
//  1. occupied volume <= ContainerVolume, else *errs.ContainerError
//  2. every position has x <= length, y <= height and z <= depth,
//     else *errs.PositionError naming the item
//  3. no two packed items have intersecting regions, else
//     *errs.PositionError naming both items
func (c *Container) Validate() error {
	if err := c.guard.Validate(ErrContainerIsNotConstructed); err != nil {
		return err
	}

	if occupied := c.OccupiedVolume(); occupied > ContainerVolume {
		return errs.NewContainerError(c.reference,
			fmt.Sprintf("occupied volume %d exceeds capacity %d", occupied, ContainerVolume))
	}

	for _, item := range c.items {
		pos := item.Position()
		if pos.X() > ContainerLength || pos.Y() > ContainerHeight || pos.Z() > ContainerDepth {
			return errs.NewPositionError(item.Reference(),
				fmt.Sprintf("%s is outside container %s bounds (%d,%d,%d)",
					pos, c.reference, ContainerLength, ContainerHeight, ContainerDepth))
		}
	}

	for i := range c.items {
		for j := i + 1; j < len(c.items); j++ {
			if c.items[i].Region().Intersects(c.items[j].Region()) {
				return errs.NewPositionError(c.items[i].Reference(),
					fmt.Sprintf("item %s overlaps item %s in container %s",
						c.items[i].Reference(), c.items[j].Reference(), c.reference))
			}
		}
	}

	return nil
}

// Close validates the container and seals it. Closing a closed container is
// a no-op. On failure the container stays open.
func (c *Container) Close() error {
	if c.closed {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	c.closed = true
	return nil
}

// Item returns the packed item with the given reference.
func (c *Container) Item(reference string) (PackedItem, bool) {
	idx := c.indexOf(reference)
	if idx < 0 {
		return PackedItem{}, false
	}
	return c.items[idx], true
}

// ContainsItem reports whether an item with the given reference is packed.
func (c *Container) ContainsItem(reference string) bool {
	return c.indexOf(reference) >= 0
}

// PackedItems returns a copy of the packed items in packing order.
func (c *Container) PackedItems() []PackedItem {
	return slices.Clone(c.items)
}

func (c *Container) NumberOfItems() int {
	return len(c.items)
}

// OccupiedVolume is the sum of packed item volumes. The sum stops at
// math.MaxInt instead of wrapping, so an overfull container always fails
// the capacity check.
func (c *Container) OccupiedVolume() int {
	total := 0
	for _, item := range c.items {
		total = addSaturated(total, item.Volume())
	}
	return total
}

// RemainingVolume is ContainerVolume minus OccupiedVolume. It is negative
// for an overfilled open container.
func (c *Container) RemainingVolume() int {
	return ContainerVolume - c.OccupiedVolume()
}

func (c *Container) String() string {
	state := "open"
	if c.closed {
		state = "closed"
	}
	return fmt.Sprintf("Container(%s, %d items, %s)", c.reference, len(c.items), state)
}

func (c *Container) indexOf(reference string) int {
	return slices.IndexFunc(c.items, func(item PackedItem) bool {
		return item.Reference() == reference
	})
}

func (c *Container) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("container reference")
	}
	c.reference = reference
	return nil
}

func (c *Container) setColors(fill, edge kernel.Color) error {
	if err := validateColors(c.reference, fill, edge); err != nil {
		return err
	}
	c.fill = fill
	c.edge = edge
	return nil
}
