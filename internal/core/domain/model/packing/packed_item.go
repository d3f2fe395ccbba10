package packing

import (
	"fmt"
	"math"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Region is the half-open box [MinX,MaxX) × [MinY,MaxY) × [MinZ,MaxZ)
// occupied by a packed item.
type Region struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// Intersects reports whether both regions share any volume. Boxes that only
// touch on a face do not intersect.
func (r Region) Intersects(other Region) bool {
	return r.MinX < other.MaxX && other.MinX < r.MaxX &&
		r.MinY < other.MaxY && other.MinY < r.MaxY &&
		r.MinZ < other.MaxZ && other.MinZ < r.MaxZ
}

// PackedItem is an item placed inside a container. It keeps its own copy of
// the item, so later changes to the order's item do not reach packed state.
type PackedItem struct {
	item     Item
	position kernel.Position
	fill     kernel.Color
	edge     kernel.Color
}

// NewPackedItem binds a copy of item to a position and colours. It is used by
// Container.AddItem and by persistence adapters restoring containers.
func NewPackedItem(item *Item, position kernel.Position, fill, edge kernel.Color) (PackedItem, error) {
	if err := item.Validate(); err != nil {
		return PackedItem{}, errs.NewContainerErrorWithCause("", "item is required", err)
	}
	if err := position.Validate(); err != nil {
		return PackedItem{}, errs.NewContainerErrorWithCause(item.Reference(), "position is required", err)
	}
	if err := validateColors(item.Reference(), fill, edge); err != nil {
		return PackedItem{}, err
	}

	return PackedItem{
		item:     *item,
		position: position,
		fill:     fill,
		edge:     edge,
	}, nil
}

// Item returns a copy of the packed item.
func (p PackedItem) Item() *Item {
	item := p.item
	return &item
}

func (p PackedItem) Reference() string {
	return p.item.reference
}

func (p PackedItem) Position() kernel.Position {
	return p.position
}

func (p PackedItem) FillColor() kernel.Color {
	return p.fill
}

func (p PackedItem) EdgeColor() kernel.Color {
	return p.edge
}

func (p PackedItem) Volume() int {
	return p.item.Volume()
}

// Region maps length to x, height to y and depth to z. Far corners are
// clamped to math.MaxInt.
func (p PackedItem) Region() Region {
	return Region{
		MinX: p.position.X(),
		MinY: p.position.Y(),
		MinZ: p.position.Z(),
		MaxX: addSaturated(p.position.X(), p.item.Length()),
		MaxY: addSaturated(p.position.Y(), p.item.Height()),
		MaxZ: addSaturated(p.position.Z(), p.item.Depth()),
	}
}

// Reposition replaces the position.
func (p *PackedItem) Reposition(position kernel.Position) error {
	if err := position.Validate(); err != nil {
		return errs.NewContainerErrorWithCause(p.Reference(), "position is required", err)
	}
	p.position = position
	return nil
}

// Recolor replaces both colours.
func (p *PackedItem) Recolor(fill, edge kernel.Color) error {
	if err := validateColors(p.Reference(), fill, edge); err != nil {
		return err
	}
	p.fill = fill
	p.edge = edge
	return nil
}

func (p PackedItem) String() string {
	return fmt.Sprintf("PackedItem(%s at %s)", p.item.reference, p.position)
}

func validateColors(reference string, fill, edge kernel.Color) error {
	if err := fill.Validate(); err != nil {
		return errs.NewContainerErrorWithCause(reference, "fill colour is required", err)
	}
	if err := edge.Validate(); err != nil {
		return errs.NewContainerErrorWithCause(reference, "edge colour is required", err)
	}
	return nil
}

// addSaturated adds two non-negative ints, returning math.MaxInt on overflow.
func addSaturated(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
