package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPositionIsNotConstructed is returned when a zero-value Position is used.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"position must be created via NewPosition constructor")

// Position is a point inside a container, measured in container units from
// its origin corner. Coordinates are never negative.
//
// Position is an immutable value object: moving a packed item means giving it
// a new Position. The zero value is invalid and fails Validate, which lets
// containers reject a missing position argument.
//
// Example:
//
//	pos, err := kernel.NewPosition(4, 0, 0)
//	if err != nil {
//	    // handle *errs.PositionError
//	}
//	fmt.Println(pos) // Position(4,0,0)
type Position struct { //nolint:recvcheck //using for validation
	x     int
	y     int
	z     int
	guard guard.ConstructorGuard
}

// NewPosition creates a Position. Every negative coordinate is reported in
// the returned error, joined.
func NewPosition(x, y, z int) (Position, error) {
	pos := Position{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pos.setX(x), pos.setY(y), pos.setZ(z)); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// MustNewPosition is NewPosition for literals known to be valid. It panics on error.
func MustNewPosition(x, y, z int) Position {
	pos, err := NewPosition(x, y, z)
	if err != nil {
		panic(err)
	}
	return pos
}

// Validate reports whether the Position was built by a constructor.
func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

// X is the coordinate along the container length.
func (p Position) X() int {
	return p.x
}

// Y is the coordinate along the container height.
func (p Position) Y() int {
	return p.y
}

// Z is the coordinate along the container depth.
func (p Position) Z() int {
	return p.z
}

// IsEqual compares coordinates. Both positions must be constructed.
func (p Position) IsEqual(other Position) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p == other, nil
}

// String returns "Position(x,y,z)".
func (p Position) String() string {
	return fmt.Sprintf("Position(%d,%d,%d)", p.x, p.y, p.z)
}

func (p *Position) setX(x int) error {
	if x < 0 {
		return errs.NewPositionError("", fmt.Sprintf("x coordinate %d is lower than 0", x))
	}
	p.x = x
	return nil
}

func (p *Position) setY(y int) error {
	if y < 0 {
		return errs.NewPositionError("", fmt.Sprintf("y coordinate %d is lower than 0", y))
	}
	p.y = y
	return nil
}

func (p *Position) setZ(z int) error {
	if z < 0 {
		return errs.NewPositionError("", fmt.Sprintf("z coordinate %d is lower than 0", z))
	}
	p.z = z
	return nil
}
