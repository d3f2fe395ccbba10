package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when zero-value Dimensions are used.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is the size of a box: depth, height and length, all positive.
type Dimensions struct { //nolint:recvcheck //using for validation
	depth  int
	height int
	length int
	guard  guard.ConstructorGuard
}

// NewDimensions creates Dimensions, rejecting non-positive sizes and sizes
// whose volume does not fit in an int.
func NewDimensions(depth, height, length int) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setSide("depth", &d.depth, depth),
		d.setSide("height", &d.height, height),
		d.setSide("length", &d.length, length),
	); err != nil {
		return Dimensions{}, err
	}

	if d.depth > math.MaxInt/d.height || d.depth*d.height > math.MaxInt/d.length {
		return Dimensions{}, errs.NewValueIsOutOfRangeErrorWithCause("volume",
			fmt.Sprintf("%dx%dx%d", depth, height, length), 1, math.MaxInt,
			errors.New("volume overflows int"))
	}

	return d, nil
}

// Validate reports whether the Dimensions were built by a constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Depth() int {
	return d.depth
}

func (d Dimensions) Height() int {
	return d.height
}

func (d Dimensions) Length() int {
	return d.length
}

// Volume is depth × height × length.
func (d Dimensions) Volume() int {
	return d.depth * d.height * d.length
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%dx%dx%d)", d.depth, d.height, d.length)
}

func (d *Dimensions) setSide(name string, side *int, value int) error {
	if value <= 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 1, math.MaxInt)
	}
	*side = value
	return nil
}
