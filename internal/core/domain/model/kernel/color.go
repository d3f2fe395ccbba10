package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrColorIsNotConstructed is returned when a zero-value Color is used.
var ErrColorIsNotConstructed = errs.NewValueIsRequiredError(
	"color must be created via NewColor or ColorFromHex constructors")

// Color is an RGB display colour for containers and packed items.
// The zero value stands for "no colour" and fails Validate.
type Color struct {
	r, g, b uint8
	guard   guard.ConstructorGuard
}

// NewColor creates a Color from its RGB components.
func NewColor(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, guard: guard.NewConstructorGuard()}
}

// ColorFromHex parses "#rrggbb" (the leading '#' is optional).
func ColorFromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, errs.NewValueIsInvalidErrorWithCause("color", fmt.Errorf("%q is not a #rrggbb colour", s))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errs.NewValueIsInvalidErrorWithCause("color", err)
	}

	return NewColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil //nolint:gosec // masked by the conversion
}

func Black() Color { return NewColor(0x00, 0x00, 0x00) }
func White() Color { return NewColor(0xff, 0xff, 0xff) }
func Red() Color   { return NewColor(0xff, 0x00, 0x00) }
func Green() Color { return NewColor(0x00, 0xff, 0x00) }
func Blue() Color  { return NewColor(0x00, 0x00, 0xff) }

// Validate reports whether the Color was built by a constructor.
func (c Color) Validate() error {
	return c.guard.Validate(ErrColorIsNotConstructed)
}

// RGB returns the colour components.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// String returns the "#rrggbb" form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}
