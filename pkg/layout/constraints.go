package layout

import (
	"math"

	"github.com/go-drift/gridview/pkg/graphics"
)

// Constraints bound the size a render object may choose.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that allow any size up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// IsTight reports whether both axes allow exactly one value.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain resolves a desired size on both axes with ResolveSize.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  ResolveSize(size.Width, c.MinWidth, c.MaxWidth),
		Height: ResolveSize(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// ResolveSize reconciles a desired extent with one axis of a constraint.
// A tight axis yields the constraint, a bounded axis clamps desired into
// [minimum, maximum], and an unbounded axis yields desired (at least minimum).
func ResolveSize(desired, minimum, maximum float64) float64 {
	if minimum >= maximum {
		return maximum
	}
	return min(max(desired, minimum), maximum)
}
