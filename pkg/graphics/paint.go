package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing visible (transparent color).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels
	StrokeCap   StrokeCap
	StrokeJoin  StrokeJoin

	// AntiAlias smooths shape edges. Backends that always anti-alias ignore it.
	AntiAlias bool

	// Alpha is the overall opacity 0.0-1.0, multiplied into Color's alpha.
	Alpha float64
}

// DefaultPaint returns a basic opaque white, anti-aliased fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
		AntiAlias:   true,
		Alpha:       1.0,
	}
}

// EffectiveColor returns Color with Alpha folded into its alpha channel.
func (p Paint) EffectiveColor() Color {
	if p.Alpha >= 1 {
		return p.Color
	}
	return p.Color.WithAlpha(p.Color.Alpha() * clamp01(p.Alpha))
}
