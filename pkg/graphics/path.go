package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// A Path may be reused across frames: Clear keeps the command storage.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Points returns the end point of every command that has one, in order.
func (p *Path) Points() []Offset {
	points := make([]Offset, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		if n := len(cmd.Args); n >= 2 {
			points = append(points, Offset{X: cmd.Args[n-2], Y: cmd.Args[n-1]})
		}
	}
	return points
}

// Bounds returns the bounding box of all command coordinates, including
// curve control points. An empty path has empty bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	seen := false
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			r.Left = math.Min(r.Left, x)
			r.Top = math.Min(r.Top, y)
			r.Right = math.Max(r.Right, x)
			r.Bottom = math.Max(r.Bottom, y)
			seen = true
		}
	}
	if !seen {
		return Rect{}
	}
	return r
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{FillRule: p.FillRule, Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}
