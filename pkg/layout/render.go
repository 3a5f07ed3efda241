package layout

import (
	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
)

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// Renderable is the callback contract a host drives: measure, then draw,
// then deliver pointer events. OnTouch reports whether the event was consumed;
// unconsumed events fall through to the host's default handling.
type Renderable interface {
	Measure(constraints Constraints) graphics.Size
	Draw(canvas graphics.Canvas)
	OnTouch(event gestures.PointerEvent) bool
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size        graphics.Size
	owner       *PipelineOwner
	self        RenderObject
	parent      RenderObject
	depth       int
	needsLayout bool
	needsPaint  bool
	constraints Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size.
// A changed size marks paint dirty since recorded content no longer fits.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// MarkNeedsLayout marks this render box as needing layout and schedules
// the nearest ancestor without a parent with the owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true

	if r.owner == nil || r.self == nil {
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	r.owner.ScheduleLayout(r.self)
}

// MarkNeedsPaint marks this render box as needing paint.
//
// Unlike MarkNeedsLayout, this does not early-return when already dirty:
// SetSelf pre-sets needsPaint without scheduling, and SchedulePaint
// deduplicates on its own.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true

	if r.owner == nil || r.self == nil {
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	r.owner.SchedulePaint(r.self)
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, or nil when detached.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and computes depth.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else if getter, ok := parent.(interface{ Depth() int }); ok {
		r.depth = getter.Depth() + 1
	} else {
		r.depth = 1
	}
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout skips work when clean with unchanged constraints and otherwise
// stores the constraints and delegates to the concrete PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
