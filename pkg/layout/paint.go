package layout

import (
	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
)

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a child render object at the given offset.
func (p *PaintContext) PaintChild(child RenderObject, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}
