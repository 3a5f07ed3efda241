package layout

import (
	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
)

// Host drives a single root render object through layout, paint and pointer
// dispatch. It is not safe for concurrent use; callers run it on one goroutine.
type Host struct {
	root  RenderObject
	owner PipelineOwner
	size  graphics.Size
}

// NewHost attaches root to a fresh pipeline and schedules its first frame.
func NewHost(root RenderObject, size graphics.Size) *Host {
	h := &Host{root: root, size: size}
	root.SetOwner(&h.owner)
	h.owner.ScheduleLayout(root)
	h.owner.SchedulePaint(root)
	return h
}

// Root returns the hosted render object.
func (h *Host) Root() RenderObject {
	return h.root
}

// Size returns the size the root is laid out at.
func (h *Host) Size() graphics.Size {
	return h.size
}

// Resize changes the host size and schedules a new layout.
func (h *Host) Resize(size graphics.Size) {
	if h.size == size {
		return
	}
	h.size = size
	h.owner.ScheduleLayout(h.root)
	h.owner.SchedulePaint(h.root)
}

// Layout flushes pending layout with tight constraints at the host size.
func (h *Host) Layout() {
	h.owner.FlushLayoutForRoot(h.root, Tight(h.size))
}

// NeedsFrame reports whether layout or paint is pending.
func (h *Host) NeedsFrame() bool {
	return h.owner.NeedsLayout() || h.owner.NeedsPaint()
}

// Frame flushes layout and, if anything is dirty, paints the root onto canvas.
// It reports whether a paint happened.
func (h *Host) Frame(canvas graphics.Canvas) bool {
	h.Layout()
	if len(h.owner.FlushPaint()) == 0 {
		return false
	}
	h.Paint(canvas)
	return true
}

// Paint paints the root onto canvas unconditionally after flushing layout.
// Any pending paint request is consumed.
func (h *Host) Paint(canvas graphics.Canvas) {
	h.Layout()
	h.owner.FlushPaint()
	h.root.Paint(&PaintContext{Canvas: canvas})
	if clearer, ok := h.root.(interface{ ClearNeedsPaint() }); ok {
		clearer.ClearNeedsPaint()
	}
}

// Record paints the root into a display list at the host size, which can
// then be replayed onto any canvas.
func (h *Host) Record() *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	h.Paint(recorder.BeginRecording(h.size))
	return recorder.EndRecording()
}

// DispatchPointer hit tests event against the root and delivers it to every
// hit entry. Renderable entries receive OnTouch, other PointerHandler entries
// receive HandlePointer. It reports whether any Renderable consumed the event.
func (h *Host) DispatchPointer(event gestures.PointerEvent) bool {
	h.Layout()
	var result HitTestResult
	if !h.root.HitTest(event.Position, &result) {
		return false
	}
	consumed := false
	for _, entry := range result.Entries {
		switch target := entry.(type) {
		case Renderable:
			if target.OnTouch(event) {
				consumed = true
			}
		case PointerHandler:
			target.HandlePointer(event)
		}
	}
	return consumed
}
