package layout

import (
	"testing"

	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
)

func TestHostFramePaintsOnlyWhenDirty(t *testing.T) {
	box := newTestRenderBox(graphics.Size{Width: 50, Height: 50})
	host := NewHost(box, graphics.Size{Width: 100, Height: 80})

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(host.Size())

	if !host.Frame(canvas) {
		t.Fatal("first frame should paint")
	}
	if box.Size() != (graphics.Size{Width: 100, Height: 80}) {
		t.Errorf("root size = %+v, want host size", box.Size())
	}
	if host.Frame(canvas) {
		t.Error("clean frame should not paint")
	}
	if box.layoutCalls != 1 || box.paintCalls != 1 {
		t.Errorf("layoutCalls=%d paintCalls=%d, want 1 and 1", box.layoutCalls, box.paintCalls)
	}

	box.MarkNeedsPaint()
	if !host.Frame(canvas) {
		t.Error("MarkNeedsPaint should schedule a paint")
	}
	if box.layoutCalls != 1 {
		t.Errorf("paint-only change relaid out: layoutCalls=%d", box.layoutCalls)
	}

	box.MarkNeedsLayout()
	if !host.NeedsFrame() {
		t.Error("MarkNeedsLayout should request a frame")
	}
	host.Frame(canvas)
	if box.layoutCalls != 2 {
		t.Errorf("layoutCalls = %d, want 2", box.layoutCalls)
	}
}

func TestHostResize(t *testing.T) {
	box := newTestRenderBox(graphics.Size{})
	host := NewHost(box, graphics.Size{Width: 10, Height: 10})
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{Width: 40, Height: 30})
	host.Frame(canvas)

	host.Resize(graphics.Size{Width: 40, Height: 30})
	if !host.Frame(canvas) {
		t.Error("resize should repaint")
	}
	if box.Size() != (graphics.Size{Width: 40, Height: 30}) {
		t.Errorf("size after resize = %+v", box.Size())
	}
	host.Resize(graphics.Size{Width: 40, Height: 30})
	if host.NeedsFrame() {
		t.Error("resize to same size should not schedule")
	}
}

func TestHostDispatchPointer(t *testing.T) {
	box := newTestRenderBox(graphics.Size{})
	box.consume = true
	host := NewHost(box, graphics.Size{Width: 100, Height: 100})

	down := gestures.PointerEvent{PointerID: 1, Position: graphics.Offset{X: 20, Y: 30}, Phase: gestures.PointerPhaseDown}
	if !host.DispatchPointer(down) {
		t.Error("expected event to be consumed")
	}
	if len(box.touches) != 1 || box.touches[0] != down {
		t.Fatalf("touches = %+v", box.touches)
	}

	outside := gestures.PointerEvent{Position: graphics.Offset{X: 200, Y: 30}, Phase: gestures.PointerPhaseDown}
	if host.DispatchPointer(outside) {
		t.Error("event outside the root should not be consumed")
	}
	if len(box.touches) != 1 {
		t.Error("event outside the root should not be delivered")
	}

	box.consume = false
	if host.DispatchPointer(down) {
		t.Error("unconsumed event reported as consumed")
	}
}

func TestHostRecord(t *testing.T) {
	box := newTestRenderBox(graphics.Size{})
	host := NewHost(box, graphics.Size{Width: 30, Height: 20})

	dl := host.Record()
	if dl.Size() != host.Size() {
		t.Errorf("display list size = %+v, want %+v", dl.Size(), host.Size())
	}
	if dl.Len() == 0 {
		t.Fatal("display list is empty")
	}
	if host.NeedsFrame() {
		t.Error("recording left the frame dirty")
	}
	if box.paintCalls != 1 {
		t.Errorf("paintCalls = %d, want 1", box.paintCalls)
	}
}
