package layout

import (
	"testing"

	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
)

// testRenderBox is a fixed-size box that records its lifecycle calls.
type testRenderBox struct {
	RenderBoxBase
	desired     graphics.Size
	layoutCalls int
	paintCalls  int
	touches     []gestures.PointerEvent
	consume     bool
}

func newTestRenderBox(desired graphics.Size) *testRenderBox {
	r := &testRenderBox{desired: desired}
	r.SetSelf(r)
	return r
}

func (r *testRenderBox) Measure(c Constraints) graphics.Size {
	return c.Constrain(r.desired)
}

func (r *testRenderBox) PerformLayout() {
	r.layoutCalls++
	r.SetSize(r.Measure(r.Constraints()))
}

func (r *testRenderBox) Draw(canvas graphics.Canvas) {
	canvas.DrawRect(graphics.RectFromLTWH(0, 0, r.Size().Width, r.Size().Height), graphics.DefaultPaint())
}

func (r *testRenderBox) Paint(ctx *PaintContext) {
	r.paintCalls++
	r.Draw(ctx.Canvas)
}

func (r *testRenderBox) OnTouch(event gestures.PointerEvent) bool {
	r.touches = append(r.touches, event)
	return r.consume
}

func (r *testRenderBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if !WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

func TestPaintChildTranslatesAndRestores(t *testing.T) {
	child := newTestRenderBox(graphics.Size{Width: 10, Height: 10})
	child.Layout(Tight(graphics.Size{Width: 10, Height: 10}), false)

	recorder := &graphics.PictureRecorder{}
	ctx := &PaintContext{Canvas: recorder.BeginRecording(graphics.Size{Width: 20, Height: 20})}
	ctx.PaintChild(child, graphics.Offset{X: 5, Y: 5})
	ctx.PaintChild(nil, graphics.Offset{})
	dl := recorder.EndRecording()

	if child.paintCalls != 1 {
		t.Fatalf("paintCalls = %d, want 1", child.paintCalls)
	}
	// save, translate, rect, restore
	if dl.Len() != 4 {
		t.Fatalf("recorded %d ops, want 4", dl.Len())
	}
}

func TestWithinBounds(t *testing.T) {
	size := graphics.Size{Width: 10, Height: 20}
	tests := []struct {
		pos  graphics.Offset
		want bool
	}{
		{graphics.Offset{X: 0, Y: 0}, true},
		{graphics.Offset{X: 10, Y: 20}, true},
		{graphics.Offset{X: -1, Y: 5}, false},
		{graphics.Offset{X: 5, Y: 21}, false},
	}
	for _, tt := range tests {
		if got := WithinBounds(tt.pos, size); got != tt.want {
			t.Errorf("WithinBounds(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
