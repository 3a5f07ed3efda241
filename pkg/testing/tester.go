package testing

import (
	"testing"

	"github.com/go-drift/gridview/pkg/graphics"
	"github.com/go-drift/gridview/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 300
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 300
)

// Tester hosts one render object and drives layout, paint and pointer
// events the way an interactive host would, recording each painted frame.
type Tester struct {
	host     *layout.Host
	lastOps  Ops
	frames   int
	consumed bool
}

// NewTester hosts root at size. A zero size selects the default test size.
func NewTester(root layout.RenderObject, size graphics.Size) *Tester {
	if size.IsEmpty() {
		size = graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}
	}
	return &Tester{host: layout.NewHost(root, size)}
}

// NewTesterWithT is like NewTester and runs the first frame, failing the
// test if the root panics while painting.
func NewTesterWithT(t *testing.T, root layout.RenderObject, size graphics.Size) *Tester {
	t.Helper()
	tester := NewTester(root, size)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("first frame panicked: %v", r)
			}
		}()
		tester.Pump()
	}()
	return tester
}

// Host returns the underlying host.
func (t *Tester) Host() *layout.Host {
	return t.host
}

// Root returns the hosted render object.
func (t *Tester) Root() layout.RenderObject {
	return t.host.Root()
}

// Size returns the surface size.
func (t *Tester) Size() graphics.Size {
	return t.host.Size()
}

// SetSize resizes the surface. The next Pump lays out at the new size.
func (t *Tester) SetSize(size graphics.Size) {
	t.host.Resize(size)
}

// Pump runs one frame. If the root was dirty, the painted operations replace
// those returned by LastFrame. It reports whether a paint happened.
func (t *Tester) Pump() bool {
	canvas := &serializingCanvas{size: t.host.Size()}
	if !t.host.Frame(canvas) {
		return false
	}
	t.lastOps = canvas.ops
	t.frames++
	return true
}

// Frames returns how many frames have painted.
func (t *Tester) Frames() int {
	return t.frames
}

// LastFrame returns the operations painted by the most recent Pump that painted.
func (t *Tester) LastFrame() Ops {
	return t.lastOps
}

// DisplayOps paints the root now, regardless of dirtiness, and returns the ops.
func (t *Tester) DisplayOps() Ops {
	canvas := &serializingCanvas{size: t.host.Size()}
	t.host.Paint(canvas)
	return canvas.ops
}
