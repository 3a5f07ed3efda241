package testing

import (
	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// TapAt simulates a press and release at the given position. Consumed
// reports whether the press was consumed.
func (t *Tester) TapAt(pos graphics.Offset) bool {
	id := allocPointerID()
	consumed := t.SendPointerDown(pos, id)
	t.SendPointerUp(pos, id)
	t.consumed = consumed
	return consumed
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int64) bool {
	return t.sendPointer(gestures.PointerEvent{PointerID: pointerID, Position: pos, Phase: gestures.PointerPhaseDown})
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int64) bool {
	return t.sendPointer(gestures.PointerEvent{PointerID: pointerID, Position: pos, Phase: gestures.PointerPhaseMove})
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int64) bool {
	return t.sendPointer(gestures.PointerEvent{PointerID: pointerID, Position: pos, Phase: gestures.PointerPhaseUp})
}

// SendPointerCancel sends a pointer-cancel event at pos with the given pointer ID.
func (t *Tester) SendPointerCancel(pos graphics.Offset, pointerID int64) bool {
	return t.sendPointer(gestures.PointerEvent{PointerID: pointerID, Position: pos, Phase: gestures.PointerPhaseCancel})
}

// Consumed reports whether the most recent event was consumed.
func (t *Tester) Consumed() bool {
	return t.consumed
}

func (t *Tester) sendPointer(event gestures.PointerEvent) bool {
	t.consumed = t.host.DispatchPointer(event)
	return t.consumed
}
