// Package gestures defines the pointer events hosts deliver to widgets.
package gestures

import (
	"fmt"

	"github.com/go-drift/gridview/pkg/graphics"
)

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown is the initial press.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports movement while pressed.
	PointerPhaseMove
	// PointerPhaseUp is the release.
	PointerPhaseUp
	// PointerPhaseCancel aborts the interaction.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in the receiver's local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}

// Translate returns a copy of the event with its position shifted by -offset,
// converting from a parent's coordinates to a child's.
func (e PointerEvent) Translate(offset graphics.Offset) PointerEvent {
	e.Position = graphics.Offset{X: e.Position.X - offset.X, Y: e.Position.Y - offset.Y}
	return e
}
