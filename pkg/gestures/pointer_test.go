package gestures

import (
	"testing"

	"github.com/go-drift/gridview/pkg/graphics"
)

func TestPointerPhaseString(t *testing.T) {
	tests := []struct {
		phase PointerPhase
		want  string
	}{
		{PointerPhaseDown, "down"},
		{PointerPhaseMove, "move"},
		{PointerPhaseUp, "up"},
		{PointerPhaseCancel, "cancel"},
		{PointerPhase(42), "PointerPhase(42)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("PointerPhase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}

func TestPointerEventTranslate(t *testing.T) {
	e := PointerEvent{PointerID: 7, Position: graphics.Offset{X: 50, Y: 40}, Phase: PointerPhaseDown}
	got := e.Translate(graphics.Offset{X: 10, Y: 5})
	if got.Position != (graphics.Offset{X: 40, Y: 35}) {
		t.Errorf("Position = %+v", got.Position)
	}
	if got.PointerID != 7 || got.Phase != PointerPhaseDown {
		t.Errorf("Translate changed identity fields: %+v", got)
	}
	if e.Position.X != 50 {
		t.Errorf("Translate mutated the receiver")
	}
}
