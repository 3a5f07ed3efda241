package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/gridview/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Ops is an ordered list of display operations.
type Ops []DisplayOp

// Filter returns the operations named op, in order.
func (o Ops) Filter(op string) Ops {
	var out Ops
	for _, d := range o {
		if d.Op == op {
			out = append(out, d)
		}
	}
	return out
}

// Names returns the operation names, in order.
func (o Ops) Names() []string {
	names := make([]string, len(o))
	for i, d := range o {
		names[i] = d.Op
	}
	return names
}

// CaptureOps runs draw against a serializing canvas of the given size and
// returns what it drew.
func CaptureOps(size graphics.Size, draw func(graphics.Canvas)) Ops {
	canvas := &serializingCanvas{size: size}
	draw(canvas)
	return canvas.ops
}

// RectParam decodes a serialized rect parameter back into a graphics.Rect.
// It returns false if the parameter is missing or malformed.
func (d DisplayOp) RectParam(name string) (graphics.Rect, bool) {
	m, ok := d.Params[name].(map[string]any)
	if !ok {
		return graphics.Rect{}, false
	}
	l, ok1 := m["left"].(float64)
	t, ok2 := m["top"].(float64)
	r, ok3 := m["right"].(float64)
	b, ok4 := m["bottom"].(float64)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return graphics.Rect{}, false
	}
	return graphics.Rect{Left: l, Top: t, Right: r, Bottom: b}, true
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  Ops
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", serializeRadius(rrect),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: sortedMap(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	var points [][2]float64
	if path != nil {
		for _, p := range path.Points() {
			points = append(points, [2]float64{round2(p.X), round2(p.Y)})
		}
	}
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: sortedMap("points", points, "color", serializeColor(paint.Color)),
	})
}

func (c *serializingCanvas) DrawImage(_ image.Image, position graphics.Offset) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawImage",
		Params: sortedMap("x", round2(position.X), "y", round2(position.Y)),
	})
}

func (c *serializingCanvas) DrawImageRect(_ image.Image, _, dstRect graphics.Rect, quality graphics.FilterQuality) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawImageRect",
		Params: sortedMap("dst", serializeRect(dstRect), "quality", quality.String()),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *graphics.DisplayList) Ops {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// JSON encoding sorts the keys, which keeps snapshots stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
