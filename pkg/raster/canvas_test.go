package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/gridview/pkg/graphics"
)

func pixel(t *testing.T, c *Canvas, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(c.Image().At(x, y)).(color.NRGBA)
}

func opaque(p color.NRGBA) bool { return p.A == 0xFF }

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New(w, h)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func redFill() graphics.Paint {
	p := graphics.DefaultPaint()
	p.Color = graphics.ColorRed
	return p
}

func TestDrawRectFillsInterior(t *testing.T) {
	c := newCanvas(t, 50, 50)
	c.DrawRect(graphics.RectFromLTWH(10, 10, 20, 20), redFill())

	if got := pixel(t, c, 20, 20); got != (color.NRGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("inside = %v, want opaque red", got)
	}
	if got := pixel(t, c, 5, 5); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
	if got := pixel(t, c, 40, 40); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestClear(t *testing.T) {
	c := newCanvas(t, 8, 8)
	c.Clear(graphics.ColorWhite)
	if got := pixel(t, c, 3, 3); got != (color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("after white clear = %v", got)
	}
	c.Clear(graphics.ColorTransparent)
	if got := pixel(t, c, 3, 3); got.A != 0 {
		t.Errorf("after transparent clear = %v", got)
	}
}

func TestClipAndTranslate(t *testing.T) {
	c := newCanvas(t, 40, 40)
	c.Save()
	c.ClipRect(graphics.RectFromLTWH(0, 0, 20, 40))
	c.DrawRect(graphics.RectFromLTWH(0, 0, 40, 40), redFill())
	c.Restore()

	if !opaque(pixel(t, c, 10, 20)) {
		t.Error("inside clip not painted")
	}
	if got := pixel(t, c, 30, 20); got.A != 0 {
		t.Errorf("outside clip = %v, want transparent", got)
	}

	c.Save()
	c.Translate(25, 0)
	c.DrawRect(graphics.RectFromLTWH(0, 0, 10, 10), redFill())
	c.Restore()
	if !opaque(pixel(t, c, 30, 5)) {
		t.Error("translated rect not painted")
	}
	if got := pixel(t, c, 30, 20); got.A != 0 {
		t.Errorf("restore did not drop translation: %v", got)
	}
}

func TestDrawCircleAndTriangle(t *testing.T) {
	c := newCanvas(t, 60, 60)
	c.DrawCircle(graphics.Offset{X: 15, Y: 15}, 10, redFill())
	if !opaque(pixel(t, c, 15, 15)) {
		t.Error("circle center not painted")
	}
	if got := pixel(t, c, 2, 2); got.A != 0 {
		t.Errorf("circle corner = %v, want transparent", got)
	}

	tri := graphics.NewPath()
	tri.MoveTo(45, 30)
	tri.LineTo(30, 60)
	tri.LineTo(60, 60)
	tri.Close()
	c.DrawPath(tri, redFill())
	if !opaque(pixel(t, c, 45, 55)) {
		t.Error("triangle interior not painted")
	}
	if got := pixel(t, c, 32, 33); got.A != 0 {
		t.Errorf("triangle exterior = %v, want transparent", got)
	}
}

func TestDrawImageRectStretches(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	blue := color.NRGBA{B: 0xFF, A: 0xFF}
	for y := range 2 {
		for x := range 2 {
			src.SetNRGBA(x, y, blue)
		}
	}

	c := newCanvas(t, 30, 30)
	c.DrawImageRect(src, graphics.Rect{}, graphics.RectFromLTWH(10, 10, 10, 10), graphics.FilterQualityLow)

	got := pixel(t, c, 15, 15)
	if got.B < 0xF0 || got.A < 0xF0 {
		t.Errorf("stretched image center = %v, want blue", got)
	}
	if got := pixel(t, c, 5, 5); got.A != 0 {
		t.Errorf("outside destination = %v, want transparent", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := newCanvas(t, 12, 7)
	c.Clear(graphics.ColorBlack)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("bounds = %v", b)
	}
	if c.Size() != (graphics.Size{Width: 12, Height: 7}) {
		t.Errorf("Size() = %+v", c.Size())
	}
}
