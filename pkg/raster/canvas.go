// Package raster renders graphics.Canvas calls into pixels with the gg
// software rasteriser.
package raster

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/go-drift/gridview/pkg/graphics"
)

// Canvas is a graphics.Canvas backed by a gg.Context. Coverage is always
// anti-aliased; Paint.AntiAlias is ignored.
type Canvas struct {
	ctx  *gg.Context
	size graphics.Size
}

var _ graphics.Canvas = (*Canvas)(nil)

// New returns a transparent canvas of width x height pixels.
func New(width, height int) *Canvas {
	return &Canvas{
		ctx:  gg.NewContext(width, height),
		size: graphics.Size{Width: float64(width), Height: float64(height)},
	}
}

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// EncodePNG writes the rendered pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// SavePNG writes the rendered pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

// Close releases the context.
func (c *Canvas) Close() error {
	return c.ctx.Close()
}

func (c *Canvas) Save()    { c.ctx.Push() }
func (c *Canvas) Restore() { c.ctx.Pop() }

func (c *Canvas) Translate(dx, dy float64) { c.ctx.Translate(dx, dy) }
func (c *Canvas) Scale(sx, sy float64)     { c.ctx.Scale(sx, sy) }

func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.ctx.ClipRect(rect.Left, rect.Top, rect.Width(), rect.Height())
}

// Clear replaces every pixel with color, ignoring clip and transform.
func (c *Canvas) Clear(color graphics.Color) {
	if color == graphics.ColorTransparent {
		c.ctx.Clear()
		return
	}
	c.ctx.ClearWithColor(gg.FromColor(color.NRGBA()))
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ctx.ClearPath()
	c.ctx.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	c.finish(paint)
}

func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ctx.ClearPath()
	r := rrect.Rect
	c.ctx.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), rrect.UniformRadius())
	c.finish(paint)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ctx.ClearPath()
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.finish(paint)
}

func (c *Canvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ctx.ClearPath()
	c.ctx.DrawLine(start.X, start.Y, end.X, end.Y)
	paint.Style = graphics.PaintStyleStroke
	c.finish(paint)
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	c.ctx.ClearPath()
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			c.ctx.MoveTo(a[0], a[1])
		case graphics.PathOpLineTo:
			c.ctx.LineTo(a[0], a[1])
		case graphics.PathOpQuadTo:
			c.ctx.QuadraticTo(a[0], a[1], a[2], a[3])
		case graphics.PathOpCubicTo:
			c.ctx.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case graphics.PathOpClose:
			c.ctx.ClosePath()
		}
	}
	if path.FillRule == graphics.FillRuleEvenOdd {
		c.ctx.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		c.ctx.SetFillRule(gg.FillRuleNonZero)
	}
	c.finish(paint)
}

func (c *Canvas) DrawImage(img image.Image, position graphics.Offset) {
	if img == nil {
		return
	}
	c.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:       position.X,
		Y:       position.Y,
		Opacity: 1,
	})
}

// DrawImageRect stretches srcRect of img into dstRect. An empty srcRect
// selects the whole image.
func (c *Canvas) DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality) {
	if img == nil || dstRect.IsEmpty() {
		return
	}
	opts := gg.DrawImageOptions{
		X:             dstRect.Left,
		Y:             dstRect.Top,
		DstWidth:      dstRect.Width(),
		DstHeight:     dstRect.Height(),
		Interpolation: interpolation(quality),
		Opacity:       1,
	}
	if !srcRect.IsEmpty() {
		src := image.Rect(int(srcRect.Left), int(srcRect.Top), int(srcRect.Right), int(srcRect.Bottom))
		opts.SrcRect = &src
	}
	c.ctx.DrawImageEx(gg.ImageBufFromImage(img), opts)
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

// finish fills and/or strokes the current path with paint.
func (c *Canvas) finish(paint graphics.Paint) {
	c.ctx.SetColor(paint.EffectiveColor().NRGBA())
	var err error
	switch paint.Style {
	case graphics.PaintStyleStroke:
		c.applyStroke(paint)
		err = c.ctx.Stroke()
	case graphics.PaintStyleFillAndStroke:
		if err = c.ctx.FillPreserve(); err == nil {
			c.applyStroke(paint)
			err = c.ctx.Stroke()
		}
	default:
		err = c.ctx.Fill()
	}
	if err != nil {
		gg.Logger().Warn("raster: draw failed", "err", err)
	}
}

func (c *Canvas) applyStroke(paint graphics.Paint) {
	c.ctx.SetLineWidth(max(paint.StrokeWidth, 1))
	switch paint.StrokeCap {
	case graphics.CapRound:
		c.ctx.SetLineCap(gg.LineCapRound)
	case graphics.CapSquare:
		c.ctx.SetLineCap(gg.LineCapSquare)
	default:
		c.ctx.SetLineCap(gg.LineCapButt)
	}
	switch paint.StrokeJoin {
	case graphics.JoinRound:
		c.ctx.SetLineJoin(gg.LineJoinRound)
	case graphics.JoinBevel:
		c.ctx.SetLineJoin(gg.LineJoinBevel)
	default:
		c.ctx.SetLineJoin(gg.LineJoinMiter)
	}
}

// interpolation maps a filter quality to gg's sampler. gg treats the zero
// mode as its bilinear default, so None and Low both sample bilinearly.
func interpolation(q graphics.FilterQuality) gg.InterpolationMode {
	switch q {
	case graphics.FilterQualityHigh:
		return gg.InterpBicubic
	case graphics.FilterQualityNone:
		return gg.InterpNearest
	default:
		return gg.InterpBilinear
	}
}
