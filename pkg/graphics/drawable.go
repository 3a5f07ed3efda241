package graphics

import "image"

// Drawable is something that can paint itself into arbitrary bounds, such as
// an image or a solid color. The holder decides where it goes; the drawable
// stretches to fill whatever bounds it is given.
type Drawable interface {
	// Draw paints the drawable stretched to bounds.
	Draw(canvas Canvas, bounds Rect)

	// IntrinsicSize returns the natural size of the drawable, or the zero
	// Size when it has none (solid colors, for instance).
	IntrinsicSize() Size
}

// ColorDrawable fills its bounds with a single color.
type ColorDrawable struct {
	Color Color
}

// Draw fills bounds with the drawable's color.
func (d ColorDrawable) Draw(canvas Canvas, bounds Rect) {
	paint := DefaultPaint()
	paint.Color = d.Color
	canvas.DrawRect(bounds, paint)
}

// IntrinsicSize returns the zero size; a color has no natural dimensions.
func (d ColorDrawable) IntrinsicSize() Size {
	return Size{}
}

// ImageDrawable stretches a decoded image over its bounds.
type ImageDrawable struct {
	Image image.Image

	// Quality selects the sampling used when the image is scaled.
	// Zero means nearest neighbor.
	Quality FilterQuality
}

// NewImageDrawable wraps img with bilinear sampling.
func NewImageDrawable(img image.Image) *ImageDrawable {
	return &ImageDrawable{Image: img, Quality: FilterQualityLow}
}

// Draw scales the whole image into bounds. Nothing is drawn when the image is
// nil or the bounds are empty.
func (d *ImageDrawable) Draw(canvas Canvas, bounds Rect) {
	if d == nil || d.Image == nil || bounds.IsEmpty() {
		return
	}
	canvas.DrawImageRect(d.Image, Rect{}, bounds, d.Quality)
}

// IntrinsicSize returns the pixel dimensions of the image.
func (d *ImageDrawable) IntrinsicSize() Size {
	if d == nil || d.Image == nil {
		return Size{}
	}
	b := d.Image.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}
