package graphics

import "image"

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Bilinear
	FilterQualityMedium                      // Bilinear, smoother downscaling where supported
	FilterQualityHigh                        // Bicubic
)

// String returns a human-readable representation of the filter quality.
func (q FilterQuality) String() string {
	switch q {
	case FilterQualityNone:
		return "none"
	case FilterQualityLow:
		return "low"
	case FilterQualityMedium:
		return "medium"
	case FilterQualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImage draws an image with its top-left corner at the given position.
	DrawImage(img image.Image, position Offset)

	// DrawImageRect draws an image from srcRect to dstRect with sampling quality.
	// srcRect selects the source region (zero rect = entire image).
	DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
