package horde

import (
	"image"
	"reflect"
)

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Image is an opaque, already-decoded sprite sheet handle. Both *ebiten.Image and
// image.Image satisfy it.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is the drawing capability the world renders into. Implementations must
// not retain the alpha passed to Blit beyond that call.
type Surface interface {
	// Clear erases r.
	Clear(r Rect)
	// Blit draws the src region of img scaled into dst with the given opacity.
	Blit(img Image, src, dst Rect, alpha float64)
	// StrokeLine draws a thin line between two points.
	StrokeLine(x0, y0, x1, y1 float64)
}

// usable reports whether img can be drawn from. A nil handle or a sheet that
// failed to decode (empty bounds) is skipped for the frame.
func usable(img Image) bool {
	if img == nil {
		return false
	}
	if v := reflect.ValueOf(img); v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return !img.Bounds().Empty()
}
