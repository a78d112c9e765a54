// Package ebitensurface renders a horde World onto an ebiten image.
package ebitensurface

import (
	"image"
	"image/color"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/spritehorde/horde"
)

// Surface implements horde.Surface on top of an *ebiten.Image. Sheets given as
// plain image.Image values are uploaded once and cached.
type Surface struct {
	dst *ebiten.Image

	// Background fills cleared regions. Nil leaves them transparent.
	Background  color.Color
	ThreadColor color.Color
	ThreadWidth float32
	Filter      ebiten.Filter

	uploads map[horde.Image]*ebiten.Image
}

var _ horde.Surface = (*Surface)(nil)

// New creates a surface drawing into dst.
func New(dst *ebiten.Image) *Surface {
	return &Surface{
		dst:         dst,
		ThreadColor: color.Black,
		ThreadWidth: 1,
		Filter:      ebiten.FilterLinear,
		uploads:     make(map[horde.Image]*ebiten.Image),
	}
}

// Target points the surface at a new destination, typically the screen passed to
// ebiten.Game.Draw. Uploaded sheets are kept.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Clear erases r, then fills it with Background if one is set.
func (s *Surface) Clear(r horde.Rect) {
	if s.dst == nil {
		return
	}
	region := s.dst.SubImage(toRectangle(r)).(*ebiten.Image)
	region.Clear()
	if s.Background != nil {
		region.Fill(s.Background)
	}
}

// Blit draws the src region of img into dst with the given opacity.
func (s *Surface) Blit(img horde.Image, src, dst horde.Rect, alpha float64) {
	if s.dst == nil || src.W <= 0 || src.H <= 0 {
		return
	}
	sheet := s.upload(img)
	if sheet == nil {
		return
	}
	frame, ok := sheet.SubImage(toRectangle(src)).(*ebiten.Image)
	if !ok || frame.Bounds().Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = s.Filter
	s.dst.DrawImage(frame, op)
}

// StrokeLine draws a line in ThreadColor.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), s.ThreadWidth, s.ThreadColor, true)
}

func (s *Surface) upload(img horde.Image) *ebiten.Image {
	switch v := img.(type) {
	case nil:
		return nil
	case *ebiten.Image:
		return v
	case image.Image:
		cacheable := reflect.TypeOf(img).Comparable()
		if cacheable {
			if cached, ok := s.uploads[img]; ok {
				return cached
			}
		}
		uploaded := ebiten.NewImageFromImage(v)
		if cacheable {
			s.uploads[img] = uploaded
		}
		return uploaded
	default:
		return nil
	}
}

func toRectangle(r horde.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}
