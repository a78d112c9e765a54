package main

import (
	"image"

	"github.com/plus3/spritehorde/horde"
)

// countingSurface discards drawing but counts the calls, so the stress run
// measures the world rather than a renderer.
type countingSurface struct {
	clears int64
	blits  int64
	lines  int64
}

func (s *countingSurface) Clear(horde.Rect) {
	s.clears++
}

func (s *countingSurface) Blit(horde.Image, horde.Rect, horde.Rect, float64) {
	s.blits++
}

func (s *countingSurface) StrokeLine(float64, float64, float64, float64) {
	s.lines++
}

// placeholderAtlas builds a blank sheet of the right size for every kind.
func placeholderAtlas(cfg horde.Config) horde.Atlas {
	atlas := make(horde.Atlas, len(horde.Kinds))
	for _, k := range horde.Kinds {
		if v := cfg.Variant(k); v != nil {
			atlas[k] = image.NewRGBA(image.Rect(0, 0, v.FrameWidth*(v.MaxFrame+1), v.FrameHeight))
		}
	}
	return atlas
}
