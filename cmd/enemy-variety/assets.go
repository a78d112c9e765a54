package main

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/plus3/spritehorde/horde"
)

var placeholderColors = map[horde.Kind]color.RGBA{
	horde.KindWorm:    {R: 0x7c, G: 0xb3, B: 0x42, A: 0xff},
	horde.KindGhost:   {R: 0xe0, G: 0xe0, B: 0xf0, A: 0xff},
	horde.KindSpider:  {R: 0x8e, G: 0x24, B: 0xaa, A: 0xff},
	horde.KindOrbiter: {R: 0xf5, G: 0x7f, B: 0x17, A: 0xff},
}

// loadAtlas reads <kind>.png from dir for every kind. Missing or unreadable files
// are replaced with a placeholder sheet of the configured geometry.
func loadAtlas(dir string, cfg horde.Config, logger *log.Logger) horde.Atlas {
	atlas := make(horde.Atlas, len(horde.Kinds))
	for _, k := range horde.Kinds {
		path := filepath.Join(dir, k.String()+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		switch {
		case err == nil:
			atlas[k] = img
			logger.Debug("loaded sheet", "kind", k, "path", path)
			continue
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("sheet missing, using placeholder", "kind", k, "path", path)
		default:
			logger.Warn("failed to load sheet, using placeholder", "kind", k, "path", path, "err", err)
		}
		atlas[k] = placeholderSheet(k, *cfg.Variant(k))
	}
	return atlas
}

// placeholderSheet draws MaxFrame+1 frames side by side. Each frame is a filled
// ellipse in the kind's color whose width pulses with the frame index, so the
// animation is visible without real art.
func placeholderSheet(k horde.Kind, v horde.VariantConfig) *image.RGBA {
	frames := v.MaxFrame + 1
	sheet := image.NewRGBA(image.Rect(0, 0, v.FrameWidth*frames, v.FrameHeight))
	c := placeholderColors[k]

	for f := range frames {
		ox := f * v.FrameWidth
		cx, cy := float64(v.FrameWidth)/2, float64(v.FrameHeight)/2
		pulse := 0.7 + 0.3*float64(f)/float64(max(frames-1, 1))
		rx, ry := cx*pulse, cy*0.8

		for y := range v.FrameHeight {
			for x := range v.FrameWidth {
				dx := (float64(x) + 0.5 - cx) / rx
				dy := (float64(y) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 {
					sheet.SetRGBA(ox+x, y, c)
				}
			}
		}
	}
	return sheet
}
