package horde_test

import (
	"image"
	"math/rand/v2"

	"github.com/plus3/spritehorde/horde"
)

// sheetImage is a decoded sprite sheet stand-in.
type sheetImage struct {
	w, h int
}

func (s *sheetImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.w, s.h)
}

type blitCall struct {
	Image horde.Image
	Src   horde.Rect
	Dst   horde.Rect
	Alpha float64
}

type lineCall struct {
	X0, Y0, X1, Y1 float64
}

// recordingSurface captures every draw call.
type recordingSurface struct {
	clears []horde.Rect
	blits  []blitCall
	lines  []lineCall
	panics bool
}

func (r *recordingSurface) Clear(rect horde.Rect) {
	r.clears = append(r.clears, rect)
}

func (r *recordingSurface) Blit(img horde.Image, src, dst horde.Rect, alpha float64) {
	if r.panics {
		panic("surface lost")
	}
	r.blits = append(r.blits, blitCall{Image: img, Src: src, Dst: dst, Alpha: alpha})
}

func (r *recordingSurface) StrokeLine(x0, y0, x1, y1 float64) {
	r.lines = append(r.lines, lineCall{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

func (r *recordingSurface) reset() {
	r.clears = nil
	r.blits = nil
	r.lines = nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testAtlas() horde.Atlas {
	return horde.Atlas{
		horde.KindWorm:    &sheetImage{w: 229 * 6, h: 171},
		horde.KindGhost:   &sheetImage{w: 261 * 6, h: 209},
		horde.KindSpider:  &sheetImage{w: 310 * 6, h: 175},
		horde.KindOrbiter: &sheetImage{w: 218 * 6, h: 177},
	}
}

func spawnOf(k horde.Kind, cfg horde.Config, seed uint64) horde.Spawn {
	return horde.Spawn{
		ID:     1,
		Bounds: horde.Bounds{Width: cfg.Width, Height: cfg.Height},
		Config: *cfg.Variant(k),
		Timing: cfg.FrameTiming,
		Image:  testAtlas()[k],
		Rand:   newRand(seed),
	}
}

// scriptedEntity marks itself after a fixed number of updates.
type scriptedEntity struct {
	id        horde.EntityID
	kind      horde.Kind
	y         float64
	updates   int
	markAfter int
	marked    bool
}

func (s *scriptedEntity) ID() horde.EntityID { return s.id }

func (s *scriptedEntity) Kind() horde.Kind { return s.kind }

func (s *scriptedEntity) MarkForDeletion() { s.marked = true }

func (s *scriptedEntity) MarkedForDeletion() bool { return s.marked }

func (s *scriptedEntity) Update(dt float64) {
	s.updates++
	if s.markAfter > 0 && s.updates >= s.markAfter {
		s.marked = true
	}
}

func (s *scriptedEntity) Draw(surface horde.Surface) {
	surface.Blit(&sheetImage{w: 1, h: 1}, horde.Rect{W: 1, H: 1}, horde.Rect{Y: s.y, W: 1, H: 1}, 1)
}

func (s *scriptedEntity) Snapshot() horde.Snapshot {
	return horde.Snapshot{ID: s.id, Kind: s.kind, Y: s.y, Marked: s.marked}
}
