package horde

import "math/rand/v2"

// EntityID identifies an entity for the lifetime of its World. Ids start at 1 and
// are never reused.
type EntityID uint64

// Bounds is the canvas size an entity moves within.
type Bounds struct {
	Width, Height float64
}

// Entity is the per-frame contract every enemy variant implements.
type Entity interface {
	ID() EntityID
	Kind() Kind
	// Update advances motion and animation by dt milliseconds.
	Update(dt float64)
	// Draw renders the current frame. It never panics on a missing image.
	Draw(s Surface)
	// MarkedForDeletion reports whether the entity is dead. Once true it stays true.
	MarkedForDeletion() bool
	// MarkForDeletion kills the entity from outside, e.g. a host Delete command.
	MarkForDeletion()
	// Snapshot returns a copy of the entity's observable state.
	Snapshot() Snapshot
}

// Snapshot is a read-only copy of an entity's state.
type Snapshot struct {
	ID         EntityID
	Kind       Kind
	X, Y       float64
	W, H       float64
	VX, VY     float64
	Frame      int
	MaxFrame   int
	FrameTimer float64
	Alpha      float64
	Marked     bool
}

// Spawn carries everything a Factory needs to build one entity.
type Spawn struct {
	ID     EntityID
	Bounds Bounds
	Config VariantConfig
	Timing FrameTiming
	Image  Image
	Rand   *rand.Rand
}

// body is the state and behaviour shared by all variants. Variants call its
// helpers explicitly from their own Update and Draw.
type body struct {
	id     EntityID
	kind   Kind
	bounds Bounds
	sheet  Sheet
	cycle  FrameCycle
	alpha  float64

	x, y   float64
	w, h   float64
	vx, vy float64

	marked bool
}

func newBody(kind Kind, s Spawn) body {
	return body{
		id:     s.ID,
		kind:   kind,
		bounds: s.Bounds,
		sheet: Sheet{
			Image:       s.Image,
			FrameWidth:  s.Config.FrameWidth,
			FrameHeight: s.Config.FrameHeight,
		},
		cycle: NewFrameCycle(s.Config.MaxFrame, s.Config.FrameInterval, s.Timing),
		alpha: 1,
		w:     s.Config.Width(),
		h:     s.Config.Height(),
	}
}

func (b *body) ID() EntityID { return b.id }

func (b *body) Kind() Kind { return b.kind }

func (b *body) MarkedForDeletion() bool { return b.marked }

func (b *body) MarkForDeletion() { b.marked = true }

func (b *body) Snapshot() Snapshot {
	return Snapshot{
		ID:         b.id,
		Kind:       b.kind,
		X:          b.x,
		Y:          b.y,
		W:          b.w,
		H:          b.h,
		VX:         b.vx,
		VY:         b.vy,
		Frame:      b.cycle.Frame,
		MaxFrame:   b.cycle.MaxFrame,
		FrameTimer: b.cycle.Timer,
		Alpha:      b.alpha,
		Marked:     b.marked,
	}
}

// advance steps the sprite animation.
func (b *body) advance(dt float64) {
	b.cycle.Advance(dt)
}

// drift moves the body left at vx px/ms.
func (b *body) drift(dt float64) {
	b.x -= b.vx * dt
}

// cullIfOffLeft marks the body once it is fully past the left edge.
func (b *body) cullIfOffLeft() {
	if b.x+b.w < 0 {
		b.marked = true
	}
}

// drawSprite blits the current frame at the body's position.
func (b *body) drawSprite(s Surface) {
	if !usable(b.sheet.Image) {
		return
	}
	s.Blit(b.sheet.Image, b.sheet.Source(b.cycle.Frame), Rect{X: b.x, Y: b.y, W: b.w, H: b.h}, b.alpha)
}
