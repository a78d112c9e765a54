package horde

// Worm crawls along the ground from the right edge to the left.
type Worm struct {
	body
}

// NewWorm places a worm at the right edge, resting on the bottom of the canvas.
func NewWorm(s Spawn) *Worm {
	w := &Worm{body: newBody(KindWorm, s)}
	w.x = s.Bounds.Width
	w.y = s.Bounds.Height - w.h
	w.vx = s.Config.Vx.Pick(s.Rand)
	return w
}

func (w *Worm) Update(dt float64) {
	w.drift(dt)
	w.cullIfOffLeft()
	w.advance(dt)
}

func (w *Worm) Draw(s Surface) {
	w.drawSprite(s)
}
