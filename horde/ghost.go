package horde

import "math"

// Ghost floats leftward through the upper part of the canvas on a sine wave and
// is drawn translucent.
type Ghost struct {
	body
	angle     float64
	angleStep float64
	curve     float64
}

// NewGhost places a ghost at the right edge within the top Band of the canvas.
func NewGhost(s Spawn) *Ghost {
	g := &Ghost{
		body:      newBody(KindGhost, s),
		angleStep: s.Config.AngleStep,
	}
	g.x = s.Bounds.Width
	g.y = s.Bounds.Height * s.Rand.Float64() * s.Config.Band
	g.vx = s.Config.Vx.Pick(s.Rand)
	g.curve = s.Config.Curve.Pick(s.Rand)
	g.alpha = s.Config.Alpha
	return g
}

// Update drifts like any enemy, then bobs vertically. The phase step is per tick,
// not per millisecond.
func (g *Ghost) Update(dt float64) {
	g.drift(dt)
	g.cullIfOffLeft()
	g.advance(dt)

	g.y += math.Sin(g.angle) * g.curve
	g.angle += g.angleStep
}

func (g *Ghost) Draw(s Surface) {
	g.drawSprite(s)
}
