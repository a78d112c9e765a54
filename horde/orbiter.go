package horde

import "math"

// Orbiter follows a closed Lissajous-style path across the whole canvas. Its
// position is recomputed from its phase every tick rather than integrated.
type Orbiter struct {
	body
	angle      float64
	angleSpeed float64
}

// NewOrbiter places an orbiter at a random point inside the canvas. The first
// Update moves it onto its path.
func NewOrbiter(s Spawn) *Orbiter {
	o := &Orbiter{
		body:       newBody(KindOrbiter, s),
		angleSpeed: s.Config.AngleSpeed.Pick(s.Rand),
	}
	o.x = s.Rand.Float64() * (s.Bounds.Width - o.w)
	o.y = s.Rand.Float64() * (s.Bounds.Height - o.h)
	return o
}

// Update never marks the orbiter; it wraps to the right edge if it ever leaves on
// the left.
func (o *Orbiter) Update(dt float64) {
	halfW := o.bounds.Width / 2
	halfH := o.bounds.Height / 2
	o.x = halfW*math.Sin(o.angle*math.Pi/90) + (halfW - o.w/2)
	o.y = halfH*math.Cos(o.angle*math.Pi/360) + (halfH - o.h/2)
	o.angle += o.angleSpeed
	if o.x+o.w < 0 {
		o.x = o.bounds.Width
	}
	o.advance(dt)
}

func (o *Orbiter) Draw(s Surface) {
	o.drawSprite(s)
}
