package horde

// threadOverlap extends a spider's thread into the top of its sprite.
const threadOverlap = 10

// Spider drops from above the canvas on a thread, stops at a random depth and
// climbs back out.
type Spider struct {
	body
	maxDescent float64
	recoil     float64
}

// NewSpider places a spider just above the top edge at a random column.
func NewSpider(s Spawn) *Spider {
	sp := &Spider{
		body:   newBody(KindSpider, s),
		recoil: s.Config.Recoil,
	}
	sp.x = s.Rand.Float64() * s.Bounds.Width
	sp.y = -sp.h
	sp.vy = s.Config.Vy.Pick(s.Rand)
	sp.maxDescent = s.Rand.Float64() * s.Bounds.Height
	return sp
}

// Update descends at vy px/ms. Below maxDescent vy loses recoil every tick, so
// the spider turns around and retreats upward until it is two heights above
// the canvas.
func (sp *Spider) Update(dt float64) {
	sp.drift(dt)
	sp.cullIfOffLeft()
	sp.advance(dt)

	sp.y += sp.vy * dt
	if sp.y > sp.maxDescent {
		sp.vy -= sp.recoil
	}
	if sp.y < -sp.h*2 {
		sp.marked = true
	}
}

// Draw strings the thread from the top edge down to the spider, then the sprite.
func (sp *Spider) Draw(s Surface) {
	cx := sp.x + sp.w/2
	s.StrokeLine(cx, 0, cx, sp.y+threadOverlap)
	sp.drawSprite(s)
}
