package horde_test

import (
	"testing"

	"github.com/plus3/spritehorde/horde"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorm(t *testing.T) {
	cfg := horde.DefaultConfig()
	w := horde.NewWorm(spawnOf(horde.KindWorm, cfg, 1))

	start := w.Snapshot()
	assert.Equal(t, 500.0, start.X)
	assert.Equal(t, 500-171*0.5, start.Y, "rests on the ground")
	assert.InDelta(t, 0.15, start.VX, 0.05)

	t.Run("moves left only", func(t *testing.T) {
		prev := start
		for range 200 {
			w.Update(16)
			cur := w.Snapshot()
			assert.Equal(t, start.Y, cur.Y)
			assert.Less(t, cur.X, prev.X)
			prev = cur
		}
	})

	t.Run("marked once off the left edge and stays marked", func(t *testing.T) {
		for !w.MarkedForDeletion() {
			w.Update(100)
			s := w.Snapshot()
			if s.X+s.W >= 0 {
				assert.False(t, s.Marked)
			}
		}
		s := w.Snapshot()
		assert.Less(t, s.X+s.W, 0.0)

		for range 10 {
			w.Update(100)
			assert.True(t, w.MarkedForDeletion())
		}
	})
}

func TestGhost(t *testing.T) {
	cfg := horde.DefaultConfig()

	for seed := uint64(1); seed <= 20; seed++ {
		g := horde.NewGhost(spawnOf(horde.KindGhost, cfg, seed))
		s := g.Snapshot()
		assert.Equal(t, 500.0, s.X)
		assert.GreaterOrEqual(t, s.Y, 0.0)
		assert.Less(t, s.Y, 300.0, "spawns in the top 60%")
		assert.GreaterOrEqual(t, s.VX, 0.3)
		assert.Less(t, s.VX, 0.4)
	}

	t.Run("bobs vertically", func(t *testing.T) {
		g := horde.NewGhost(spawnOf(horde.KindGhost, cfg, 3))
		y0 := g.Snapshot().Y

		g.Update(16)
		assert.Equal(t, y0, g.Snapshot().Y, "sin(0) leaves y unchanged on the first tick")

		moved := false
		for range 50 {
			g.Update(16)
			if g.Snapshot().Y != y0 {
				moved = true
			}
		}
		assert.True(t, moved)
	})

	t.Run("draws translucent", func(t *testing.T) {
		g := horde.NewGhost(spawnOf(horde.KindGhost, cfg, 3))
		surface := &recordingSurface{}

		g.Draw(surface)
		require.Len(t, surface.blits, 1)
		assert.Equal(t, 0.7, surface.blits[0].Alpha)

		w := horde.NewWorm(spawnOf(horde.KindWorm, cfg, 3))
		w.Draw(surface)
		require.Len(t, surface.blits, 2)
		assert.Equal(t, 1.0, surface.blits[1].Alpha, "opacity does not leak into the next draw")
	})
}

func TestSpider(t *testing.T) {
	cfg := horde.DefaultConfig()
	cfg.Spider.FrameHeight = 100
	cfg.Spider.Scale = 1

	sp := horde.NewSpider(spawnOf(horde.KindSpider, cfg, 11))
	start := sp.Snapshot()
	require.Equal(t, 100.0, start.H)
	assert.Equal(t, -100.0, start.Y)
	assert.Equal(t, 0.0, start.VX)
	assert.GreaterOrEqual(t, start.X, 0.0)
	assert.Less(t, start.X, 500.0)

	descended := false
	marked := false
	for i := 0; i < 20000 && !marked; i++ {
		sp.Update(16)
		s := sp.Snapshot()
		assert.Equal(t, start.X, s.X, "spiders never move sideways")
		if s.Y > 0 {
			descended = true
		}
		assert.Equal(t, s.Y < -200, s.Marked, "marked exactly when fully retreated, y=%v", s.Y)
		marked = s.Marked
	}
	require.True(t, marked, "spider never retreated")
	assert.True(t, descended)

	for range 10 {
		sp.Update(16)
		assert.True(t, sp.MarkedForDeletion())
	}
}

func TestSpiderDrawsThread(t *testing.T) {
	cfg := horde.DefaultConfig()
	sp := horde.NewSpider(spawnOf(horde.KindSpider, cfg, 5))
	sp.Update(16)
	s := sp.Snapshot()

	surface := &recordingSurface{}
	sp.Draw(surface)

	require.Len(t, surface.lines, 1)
	require.Len(t, surface.blits, 1)
	line := surface.lines[0]
	assert.Equal(t, s.X+s.W/2, line.X0)
	assert.Equal(t, 0.0, line.Y0)
	assert.Equal(t, line.X0, line.X1)
	assert.Equal(t, s.Y+10, line.Y1)
}

func TestOrbiter(t *testing.T) {
	cfg := horde.DefaultConfig()
	o := horde.NewOrbiter(spawnOf(horde.KindOrbiter, cfg, 9))
	w, h := 218*0.4, 177*0.4

	for range 2000 {
		o.Update(16)
		s := o.Snapshot()
		assert.False(t, s.Marked)
		assert.GreaterOrEqual(t, s.X, -w/2-1e-9)
		assert.LessOrEqual(t, s.X, 500-w/2+1e-9)
		assert.GreaterOrEqual(t, s.Y, -h/2-1e-9)
		assert.LessOrEqual(t, s.Y, 500-h/2+1e-9)
	}
}

func TestOrbiterFirstUpdateFollowsPath(t *testing.T) {
	cfg := horde.DefaultConfig()
	o := horde.NewOrbiter(spawnOf(horde.KindOrbiter, cfg, 9))
	w, h := 218*0.4, 177*0.4

	o.Update(16)
	s := o.Snapshot()

	// Phase 0: sin = 0, cos = 1.
	assert.InDelta(t, 250-w/2, s.X, 1e-9)
	assert.InDelta(t, 500-h/2, s.Y, 1e-9)
}

func TestMissingImageDrawsNothing(t *testing.T) {
	cfg := horde.DefaultConfig()
	surface := &recordingSurface{}

	s := spawnOf(horde.KindWorm, cfg, 1)
	s.Image = nil
	w := horde.NewWorm(s)
	assert.NotPanics(t, func() { w.Draw(surface) })

	var typedNil *sheetImage
	s.Image = typedNil
	w = horde.NewWorm(s)
	assert.NotPanics(t, func() { w.Draw(surface) })

	s.Image = &sheetImage{}
	w = horde.NewWorm(s)
	w.Draw(surface)

	assert.Empty(t, surface.blits)
}

func TestFramesStayInRangeForAllVariants(t *testing.T) {
	cfg := horde.DefaultConfig()
	entities := []horde.Entity{
		horde.NewWorm(spawnOf(horde.KindWorm, cfg, 2)),
		horde.NewGhost(spawnOf(horde.KindGhost, cfg, 2)),
		horde.NewSpider(spawnOf(horde.KindSpider, cfg, 2)),
		horde.NewOrbiter(spawnOf(horde.KindOrbiter, cfg, 2)),
	}
	deltas := []float64{0, 16, 33.3, 101, 0, 5000, 1e9}

	for _, e := range entities {
		for _, dt := range deltas {
			e.Update(dt)
			s := e.Snapshot()
			assert.GreaterOrEqual(t, s.Frame, 0, e.Kind().String())
			assert.LessOrEqual(t, s.Frame, s.MaxFrame, e.Kind().String())
		}
	}
}
