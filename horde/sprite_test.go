package horde_test

import (
	"testing"

	"github.com/plus3/spritehorde/horde"
	"github.com/stretchr/testify/assert"
)

func TestFrameCycleStaysInRange(t *testing.T) {
	deltas := []float64{0, 1, 16.6, 99.9, 100, 100.1, 250, 1e6, 1e15, 0, 3}

	for _, timing := range []horde.FrameTiming{horde.TimingCarry, horde.TimingGated} {
		t.Run(timing.String(), func(t *testing.T) {
			c := horde.NewFrameCycle(5, 100, timing)
			for _, dt := range deltas {
				c.Advance(dt)
				assert.GreaterOrEqual(t, c.Frame, 0)
				assert.LessOrEqual(t, c.Frame, 5)
			}
		})
	}
}

func TestFrameCycleCarryAdvancesOncePerInterval(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		per  int
	}{
		{"whole intervals", 100, 1},
		{"quarter intervals", 25, 4},
		{"tenth intervals", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := horde.NewFrameCycle(5, 100, horde.TimingCarry)
			for k := 1; k <= 14; k++ {
				for range tt.per {
					c.Advance(tt.dt)
				}
				assert.Equal(t, k%6, c.Frame, "after %d intervals", k)
			}
		})
	}
}

func TestFrameCycleCarryHugeDelta(t *testing.T) {
	c := horde.NewFrameCycle(5, 100, horde.TimingCarry)

	c.Advance(1e15)

	// 1e13 steps, and 10^n mod 6 == 4.
	assert.Equal(t, 4, c.Frame)
	assert.Less(t, c.Timer, 100.0)
	assert.GreaterOrEqual(t, c.Timer, 0.0)
}

func TestFrameCycleGated(t *testing.T) {
	c := horde.NewFrameCycle(2, 100, horde.TimingGated)

	c.Advance(50)
	c.Advance(50)
	c.Advance(50)
	assert.Equal(t, 0, c.Frame, "timer has only just exceeded the interval")
	assert.Equal(t, 150.0, c.Timer)

	c.Advance(50)
	assert.Equal(t, 1, c.Frame)
	assert.Equal(t, 0.0, c.Timer, "the delta of the advancing tick is dropped")

	for range 4 {
		c.Advance(200)
	}
	assert.Equal(t, 0, c.Frame, "wraps from max frame back to 0")
}

func TestFrameCycleZeroDelta(t *testing.T) {
	c := horde.NewFrameCycle(5, 100, horde.TimingCarry)
	for range 1000 {
		c.Advance(0)
	}
	assert.Equal(t, 0, c.Frame)
	assert.Equal(t, 0.0, c.Timer)
}

func TestSheetSource(t *testing.T) {
	s := horde.Sheet{FrameWidth: 229, FrameHeight: 171}

	assert.Equal(t, horde.Rect{X: 0, Y: 0, W: 229, H: 171}, s.Source(0))
	assert.Equal(t, horde.Rect{X: 229 * 5, Y: 0, W: 229, H: 171}, s.Source(5))
}
