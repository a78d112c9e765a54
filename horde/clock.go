package horde

import "time"

// FrameClock turns a stream of timestamps into per-tick deltas, in milliseconds.
type FrameClock struct {
	last    float64
	started bool
	origin  time.Time
	now     func() time.Time
}

// NewFrameClock creates a clock whose first Tick returns 0. now is read by
// TickNow; nil means time.Now.
func NewFrameClock(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick records ts and returns the time elapsed since the previous Tick. The
// first call only sets the baseline. A timestamp older than the baseline yields
// 0 and is otherwise ignored, so deltas are never negative.
func (c *FrameClock) Tick(ts float64) float64 {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}
	if ts < c.last {
		return 0
	}
	dt := ts - c.last
	c.last = ts
	return dt
}

// TickNow ticks with the wall-clock milliseconds elapsed since the first TickNow.
func (c *FrameClock) TickNow() float64 {
	return c.Tick(c.Stamp())
}

// Stamp returns the wall-clock milliseconds since the clock's origin, setting the
// origin on first use.
func (c *FrameClock) Stamp() float64 {
	now := c.now()
	if c.origin.IsZero() {
		c.origin = now
	}
	return float64(now.Sub(c.origin)) / float64(time.Millisecond)
}

// Last returns the most recent accepted timestamp.
func (c *FrameClock) Last() float64 {
	return c.last
}
