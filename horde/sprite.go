package horde

import "math"

// Sheet describes a horizontal sprite sheet: equally sized frames laid out left to
// right in a single row.
type Sheet struct {
	Image       Image
	FrameWidth  int
	FrameHeight int
}

// Source returns the source rectangle of the given frame.
func (s Sheet) Source(frame int) Rect {
	return Rect{
		X: float64(frame * s.FrameWidth),
		Y: 0,
		W: float64(s.FrameWidth),
		H: float64(s.FrameHeight),
	}
}

// FrameTiming selects how a FrameCycle converts elapsed time into frame steps.
type FrameTiming uint8

const (
	// TimingCarry accumulates time and keeps the remainder after each step, so a
	// cumulative delta of k intervals always advances exactly k frames.
	TimingCarry FrameTiming = iota
	// TimingGated advances one frame on the tick after the timer exceeds the
	// interval and drops the remainder.
	TimingGated
)

func (t FrameTiming) String() string {
	switch t {
	case TimingCarry:
		return "carry"
	case TimingGated:
		return "gated"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t FrameTiming) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FrameTiming) UnmarshalText(text []byte) error {
	switch string(text) {
	case "carry", "":
		*t = TimingCarry
	case "gated":
		*t = TimingGated
	default:
		return &ConfigError{Field: "frame_timing", Reason: "must be carry or gated, got " + string(text)}
	}
	return nil
}

// FrameCycle is a mod-(MaxFrame+1) frame counter gated by elapsed time. It is
// independent of spawn and motion timers.
type FrameCycle struct {
	Frame    int
	MaxFrame int
	Interval float64
	Timer    float64
	Timing   FrameTiming
}

// NewFrameCycle creates a cycle starting at frame 0.
func NewFrameCycle(maxFrame int, interval float64, timing FrameTiming) FrameCycle {
	return FrameCycle{
		MaxFrame: maxFrame,
		Interval: interval,
		Timing:   timing,
	}
}

// Advance feeds dt milliseconds into the cycle. Frame stays within [0, MaxFrame].
func (c *FrameCycle) Advance(dt float64) {
	if c.Interval <= 0 {
		return
	}

	if c.Timing == TimingGated {
		if c.Timer > c.Interval {
			c.step(1)
			c.Timer = 0
		} else {
			c.Timer += dt
		}
		return
	}

	c.Timer += dt
	if c.Timer < c.Interval {
		return
	}
	steps := math.Floor(c.Timer / c.Interval)
	c.Timer -= steps * c.Interval
	if c.Timer < 0 {
		c.Timer = 0
	}
	c.step(math.Mod(steps, float64(c.MaxFrame+1)))
}

func (c *FrameCycle) step(n float64) {
	frames := c.MaxFrame + 1
	c.Frame = (c.Frame + int(n)) % frames
}
