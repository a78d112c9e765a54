package horde

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid horde config")

// ConfigError reports a configuration field that cannot be used.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid horde config: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Range is a closed-open interval a random value is drawn from.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Pick draws a value in [Min, Max).
func (r Range) Pick(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) validate(field string) error {
	if r.Min < 0 {
		return &ConfigError{Field: field, Reason: fmt.Sprintf("min %v is negative", r.Min)}
	}
	if r.Max < r.Min {
		return &ConfigError{Field: field, Reason: fmt.Sprintf("max %v is below min %v", r.Max, r.Min)}
	}
	return nil
}

// VariantConfig holds the sheet geometry, animation and motion tuning of one kind.
// Fields that a kind does not use are ignored.
type VariantConfig struct {
	FrameWidth    int     `yaml:"frame_width"`
	FrameHeight   int     `yaml:"frame_height"`
	Scale         float64 `yaml:"scale"`
	MaxFrame      int     `yaml:"max_frame"`
	FrameInterval float64 `yaml:"frame_interval_ms"`

	// Vx is the leftward speed in px/ms, Vy the initial downward speed.
	Vx Range `yaml:"vx"`
	Vy Range `yaml:"vy"`

	// Ghost: spawn band as a fraction of height, oscillation amplitude and phase
	// step per tick, draw opacity.
	Band      float64 `yaml:"band,omitempty"`
	Curve     Range   `yaml:"curve,omitempty"`
	AngleStep float64 `yaml:"angle_step,omitempty"`
	Alpha     float64 `yaml:"alpha,omitempty"`

	// Spider: speed removed from vy each tick while below its descent limit.
	Recoil float64 `yaml:"recoil,omitempty"`

	// Orbiter: phase step per tick, and the flock size hosts populate with.
	AngleSpeed Range `yaml:"angle_speed,omitempty"`
	Count      int   `yaml:"count,omitempty"`
}

// Width is the on-canvas frame width.
func (v VariantConfig) Width() float64 {
	return float64(v.FrameWidth) * v.Scale
}

// Height is the on-canvas frame height.
func (v VariantConfig) Height() float64 {
	return float64(v.FrameHeight) * v.Scale
}

// Weight is one entry of the spawn table.
type Weight struct {
	Kind   Kind    `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

// Config is the construction-time configuration of a World.
type Config struct {
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	SpawnInterval float64     `yaml:"spawn_interval_ms"`
	DepthSort     bool        `yaml:"depth_sort"`
	Seed          uint64      `yaml:"seed"`
	FrameTiming   FrameTiming `yaml:"frame_timing"`
	Variants      []Weight    `yaml:"variants"`

	Worm    VariantConfig `yaml:"worm"`
	Ghost   VariantConfig `yaml:"ghost"`
	Spider  VariantConfig `yaml:"spider"`
	Orbiter VariantConfig `yaml:"orbiter"`
}

// DefaultConfig returns a 500x500 world spawning worms, ghosts and spiders every
// 250ms.
func DefaultConfig() Config {
	return Config{
		Width:         500,
		Height:        500,
		SpawnInterval: 250,
		FrameTiming:   TimingCarry,
		Variants: []Weight{
			{Kind: KindWorm, Weight: 1},
			{Kind: KindGhost, Weight: 1},
			{Kind: KindSpider, Weight: 1},
		},
		Worm: VariantConfig{
			FrameWidth:    229,
			FrameHeight:   171,
			Scale:         0.5,
			MaxFrame:      5,
			FrameInterval: 100,
			Vx:            Range{Min: 0.1, Max: 0.2},
		},
		Ghost: VariantConfig{
			FrameWidth:    261,
			FrameHeight:   209,
			Scale:         0.5,
			MaxFrame:      5,
			FrameInterval: 100,
			Vx:            Range{Min: 0.3, Max: 0.4},
			Band:          0.6,
			Curve:         Range{Min: 0, Max: 3},
			AngleStep:     0.04,
			Alpha:         0.7,
		},
		Spider: VariantConfig{
			FrameWidth:    310,
			FrameHeight:   175,
			Scale:         0.5,
			MaxFrame:      5,
			FrameInterval: 100,
			Vy:            Range{Min: 0.1, Max: 0.2},
			Recoil:        1,
		},
		Orbiter: VariantConfig{
			FrameWidth:    218,
			FrameHeight:   177,
			Scale:         0.4,
			MaxFrame:      5,
			FrameInterval: 100,
			AngleSpeed:    Range{Min: 0.5, Max: 2},
			Count:         25,
		},
	}
}

// Variant returns the tuning block of k.
func (c *Config) Variant(k Kind) *VariantConfig {
	switch k {
	case KindWorm:
		return &c.Worm
	case KindGhost:
		return &c.Ghost
	case KindSpider:
		return &c.Spider
	case KindOrbiter:
		return &c.Orbiter
	default:
		return nil
	}
}

// Validate fails on the first field that would make the simulation undefined.
// Nothing is clamped.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must be positive, got %v", c.Width)}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Reason: fmt.Sprintf("must be positive, got %v", c.Height)}
	}
	if c.SpawnInterval <= 0 {
		return &ConfigError{Field: "spawn_interval_ms", Reason: fmt.Sprintf("must be positive, got %v", c.SpawnInterval)}
	}
	if c.FrameTiming != TimingCarry && c.FrameTiming != TimingGated {
		return &ConfigError{Field: "frame_timing", Reason: fmt.Sprintf("unknown timing %d", c.FrameTiming)}
	}
	if len(c.Variants) == 0 {
		return &ConfigError{Field: "variants", Reason: "at least one variant is required"}
	}

	var total float64
	for i, w := range c.Variants {
		field := fmt.Sprintf("variants[%d]", i)
		v := c.Variant(w.Kind)
		if v == nil {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("unknown kind %s", w.Kind)}
		}
		if w.Weight < 0 {
			return &ConfigError{Field: field, Reason: fmt.Sprintf("weight %v is negative", w.Weight)}
		}
		total += w.Weight
		if err := v.validate(w.Kind.String()); err != nil {
			return err
		}
	}
	if total <= 0 {
		return &ConfigError{Field: "variants", Reason: "weights sum to zero"}
	}

	return nil
}

func (v *VariantConfig) validate(prefix string) error {
	if v.FrameWidth <= 0 || v.FrameHeight <= 0 {
		return &ConfigError{Field: prefix + ".frame_width/frame_height", Reason: fmt.Sprintf("sheet frame %dx%d is not positive", v.FrameWidth, v.FrameHeight)}
	}
	if v.Scale <= 0 {
		return &ConfigError{Field: prefix + ".scale", Reason: fmt.Sprintf("must be positive, got %v", v.Scale)}
	}
	if v.MaxFrame < 0 {
		return &ConfigError{Field: prefix + ".max_frame", Reason: fmt.Sprintf("must not be negative, got %d", v.MaxFrame)}
	}
	if v.FrameInterval <= 0 {
		return &ConfigError{Field: prefix + ".frame_interval_ms", Reason: fmt.Sprintf("must be positive, got %v", v.FrameInterval)}
	}
	for _, r := range []struct {
		name string
		rng  Range
	}{
		{"vx", v.Vx},
		{"vy", v.Vy},
		{"curve", v.Curve},
		{"angle_speed", v.AngleSpeed},
	} {
		if err := r.rng.validate(prefix + "." + r.name); err != nil {
			return err
		}
	}
	if v.Count < 0 {
		return &ConfigError{Field: prefix + ".count", Reason: fmt.Sprintf("must not be negative, got %d", v.Count)}
	}
	if v.Alpha < 0 || v.Alpha > 1 {
		return &ConfigError{Field: prefix + ".alpha", Reason: fmt.Sprintf("must be within [0, 1], got %v", v.Alpha)}
	}
	return nil
}
