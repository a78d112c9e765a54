package horde_test

import (
	"errors"
	"testing"

	"github.com/plus3/spritehorde/horde"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := horde.DefaultConfig()
	require.NoError(t, cfg.Validate())

	for _, k := range horde.Kinds {
		v := cfg.Variant(k)
		require.NotNil(t, v, k.String())
		assert.Equal(t, 5, v.MaxFrame)
		assert.Equal(t, 100.0, v.FrameInterval)
	}
	assert.Equal(t, 114.5, cfg.Worm.Width())
	assert.Equal(t, 85.5, cfg.Worm.Height())
}

func TestKindText(t *testing.T) {
	for _, k := range horde.Kinds {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var parsed horde.Kind
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, "spider", horde.KindSpider.String())
	assert.Equal(t, "Kind(9)", horde.Kind(9).String())

	_, err := horde.ParseKind("dragon")
	assert.Error(t, err)
}

func TestFrameTimingText(t *testing.T) {
	var timing horde.FrameTiming
	require.NoError(t, timing.UnmarshalText([]byte("gated")))
	assert.Equal(t, horde.TimingGated, timing)

	require.NoError(t, timing.UnmarshalText([]byte("carry")))
	assert.Equal(t, horde.TimingCarry, timing)

	err := timing.UnmarshalText([]byte("lazy"))
	assert.True(t, errors.Is(err, horde.ErrInvalidConfig))
}

func TestRangePick(t *testing.T) {
	rng := newRand(5)
	r := horde.Range{Min: 0.1, Max: 0.2}
	for range 1000 {
		v := r.Pick(rng)
		assert.GreaterOrEqual(t, v, 0.1)
		assert.Less(t, v, 0.2)
	}

	fixed := horde.Range{Min: 3, Max: 3}
	assert.Equal(t, 3.0, fixed.Pick(rng))
}

func TestConfigErrorMessage(t *testing.T) {
	err := &horde.ConfigError{Field: "width", Reason: "must be positive, got 0"}
	assert.Equal(t, "invalid horde config: width: must be positive, got 0", err.Error())
}
