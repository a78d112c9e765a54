package main

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/spritehorde/horde"
)

func TestParseMode(t *testing.T) {
	m, err := parseMode("orbit")
	require.NoError(t, err)
	assert.Equal(t, modeOrbit, m)

	_, err = parseMode("chaos")
	assert.ErrorContains(t, err, "chaos")
}

func TestModeApply(t *testing.T) {
	cfg := horde.DefaultConfig()

	assert.Equal(t, cfg, modeVariety.apply(cfg))

	orbit := modeOrbit.apply(cfg)
	assert.Equal(t, []horde.Weight{{Kind: horde.KindOrbiter, Weight: 1}}, orbit.Variants)
	assert.True(t, math.IsInf(orbit.SpawnInterval, 1))
	assert.Len(t, cfg.Variants, 3)
}

func TestNewWorldOrbitPopulatesFlock(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := horde.DefaultConfig()
	cfg.Orbiter.Count = 7

	world, err := newWorld(cfg, modeOrbit, 3, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, 7, world.Len())
	assert.Equal(t, uint64(3), world.Config().Seed)

	for range 100 {
		world.Update(50)
	}
	assert.Equal(t, 7, world.Stats().ByKind[horde.KindOrbiter])

	cfg.Orbiter.Count = 0
	_, err = newWorld(cfg, modeOrbit, 0, nil, logger)
	assert.Error(t, err)

	world, err = newWorld(cfg, modeVariety, 0, nil, logger)
	require.NoError(t, err)
	assert.Zero(t, world.Len())
}

func TestPlaceholderSheet(t *testing.T) {
	v := horde.DefaultConfig().Worm
	sheet := placeholderSheet(horde.KindWorm, v)

	assert.Equal(t, v.FrameWidth*(v.MaxFrame+1), sheet.Bounds().Dx())
	assert.Equal(t, v.FrameHeight, sheet.Bounds().Dy())

	center := sheet.RGBAAt(v.FrameWidth/2, v.FrameHeight/2)
	assert.Equal(t, placeholderColors[horde.KindWorm], center)
	assert.Zero(t, sheet.RGBAAt(0, 0).A)
}

func TestLoadAtlasFallsBackToPlaceholders(t *testing.T) {
	cfg := horde.DefaultConfig()
	atlas := loadAtlas(t.TempDir(), cfg, log.New(io.Discard))

	require.Len(t, atlas, len(horde.Kinds))
	for _, k := range horde.Kinds {
		v := cfg.Variant(k)
		assert.Equal(t, v.FrameWidth*(v.MaxFrame+1), atlas[k].Bounds().Dx(), k.String())
	}
}
