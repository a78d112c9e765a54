package horde_test

import (
	"testing"

	"github.com/plus3/spritehorde/horde"
)

func BenchmarkWorldUpdate(b *testing.B) {
	cfg := horde.DefaultConfig()
	cfg.Seed = 1
	cfg.SpawnInterval = 1e12
	world, err := horde.NewWorld(cfg, horde.WithAtlas(testAtlas()))
	if err != nil {
		b.Fatal(err)
	}
	if err := world.Populate(horde.KindOrbiter, 1000); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Update(16)
	}
}

func BenchmarkWorldDraw(b *testing.B) {
	for _, depthSort := range []bool{false, true} {
		name := "spawn-order"
		if depthSort {
			name = "depth-sort"
		}
		b.Run(name, func(b *testing.B) {
			cfg := horde.DefaultConfig()
			cfg.Seed = 1
			cfg.DepthSort = depthSort
			world, err := horde.NewWorld(cfg, horde.WithAtlas(testAtlas()))
			if err != nil {
				b.Fatal(err)
			}
			if err := world.Populate(horde.KindOrbiter, 1000); err != nil {
				b.Fatal(err)
			}
			world.Update(16)
			surface := &recordingSurface{}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				world.Draw(surface)
				surface.reset()
			}
		})
	}
}
