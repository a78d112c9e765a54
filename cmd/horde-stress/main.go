package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/spritehorde/horde"
	"github.com/plus3/spritehorde/internal/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "Path to a horde.yaml file.")
	spawnInterval := flag.Float64("spawn-interval", 5, "Milliseconds between spawns, overriding the config.")
	populate := flag.Int("populate", 1000, "Entities of each kind to create before the first tick.")
	step := flag.Float64("step", 1000.0/60.0, "Simulated milliseconds per tick.")
	seed := flag.Uint64("seed", 1, "Random seed, 0 for a random one.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "horde-stress",
	})

	cfg, path, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if path != "" {
		logger.Info("loaded config", "path", path)
	}
	cfg.SpawnInterval = *spawnInterval
	cfg.Seed = *seed
	cfg.Variants = make([]horde.Weight, 0, len(horde.Kinds))
	for _, k := range horde.Kinds {
		cfg.Variants = append(cfg.Variants, horde.Weight{Kind: k, Weight: 1})
	}

	world, err := horde.NewWorld(cfg, horde.WithLogger(logger), horde.WithAtlas(placeholderAtlas(cfg)))
	if err != nil {
		logger.Fatal("failed to create world", "err", err)
	}

	logger.Info("populating world", "per_kind", *populate)
	for _, k := range horde.Kinds {
		if err := world.Populate(k, *populate); err != nil {
			logger.Fatal("failed to populate", "kind", k, "err", err)
		}
	}

	report := &Report{
		Duration:       *duration,
		Populated:      *populate * len(horde.Kinds),
		SpawnInterval:  cfg.SpawnInterval,
		Step:           *step,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", "duration", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report.Run(ctx, horde.NewLoop(world, horde.WithLogger(logger)), &countingSurface{})
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("simulation finished", "ticks", report.TotalTicks)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}
