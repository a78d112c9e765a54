// enemy-variety opens a window and runs a horde of animated enemies: worms crawl
// along the bottom, ghosts drift in waves, spiders drop on threads. In orbit mode a
// fixed flock circles the canvas instead.
//
// Usage:
//
//	enemy-variety [--config horde.yaml] [--assets dir] [--mode variety|orbit] [--debug] [--watch]
//
// Keys:
//
//	F1  - toggle the debug overlay (with --debug)
//	Esc - quit
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/spritehorde/horde"
	debugui_ebiten "github.com/plus3/spritehorde/horde/debugui/ebiten"
	"github.com/plus3/spritehorde/internal/config"
)

var (
	flagConfig  string
	flagAssets  string
	flagMode    string
	flagDebug   bool
	flagWatch   bool
	flagSeed    uint64
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "enemy-variety",
	Short: "Animated sprite horde demo",
	Long: `enemy-variety spawns enemies on a timer and animates them from sprite sheets.

Sheets are read from the assets directory as worm.png, ghost.png, spider.png and
orbiter.png. Missing sheets are replaced with generated placeholders.

Examples:
  enemy-variety
  enemy-variety --assets ./assets --debug
  enemy-variety --mode orbit --seed 42
  enemy-variety --config ./horde.yaml --watch`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a horde.yaml file")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding the sprite sheets")
	rootCmd.Flags().StringVar(&flagMode, "mode", string(modeVariety), "Demo mode: variety, orbit")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the ImGui debug overlay")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Rebuild the world when the config file changes")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = use the config's seed)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log spawns and removals")
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "enemy-variety",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	m, err := parseMode(flagMode)
	if err != nil {
		return err
	}

	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("loaded config", "path", path)
	}

	game := &Game{
		mode:   m,
		seed:   flagSeed,
		logger: logger,
		atlas:  loadAtlas(flagAssets, cfg, logger),
	}
	if err := game.reset(cfg); err != nil {
		return err
	}

	title := "Enemy Variety"
	if m == modeOrbit {
		title = "Enemy Orbit"
	}
	b := game.loop.World().Bounds()
	if flagDebug {
		game.enableDebug(debugui_ebiten.NewImguiBackend(title, int(b.Width), int(b.Height)))
	} else {
		ebiten.SetWindowTitle(title)
		ebiten.SetWindowSize(int(b.Width), int(b.Height))
	}

	if flagWatch {
		if path == "" {
			logger.Warn("--watch needs a config file, using embedded defaults without reload")
		} else {
			w, err := config.NewWatcher(path)
			if err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			defer w.Close()
			game.watcher = w
			logger.Info("watching config", "path", path)
		}
	}

	return ebiten.RunGame(game)
}

// mode selects how the world is populated.
type mode string

const (
	modeVariety mode = "variety"
	modeOrbit   mode = "orbit"
)

func parseMode(s string) (mode, error) {
	switch m := mode(s); m {
	case modeVariety, modeOrbit:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want variety or orbit)", s)
}

// apply adjusts a config for the mode. Orbit mode disables timed spawns; the
// flock is populated once by newWorld.
func (m mode) apply(cfg horde.Config) horde.Config {
	if m == modeOrbit {
		cfg.Variants = []horde.Weight{{Kind: horde.KindOrbiter, Weight: 1}}
		cfg.SpawnInterval = math.Inf(1)
	}
	return cfg
}
