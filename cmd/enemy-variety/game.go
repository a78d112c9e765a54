package main

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/spritehorde/horde"
	"github.com/plus3/spritehorde/horde/debugui"
	debugui_ebiten "github.com/plus3/spritehorde/horde/debugui/ebiten"
	"github.com/plus3/spritehorde/horde/ebitensurface"
	"github.com/plus3/spritehorde/internal/config"
)

var background = color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}

// Game runs a horde Loop under ebiten. Update steps the world on the wall clock;
// Draw renders it and, with --debug, the ImGui overlay on top.
type Game struct {
	mode    mode
	seed    uint64
	logger  *log.Logger
	atlas   horde.Atlas
	loop    *horde.Loop
	surface *ebitensurface.Surface
	watcher *config.Watcher

	backend     *debugui_ebiten.ImguiBackend
	overlay     *debugui.Overlay
	timer       *debugui.FrameTimer
	showOverlay bool
}

// reset builds a fresh world and loop from cfg.
func (g *Game) reset(cfg horde.Config) error {
	world, err := newWorld(cfg, g.mode, g.seed, g.atlas, g.logger)
	if err != nil {
		return err
	}
	g.loop = horde.NewLoop(world, horde.WithLogger(g.logger))
	if g.surface == nil {
		g.surface = ebitensurface.New(nil)
		g.surface.Background = background
	}
	return nil
}

func (g *Game) enableDebug(backend *debugui_ebiten.ImguiBackend) {
	g.backend = backend
	g.overlay = debugui.NewOverlay()
	g.timer = debugui.NewFrameTimer()
	g.showOverlay = true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.reload()

	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		if !g.showOverlay || !g.overlay.Input.WantCaptureKeyboard {
			g.showOverlay = !g.showOverlay
		}
	}

	g.loop.Step(g.loop.Clock().Stamp())

	if g.backend != nil {
		dt := g.timer.Delta()
		g.backend.Frame(func() {
			if g.showOverlay {
				g.overlay.Render(g.loop.World(), g.loop, dt)
			}
		})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.loop.Render(g.surface)
	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	b := g.loop.World().Bounds()
	return int(b.Width), int(b.Height)
}

// reload drains pending watcher events and rebuilds the world from the new
// config. A bad file is logged and the running world kept.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.LoadFile(path)
			if err == nil {
				err = g.reset(cfg)
			}
			if err != nil {
				g.logger.Error("config reload failed, keeping current world", "path", path, "err", err)
				continue
			}
			g.logger.Info("config reloaded", "path", path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("config watcher error", "err", err)
			}
		default:
			return
		}
	}
}

// newWorld creates the world for cfg adjusted to m. A non-zero seed overrides
// the config's one. Orbit mode populates its flock up front.
func newWorld(cfg horde.Config, m mode, seed uint64, atlas horde.Atlas, logger *log.Logger) (*horde.World, error) {
	cfg = m.apply(cfg)
	if seed != 0 {
		cfg.Seed = seed
	}

	world, err := horde.NewWorld(cfg, horde.WithAtlas(atlas), horde.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if m == modeOrbit {
		if cfg.Orbiter.Count <= 0 {
			return nil, errors.New("orbit mode needs orbiter.count above zero")
		}
		if err := world.Populate(horde.KindOrbiter, cfg.Orbiter.Count); err != nil {
			return nil, err
		}
	}
	return world, nil
}
