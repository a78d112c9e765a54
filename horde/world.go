package horde

import (
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"
)

// Atlas maps each kind to its sprite sheet. Sheets are loaded once by the host
// and shared read-only by every entity of that kind.
type Atlas map[Kind]Image

// WorldStats summarises the population of a World.
type WorldStats struct {
	Total      int
	ByKind     map[Kind]int
	Spawned    uint64
	Removed    uint64
	SpawnTimer float64
}

// World owns the enemies of one canvas: it spawns them on a timer, updates them
// each tick, sweeps the dead ones and draws the rest.
type World struct {
	cfg      Config
	bounds   Bounds
	registry *Registry
	atlas    Atlas
	rng      *rand.Rand
	picker   picker
	logger   *log.Logger

	entities  []Entity
	index     *intmap.Map[EntityID, Entity]
	drawOrder []Entity
	commands  *Commands

	spawnTimer float64
	lastID     EntityID
	spawned    uint64
	removed    uint64
}

// NewWorld validates cfg and creates an empty world.
func NewWorld(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := newSettings(opts)
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}

	for _, w := range cfg.Variants {
		if s.registry.factory(w.Kind) == nil {
			return nil, &ConfigError{Field: "variants", Reason: fmt.Sprintf("no factory registered for %s", w.Kind)}
		}
	}

	w := &World{
		cfg:      cfg,
		bounds:   Bounds{Width: cfg.Width, Height: cfg.Height},
		registry: s.registry,
		atlas:    s.atlas,
		rng:      s.rng,
		picker:   newPicker(cfg.Variants),
		logger:   s.logger,
		index:    intmap.New[EntityID, Entity](64),
		commands: newCommands(),
	}

	for _, v := range cfg.Variants {
		if _, ok := w.atlas[v.Kind]; !ok {
			w.logger.Warn("no sprite sheet for variant, it will be invisible", "kind", v.Kind)
		}
	}
	w.logger.Debug("world created",
		"width", cfg.Width,
		"height", cfg.Height,
		"spawn_interval_ms", cfg.SpawnInterval,
		"depth_sort", cfg.DepthSort,
		"frame_timing", cfg.FrameTiming)

	return w, nil
}

// Update advances the world by dt milliseconds: sweep entities marked during the
// previous tick, apply queued commands, run the spawn timer, then update every
// entity, including one spawned during this call.
func (w *World) Update(dt float64) {
	w.sweep()
	w.commands.flush(w)

	if w.spawnTimer > w.cfg.SpawnInterval {
		if _, err := w.spawn(w.picker.pick(w.rng)); err != nil {
			w.logger.Error("spawn failed", "err", err)
		}
		w.spawnTimer = 0
	} else {
		w.spawnTimer += dt
	}

	for _, e := range w.entities {
		e.Update(dt)
	}
}

// Draw renders every entity in spawn order, or by ascending y when depth
// sorting is enabled.
func (w *World) Draw(s Surface) {
	if !w.cfg.DepthSort {
		for _, e := range w.entities {
			e.Draw(s)
		}
		return
	}

	w.drawOrder = append(w.drawOrder[:0], w.entities...)
	slices.SortStableFunc(w.drawOrder, func(a, b Entity) int {
		return cmp.Compare(a.Snapshot().Y, b.Snapshot().Y)
	})
	for _, e := range w.drawOrder {
		e.Draw(s)
	}
	clear(w.drawOrder)
}

// Populate spawns n entities of kind k immediately, outside the spawn timer.
func (w *World) Populate(k Kind, n int) error {
	for range n {
		if _, err := w.spawn(k); err != nil {
			return err
		}
	}
	return nil
}

// Commands returns the buffer applied at the start of the next Update.
func (w *World) Commands() *Commands {
	return w.commands
}

// Entity looks up a live entity by id.
func (w *World) Entity(id EntityID) (Entity, bool) {
	return w.index.Get(id)
}

// Entities iterates over the entities in spawn order.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range w.entities {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of entities, including ones marked but not yet swept.
func (w *World) Len() int {
	return len(w.entities)
}

// SpawnTimer returns the milliseconds accumulated toward the next spawn.
func (w *World) SpawnTimer() float64 {
	return w.spawnTimer
}

// Bounds returns the canvas size.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Stats counts the current population by kind.
func (w *World) Stats() WorldStats {
	stats := WorldStats{
		Total:      len(w.entities),
		ByKind:     make(map[Kind]int, len(Kinds)),
		Spawned:    w.spawned,
		Removed:    w.removed,
		SpawnTimer: w.spawnTimer,
	}
	for _, e := range w.entities {
		stats.ByKind[e.Kind()]++
	}
	return stats
}

// sweep drops marked entities, keeping the relative order of the survivors.
func (w *World) sweep() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.MarkedForDeletion() {
			w.index.Del(e.ID())
			w.removed++
			w.logger.Debug("removed", "id", e.ID(), "kind", e.Kind())
			continue
		}
		kept = append(kept, e)
	}
	clear(w.entities[len(kept):])
	w.entities = kept
}

// spawn builds one entity of kind k and appends it to the sequence.
func (w *World) spawn(k Kind) (Entity, error) {
	factory := w.registry.factory(k)
	if factory == nil {
		return nil, fmt.Errorf("spawn %s: no factory registered", k)
	}
	v := w.cfg.Variant(k)
	if v == nil {
		return nil, fmt.Errorf("spawn %s: no variant config", k)
	}
	if err := v.validate(k.String()); err != nil {
		return nil, err
	}

	w.lastID++
	e := factory(Spawn{
		ID:     w.lastID,
		Bounds: w.bounds,
		Config: *v,
		Timing: w.cfg.FrameTiming,
		Image:  w.atlas[k],
		Rand:   w.rng,
	})
	w.entities = append(w.entities, e)
	w.index.Put(e.ID(), e)
	w.spawned++
	w.logger.Debug("spawned", "id", e.ID(), "kind", k)
	return e, nil
}
