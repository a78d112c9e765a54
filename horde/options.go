package horde

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
)

type settings struct {
	logger   *log.Logger
	registry *Registry
	rng      *rand.Rand
	atlas    Atlas
	now      func() time.Time
}

// Option configures a World or a Loop. Options that do not apply to the
// constructor they are passed to are ignored.
type Option func(*settings)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRegistry replaces the default variant registry.
func WithRegistry(r *Registry) Option {
	return func(s *settings) {
		s.registry = r
	}
}

// WithRand sets the random source used for spawn choices and per-entity
// randomness. It overrides Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		s.rng = rng
	}
}

// WithAtlas sets the sprite sheets shared by all entities of each kind.
func WithAtlas(a Atlas) Option {
	return func(s *settings) {
		s.atlas = a
	}
}

// WithNow sets the wall clock a Loop reads in Run and FrameClock.TickNow.
func WithNow(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

func newSettings(opts []Option) settings {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}
