package horde

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// LoopStats provides statistics about loop execution.
type LoopStats struct {
	Ticks         int64
	DroppedFrames int64
	LastDelta     float64
	Phases        []PhaseStats
}

// PhaseStats provides execution statistics for one phase of a tick.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhaseStats(name string) *phaseStatsInternal {
	return &phaseStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *phaseStatsInternal) record(duration time.Duration) {
	p.executionCount++
	p.lastDuration = duration
	p.totalDuration += duration

	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

// Loop drives a World once per frame: tick the clock, update, clear, draw.
type Loop struct {
	world  *World
	clock  *FrameClock
	logger *log.Logger

	update *phaseStatsInternal
	draw   *phaseStatsInternal

	ticks     int64
	dropped   int64
	lastDelta float64
}

// NewLoop creates a loop for world.
func NewLoop(world *World, opts ...Option) *Loop {
	s := newSettings(opts)
	return &Loop{
		world:  world,
		clock:  NewFrameClock(s.now),
		logger: s.logger,
		update: newPhaseStats("update"),
		draw:   newPhaseStats("draw"),
	}
}

// World returns the world driven by the loop.
func (l *Loop) World() *World {
	return l.world
}

// Clock returns the loop's frame clock.
func (l *Loop) Clock() *FrameClock {
	return l.clock
}

// Step advances the world to timestamp ts (milliseconds) without drawing.
func (l *Loop) Step(ts float64) {
	dt := l.clock.Tick(ts)

	start := time.Now()
	l.world.Update(dt)
	l.update.record(time.Since(start))

	l.ticks++
	l.lastDelta = dt
}

// Render clears the canvas and draws the world. A panic raised by the surface is
// recovered and the frame counted as dropped; the next frame is drawn normally.
func (l *Loop) Render(s Surface) {
	start := time.Now()
	defer func() {
		l.draw.record(time.Since(start))
		if r := recover(); r != nil {
			l.dropped++
			l.logger.Warn("frame dropped", "tick", l.ticks, "panic", fmt.Sprint(r))
		}
	}()

	b := l.world.Bounds()
	s.Clear(Rect{W: b.Width, H: b.Height})
	l.world.Draw(s)
}

// Tick runs one full frame at timestamp ts.
func (l *Loop) Tick(ts float64, s Surface) {
	l.Step(ts)
	l.Render(s)
}

// Run ticks the loop at the given interval until the context is cancelled. The
// context is checked before every tick. Timestamps are milliseconds since the
// clock's first reading.
func (l *Loop) Run(ctx context.Context, interval time.Duration, s Surface) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger.Info("loop started", "interval", interval)
	defer l.logger.Info("loop stopped", "ticks", l.ticks, "dropped", l.dropped)

	for {
		if ctx.Err() != nil {
			return
		}
		l.Tick(l.clock.Stamp(), s)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stats returns statistics about loop execution.
func (l *Loop) Stats() *LoopStats {
	stats := &LoopStats{
		Ticks:         l.ticks,
		DroppedFrames: l.dropped,
		LastDelta:     l.lastDelta,
	}
	for _, internal := range []*phaseStatsInternal{l.update, l.draw} {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}
		stats.Phases = append(stats.Phases, PhaseStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
	}
	return stats
}
