package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/spritehorde/horde"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	Populated     int
	SpawnInterval float64
	Step          float64

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Loop           *horde.LoopStats
	World          horde.WorldStats
	Blits          int64
	Lines          int64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Run ticks the loop in simulated time, r.Step milliseconds per tick, until ctx
// is done.
func (r *Report) Run(ctx context.Context, loop *horde.Loop, s *countingSurface) {
	start := time.Now()
	ts := 0.0

	for ctx.Err() == nil {
		tickStart := time.Now()
		loop.Tick(ts, s)
		r.TickTime.Samples = append(r.TickTime.Samples, time.Since(tickStart))
		ts += r.Step
	}

	r.TotalTime = time.Since(start)
	r.TotalTicks = int64(len(r.TickTime.Samples))
	r.TickTime.Finalize()
	r.Loop = loop.Stats()
	r.World = loop.World().Stats()
	r.Blits = s.blits
	r.Lines = s.lines
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Horde Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Populated Entities:** {{.Populated}}
- **Spawn Interval:** {{printf "%.1f" .SpawnInterval}} ms
- **Simulated Step:** {{printf "%.2f" .Step}} ms

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time (Frame):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
{{- with .Loop}}
- **Dropped Frames:** {{.DroppedFrames}}
{{- range .Phases}}
- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{- end}}
{{- end}}

## World
- **Live Entities:** {{.World.Total}}
- **Spawned:** {{.World.Spawned}}
- **Removed:** {{.World.Removed}}
{{- range $kind, $n := .World.ByKind}}
  - {{$kind}}: {{$n}}
{{- end}}
- **Blits:** {{.Blits}}
- **Thread Lines:** {{.Lines}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
