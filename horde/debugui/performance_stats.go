package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritehorde/horde"
)

// PerformanceStats keeps a ring of recent frame times for the graph.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	historyFrames = max(historyFrames, 1)
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time in milliseconds.
func (ps *PerformanceStats) Record(ms float64) {
	ps.frameHistory[ps.frameIndex] = float32(ms)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.recorded = min(ps.recorded+1, ps.historyFrames)
}

// Average returns the mean of the recorded frame times, or 0 before any frame.
func (ps *PerformanceStats) Average() float64 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float64
	for i := range ps.recorded {
		sum += float64(ps.frameHistory[i])
	}
	return sum / float64(ps.recorded)
}

func (ps *PerformanceStats) Render(world *horde.World, loop *horde.Loop, dt float64) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(dt)

	stats := loop.Stats()
	imgui.Text(fmt.Sprintf("Entities: %d", world.Len()))
	imgui.Text(fmt.Sprintf("Ticks: %d  Dropped: %d", stats.Ticks, stats.DroppedFrames))

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{lastFrameTime: now(), now: now}
}

// Delta returns the milliseconds since the previous call.
func (ft *FrameTimer) Delta() float64 {
	now := ft.now()
	delta := float64(now.Sub(ft.lastFrameTime)) / float64(time.Millisecond)
	ft.lastFrameTime = now
	return delta
}
