// Package debugui draws a Dear ImGui overlay for inspecting a running horde World.
// The host owns the ImGui frame; Overlay only emits windows between BeginFrame and
// EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritehorde/horde"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay groups the debug windows.
type Overlay struct {
	Browser     *EntityBrowser
	Inspector   *Inspector
	Variants    *VariantViewer
	Performance *PerformanceStats
	Input       InputState
}

// NewOverlay creates an overlay with the default page size and history length.
func NewOverlay() *Overlay {
	return &Overlay{
		Browser:     NewEntityBrowser(100),
		Inspector:   NewInspector(),
		Variants:    NewVariantViewer(),
		Performance: NewPerformanceStats(120),
	}
}

// Render draws every window. dt is the frame delta in milliseconds.
func (o *Overlay) Render(world *horde.World, loop *horde.Loop, dt float64) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.Browser.Render(world)
	o.Inspector.Render(world, o.Browser.Selected())
	o.Variants.Render(world)
	o.Performance.Render(world, loop, dt)
}
