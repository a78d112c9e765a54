package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritehorde/horde"
)

// VariantRow summarizes one entity kind.
type VariantRow struct {
	Kind   horde.Kind
	Count  int
	Weight float64
}

// VariantViewer shows the population per kind and queues spawns and culls
// through the world's command buffer.
type VariantViewer struct {
	rows []VariantRow
}

func NewVariantViewer() *VariantViewer {
	return &VariantViewer{}
}

func (vv *VariantViewer) Render(world *horde.World) {
	if !imgui.BeginV("Variants", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	vv.refresh(world)

	maxCount := 0
	for _, row := range vv.rows {
		maxCount = max(maxCount, row.Count)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("VariantTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Weight")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("")
		imgui.TableHeadersRow()

		for _, row := range vv.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", row.Weight))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Count))
			if maxCount > 0 {
				barWidth := float32(row.Count) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			if imgui.Button("Spawn##" + row.Kind.String()) {
				world.Commands().Spawn(row.Kind)
			}
		}

		imgui.EndTable()
	}

	stats := world.Stats()
	imgui.Text(fmt.Sprintf("Spawned: %d  Removed: %d", stats.Spawned, stats.Removed))
	imgui.Text(fmt.Sprintf("Spawn timer: %.0f / %.0f ms", stats.SpawnTimer, world.Config().SpawnInterval))
	if imgui.Button("Cull All") {
		CullAll(world)
	}
}

// CullAll queues a delete for every live entity.
func CullAll(world *horde.World) int {
	n := 0
	for e := range world.Entities() {
		if e.MarkedForDeletion() {
			continue
		}
		world.Commands().Delete(e.ID())
		n++
	}
	return n
}

func (vv *VariantViewer) refresh(world *horde.World) {
	cfg := world.Config()
	weights := make(map[horde.Kind]float64, len(cfg.Variants))
	for _, w := range cfg.Variants {
		weights[w.Kind] += w.Weight
	}

	stats := world.Stats()
	vv.rows = vv.rows[:0]
	for _, k := range horde.Kinds {
		vv.rows = append(vv.rows, VariantRow{
			Kind:   k,
			Count:  stats.ByKind[k],
			Weight: weights[k],
		})
	}
}
