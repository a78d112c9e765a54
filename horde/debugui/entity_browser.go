package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritehorde/horde"
)

// EntityRow is one line of the entity table.
type EntityRow struct {
	ID     horde.EntityID
	Kind   horde.Kind
	X, Y   float64
	Frame  int
	Marked bool
}

const (
	columnID = iota
	columnKind
	columnX
	columnY
	columnFrame
	columnMarked
)

// EntityBrowser is a paged, sortable table of live entities.
type EntityBrowser struct {
	rows          []EntityRow
	sortColumn    int
	sortAscending bool
	filterText    string
	selected      horde.EntityID
	perPage       int
	page          int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{
		sortColumn:    columnID,
		sortAscending: true,
		perPage:       max(perPage, 1),
	}
}

// Selected returns the id picked in the table, or 0.
func (eb *EntityBrowser) Selected() horde.EntityID {
	return eb.selected
}

func (eb *EntityBrowser) Render(world *horde.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.refresh(world)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	filtered := eb.filtered()
	eb.page = min(eb.page, max(eb.pages(len(filtered))-1, 0))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Frame")
		imgui.TableSetupColumn("Marked")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortRows()
			filtered = eb.filtered()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range eb.pageOf(filtered) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), eb.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", row.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Frame))
			imgui.TableNextColumn()
			if row.Marked {
				imgui.Text("yes")
			}
		}

		imgui.EndTable()
	}

	if pages := eb.pages(len(filtered)); pages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < pages-1 {
			eb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// refresh rebuilds the rows from the world. Positions change every frame, so
// there is nothing worth caching across frames except the backing array.
func (eb *EntityBrowser) refresh(world *horde.World) {
	eb.rows = eb.rows[:0]
	for e := range world.Entities() {
		snap := e.Snapshot()
		eb.rows = append(eb.rows, EntityRow{
			ID:     snap.ID,
			Kind:   snap.Kind,
			X:      snap.X,
			Y:      snap.Y,
			Frame:  snap.Frame,
			Marked: snap.Marked,
		})
	}
	if eb.selected != 0 {
		if _, ok := world.Entity(eb.selected); !ok {
			eb.selected = 0
		}
	}
	eb.sortRows()
}

func (eb *EntityBrowser) sortRows() {
	slices.SortStableFunc(eb.rows, func(a, b EntityRow) int {
		var c int
		switch eb.sortColumn {
		case columnKind:
			c = cmp.Compare(a.Kind, b.Kind)
		case columnX:
			c = cmp.Compare(a.X, b.X)
		case columnY:
			c = cmp.Compare(a.Y, b.Y)
		case columnFrame:
			c = cmp.Compare(a.Frame, b.Frame)
		case columnMarked:
			c = cmp.Compare(boolRank(a.Marked), boolRank(b.Marked))
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if !eb.sortAscending {
			return -c
		}
		return c
	})
}

func (eb *EntityBrowser) filtered() []EntityRow {
	if eb.filterText == "" {
		return eb.rows
	}

	needle := strings.ToLower(eb.filterText)
	filtered := make([]EntityRow, 0, len(eb.rows))
	for _, row := range eb.rows {
		if strings.Contains(fmt.Sprintf("%d", row.ID), needle) || strings.Contains(row.Kind.String(), needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func (eb *EntityBrowser) pages(n int) int {
	return (n + eb.perPage - 1) / eb.perPage
}

func (eb *EntityBrowser) pageOf(rows []EntityRow) []EntityRow {
	start := min(eb.page*eb.perPage, len(rows))
	end := min(start+eb.perPage, len(rows))
	return rows[start:end]
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
