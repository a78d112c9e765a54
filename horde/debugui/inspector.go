package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/spritehorde/horde"
)

// FieldValue is one formatted field of an inspected value.
type FieldValue struct {
	Name  string
	Value string
	Depth int
}

// Inspector shows the snapshot of the selected entity. It is read-only: entities
// own their state and the world only exposes copies.
type Inspector struct {
	cache *ReflectionCache
}

func NewInspector() *Inspector {
	return &Inspector{cache: globalReflectionCache}
}

func (in *Inspector) Render(world *horde.World, id horde.EntityID) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if id == 0 {
		imgui.Text("No entity selected")
		return
	}
	e, ok := world.Entity(id)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d is gone", id))
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d (%s)", id, e.Kind()))
	imgui.Text(fmt.Sprintf("Type: %T", e))
	imgui.Separator()

	for _, f := range in.Describe(e.Snapshot()) {
		for range f.Depth {
			imgui.Indent()
		}
		imgui.Text(fmt.Sprintf("%s: %s", f.Name, f.Value))
		for range f.Depth {
			imgui.Unindent()
		}
	}
}

// Describe flattens v into formatted fields. Nested structs are expanded one
// level deeper than their parent.
func (in *Inspector) Describe(v any) []FieldValue {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	var out []FieldValue
	in.describe(val, 0, &out)
	return out
}

func (in *Inspector) describe(val reflect.Value, depth int, out *[]FieldValue) {
	for _, field := range in.cache.GetFields(val.Type()) {
		fv := val.Field(field.Index)
		if field.IsStruct {
			*out = append(*out, FieldValue{Name: field.Name, Depth: depth})
			in.describe(fv, depth+1, out)
			continue
		}
		*out = append(*out, FieldValue{Name: field.Name, Value: formatValue(fv), Depth: depth})
	}
}

func formatValue(val reflect.Value) string {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.3f", val.Float())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	}
	if !val.CanInterface() {
		return "<unexported>"
	}
	return fmt.Sprintf("%v", val.Interface())
}
