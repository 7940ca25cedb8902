package widgets

import (
	"math"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui"
)

type fieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

type reflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]fieldInfo
}

func newReflectionCache() *reflectionCache {
	return &reflectionCache{
		fieldCache: make(map[reflect.Type][]fieldInfo),
	}
}

func (rc *reflectionCache) fields(t reflect.Type) []fieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = newReflectionCache()

// Inspector edits the exported fields of a struct in place: numbers, bools
// and strings become input widgets, nested structs become tree nodes.
// Integers outside the int32 range are shown read-only.
type Inspector struct {
	// Width is the input width in pixels.
	Width float32
}

func NewInspector() *Inspector {
	return &Inspector{Width: 150}
}

// Render draws target in its own window and reports whether a field changed.
// target must be a pointer to a struct.
func (in *Inspector) Render(ui gui.ImGui, title string, target any) bool {
	changed := false
	gui.Window(ui, title, func() {
		changed = in.Fields(ui, target)
	})
	return changed
}

// Fields draws target's fields into the current window.
func (in *Inspector) Fields(ui gui.ImGui, target any) bool {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		gui.Textf(ui, "<%T is not a struct pointer>", target)
		return false
	}
	return in.renderStruct(ui, val.Elem())
}

func (in *Inspector) renderStruct(ui gui.ImGui, val reflect.Value) bool {
	changed := false
	for _, field := range globalReflectionCache.fields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				gui.Textf(ui, "%s: nil", field.Name)
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		gui.WithID(ui, field.Name, func() {
			if in.renderField(ui, field.Name, fieldVal) {
				changed = true
			}
		})
	}
	return changed
}

func (in *Inspector) label(ui gui.ImGui, name string) {
	gui.Textf(ui, "%s:", name)
	ui.SameLine()
	ui.SetNextItemWidth(in.Width)
}

func (in *Inspector) renderField(ui gui.ImGui, name string, val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val.Int() < math.MinInt32 || val.Int() > math.MaxInt32 {
			gui.Textf(ui, "%s: %d", name, val.Int())
			return false
		}
		v := int32(val.Int())
		in.label(ui, name)
		if ui.InputInt("##value", &v) && val.CanSet() && !val.OverflowInt(int64(v)) {
			val.SetInt(int64(v))
			return true
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if val.Uint() > math.MaxInt32 {
			gui.Textf(ui, "%s: %d", name, val.Uint())
			return false
		}
		v := int32(val.Uint())
		in.label(ui, name)
		if ui.InputInt("##value", &v) && v >= 0 && val.CanSet() && !val.OverflowUint(uint64(v)) {
			val.SetUint(uint64(v))
			return true
		}

	case reflect.Float32:
		v := float32(val.Float())
		in.label(ui, name)
		if ui.InputFloat("##value", &v) && val.CanSet() {
			val.SetFloat(float64(v))
			return true
		}

	case reflect.Float64:
		v := val.Float()
		in.label(ui, name)
		if ui.InputDouble("##value", &v) && val.CanSet() {
			val.SetFloat(v)
			return true
		}

	case reflect.Bool:
		v := val.Bool()
		if ui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
			return true
		}

	case reflect.String:
		v := val.String()
		in.label(ui, name)
		if ui.InputTextWithHint("##value", "", &v, imgui.InputTextFlagsNone) && val.CanSet() {
			val.SetString(v)
			return true
		}

	case reflect.Struct:
		changed := false
		gui.TreeNode(ui, name, func() {
			changed = in.renderStruct(ui, val)
		})
		return changed

	case reflect.Slice, reflect.Array:
		gui.Textf(ui, "%s: [%d items]", name, val.Len())

	case reflect.Map:
		gui.Textf(ui, "%s: map[%d items]", name, val.Len())

	default:
		gui.Textf(ui, "%s: %v", name, val.Interface())
	}
	return false
}
