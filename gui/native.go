package gui

import "github.com/AllenDang/cimgui-go/imgui"

// Native forwards every call to cimgui-go. It carries no state; the target is
// whatever native context is current.
type Native struct{}

// Default is the production surface.
var Default ImGui = Native{}

var _ ImGui = Native{}

func (Native) Begin(name string) bool { return imgui.Begin(name) }

func (Native) BeginV(name string, open *bool, flags imgui.WindowFlags) bool {
	return imgui.BeginV(name, open, flags)
}

func (Native) End() { imgui.End() }

func (Native) SetNextWindowPos(pos imgui.Vec2) { imgui.SetNextWindowPos(pos) }

func (Native) SetNextWindowPosV(pos imgui.Vec2, cond imgui.Cond, pivot imgui.Vec2) {
	imgui.SetNextWindowPosV(pos, cond, pivot)
}

func (Native) SetNextWindowSize(size imgui.Vec2) { imgui.SetNextWindowSize(size) }

func (Native) SetNextWindowSizeV(size imgui.Vec2, cond imgui.Cond) {
	imgui.SetNextWindowSizeV(size, cond)
}

func (Native) SetNextWindowContentSize(size imgui.Vec2) { imgui.SetNextWindowContentSize(size) }

func (Native) SetNextWindowCollapsed(collapsed bool) { imgui.SetNextWindowCollapsed(collapsed) }

func (Native) SetNextWindowCollapsedV(collapsed bool, cond imgui.Cond) {
	imgui.SetNextWindowCollapsedV(collapsed, cond)
}

func (Native) SetNextWindowFocus()                   { imgui.SetNextWindowFocus() }
func (Native) SetNextWindowBgAlpha(alpha float32)    { imgui.SetNextWindowBgAlpha(alpha) }
func (Native) SetNextWindowScroll(scroll imgui.Vec2) { imgui.SetNextWindowScroll(scroll) }
func (Native) SetWindowFocusStr(name string)         { imgui.SetWindowFocusStr(name) }

func (Native) WindowPos() imgui.Vec2   { return imgui.WindowPos() }
func (Native) WindowSize() imgui.Vec2  { return imgui.WindowSize() }
func (Native) WindowWidth() float32    { return imgui.WindowWidth() }
func (Native) WindowHeight() float32   { return imgui.WindowHeight() }
func (Native) IsWindowAppearing() bool { return imgui.IsWindowAppearing() }
func (Native) IsWindowCollapsed() bool { return imgui.IsWindowCollapsed() }
func (Native) IsWindowFocused() bool   { return imgui.IsWindowFocused() }

func (Native) IsWindowFocusedV(flags imgui.FocusedFlags) bool {
	return imgui.IsWindowFocusedV(flags)
}

func (Native) IsWindowHovered() bool { return imgui.IsWindowHovered() }

func (Native) IsWindowHoveredV(flags imgui.HoveredFlags) bool {
	return imgui.IsWindowHoveredV(flags)
}

func (Native) BeginChildStr(id string) bool { return imgui.BeginChildStr(id) }

func (Native) BeginChildStrV(id string, size imgui.Vec2, childFlags imgui.ChildFlags, windowFlags imgui.WindowFlags) bool {
	return imgui.BeginChildStrV(id, size, childFlags, windowFlags)
}

func (Native) BeginChildID(id imgui.ID) bool { return imgui.BeginChildID(id) }
func (Native) EndChild()                     { imgui.EndChild() }

func (Native) Text(text string)            { imgui.Text(text) }
func (Native) TextUnformatted(text string) { imgui.TextUnformatted(text) }

func (Native) TextColored(col imgui.Vec4, text string) { imgui.TextColored(col, text) }

func (Native) TextDisabled(text string)     { imgui.TextDisabled(text) }
func (Native) TextWrapped(text string)      { imgui.TextWrapped(text) }
func (Native) LabelText(label, text string) { imgui.LabelText(label, text) }
func (Native) BulletText(text string)       { imgui.BulletText(text) }
func (Native) SeparatorText(label string)   { imgui.SeparatorText(label) }
func (Native) TextLink(label string) bool   { return imgui.TextLink(label) }
func (Native) Bullet()                      { imgui.Bullet() }

func (Native) Button(label string) bool { return imgui.Button(label) }

func (Native) ButtonV(label string, size imgui.Vec2) bool { return imgui.ButtonV(label, size) }

func (Native) SmallButton(label string) bool { return imgui.SmallButton(label) }

func (Native) InvisibleButton(id string, size imgui.Vec2) bool {
	return imgui.InvisibleButton(id, size)
}

func (Native) InvisibleButtonV(id string, size imgui.Vec2, flags imgui.ButtonFlags) bool {
	return imgui.InvisibleButtonV(id, size, flags)
}

func (Native) ArrowButton(id string, dir imgui.Dir) bool { return imgui.ArrowButton(id, dir) }

func (Native) Checkbox(label string, v *bool) bool { return imgui.Checkbox(label, v) }

func (Native) CheckboxFlagsIntPtr(label string, flags *int32, flagsValue int32) bool {
	return imgui.CheckboxFlagsIntPtr(label, flags, flagsValue)
}

func (Native) RadioButtonBool(label string, active bool) bool {
	return imgui.RadioButtonBool(label, active)
}

func (Native) RadioButtonIntPtr(label string, v *int32, vButton int32) bool {
	return imgui.RadioButtonIntPtr(label, v, vButton)
}

func (Native) ProgressBar(fraction float32) { imgui.ProgressBar(fraction) }

func (Native) ProgressBarV(fraction float32, size imgui.Vec2, overlay string) {
	imgui.ProgressBarV(fraction, size, overlay)
}

// InputText has no hint-less Go binding; an empty hint renders identically.
func (Native) InputText(label string, buf *string, flags imgui.InputTextFlags) bool {
	return imgui.InputTextWithHint(label, "", buf, flags, nil)
}

func (Native) InputTextWithHint(label, hint string, buf *string, flags imgui.InputTextFlags) bool {
	return imgui.InputTextWithHint(label, hint, buf, flags, nil)
}

func (Native) InputTextMultiline(label string, buf *string, size imgui.Vec2, flags imgui.InputTextFlags) bool {
	return imgui.InputTextMultiline(label, buf, size, flags, nil)
}

func (Native) InputInt(label string, v *int32) bool { return imgui.InputInt(label, v) }

func (Native) InputIntV(label string, v *int32, step, stepFast int32, flags imgui.InputTextFlags) bool {
	return imgui.InputIntV(label, v, step, stepFast, flags)
}

func (Native) InputInt2(label string, v *[2]int32) bool { return imgui.InputInt2(label, v) }

func (Native) InputFloat(label string, v *float32) bool { return imgui.InputFloat(label, v) }

func (Native) InputFloatV(label string, v *float32, step, stepFast float32, format string, flags imgui.InputTextFlags) bool {
	return imgui.InputFloatV(label, v, step, stepFast, format, flags)
}

func (Native) InputFloat2(label string, v *[2]float32) bool { return imgui.InputFloat2(label, v) }
func (Native) InputFloat3(label string, v *[3]float32) bool { return imgui.InputFloat3(label, v) }
func (Native) InputFloat4(label string, v *[4]float32) bool { return imgui.InputFloat4(label, v) }
func (Native) InputDouble(label string, v *float64) bool    { return imgui.InputDouble(label, v) }

func (Native) SliderFloat(label string, v *float32, min, max float32) bool {
	return imgui.SliderFloat(label, v, min, max)
}

func (Native) SliderFloatV(label string, v *float32, min, max float32, format string, flags imgui.SliderFlags) bool {
	return imgui.SliderFloatV(label, v, min, max, format, flags)
}

func (Native) SliderFloat2(label string, v *[2]float32, min, max float32) bool {
	return imgui.SliderFloat2(label, v, min, max)
}

func (Native) SliderInt(label string, v *int32, min, max int32) bool {
	return imgui.SliderInt(label, v, min, max)
}

func (Native) SliderIntV(label string, v *int32, min, max int32, format string, flags imgui.SliderFlags) bool {
	return imgui.SliderIntV(label, v, min, max, format, flags)
}

func (Native) SliderAngle(label string, rad *float32) bool { return imgui.SliderAngle(label, rad) }

func (Native) VSliderFloat(label string, size imgui.Vec2, v *float32, min, max float32) bool {
	return imgui.VSliderFloat(label, size, v, min, max)
}

func (Native) DragFloat(label string, v *float32) bool { return imgui.DragFloat(label, v) }

func (Native) DragFloatV(label string, v *float32, speed, min, max float32, format string, flags imgui.SliderFlags) bool {
	return imgui.DragFloatV(label, v, speed, min, max, format, flags)
}

func (Native) DragFloat2(label string, v *[2]float32) bool { return imgui.DragFloat2(label, v) }

func (Native) DragFloatRange2(label string, currentMin, currentMax *float32) bool {
	return imgui.DragFloatRange2(label, currentMin, currentMax)
}

func (Native) DragInt(label string, v *int32) bool { return imgui.DragInt(label, v) }

func (Native) DragIntV(label string, v *int32, speed float32, min, max int32, format string, flags imgui.SliderFlags) bool {
	return imgui.DragIntV(label, v, speed, min, max, format, flags)
}

func (Native) ColorEdit3(label string, col *[3]float32) bool { return imgui.ColorEdit3(label, col) }

func (Native) ColorEdit3V(label string, col *[3]float32, flags imgui.ColorEditFlags) bool {
	return imgui.ColorEdit3V(label, col, flags)
}

func (Native) ColorEdit4(label string, col *[4]float32) bool { return imgui.ColorEdit4(label, col) }

func (Native) ColorEdit4V(label string, col *[4]float32, flags imgui.ColorEditFlags) bool {
	return imgui.ColorEdit4V(label, col, flags)
}

func (Native) ColorPicker3(label string, col *[3]float32) bool {
	return imgui.ColorPicker3(label, col)
}

func (Native) ColorPicker4(label string, col *[4]float32) bool {
	return imgui.ColorPicker4(label, col)
}

func (Native) ColorButton(id string, col imgui.Vec4) bool { return imgui.ColorButton(id, col) }

func (Native) BeginCombo(label, preview string) bool { return imgui.BeginCombo(label, preview) }

func (Native) BeginComboV(label, preview string, flags imgui.ComboFlags) bool {
	return imgui.BeginComboV(label, preview, flags)
}

func (Native) EndCombo() { imgui.EndCombo() }

func (Native) ComboStrarr(label string, current *int32, items []string, count int32) bool {
	return imgui.ComboStrarr(label, current, items, count)
}
