package gui

import "github.com/AllenDang/cimgui-go/imgui"

func (Native) Separator() { imgui.Separator() }
func (Native) SameLine()  { imgui.SameLine() }

func (Native) SameLineV(offsetFromStartX, spacing float32) {
	imgui.SameLineV(offsetFromStartX, spacing)
}

func (Native) NewLine()                 { imgui.NewLine() }
func (Native) Spacing()                 { imgui.Spacing() }
func (Native) Dummy(size imgui.Vec2)    { imgui.Dummy(size) }
func (Native) Indent()                  { imgui.Indent() }
func (Native) IndentV(width float32)    { imgui.IndentV(width) }
func (Native) Unindent()                { imgui.Unindent() }
func (Native) UnindentV(width float32)  { imgui.UnindentV(width) }
func (Native) BeginGroup()              { imgui.BeginGroup() }
func (Native) EndGroup()                { imgui.EndGroup() }
func (Native) AlignTextToFramePadding() { imgui.AlignTextToFramePadding() }

func (Native) CursorPos() imgui.Vec2              { return imgui.CursorPos() }
func (Native) CursorPosX() float32                { return imgui.CursorPosX() }
func (Native) CursorPosY() float32                { return imgui.CursorPosY() }
func (Native) SetCursorPos(pos imgui.Vec2)        { imgui.SetCursorPos(pos) }
func (Native) SetCursorPosX(x float32)            { imgui.SetCursorPosX(x) }
func (Native) SetCursorPosY(y float32)            { imgui.SetCursorPosY(y) }
func (Native) CursorScreenPos() imgui.Vec2        { return imgui.CursorScreenPos() }
func (Native) SetCursorScreenPos(pos imgui.Vec2)  { imgui.SetCursorScreenPos(pos) }
func (Native) CursorStartPos() imgui.Vec2         { return imgui.CursorStartPos() }
func (Native) ContentRegionAvail() imgui.Vec2     { return imgui.ContentRegionAvail() }
func (Native) TextLineHeight() float32            { return imgui.TextLineHeight() }
func (Native) TextLineHeightWithSpacing() float32 { return imgui.TextLineHeightWithSpacing() }
func (Native) FrameHeight() float32               { return imgui.FrameHeight() }
func (Native) FrameHeightWithSpacing() float32    { return imgui.FrameHeightWithSpacing() }

func (Native) SetNextItemWidth(width float32)         { imgui.SetNextItemWidth(width) }
func (Native) PushItemWidth(width float32)            { imgui.PushItemWidth(width) }
func (Native) PopItemWidth()                          { imgui.PopItemWidth() }
func (Native) CalcItemWidth() float32                 { return imgui.CalcItemWidth() }
func (Native) PushTextWrapPos()                       { imgui.PushTextWrapPos() }
func (Native) PushTextWrapPosV(wrapLocalPosX float32) { imgui.PushTextWrapPosV(wrapLocalPosX) }
func (Native) PopTextWrapPos()                        { imgui.PopTextWrapPos() }
func (Native) CalcTextSize(text string) imgui.Vec2    { return imgui.CalcTextSize(text) }
func (Native) SetNextItemAllowOverlap()               { imgui.SetNextItemAllowOverlap() }
func (Native) BeginDisabled()                         { imgui.BeginDisabled() }
func (Native) BeginDisabledV(disabled bool)           { imgui.BeginDisabledV(disabled) }
func (Native) EndDisabled()                           { imgui.EndDisabled() }

func (Native) IsItemHovered() bool { return imgui.IsItemHovered() }

func (Native) IsItemHoveredV(flags imgui.HoveredFlags) bool { return imgui.IsItemHoveredV(flags) }

func (Native) IsItemActive() bool  { return imgui.IsItemActive() }
func (Native) IsItemFocused() bool { return imgui.IsItemFocused() }
func (Native) IsItemClicked() bool { return imgui.IsItemClicked() }

func (Native) IsItemClickedV(button imgui.MouseButton) bool { return imgui.IsItemClickedV(button) }

func (Native) IsItemVisible() bool                { return imgui.IsItemVisible() }
func (Native) IsItemEdited() bool                 { return imgui.IsItemEdited() }
func (Native) IsItemActivated() bool              { return imgui.IsItemActivated() }
func (Native) IsItemDeactivated() bool            { return imgui.IsItemDeactivated() }
func (Native) IsItemDeactivatedAfterEdit() bool   { return imgui.IsItemDeactivatedAfterEdit() }
func (Native) IsItemToggledOpen() bool            { return imgui.IsItemToggledOpen() }
func (Native) IsAnyItemHovered() bool             { return imgui.IsAnyItemHovered() }
func (Native) IsAnyItemActive() bool              { return imgui.IsAnyItemActive() }
func (Native) IsAnyItemFocused() bool             { return imgui.IsAnyItemFocused() }
func (Native) ItemID() imgui.ID                   { return imgui.ItemID() }
func (Native) ItemRectMin() imgui.Vec2            { return imgui.ItemRectMin() }
func (Native) ItemRectMax() imgui.Vec2            { return imgui.ItemRectMax() }
func (Native) ItemRectSize() imgui.Vec2           { return imgui.ItemRectSize() }
func (Native) SetItemDefaultFocus()               { imgui.SetItemDefaultFocus() }
func (Native) SetKeyboardFocusHere()              { imgui.SetKeyboardFocusHere() }
func (Native) SetKeyboardFocusHereV(offset int32) { imgui.SetKeyboardFocusHereV(offset) }

func (Native) PushIDStr(id string)      { imgui.PushIDStr(id) }
func (Native) PushIDInt(id int32)       { imgui.PushIDInt(id) }
func (Native) PopID()                   { imgui.PopID() }
func (Native) IDStr(id string) imgui.ID { return imgui.IDStr(id) }
func (Native) IDInt(id int32) imgui.ID  { return imgui.IDInt(id) }

func (Native) PushStyleColorVec4(idx imgui.Col, col imgui.Vec4) {
	imgui.PushStyleColorVec4(idx, col)
}

func (Native) PushStyleColorU32(idx imgui.Col, col uint32) { imgui.PushStyleColorU32(idx, col) }

func (Native) PopStyleColor()             { imgui.PopStyleColor() }
func (Native) PopStyleColorV(count int32) { imgui.PopStyleColorV(count) }

func (Native) PushStyleVarFloat(idx imgui.StyleVar, val float32) {
	imgui.PushStyleVarFloat(idx, val)
}

func (Native) PushStyleVarVec2(idx imgui.StyleVar, val imgui.Vec2) {
	imgui.PushStyleVarVec2(idx, val)
}

func (Native) PopStyleVar()             { imgui.PopStyleVar() }
func (Native) PopStyleVarV(count int32) { imgui.PopStyleVarV(count) }

func (Native) PushItemFlag(option imgui.ItemFlags, enabled bool) {
	imgui.PushItemFlag(option, enabled)
}

func (Native) PopItemFlag() { imgui.PopItemFlag() }

func (Native) StyleColorsDark()                         { imgui.StyleColorsDark() }
func (Native) StyleColorsLight()                        { imgui.StyleColorsLight() }
func (Native) StyleColorsClassic()                      { imgui.StyleColorsClassic() }
func (Native) CurrentStyle() *imgui.Style               { return imgui.CurrentStyle() }
func (Native) StyleColorVec4(idx imgui.Col) *imgui.Vec4 { return imgui.StyleColorVec4(idx) }
func (Native) StyleColorName(idx imgui.Col) string      { return imgui.StyleColorName(idx) }
func (Native) ColorU32Vec4(col imgui.Vec4) uint32       { return imgui.ColorU32Vec4(col) }
func (Native) ColorU32Col(idx imgui.Col) uint32         { return imgui.ColorU32Col(idx) }
func (Native) FontSize() float32                        { return imgui.FontSize() }
