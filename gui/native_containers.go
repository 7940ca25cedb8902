package gui

import "github.com/AllenDang/cimgui-go/imgui"

func (Native) TreeNodeStr(label string) bool   { return imgui.TreeNodeStr(label) }
func (Native) TreeNodeExStr(label string) bool { return imgui.TreeNodeExStr(label) }

func (Native) TreeNodeExStrV(label string, flags imgui.TreeNodeFlags) bool {
	return imgui.TreeNodeExStrV(label, flags)
}

func (Native) TreePushStr(id string)           { imgui.TreePushStr(id) }
func (Native) TreePop()                        { imgui.TreePop() }
func (Native) TreeNodeToLabelSpacing() float32 { return imgui.TreeNodeToLabelSpacing() }

func (Native) CollapsingHeaderTreeNodeFlags(label string) bool {
	return imgui.CollapsingHeaderTreeNodeFlags(label)
}

func (Native) CollapsingHeaderTreeNodeFlagsV(label string, flags imgui.TreeNodeFlags) bool {
	return imgui.CollapsingHeaderTreeNodeFlagsV(label, flags)
}

func (Native) CollapsingHeaderBoolPtr(label string, visible *bool) bool {
	return imgui.CollapsingHeaderBoolPtr(label, visible)
}

func (Native) SetNextItemOpen(open bool) { imgui.SetNextItemOpen(open) }

func (Native) SetNextItemOpenV(open bool, cond imgui.Cond) { imgui.SetNextItemOpenV(open, cond) }

func (Native) SelectableBool(label string) bool { return imgui.SelectableBool(label) }

func (Native) SelectableBoolV(label string, selected bool, flags imgui.SelectableFlags, size imgui.Vec2) bool {
	return imgui.SelectableBoolV(label, selected, flags, size)
}

func (Native) SelectableBoolPtr(label string, selected *bool) bool {
	return imgui.SelectableBoolPtr(label, selected)
}

func (Native) BeginListBox(label string) bool { return imgui.BeginListBox(label) }

func (Native) BeginListBoxV(label string, size imgui.Vec2) bool {
	return imgui.BeginListBoxV(label, size)
}

func (Native) EndListBox() { imgui.EndListBox() }

func (Native) PlotLinesFloatPtr(label string, values *float32, count int32) {
	imgui.PlotLinesFloatPtr(label, values, count)
}

func (Native) PlotLinesFloatPtrV(label string, values *float32, count, offset int32, overlay string, scaleMin, scaleMax float32, size imgui.Vec2, stride int32) {
	imgui.PlotLinesFloatPtrV(label, values, count, offset, overlay, scaleMin, scaleMax, size, stride)
}

func (Native) PlotHistogramFloatPtr(label string, values *float32, count int32) {
	imgui.PlotHistogramFloatPtr(label, values, count)
}

func (Native) PlotHistogramFloatPtrV(label string, values *float32, count, offset int32, overlay string, scaleMin, scaleMax float32, size imgui.Vec2, stride int32) {
	imgui.PlotHistogramFloatPtrV(label, values, count, offset, overlay, scaleMin, scaleMax, size, stride)
}

func (Native) BeginMenuBar() bool     { return imgui.BeginMenuBar() }
func (Native) EndMenuBar()            { imgui.EndMenuBar() }
func (Native) BeginMainMenuBar() bool { return imgui.BeginMainMenuBar() }
func (Native) EndMainMenuBar()        { imgui.EndMainMenuBar() }

func (Native) BeginMenu(label string) bool { return imgui.BeginMenu(label) }

func (Native) BeginMenuV(label string, enabled bool) bool { return imgui.BeginMenuV(label, enabled) }

func (Native) EndMenu() { imgui.EndMenu() }

func (Native) MenuItemBool(label string) bool { return imgui.MenuItemBool(label) }

func (Native) MenuItemBoolV(label, shortcut string, selected, enabled bool) bool {
	return imgui.MenuItemBoolV(label, shortcut, selected, enabled)
}

func (Native) MenuItemBoolPtr(label, shortcut string, selected *bool) bool {
	return imgui.MenuItemBoolPtr(label, shortcut, selected)
}

func (Native) BeginTooltip() bool         { return imgui.BeginTooltip() }
func (Native) BeginItemTooltip() bool     { return imgui.BeginItemTooltip() }
func (Native) EndTooltip()                { imgui.EndTooltip() }
func (Native) SetTooltip(text string)     { imgui.SetTooltip(text) }
func (Native) SetItemTooltip(text string) { imgui.SetItemTooltip(text) }

func (Native) OpenPopupStr(id string) { imgui.OpenPopupStr(id) }

func (Native) OpenPopupStrV(id string, flags imgui.PopupFlags) { imgui.OpenPopupStrV(id, flags) }

func (Native) OpenPopupOnItemClick()     { imgui.OpenPopupOnItemClick() }
func (Native) BeginPopup(id string) bool { return imgui.BeginPopup(id) }

func (Native) BeginPopupV(id string, flags imgui.WindowFlags) bool {
	return imgui.BeginPopupV(id, flags)
}

func (Native) BeginPopupModal(name string) bool { return imgui.BeginPopupModal(name) }

func (Native) BeginPopupModalV(name string, open *bool, flags imgui.WindowFlags) bool {
	return imgui.BeginPopupModalV(name, open, flags)
}

func (Native) BeginPopupContextItem() bool   { return imgui.BeginPopupContextItem() }
func (Native) BeginPopupContextWindow() bool { return imgui.BeginPopupContextWindow() }
func (Native) EndPopup()                     { imgui.EndPopup() }
func (Native) CloseCurrentPopup()            { imgui.CloseCurrentPopup() }
func (Native) IsPopupOpenStr(id string) bool { return imgui.IsPopupOpenStr(id) }

func (Native) BeginTable(id string, columns int32) bool { return imgui.BeginTable(id, columns) }

func (Native) BeginTableV(id string, columns int32, flags imgui.TableFlags, outerSize imgui.Vec2, innerWidth float32) bool {
	return imgui.BeginTableV(id, columns, flags, outerSize, innerWidth)
}

func (Native) EndTable()     { imgui.EndTable() }
func (Native) TableNextRow() { imgui.TableNextRow() }

func (Native) TableNextRowV(flags imgui.TableRowFlags, minHeight float32) {
	imgui.TableNextRowV(flags, minHeight)
}

func (Native) TableNextColumn() bool { return imgui.TableNextColumn() }

func (Native) TableSetColumnIndex(column int32) bool { return imgui.TableSetColumnIndex(column) }

func (Native) TableSetupColumn(label string) { imgui.TableSetupColumn(label) }

func (Native) TableSetupColumnV(label string, flags imgui.TableColumnFlags, initWidthOrWeight float32, userID imgui.ID) {
	imgui.TableSetupColumnV(label, flags, initWidthOrWeight, userID)
}

func (Native) TableSetupScrollFreeze(cols, rows int32) { imgui.TableSetupScrollFreeze(cols, rows) }

func (Native) TableHeadersRow()         { imgui.TableHeadersRow() }
func (Native) TableHeader(label string) { imgui.TableHeader(label) }

func (Native) TableGetSortSpecs() *imgui.TableSortSpecs { return imgui.TableGetSortSpecs() }

func (Native) TableGetColumnCount() int32 { return imgui.TableGetColumnCount() }
func (Native) TableGetColumnIndex() int32 { return imgui.TableGetColumnIndex() }
func (Native) TableGetRowIndex() int32    { return imgui.TableGetRowIndex() }

func (Native) TableSetBgColor(target imgui.TableBgTarget, color uint32) {
	imgui.TableSetBgColor(target, color)
}

func (Native) BeginTabBar(id string) bool { return imgui.BeginTabBar(id) }

func (Native) BeginTabBarV(id string, flags imgui.TabBarFlags) bool {
	return imgui.BeginTabBarV(id, flags)
}

func (Native) EndTabBar()                     { imgui.EndTabBar() }
func (Native) BeginTabItem(label string) bool { return imgui.BeginTabItem(label) }

func (Native) BeginTabItemV(label string, open *bool, flags imgui.TabItemFlags) bool {
	return imgui.BeginTabItemV(label, open, flags)
}

func (Native) EndTabItem()                     { imgui.EndTabItem() }
func (Native) TabItemButton(label string) bool { return imgui.TabItemButton(label) }
func (Native) SetTabItemClosed(label string)   { imgui.SetTabItemClosed(label) }
