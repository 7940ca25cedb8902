package gui

import "github.com/AllenDang/cimgui-go/imgui"

// Window runs body inside Begin/End. End is always called, matching ImGui's
// rule for windows; body only runs when the window is visible.
func Window(ui Windows, name string, body func()) {
	defer ui.End()
	if ui.Begin(name) {
		body()
	}
}

// WindowV is Window with an open flag and window flags.
func WindowV(ui Windows, name string, open *bool, flags imgui.WindowFlags, body func()) {
	defer ui.End()
	if ui.BeginV(name, open, flags) {
		body()
	}
}

// Child runs body inside BeginChildStr/EndChild. EndChild is always called.
func Child(ui Children, id string, body func()) {
	defer ui.EndChild()
	if ui.BeginChildStr(id) {
		body()
	}
}

// TreeNode runs body when the node is open and pops it afterwards.
func TreeNode(ui Trees, label string, body func()) bool {
	if !ui.TreeNodeStr(label) {
		return false
	}
	defer ui.TreePop()
	body()
	return true
}

// Menu runs body when the menu is open.
func Menu(ui Menus, label string, body func()) bool {
	if !ui.BeginMenu(label) {
		return false
	}
	defer ui.EndMenu()
	body()
	return true
}

// MainMenuBar runs body inside the main menu bar when it is shown.
func MainMenuBar(ui Menus, body func()) bool {
	if !ui.BeginMainMenuBar() {
		return false
	}
	defer ui.EndMainMenuBar()
	body()
	return true
}

// Table runs body when the table is visible. EndTable is only called in that
// case.
func Table(ui Tables, id string, columns int32, flags imgui.TableFlags, body func()) bool {
	if !ui.BeginTableV(id, columns, flags, imgui.NewVec2(0, 0), 0) {
		return false
	}
	defer ui.EndTable()
	body()
	return true
}

// TabBar runs body when the tab bar is visible.
func TabBar(ui Tabs, id string, body func()) bool {
	if !ui.BeginTabBar(id) {
		return false
	}
	defer ui.EndTabBar()
	body()
	return true
}

// TabItem runs body when the tab is selected.
func TabItem(ui Tabs, label string, body func()) bool {
	if !ui.BeginTabItem(label) {
		return false
	}
	defer ui.EndTabItem()
	body()
	return true
}

// Popup runs body while the popup is open.
func Popup(ui Popups, id string, body func()) bool {
	if !ui.BeginPopup(id) {
		return false
	}
	defer ui.EndPopup()
	body()
	return true
}

// Combo runs body while the combo is open.
func Combo(ui Combos, label, preview string, body func()) bool {
	if !ui.BeginCombo(label, preview) {
		return false
	}
	defer ui.EndCombo()
	body()
	return true
}

// WithID scopes body under id on the ID stack.
func WithID(ui IDStack, id string, body func()) {
	ui.PushIDStr(id)
	defer ui.PopID()
	body()
}

// WithIntID scopes body under an integer id, as used for list rows.
func WithIntID(ui IDStack, id int32, body func()) {
	ui.PushIDInt(id)
	defer ui.PopID()
	body()
}

// StyleColors maps colour slots to the values pushed for a scope.
type StyleColors map[imgui.Col]imgui.Vec4

// WithStyleColor pushes every colour in colors, runs body and pops them.
func WithStyleColor(ui Style, colors StyleColors, body func()) {
	for idx, col := range colors {
		ui.PushStyleColorVec4(idx, col)
	}
	if len(colors) > 0 {
		defer ui.PopStyleColorV(int32(len(colors)))
	}
	body()
}

// WithStyleVar pushes a single Vec2 style variable for body.
func WithStyleVar(ui Style, idx imgui.StyleVar, val imgui.Vec2, body func()) {
	ui.PushStyleVarVec2(idx, val)
	defer ui.PopStyleVar()
	body()
}

// WithStyleVarFloat pushes a single float style variable for body.
func WithStyleVarFloat(ui Style, idx imgui.StyleVar, val float32, body func()) {
	ui.PushStyleVarFloat(idx, val)
	defer ui.PopStyleVar()
	body()
}

// WithDisabled greys out and deactivates every item in body when disabled is
// true.
func WithDisabled(ui Items, disabled bool, body func()) {
	ui.BeginDisabledV(disabled)
	defer ui.EndDisabled()
	body()
}
