// Package gui exposes Dear ImGui as an injectable interface.
//
// Code that draws UI depends on ImGui (or one of the narrower role interfaces
// it is composed of) instead of calling the cimgui-go package directly. In
// production the Native implementation forwards every call to the native
// library; in tests a recording double from gui/guitest stands in for it.
//
// The interface mirrors cimgui-go one method per exported function, using the
// binding's own naming for overloads (BeginV, PushIDStr, IsKeyPressedBool...)
// and its own value types (imgui.Vec2, imgui.ID, flag enums).
package gui

import "github.com/AllenDang/cimgui-go/imgui"

// Windows covers top-level window creation and the "next window" setters.
type Windows interface {
	// Begin pushes a window onto the stack. End must be called regardless of
	// the result.
	Begin(name string) bool
	BeginV(name string, open *bool, flags imgui.WindowFlags) bool
	End()

	SetNextWindowPos(pos imgui.Vec2)
	SetNextWindowPosV(pos imgui.Vec2, cond imgui.Cond, pivot imgui.Vec2)
	SetNextWindowSize(size imgui.Vec2)
	SetNextWindowSizeV(size imgui.Vec2, cond imgui.Cond)
	SetNextWindowContentSize(size imgui.Vec2)
	SetNextWindowCollapsed(collapsed bool)
	SetNextWindowCollapsedV(collapsed bool, cond imgui.Cond)
	SetNextWindowFocus()
	SetNextWindowBgAlpha(alpha float32)
	SetNextWindowScroll(scroll imgui.Vec2)
	SetWindowFocusStr(name string)

	WindowPos() imgui.Vec2
	WindowSize() imgui.Vec2
	WindowWidth() float32
	WindowHeight() float32
	IsWindowAppearing() bool
	IsWindowCollapsed() bool
	IsWindowFocused() bool
	IsWindowFocusedV(flags imgui.FocusedFlags) bool
	IsWindowHovered() bool
	IsWindowHoveredV(flags imgui.HoveredFlags) bool
}

// Children covers child regions inside a window.
type Children interface {
	// BeginChildStr opens a child region. EndChild must be called regardless
	// of the result.
	BeginChildStr(id string) bool
	BeginChildStrV(id string, size imgui.Vec2, childFlags imgui.ChildFlags, windowFlags imgui.WindowFlags) bool
	BeginChildID(id imgui.ID) bool
	EndChild()
}

// Text covers plain text output. The formatted variants are passed to ImGui's
// printf as-is; use Textf and friends for Go-side formatting.
type Text interface {
	Text(text string)
	TextUnformatted(text string)
	TextColored(col imgui.Vec4, text string)
	TextDisabled(text string)
	TextWrapped(text string)
	LabelText(label, text string)
	BulletText(text string)
	SeparatorText(label string)
	TextLink(label string) bool
	Bullet()
}

// Buttons covers clickable widgets and simple toggles.
type Buttons interface {
	Button(label string) bool
	ButtonV(label string, size imgui.Vec2) bool
	SmallButton(label string) bool
	InvisibleButton(id string, size imgui.Vec2) bool
	InvisibleButtonV(id string, size imgui.Vec2, flags imgui.ButtonFlags) bool
	ArrowButton(id string, dir imgui.Dir) bool
	Checkbox(label string, v *bool) bool
	CheckboxFlagsIntPtr(label string, flags *int32, flagsValue int32) bool
	RadioButtonBool(label string, active bool) bool
	RadioButtonIntPtr(label string, v *int32, vButton int32) bool
	ProgressBar(fraction float32)
	ProgressBarV(fraction float32, size imgui.Vec2, overlay string)
}

// Inputs covers keyboard-entry widgets.
type Inputs interface {
	// InputText edits buf in place; the native buffer grows as needed.
	InputText(label string, buf *string, flags imgui.InputTextFlags) bool
	InputTextWithHint(label, hint string, buf *string, flags imgui.InputTextFlags) bool
	InputTextMultiline(label string, buf *string, size imgui.Vec2, flags imgui.InputTextFlags) bool
	InputInt(label string, v *int32) bool
	InputIntV(label string, v *int32, step, stepFast int32, flags imgui.InputTextFlags) bool
	InputInt2(label string, v *[2]int32) bool
	InputFloat(label string, v *float32) bool
	InputFloatV(label string, v *float32, step, stepFast float32, format string, flags imgui.InputTextFlags) bool
	InputFloat2(label string, v *[2]float32) bool
	InputFloat3(label string, v *[3]float32) bool
	InputFloat4(label string, v *[4]float32) bool
	InputDouble(label string, v *float64) bool
}

// Sliders covers bounded slider widgets.
type Sliders interface {
	SliderFloat(label string, v *float32, min, max float32) bool
	SliderFloatV(label string, v *float32, min, max float32, format string, flags imgui.SliderFlags) bool
	SliderFloat2(label string, v *[2]float32, min, max float32) bool
	SliderInt(label string, v *int32, min, max int32) bool
	SliderIntV(label string, v *int32, min, max int32, format string, flags imgui.SliderFlags) bool
	SliderAngle(label string, rad *float32) bool
	VSliderFloat(label string, size imgui.Vec2, v *float32, min, max float32) bool
}

// Drags covers drag-to-edit widgets.
type Drags interface {
	DragFloat(label string, v *float32) bool
	DragFloatV(label string, v *float32, speed, min, max float32, format string, flags imgui.SliderFlags) bool
	DragFloat2(label string, v *[2]float32) bool
	DragFloatRange2(label string, currentMin, currentMax *float32) bool
	DragInt(label string, v *int32) bool
	DragIntV(label string, v *int32, speed float32, min, max int32, format string, flags imgui.SliderFlags) bool
}

// Colors covers colour editors and pickers.
type Colors interface {
	ColorEdit3(label string, col *[3]float32) bool
	ColorEdit3V(label string, col *[3]float32, flags imgui.ColorEditFlags) bool
	ColorEdit4(label string, col *[4]float32) bool
	ColorEdit4V(label string, col *[4]float32, flags imgui.ColorEditFlags) bool
	ColorPicker3(label string, col *[3]float32) bool
	ColorPicker4(label string, col *[4]float32) bool
	ColorButton(id string, col imgui.Vec4) bool
}

// Combos covers drop-down selection.
type Combos interface {
	// BeginCombo opens a combo popup. EndCombo is only called when it
	// returned true.
	BeginCombo(label, preview string) bool
	BeginComboV(label, preview string, flags imgui.ComboFlags) bool
	EndCombo()
	ComboStrarr(label string, current *int32, items []string, count int32) bool
}

// Trees covers tree nodes and collapsing headers.
type Trees interface {
	// TreeNodeStr returns true when the node is open; TreePop is then required.
	TreeNodeStr(label string) bool
	TreeNodeExStr(label string) bool
	TreeNodeExStrV(label string, flags imgui.TreeNodeFlags) bool
	TreePushStr(id string)
	TreePop()
	TreeNodeToLabelSpacing() float32
	CollapsingHeaderTreeNodeFlags(label string) bool
	CollapsingHeaderTreeNodeFlagsV(label string, flags imgui.TreeNodeFlags) bool
	CollapsingHeaderBoolPtr(label string, visible *bool) bool
	SetNextItemOpen(open bool)
	SetNextItemOpenV(open bool, cond imgui.Cond)
}

// Selectables covers selectable rows and list boxes.
type Selectables interface {
	SelectableBool(label string) bool
	SelectableBoolV(label string, selected bool, flags imgui.SelectableFlags, size imgui.Vec2) bool
	SelectableBoolPtr(label string, selected *bool) bool
	BeginListBox(label string) bool
	BeginListBoxV(label string, size imgui.Vec2) bool
	EndListBox()
}

// Plots covers the built-in line and histogram plots. values points at the
// first of count float32 samples.
type Plots interface {
	PlotLinesFloatPtr(label string, values *float32, count int32)
	PlotLinesFloatPtrV(label string, values *float32, count, offset int32, overlay string, scaleMin, scaleMax float32, size imgui.Vec2, stride int32)
	PlotHistogramFloatPtr(label string, values *float32, count int32)
	PlotHistogramFloatPtrV(label string, values *float32, count, offset int32, overlay string, scaleMin, scaleMax float32, size imgui.Vec2, stride int32)
}

// Menus covers menu bars and menu items.
type Menus interface {
	BeginMenuBar() bool
	EndMenuBar()
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string) bool
	BeginMenuV(label string, enabled bool) bool
	EndMenu()
	MenuItemBool(label string) bool
	MenuItemBoolV(label, shortcut string, selected, enabled bool) bool
	MenuItemBoolPtr(label, shortcut string, selected *bool) bool
}

// Tooltips covers hover tooltips.
type Tooltips interface {
	BeginTooltip() bool
	BeginItemTooltip() bool
	EndTooltip()
	SetTooltip(text string)
	SetItemTooltip(text string)
}

// Popups covers popups and modals.
type Popups interface {
	OpenPopupStr(id string)
	OpenPopupStrV(id string, flags imgui.PopupFlags)
	OpenPopupOnItemClick()
	BeginPopup(id string) bool
	BeginPopupV(id string, flags imgui.WindowFlags) bool
	BeginPopupModal(name string) bool
	BeginPopupModalV(name string, open *bool, flags imgui.WindowFlags) bool
	BeginPopupContextItem() bool
	BeginPopupContextWindow() bool
	EndPopup()
	CloseCurrentPopup()
	IsPopupOpenStr(id string) bool
}

// Tables covers the table API.
type Tables interface {
	BeginTable(id string, columns int32) bool
	BeginTableV(id string, columns int32, flags imgui.TableFlags, outerSize imgui.Vec2, innerWidth float32) bool
	EndTable()
	TableNextRow()
	TableNextRowV(flags imgui.TableRowFlags, minHeight float32)
	TableNextColumn() bool
	TableSetColumnIndex(column int32) bool
	TableSetupColumn(label string)
	TableSetupColumnV(label string, flags imgui.TableColumnFlags, initWidthOrWeight float32, userID imgui.ID)
	TableSetupScrollFreeze(cols, rows int32)
	TableHeadersRow()
	TableHeader(label string)
	TableGetSortSpecs() *imgui.TableSortSpecs
	TableGetColumnCount() int32
	TableGetColumnIndex() int32
	TableGetRowIndex() int32
	TableSetBgColor(target imgui.TableBgTarget, color uint32)
}

// Tabs covers tab bars.
type Tabs interface {
	BeginTabBar(id string) bool
	BeginTabBarV(id string, flags imgui.TabBarFlags) bool
	EndTabBar()
	BeginTabItem(label string) bool
	BeginTabItemV(label string, open *bool, flags imgui.TabItemFlags) bool
	EndTabItem()
	TabItemButton(label string) bool
	SetTabItemClosed(label string)
}

// Layout covers cursor placement and spacing.
type Layout interface {
	Separator()
	SameLine()
	SameLineV(offsetFromStartX, spacing float32)
	NewLine()
	Spacing()
	Dummy(size imgui.Vec2)
	Indent()
	IndentV(width float32)
	Unindent()
	UnindentV(width float32)
	BeginGroup()
	EndGroup()
	AlignTextToFramePadding()

	CursorPos() imgui.Vec2
	CursorPosX() float32
	CursorPosY() float32
	SetCursorPos(pos imgui.Vec2)
	SetCursorPosX(x float32)
	SetCursorPosY(y float32)
	CursorScreenPos() imgui.Vec2
	SetCursorScreenPos(pos imgui.Vec2)
	CursorStartPos() imgui.Vec2
	ContentRegionAvail() imgui.Vec2

	TextLineHeight() float32
	TextLineHeightWithSpacing() float32
	FrameHeight() float32
	FrameHeightWithSpacing() float32
}

// Items covers per-item sizing and the last-item queries.
type Items interface {
	SetNextItemWidth(width float32)
	PushItemWidth(width float32)
	PopItemWidth()
	CalcItemWidth() float32
	PushTextWrapPos()
	PushTextWrapPosV(wrapLocalPosX float32)
	PopTextWrapPos()
	CalcTextSize(text string) imgui.Vec2
	SetNextItemAllowOverlap()
	BeginDisabled()
	BeginDisabledV(disabled bool)
	EndDisabled()

	IsItemHovered() bool
	IsItemHoveredV(flags imgui.HoveredFlags) bool
	IsItemActive() bool
	IsItemFocused() bool
	IsItemClicked() bool
	IsItemClickedV(button imgui.MouseButton) bool
	IsItemVisible() bool
	IsItemEdited() bool
	IsItemActivated() bool
	IsItemDeactivated() bool
	IsItemDeactivatedAfterEdit() bool
	IsItemToggledOpen() bool
	IsAnyItemHovered() bool
	IsAnyItemActive() bool
	IsAnyItemFocused() bool
	ItemID() imgui.ID
	ItemRectMin() imgui.Vec2
	ItemRectMax() imgui.Vec2
	ItemRectSize() imgui.Vec2
	SetItemDefaultFocus()
	SetKeyboardFocusHere()
	SetKeyboardFocusHereV(offset int32)
}

// IDStack covers the widget ID stack.
type IDStack interface {
	PushIDStr(id string)
	PushIDInt(id int32)
	PopID()
	IDStr(id string) imgui.ID
	IDInt(id int32) imgui.ID
}

// Style covers style stacks, colour conversion and theme presets.
type Style interface {
	PushStyleColorVec4(idx imgui.Col, col imgui.Vec4)
	PushStyleColorU32(idx imgui.Col, col uint32)
	PopStyleColor()
	PopStyleColorV(count int32)
	PushStyleVarFloat(idx imgui.StyleVar, val float32)
	PushStyleVarVec2(idx imgui.StyleVar, val imgui.Vec2)
	PopStyleVar()
	PopStyleVarV(count int32)
	PushItemFlag(option imgui.ItemFlags, enabled bool)
	PopItemFlag()

	StyleColorsDark()
	StyleColorsLight()
	StyleColorsClassic()
	CurrentStyle() *imgui.Style
	StyleColorVec4(idx imgui.Col) *imgui.Vec4
	StyleColorName(idx imgui.Col) string
	ColorU32Vec4(col imgui.Vec4) uint32
	ColorU32Col(idx imgui.Col) uint32
	FontSize() float32
}

// Keyboard covers key state queries.
type Keyboard interface {
	IsKeyDown(key imgui.Key) bool
	IsKeyPressedBool(key imgui.Key) bool
	IsKeyPressedBoolV(key imgui.Key, repeat bool) bool
	IsKeyReleased(key imgui.Key) bool
	IsKeyChordPressed(chord imgui.KeyChord) bool
	KeyName(key imgui.Key) string
	SetNextFrameWantCaptureKeyboard(want bool)
}

// Mouse covers mouse state queries.
type Mouse interface {
	IsMouseDown(button imgui.MouseButton) bool
	IsMouseClickedBool(button imgui.MouseButton) bool
	IsMouseReleased(button imgui.MouseButton) bool
	IsMouseDoubleClicked(button imgui.MouseButton) bool
	IsMouseDragging(button imgui.MouseButton) bool
	IsMouseDraggingV(button imgui.MouseButton, threshold float32) bool
	IsMouseHoveringRect(min, max imgui.Vec2) bool
	MousePos() imgui.Vec2
	MousePosOnOpeningCurrentPopup() imgui.Vec2
	MouseDragDelta() imgui.Vec2
	ResetMouseDragDelta()
	SetMouseCursor(cursor imgui.MouseCursor)
	SetNextFrameWantCaptureMouse(want bool)
}

// IO covers the per-frame values read from the current IO block.
type IO interface {
	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
	WantTextInput() bool
	Framerate() float32
	DeltaTime() float32
	DisplaySize() imgui.Vec2
	Time() float64
	FrameCount() int32
}

// Docking covers dock spaces and the dock builder.
type Docking interface {
	DockSpace(id imgui.ID) imgui.ID
	DockSpaceV(id imgui.ID, size imgui.Vec2, flags imgui.DockNodeFlags, class *imgui.WindowClass) imgui.ID
	DockSpaceOverViewport() imgui.ID
	DockSpaceOverViewportV(id imgui.ID, viewport *imgui.Viewport, flags imgui.DockNodeFlags, class *imgui.WindowClass) imgui.ID
	SetNextWindowDockID(id imgui.ID)
	SetNextWindowDockIDV(id imgui.ID, cond imgui.Cond)
	SetNextWindowClass(class *imgui.WindowClass)
	WindowDockID() imgui.ID
	IsWindowDocked() bool

	DockBuilderAddNode(id imgui.ID, flags imgui.DockNodeFlags) imgui.ID
	DockBuilderRemoveNode(id imgui.ID)
	DockBuilderSplitNode(id imgui.ID, dir imgui.Dir, ratio float32, outAtDir, outOpposite *imgui.ID) imgui.ID
	DockBuilderDockWindow(window string, id imgui.ID)
	DockBuilderFinish(id imgui.ID)
}

// Viewports covers platform viewports.
type Viewports interface {
	MainViewport() *imgui.Viewport
	WindowViewport() *imgui.Viewport
	FindViewportByID(id imgui.ID) *imgui.Viewport
	SetNextWindowViewport(id imgui.ID)
	UpdatePlatformWindows()
	RenderPlatformWindowsDefault()
	DestroyPlatformWindows()
}

// Drawing covers draw lists. Draw-list methods take the list they act on so
// the calls can be intercepted like any other.
type Drawing interface {
	WindowDrawList() *imgui.DrawList
	DrawListAddLine(dl *imgui.DrawList, p1, p2 imgui.Vec2, col uint32)
	DrawListAddLineV(dl *imgui.DrawList, p1, p2 imgui.Vec2, col uint32, thickness float32)
	DrawListAddRect(dl *imgui.DrawList, min, max imgui.Vec2, col uint32)
	DrawListAddRectFilled(dl *imgui.DrawList, min, max imgui.Vec2, col uint32)
	DrawListAddRectFilledV(dl *imgui.DrawList, min, max imgui.Vec2, col uint32, rounding float32, flags imgui.DrawFlags)
	DrawListAddCircle(dl *imgui.DrawList, center imgui.Vec2, radius float32, col uint32)
	DrawListAddCircleFilled(dl *imgui.DrawList, center imgui.Vec2, radius float32, col uint32)
	DrawListAddTriangleFilled(dl *imgui.DrawList, p1, p2, p3 imgui.Vec2, col uint32)
	DrawListAddText(dl *imgui.DrawList, pos imgui.Vec2, col uint32, text string)
	DrawListPushClipRect(dl *imgui.DrawList, min, max imgui.Vec2)
	DrawListPopClipRect(dl *imgui.DrawList)
}

// Scrolling covers window scroll state.
type Scrolling interface {
	ScrollX() float32
	ScrollY() float32
	ScrollMaxX() float32
	ScrollMaxY() float32
	SetScrollXFloat(x float32)
	SetScrollYFloat(y float32)
	SetScrollHereX()
	SetScrollHereY()
	SetScrollHereYV(centerYRatio float32)
}

// DragDrop covers drag and drop sources and targets.
type DragDrop interface {
	BeginDragDropSource() bool
	BeginDragDropSourceV(flags imgui.DragDropFlags) bool
	EndDragDropSource()
	BeginDragDropTarget() bool
	EndDragDropTarget()
}

// Settings covers .ini persistence and the clipboard.
type Settings interface {
	LoadIniSettingsFromDisk(filename string)
	SaveIniSettingsToDisk(filename string)
	LoadIniSettingsFromMemory(data string)
	SaveIniSettingsToMemory() string
	ClipboardText() string
	SetClipboardText(text string)
}

// Tools covers the built-in diagnostic windows.
type Tools interface {
	ShowDemoWindow()
	ShowDemoWindowV(open *bool)
	ShowMetricsWindow()
	ShowMetricsWindowV(open *bool)
	ShowAboutWindow()
	ShowStyleEditor()
	ShowUserGuide()
	ShowDebugLogWindow()
	ShowIDStackToolWindow()
	Version() string
}

// ImGui is the complete call surface.
type ImGui interface {
	Windows
	Children
	Text
	Buttons
	Inputs
	Sliders
	Drags
	Colors
	Combos
	Trees
	Selectables
	Plots
	Menus
	Tooltips
	Popups
	Tables
	Tabs
	Layout
	Items
	IDStack
	Style
	Keyboard
	Mouse
	IO
	Docking
	Viewports
	Drawing
	Scrolling
	DragDrop
	Settings
	Tools
}
