package gui

import "github.com/AllenDang/cimgui-go/imgui"

func (Native) IsKeyDown(key imgui.Key) bool        { return imgui.IsKeyDown(key) }
func (Native) IsKeyPressedBool(key imgui.Key) bool { return imgui.IsKeyPressedBool(key) }

func (Native) IsKeyPressedBoolV(key imgui.Key, repeat bool) bool {
	return imgui.IsKeyPressedBoolV(key, repeat)
}

func (Native) IsKeyReleased(key imgui.Key) bool { return imgui.IsKeyReleased(key) }

func (Native) IsKeyChordPressed(chord imgui.KeyChord) bool { return imgui.IsKeyChordPressed(chord) }

func (Native) KeyName(key imgui.Key) string { return imgui.KeyName(key) }

func (Native) SetNextFrameWantCaptureKeyboard(want bool) {
	imgui.SetNextFrameWantCaptureKeyboard(want)
}

func (Native) IsMouseDown(button imgui.MouseButton) bool { return imgui.IsMouseDown(button) }

func (Native) IsMouseClickedBool(button imgui.MouseButton) bool {
	return imgui.IsMouseClickedBool(button)
}

func (Native) IsMouseReleased(button imgui.MouseButton) bool { return imgui.IsMouseReleased(button) }

func (Native) IsMouseDoubleClicked(button imgui.MouseButton) bool {
	return imgui.IsMouseDoubleClicked(button)
}

func (Native) IsMouseDragging(button imgui.MouseButton) bool { return imgui.IsMouseDragging(button) }

func (Native) IsMouseDraggingV(button imgui.MouseButton, threshold float32) bool {
	return imgui.IsMouseDraggingV(button, threshold)
}

func (Native) IsMouseHoveringRect(min, max imgui.Vec2) bool {
	return imgui.IsMouseHoveringRect(min, max)
}

func (Native) MousePos() imgui.Vec2 { return imgui.MousePos() }

func (Native) MousePosOnOpeningCurrentPopup() imgui.Vec2 {
	return imgui.MousePosOnOpeningCurrentPopup()
}

func (Native) MouseDragDelta() imgui.Vec2              { return imgui.MouseDragDelta() }
func (Native) ResetMouseDragDelta()                    { imgui.ResetMouseDragDelta() }
func (Native) SetMouseCursor(cursor imgui.MouseCursor) { imgui.SetMouseCursor(cursor) }
func (Native) SetNextFrameWantCaptureMouse(want bool)  { imgui.SetNextFrameWantCaptureMouse(want) }

func (Native) WantCaptureMouse() bool    { return imgui.CurrentIO().WantCaptureMouse() }
func (Native) WantCaptureKeyboard() bool { return imgui.CurrentIO().WantCaptureKeyboard() }
func (Native) WantTextInput() bool       { return imgui.CurrentIO().WantTextInput() }
func (Native) Framerate() float32        { return imgui.CurrentIO().Framerate() }
func (Native) DeltaTime() float32        { return imgui.CurrentIO().DeltaTime() }
func (Native) DisplaySize() imgui.Vec2   { return imgui.CurrentIO().DisplaySize() }
func (Native) Time() float64             { return imgui.Time() }
func (Native) FrameCount() int32         { return imgui.FrameCount() }

func (Native) DockSpace(id imgui.ID) imgui.ID { return imgui.DockSpace(id) }

func (Native) DockSpaceV(id imgui.ID, size imgui.Vec2, flags imgui.DockNodeFlags, class *imgui.WindowClass) imgui.ID {
	return imgui.DockSpaceV(id, size, flags, class)
}

func (Native) DockSpaceOverViewport() imgui.ID { return imgui.DockSpaceOverViewport() }

func (Native) DockSpaceOverViewportV(id imgui.ID, viewport *imgui.Viewport, flags imgui.DockNodeFlags, class *imgui.WindowClass) imgui.ID {
	return imgui.DockSpaceOverViewportV(id, viewport, flags, class)
}

func (Native) SetNextWindowDockID(id imgui.ID) { imgui.SetNextWindowDockID(id) }

func (Native) SetNextWindowDockIDV(id imgui.ID, cond imgui.Cond) {
	imgui.SetNextWindowDockIDV(id, cond)
}

func (Native) SetNextWindowClass(class *imgui.WindowClass) { imgui.SetNextWindowClass(class) }

func (Native) WindowDockID() imgui.ID { return imgui.WindowDockID() }
func (Native) IsWindowDocked() bool   { return imgui.IsWindowDocked() }

// The dock builder lives in imgui_internal.h; cimgui-go exposes it with an
// Internal prefix.

func (Native) DockBuilderAddNode(id imgui.ID, flags imgui.DockNodeFlags) imgui.ID {
	return imgui.InternalDockBuilderAddNodeV(id, flags)
}

func (Native) DockBuilderRemoveNode(id imgui.ID) { imgui.InternalDockBuilderRemoveNode(id) }

func (Native) DockBuilderSplitNode(id imgui.ID, dir imgui.Dir, ratio float32, outAtDir, outOpposite *imgui.ID) imgui.ID {
	return imgui.InternalDockBuilderSplitNode(id, dir, ratio, outAtDir, outOpposite)
}

func (Native) DockBuilderDockWindow(window string, id imgui.ID) {
	imgui.InternalDockBuilderDockWindow(window, id)
}

func (Native) DockBuilderFinish(id imgui.ID) { imgui.InternalDockBuilderFinish(id) }

func (Native) MainViewport() *imgui.Viewport   { return imgui.MainViewport() }
func (Native) WindowViewport() *imgui.Viewport { return imgui.WindowViewport() }

func (Native) FindViewportByID(id imgui.ID) *imgui.Viewport { return imgui.FindViewportByID(id) }

func (Native) SetNextWindowViewport(id imgui.ID) { imgui.SetNextWindowViewport(id) }
func (Native) UpdatePlatformWindows()            { imgui.UpdatePlatformWindows() }
func (Native) RenderPlatformWindowsDefault()     { imgui.RenderPlatformWindowsDefault() }
func (Native) DestroyPlatformWindows()           { imgui.DestroyPlatformWindows() }

func (Native) WindowDrawList() *imgui.DrawList { return imgui.WindowDrawList() }

func (Native) DrawListAddLine(dl *imgui.DrawList, p1, p2 imgui.Vec2, col uint32) {
	dl.AddLine(p1, p2, col)
}

func (Native) DrawListAddLineV(dl *imgui.DrawList, p1, p2 imgui.Vec2, col uint32, thickness float32) {
	dl.AddLineV(p1, p2, col, thickness)
}

func (Native) DrawListAddRect(dl *imgui.DrawList, min, max imgui.Vec2, col uint32) {
	dl.AddRect(min, max, col)
}

func (Native) DrawListAddRectFilled(dl *imgui.DrawList, min, max imgui.Vec2, col uint32) {
	dl.AddRectFilled(min, max, col)
}

func (Native) DrawListAddRectFilledV(dl *imgui.DrawList, min, max imgui.Vec2, col uint32, rounding float32, flags imgui.DrawFlags) {
	dl.AddRectFilledV(min, max, col, rounding, flags)
}

func (Native) DrawListAddCircle(dl *imgui.DrawList, center imgui.Vec2, radius float32, col uint32) {
	dl.AddCircle(center, radius, col)
}

func (Native) DrawListAddCircleFilled(dl *imgui.DrawList, center imgui.Vec2, radius float32, col uint32) {
	dl.AddCircleFilled(center, radius, col)
}

func (Native) DrawListAddTriangleFilled(dl *imgui.DrawList, p1, p2, p3 imgui.Vec2, col uint32) {
	dl.AddTriangleFilled(p1, p2, p3, col)
}

func (Native) DrawListAddText(dl *imgui.DrawList, pos imgui.Vec2, col uint32, text string) {
	dl.AddTextVec2(pos, col, text)
}

func (Native) DrawListPushClipRect(dl *imgui.DrawList, min, max imgui.Vec2) {
	dl.PushClipRect(min, max)
}

func (Native) DrawListPopClipRect(dl *imgui.DrawList) { dl.PopClipRect() }

func (Native) ScrollX() float32                     { return imgui.ScrollX() }
func (Native) ScrollY() float32                     { return imgui.ScrollY() }
func (Native) ScrollMaxX() float32                  { return imgui.ScrollMaxX() }
func (Native) ScrollMaxY() float32                  { return imgui.ScrollMaxY() }
func (Native) SetScrollXFloat(x float32)            { imgui.SetScrollXFloat(x) }
func (Native) SetScrollYFloat(y float32)            { imgui.SetScrollYFloat(y) }
func (Native) SetScrollHereX()                      { imgui.SetScrollHereX() }
func (Native) SetScrollHereY()                      { imgui.SetScrollHereY() }
func (Native) SetScrollHereYV(centerYRatio float32) { imgui.SetScrollHereYV(centerYRatio) }

func (Native) BeginDragDropSource() bool { return imgui.BeginDragDropSource() }

func (Native) BeginDragDropSourceV(flags imgui.DragDropFlags) bool {
	return imgui.BeginDragDropSourceV(flags)
}

func (Native) EndDragDropSource()        { imgui.EndDragDropSource() }
func (Native) BeginDragDropTarget() bool { return imgui.BeginDragDropTarget() }
func (Native) EndDragDropTarget()        { imgui.EndDragDropTarget() }

func (Native) LoadIniSettingsFromDisk(filename string) { imgui.LoadIniSettingsFromDisk(filename) }
func (Native) SaveIniSettingsToDisk(filename string)   { imgui.SaveIniSettingsToDisk(filename) }
func (Native) LoadIniSettingsFromMemory(data string)   { imgui.LoadIniSettingsFromMemory(data) }
func (Native) SaveIniSettingsToMemory() string         { return imgui.SaveIniSettingsToMemory() }
func (Native) ClipboardText() string                   { return imgui.ClipboardText() }
func (Native) SetClipboardText(text string)            { imgui.SetClipboardText(text) }

func (Native) ShowDemoWindow()               { imgui.ShowDemoWindow() }
func (Native) ShowDemoWindowV(open *bool)    { imgui.ShowDemoWindowV(open) }
func (Native) ShowMetricsWindow()            { imgui.ShowMetricsWindow() }
func (Native) ShowMetricsWindowV(open *bool) { imgui.ShowMetricsWindowV(open) }
func (Native) ShowAboutWindow()              { imgui.ShowAboutWindow() }
func (Native) ShowStyleEditor()              { imgui.ShowStyleEditor() }
func (Native) ShowUserGuide()                { imgui.ShowUserGuide() }
func (Native) ShowDebugLogWindow()           { imgui.ShowDebugLogWindow() }
func (Native) ShowIDStackToolWindow()        { imgui.ShowIDStackToolWindow() }
func (Native) Version() string               { return imgui.Version() }
