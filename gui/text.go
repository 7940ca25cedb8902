package gui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Textf formats on the Go side and emits the result unformatted, so a '%'
// coming from data is shown literally.
func Textf(ui Text, format string, args ...any) {
	ui.TextUnformatted(fmt.Sprintf(format, args...))
}

// TextColoredf is Textf in the given colour.
func TextColoredf(ui interface {
	Text
	Style
}, col imgui.Vec4, format string, args ...any) {
	ui.PushStyleColorVec4(imgui.ColText, col)
	ui.TextUnformatted(fmt.Sprintf(format, args...))
	ui.PopStyleColor()
}

// TextWrappedf is Textf wrapped at the end of the content region.
func TextWrappedf(ui interface {
	Text
	Items
}, format string, args ...any) {
	ui.PushTextWrapPosV(0)
	ui.TextUnformatted(fmt.Sprintf(format, args...))
	ui.PopTextWrapPos()
}

// BulletTextf is Textf preceded by a bullet.
func BulletTextf(ui Text, format string, args ...any) {
	ui.Bullet()
	ui.TextUnformatted(fmt.Sprintf(format, args...))
}
