package widgets

import "github.com/plus3/imdi/gui"

// InputCapture tracks whether ImGui is consuming mouse or keyboard input, so
// the application underneath can ignore it.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Update reads the current capture state. Call it once per frame.
func (ic *InputCapture) Update(io gui.IO) {
	ic.WantCaptureMouse = io.WantCaptureMouse()
	ic.WantCaptureKeyboard = io.WantCaptureKeyboard()
}
