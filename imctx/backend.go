package imctx

import "github.com/AllenDang/cimgui-go/imgui"

// Backend is a platform or renderer adapter driven by a Context. Backends are
// initialized in registration order and shut down in reverse.
type Backend interface {
	// Name identifies the backend within one Context.
	Name() string
	// Init is called once, with the owning context current.
	Init(ctx *Context) error
	// NewFrame runs at the start of every frame, before the native NewFrame.
	NewFrame()
	Shutdown() error
}

// Renderer is implemented by backends that consume draw data.
type Renderer interface {
	RenderDrawData(data *imgui.DrawData)
}
