package imctx

import "github.com/AllenDang/cimgui-go/imgui"

// Provider is the slice of the native library a Context sequences.
type Provider interface {
	CreateContext() *imgui.Context
	DestroyContext(ctx *imgui.Context)
	SetCurrentContext(ctx *imgui.Context)
	CurrentContext() *imgui.Context

	NewFrame()
	// EndFrame closes a frame without rendering it.
	EndFrame()
	Render()
	DrawData() *imgui.DrawData

	UpdatePlatformWindows()
	RenderPlatformWindowsDefault()

	ConfigFlags() imgui.ConfigFlags
	SetConfigFlags(flags imgui.ConfigFlags)
	SetIniFilename(name string)
}

// NativeProvider forwards to cimgui-go.
type NativeProvider struct{}

var _ Provider = NativeProvider{}

func (NativeProvider) CreateContext() *imgui.Context        { return imgui.CreateContext() }
func (NativeProvider) DestroyContext(ctx *imgui.Context)    { imgui.DestroyContextV(ctx) }
func (NativeProvider) SetCurrentContext(ctx *imgui.Context) { imgui.SetCurrentContext(ctx) }
func (NativeProvider) CurrentContext() *imgui.Context       { return imgui.CurrentContext() }
func (NativeProvider) NewFrame()                            { imgui.NewFrame() }
func (NativeProvider) EndFrame()                            { imgui.EndFrame() }
func (NativeProvider) Render()                              { imgui.Render() }
func (NativeProvider) DrawData() *imgui.DrawData            { return imgui.CurrentDrawData() }
func (NativeProvider) UpdatePlatformWindows()               { imgui.UpdatePlatformWindows() }
func (NativeProvider) RenderPlatformWindowsDefault()        { imgui.RenderPlatformWindowsDefault() }

func (NativeProvider) ConfigFlags() imgui.ConfigFlags { return imgui.CurrentIO().ConfigFlags() }

func (NativeProvider) SetConfigFlags(flags imgui.ConfigFlags) {
	imgui.CurrentIO().SetConfigFlags(flags)
}

func (NativeProvider) SetIniFilename(name string) { imgui.CurrentIO().SetIniFilename(name) }
