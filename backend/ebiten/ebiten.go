// Package ebiten drives an imctx.Context from the Ebiten game engine using
// cimgui-go's Ebiten backend.
package ebiten

import (
	"errors"
	"runtime"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/imdi/imctx"
)

// Name is the backend name Screen registers under.
const Name = "ebiten"

var errNoBackend = errors.New("ebiten: provider has not created a context")

// Provider implements imctx.Provider on top of the Ebiten backend. The
// backend translates input in BeginFrame; Render ends the frame and builds
// the draw data Screen paints.
type Provider struct {
	backend *ebitenbackend.EbitenBackend
}

var _ imctx.Provider = (*Provider)(nil)

// NewProvider returns a provider; the Ebiten backend is created lazily by
// CreateContext.
func NewProvider() *Provider {
	return &Provider{}
}

// CreateContext creates the native context and hands it to a new Ebiten
// backend, so the window it opens later reuses it.
func (p *Provider) CreateContext() *imgui.Context {
	ctx := imgui.CreateContext()
	if p.backend == nil {
		p.backend = ebitenbackend.NewEbitenBackend()
	}
	p.backend.SetContext(ctx)
	return ctx
}

func (p *Provider) DestroyContext(ctx *imgui.Context) {
	imgui.DestroyContextV(ctx)
	if p.backend != nil {
		// The backend's finalizer destroys whichever context is current.
		runtime.SetFinalizer(p.backend, nil)
		p.backend = nil
	}
}

func (p *Provider) SetCurrentContext(ctx *imgui.Context) { imgui.SetCurrentContext(ctx) }
func (p *Provider) CurrentContext() *imgui.Context       { return imgui.CurrentContext() }
func (p *Provider) NewFrame()                            { p.backend.BeginFrame() }
func (p *Provider) EndFrame()                            { p.backend.EndFrame() }
func (p *Provider) DrawData() *imgui.DrawData            { return imgui.CurrentDrawData() }
func (p *Provider) UpdatePlatformWindows()               { imgui.UpdatePlatformWindows() }
func (p *Provider) RenderPlatformWindowsDefault()        { imgui.RenderPlatformWindowsDefault() }
func (p *Provider) ConfigFlags() imgui.ConfigFlags       { return imgui.CurrentIO().ConfigFlags() }

func (p *Provider) Render() {
	p.backend.EndFrame()
	imgui.Render()
}

func (p *Provider) SetConfigFlags(flags imgui.ConfigFlags) {
	imgui.CurrentIO().SetConfigFlags(flags)
}

func (p *Provider) SetIniFilename(name string) { imgui.CurrentIO().SetIniFilename(name) }

// Screen is the renderer side: it opens the window on Init and paints the
// latest frame into the Ebiten screen on Draw.
type Screen struct {
	provider *Provider
	title    string
	width    int
	height   int

	cache  ebitenbackend.TextureCache
	last   *imgui.DrawData
	frames uint64
}

var (
	_ imctx.Backend  = (*Screen)(nil)
	_ imctx.Renderer = (*Screen)(nil)
)

// NewScreen returns a renderer backend bound to p.
func NewScreen(p *Provider, title string, width, height int) *Screen {
	return &Screen{
		provider: p,
		title:    title,
		width:    width,
		height:   height,
		cache:    ebitenbackend.NewCache(),
	}
}

func (s *Screen) Name() string { return Name }

func (s *Screen) Init(ctx *imctx.Context) error {
	if s.provider == nil || s.provider.backend == nil {
		return errNoBackend
	}
	s.provider.backend.CreateWindow(s.title, s.width, s.height)
	ctx.Logger().Debug("ebiten window created", "title", s.title, "width", s.width, "height", s.height)
	return nil
}

// NewFrame does nothing: input is fed by the provider's BeginFrame.
func (s *Screen) NewFrame() {}

func (s *Screen) RenderDrawData(data *imgui.DrawData) {
	s.last = data
	s.frames++
}

func (s *Screen) Shutdown() error { return nil }

// LastDrawData returns the draw data of the most recent frame.
func (s *Screen) LastDrawData() *imgui.DrawData { return s.last }

// Frames returns how many frames have been handed to the screen.
func (s *Screen) Frames() uint64 { return s.frames }

// Draw paints the UI on top of screen.
func (s *Screen) Draw(screen *ebiten.Image) {
	if s.last == nil || s.last.CData == nil {
		return
	}
	ebitenbackend.Render(screen, s.last, s.cache, ebiten.FilterNearest)
}

// Layout forwards the outside size to the backend.
func (s *Screen) Layout(width, height int) {
	if s.provider.backend == nil {
		return
	}
	s.provider.backend.Layout(width, height)
}

// NewContext wires a Provider, an initialized Context and its Screen.
func NewContext(cfg imctx.Config, title string, width, height int, opts ...imctx.Option) (*imctx.Context, *Screen, error) {
	p := NewProvider()
	ctx, err := imctx.New(p, cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	screen := NewScreen(p, title, width, height)
	if err := ctx.AddBackend(screen); err != nil {
		return nil, nil, errors.Join(err, ctx.Dispose())
	}
	if err := ctx.Initialize(); err != nil {
		return nil, nil, errors.Join(err, ctx.Dispose())
	}
	return ctx, screen, nil
}
