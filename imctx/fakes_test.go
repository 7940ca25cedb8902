package imctx_test

import (
	"io"
	"unsafe"

	"charm.land/log/v2"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/imctx"
)

// events is the shared, ordered trace of provider and backend calls.
type events []string

func (e *events) add(s string) { *e = append(*e, s) }

type fakeProvider struct {
	ev       *events
	flags    imgui.ConfigFlags
	ini      string
	current  *imgui.Context
	created  []*imgui.Context
	data     *imgui.DrawData
	noHandle bool
	// nullHandle returns a wrapper around a null native pointer, which is
	// what the binding gives back when no context exists.
	nullHandle bool
	frameOpen  bool
}

func newFakeProvider(ev *events) *fakeProvider {
	return &fakeProvider{ev: ev, data: new(imgui.DrawData)}
}

func (p *fakeProvider) CreateContext() *imgui.Context {
	p.ev.add("provider.CreateContext")
	switch {
	case p.noHandle:
		return nil
	case p.nullHandle:
		return &imgui.Context{}
	}
	ctx := imgui.NewContextFromC(unsafe.Pointer(new(uint64)))
	p.created = append(p.created, ctx)
	return ctx
}

func (p *fakeProvider) DestroyContext(ctx *imgui.Context) { p.ev.add("provider.DestroyContext") }

func (p *fakeProvider) SetCurrentContext(ctx *imgui.Context) { p.current = ctx }
func (p *fakeProvider) CurrentContext() *imgui.Context       { return p.current }

// NewFrame fails like the native library does when the previous frame was
// never closed.
func (p *fakeProvider) NewFrame() {
	if p.frameOpen {
		panic("NewFrame: previous frame was not ended")
	}
	p.frameOpen = true
	p.ev.add("provider.NewFrame")
}

func (p *fakeProvider) EndFrame() {
	p.frameOpen = false
	p.ev.add("provider.EndFrame")
}

func (p *fakeProvider) Render() {
	p.frameOpen = false
	p.ev.add("provider.Render")
}

func (p *fakeProvider) DrawData() *imgui.DrawData { return p.data }

func (p *fakeProvider) UpdatePlatformWindows() { p.ev.add("provider.UpdatePlatformWindows") }

func (p *fakeProvider) RenderPlatformWindowsDefault() {
	p.ev.add("provider.RenderPlatformWindowsDefault")
}

func (p *fakeProvider) ConfigFlags() imgui.ConfigFlags     { return p.flags }
func (p *fakeProvider) SetConfigFlags(f imgui.ConfigFlags) { p.flags = f }
func (p *fakeProvider) SetIniFilename(name string)         { p.ini = name }

type fakeBackend struct {
	name        string
	ev          *events
	initErr     error
	shutdownErr error
	inits       int
	seenCtx     *imctx.Context
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Init(ctx *imctx.Context) error {
	b.ev.add(b.name + ".Init")
	b.inits++
	b.seenCtx = ctx
	return b.initErr
}

func (b *fakeBackend) NewFrame() { b.ev.add(b.name + ".NewFrame") }

func (b *fakeBackend) Shutdown() error {
	b.ev.add(b.name + ".Shutdown")
	return b.shutdownErr
}

type fakeRenderer struct {
	fakeBackend
	got []*imgui.DrawData
}

func (r *fakeRenderer) RenderDrawData(data *imgui.DrawData) {
	r.ev.add(r.name + ".RenderDrawData")
	r.got = append(r.got, data)
}

var _ imctx.Renderer = (*fakeRenderer)(nil)

func quietLogger() *log.Logger { return log.New(io.Discard) }
