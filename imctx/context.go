// Package imctx manages the lifecycle of a Dear ImGui context and the
// backends attached to it.
//
// A Context is created, has backends added, is initialized once, then drives
// frames with BeginFrame/EndFrame (or Frame) until Dispose:
//
//	ctx, err := imctx.New(imctx.NativeProvider{}, imctx.DefaultConfig())
//	ctx.AddBackend(platform)
//	ctx.AddBackend(renderer)
//	ctx.Initialize()
//	for running {
//		ctx.Frame(layout)
//	}
//	ctx.Dispose()
package imctx

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"charm.land/log/v2"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui"
)

var (
	ErrDisposed         = errors.New("imctx: context disposed")
	ErrNotInitialized   = errors.New("imctx: context not initialized")
	ErrInFrame          = errors.New("imctx: frame already begun")
	ErrNotInFrame       = errors.New("imctx: no frame in progress")
	ErrNilBackend       = errors.New("imctx: nil backend")
	ErrDuplicateBackend = errors.New("imctx: duplicate backend")
	ErrUnknownBackend   = errors.New("imctx: unknown backend")
	ErrNoContext        = errors.New("imctx: provider returned no context")
)

// Option customizes a Context at creation.
type Option func(*Context)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Context) { c.logger = logger }
}

// WithUI replaces the surface handed to frame callbacks.
func WithUI(ui gui.ImGui) Option {
	return func(c *Context) { c.ui = ui }
}

// Context owns one native ImGui context and the ordered list of backends that
// feed and consume it. It is not safe for concurrent use.
type Context struct {
	provider Provider
	handle   *imgui.Context
	cfg      Config
	ui       gui.ImGui
	logger   *log.Logger

	backends    []Backend
	initialized bool
	inFrame     bool
	disposed    bool
	frames      uint64
}

// New creates the native context, makes it current and applies cfg.
func New(p Provider, cfg Config, opts ...Option) (*Context, error) {
	c := &Context{
		provider: p,
		cfg:      cfg,
		ui:       gui.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "imctx",
			Level:  cfg.LogLevel,
		})
	}

	c.handle = p.CreateContext()
	if !valid(c.handle) {
		return nil, ErrNoContext
	}
	p.SetCurrentContext(c.handle)
	p.SetIniFilename(cfg.IniFilename)
	p.SetConfigFlags(p.ConfigFlags() | cfg.Flags())

	c.logger.Debug("context created", "ini", cfg.IniFilename, "flags", cfg.Flags())
	return c, nil
}

// valid reports whether h wraps a native context. The binding hands out
// non-nil wrappers around a null pointer when no context exists.
func valid(h *imgui.Context) bool { return h != nil && h.CData != nil }

// Handle returns the native context, or nil after Dispose.
func (c *Context) Handle() *imgui.Context { return c.handle }

// UI returns the surface passed to frame callbacks.
func (c *Context) UI() gui.ImGui { return c.ui }

// Config returns the settings the context was created with.
func (c *Context) Config() Config { return c.cfg }

// Logger returns the lifecycle logger. Backends may log through it.
func (c *Context) Logger() *log.Logger { return c.logger }

// Backends returns the registered backends in order.
func (c *Context) Backends() []Backend { return slices.Clone(c.backends) }

// Backend looks a backend up by name.
func (c *Context) Backend(name string) (Backend, bool) {
	for _, b := range c.backends {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// IsCurrent reports whether the provider's current context is this one.
func (c *Context) IsCurrent() bool {
	cur := c.provider.CurrentContext()
	return valid(cur) && valid(c.handle) && cur.CData == c.handle.CData
}

func (c *Context) Initialized() bool  { return c.initialized }
func (c *Context) InFrame() bool      { return c.inFrame }
func (c *Context) Disposed() bool     { return c.disposed }
func (c *Context) FrameCount() uint64 { return c.frames }

// AddBackend registers b. When the context is already initialized b is
// initialized straight away and only registered if that succeeds.
func (c *Context) AddBackend(b Backend) error {
	if c.disposed {
		return ErrDisposed
	}
	if b == nil {
		return ErrNilBackend
	}
	if _, ok := c.Backend(b.Name()); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBackend, b.Name())
	}

	if c.initialized {
		c.provider.SetCurrentContext(c.handle)
		if err := c.initBackend(b); err != nil {
			return err
		}
	}
	c.backends = append(c.backends, b)
	return nil
}

// RemoveBackend drops the backend registered under name, shutting it down
// first when the context is initialized. The backend is dropped even if its
// shutdown fails.
func (c *Context) RemoveBackend(name string) error {
	switch {
	case c.disposed:
		return ErrDisposed
	case c.inFrame:
		return ErrInFrame
	}

	i := slices.IndexFunc(c.backends, func(b Backend) bool { return b.Name() == name })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
	b := c.backends[i]
	c.backends = slices.Delete(c.backends, i, i+1)

	if !c.initialized {
		return nil
	}
	c.provider.SetCurrentContext(c.handle)
	return c.shutdown([]Backend{b})
}

// Initialize initializes every backend in registration order. A second call
// is a no-op. If a backend fails, the ones already initialized are shut down
// in reverse order and the context stays uninitialized.
func (c *Context) Initialize() error {
	if c.disposed {
		return ErrDisposed
	}
	if c.initialized {
		c.logger.Debug("already initialized")
		return nil
	}

	c.provider.SetCurrentContext(c.handle)
	for i, b := range c.backends {
		if err := c.initBackend(b); err != nil {
			return errors.Join(err, c.shutdown(c.backends[:i]))
		}
	}
	c.initialized = true
	return nil
}

func (c *Context) initBackend(b Backend) error {
	if err := b.Init(c); err != nil {
		c.logger.Error("backend init failed", "backend", b.Name(), "err", err)
		return fmt.Errorf("init backend %s: %w", b.Name(), err)
	}
	c.logger.Debug("backend initialized", "backend", b.Name())
	return nil
}

// shutdown stops backends in reverse order and joins their errors.
func (c *Context) shutdown(backends []Backend) error {
	var errs []error
	for i := len(backends) - 1; i >= 0; i-- {
		b := backends[i]
		if err := b.Shutdown(); err != nil {
			c.logger.Warn("backend shutdown failed", "backend", b.Name(), "err", err)
			errs = append(errs, fmt.Errorf("shutdown backend %s: %w", b.Name(), err))
			continue
		}
		c.logger.Debug("backend shut down", "backend", b.Name())
	}
	return errors.Join(errs...)
}

// BeginFrame makes the context current, lets every backend start its frame
// and then starts the native frame.
func (c *Context) BeginFrame() error {
	switch {
	case c.disposed:
		return ErrDisposed
	case !c.initialized:
		return ErrNotInitialized
	case c.inFrame:
		return ErrInFrame
	}

	c.provider.SetCurrentContext(c.handle)
	for _, b := range c.backends {
		b.NewFrame()
	}
	c.provider.NewFrame()
	c.inFrame = true
	return nil
}

// EndFrame renders the frame, hands the draw data to every Renderer backend in
// order and, with viewports enabled, updates the platform windows.
func (c *Context) EndFrame() error {
	switch {
	case c.disposed:
		return ErrDisposed
	case !c.inFrame:
		return ErrNotInFrame
	}

	c.provider.SetCurrentContext(c.handle)
	c.provider.Render()
	data := c.provider.DrawData()
	for _, b := range c.backends {
		if r, ok := b.(Renderer); ok {
			r.RenderDrawData(data)
		}
	}
	if c.provider.ConfigFlags()&imgui.ConfigFlagsViewportsEnable != 0 {
		c.provider.UpdatePlatformWindows()
		c.provider.RenderPlatformWindowsDefault()
	}

	c.inFrame = false
	c.frames++
	return nil
}

// Frame runs fn between BeginFrame and EndFrame. If fn panics the native
// frame is closed without rendering and the panic continues.
func (c *Context) Frame(fn func(ui gui.ImGui)) error {
	if err := c.BeginFrame(); err != nil {
		return err
	}

	done := false
	defer func() {
		if !done {
			c.provider.SetCurrentContext(c.handle)
			c.provider.EndFrame()
			c.inFrame = false
			c.logger.Error("frame abandoned", "frame", c.frames)
		}
	}()
	fn(c.ui)
	done = true

	return c.EndFrame()
}

// Dispose shuts down the backends in reverse order and destroys the native
// context. Only the first call does anything.
func (c *Context) Dispose() error {
	if c.disposed {
		return nil
	}
	c.disposed = true

	var err error
	if c.initialized {
		err = c.shutdown(c.backends)
	}
	c.initialized = false
	c.inFrame = false

	c.provider.DestroyContext(c.handle)
	c.handle = nil
	c.logger.Debug("context disposed", "frames", c.frames)
	return err
}
