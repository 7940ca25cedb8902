package imctx_test

import (
	"errors"
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui"
	"github.com/plus3/imdi/gui/guitest"
	"github.com/plus3/imdi/imctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, cfg imctx.Config) (*imctx.Context, *fakeProvider, *events) {
	t.Helper()
	ev := &events{}
	p := newFakeProvider(ev)
	ctx, err := imctx.New(p, cfg, imctx.WithLogger(quietLogger()), imctx.WithUI(guitest.NewRecorder()))
	require.NoError(t, err)
	return ctx, p, ev
}

func TestNew(t *testing.T) {
	t.Run("applies config and makes the context current", func(t *testing.T) {
		cfg := imctx.Config{IniFilename: "layout.ini", Docking: true}
		ctx, p, ev := newContext(t, cfg)

		require.Len(t, p.created, 1)
		assert.Same(t, p.created[0], ctx.Handle())
		assert.Same(t, ctx.Handle(), p.current)
		assert.Equal(t, "layout.ini", p.ini)
		assert.Equal(t, imgui.ConfigFlagsDockingEnable, p.flags&imgui.ConfigFlagsDockingEnable)
		assert.Zero(t, p.flags&imgui.ConfigFlagsViewportsEnable)
		assert.Equal(t, []string{"provider.CreateContext"}, []string(*ev))
		assert.False(t, ctx.Initialized())
	})

	t.Run("keeps flags the provider already had", func(t *testing.T) {
		ev := &events{}
		p := newFakeProvider(ev)
		p.flags = imgui.ConfigFlagsNavEnableGamepad

		_, err := imctx.New(p, imctx.Config{Viewports: true}, imctx.WithLogger(quietLogger()))
		require.NoError(t, err)
		assert.NotZero(t, p.flags&imgui.ConfigFlagsNavEnableGamepad)
		assert.NotZero(t, p.flags&imgui.ConfigFlagsViewportsEnable)
	})

	t.Run("provider without a context", func(t *testing.T) {
		p := newFakeProvider(&events{})
		p.noHandle = true

		ctx, err := imctx.New(p, imctx.DefaultConfig(), imctx.WithLogger(quietLogger()))
		assert.ErrorIs(t, err, imctx.ErrNoContext)
		assert.Nil(t, ctx)
	})

	t.Run("provider returning a null native context", func(t *testing.T) {
		p := newFakeProvider(&events{})
		p.nullHandle = true

		ctx, err := imctx.New(p, imctx.DefaultConfig(), imctx.WithLogger(quietLogger()))
		assert.ErrorIs(t, err, imctx.ErrNoContext)
		assert.Nil(t, ctx)
		assert.Empty(t, p.ini, "config must not be applied without a context")
	})

	t.Run("empty ini filename is passed through", func(t *testing.T) {
		p := newFakeProvider(&events{})
		p.ini = "imgui.ini"

		_, err := imctx.New(p, imctx.Config{}, imctx.WithLogger(quietLogger()))
		require.NoError(t, err)
		assert.Empty(t, p.ini)
	})

	t.Run("reports whether it is current", func(t *testing.T) {
		first, p, _ := newContext(t, imctx.DefaultConfig())
		assert.True(t, first.IsCurrent())

		second, err := imctx.New(p, imctx.DefaultConfig(), imctx.WithLogger(quietLogger()))
		require.NoError(t, err)
		assert.True(t, second.IsCurrent())
		assert.False(t, first.IsCurrent())

		require.NoError(t, first.Initialize())
		require.NoError(t, first.BeginFrame())
		assert.True(t, first.IsCurrent())
		require.NoError(t, first.EndFrame())
	})

	t.Run("defaults to the native surface", func(t *testing.T) {
		ctx, err := imctx.New(newFakeProvider(&events{}), imctx.DefaultConfig(), imctx.WithLogger(quietLogger()))
		require.NoError(t, err)
		assert.Equal(t, gui.Default, ctx.UI())
	})
}

func TestAddBackend(t *testing.T) {
	t.Run("rejects nil and duplicates", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())

		assert.ErrorIs(t, ctx.AddBackend(nil), imctx.ErrNilBackend)
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "glfw", ev: ev}))
		assert.ErrorIs(t, ctx.AddBackend(&fakeBackend{name: "glfw", ev: ev}), imctx.ErrDuplicateBackend)
		assert.Len(t, ctx.Backends(), 1)
	})

	t.Run("does not initialize before Initialize", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		b := &fakeBackend{name: "glfw", ev: ev}

		require.NoError(t, ctx.AddBackend(b))
		assert.Zero(t, b.inits)
	})

	t.Run("initializes immediately once the context is initialized", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.Initialize())

		late := &fakeBackend{name: "late", ev: ev}
		require.NoError(t, ctx.AddBackend(late))
		assert.Equal(t, 1, late.inits)
		assert.Same(t, ctx, late.seenCtx)

		got, ok := ctx.Backend("late")
		assert.True(t, ok)
		assert.Same(t, late, got)
	})

	t.Run("late backend that fails to init is not registered", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.Initialize())

		boom := errors.New("boom")
		err := ctx.AddBackend(&fakeBackend{name: "bad", ev: ev, initErr: boom})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, ctx.Backends())
	})

	t.Run("fails after dispose", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.Dispose())
		assert.ErrorIs(t, ctx.AddBackend(&fakeBackend{name: "glfw", ev: ev}), imctx.ErrDisposed)
	})
}

func TestRemoveBackend(t *testing.T) {
	t.Run("before initialize it only unregisters", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "a", ev: ev}))
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "b", ev: ev}))

		require.NoError(t, ctx.RemoveBackend("a"))
		require.NoError(t, ctx.Initialize())

		assert.NotContains(t, []string(*ev), "a.Init")
		assert.NotContains(t, []string(*ev), "a.Shutdown")
		_, ok := ctx.Backend("a")
		assert.False(t, ok)
	})

	t.Run("mid-list removal shuts it down and keeps the rest in order", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, ctx.AddBackend(&fakeBackend{name: name, ev: ev}))
		}
		require.NoError(t, ctx.Initialize())
		*ev = nil

		require.NoError(t, ctx.RemoveBackend("b"))
		assert.Equal(t, []string{"b.Shutdown"}, []string(*ev))
		assert.Len(t, ctx.Backends(), 2)

		*ev = nil
		require.NoError(t, ctx.Frame(func(gui.ImGui) {}))
		require.NoError(t, ctx.Dispose())
		assert.Equal(t, []string{
			"a.NewFrame",
			"c.NewFrame",
			"provider.NewFrame",
			"provider.Render",
			"c.Shutdown",
			"a.Shutdown",
			"provider.DestroyContext",
		}, []string(*ev))
	})

	t.Run("shutdown errors are returned but the backend is gone", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		boom := errors.New("boom")
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "a", ev: ev, shutdownErr: boom}))
		require.NoError(t, ctx.Initialize())

		err := ctx.RemoveBackend("a")
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "shutdown backend a")
		assert.Empty(t, ctx.Backends())
	})

	t.Run("state errors", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		assert.ErrorIs(t, ctx.RemoveBackend("missing"), imctx.ErrUnknownBackend)

		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "a", ev: ev}))
		require.NoError(t, ctx.Initialize())
		require.NoError(t, ctx.BeginFrame())
		assert.ErrorIs(t, ctx.RemoveBackend("a"), imctx.ErrInFrame)
		require.NoError(t, ctx.EndFrame())

		require.NoError(t, ctx.Dispose())
		assert.ErrorIs(t, ctx.RemoveBackend("a"), imctx.ErrDisposed)
	})
}

func TestInitialize(t *testing.T) {
	t.Run("initializes backends in order exactly once", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		platform := &fakeBackend{name: "platform", ev: ev}
		renderer := &fakeRenderer{fakeBackend: fakeBackend{name: "renderer", ev: ev}}
		require.NoError(t, ctx.AddBackend(platform))
		require.NoError(t, ctx.AddBackend(renderer))

		require.NoError(t, ctx.Initialize())
		require.NoError(t, ctx.Initialize())

		assert.True(t, ctx.Initialized())
		assert.Equal(t, 1, platform.inits)
		assert.Equal(t, 1, renderer.inits)
		assert.Equal(t, []string{
			"provider.CreateContext",
			"platform.Init",
			"renderer.Init",
		}, []string(*ev))
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		boom := errors.New("boom")
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "a", ev: ev}))
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "b", ev: ev}))
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "c", ev: ev, initErr: boom}))
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "d", ev: ev}))

		err := ctx.Initialize()
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "init backend c")
		assert.False(t, ctx.Initialized())
		assert.Equal(t, []string{
			"provider.CreateContext",
			"a.Init",
			"b.Init",
			"c.Init",
			"b.Shutdown",
			"a.Shutdown",
		}, []string(*ev))
	})

	t.Run("can be retried after a failure", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		flaky := &fakeBackend{name: "flaky", ev: ev, initErr: errors.New("not yet")}
		require.NoError(t, ctx.AddBackend(flaky))

		require.Error(t, ctx.Initialize())
		flaky.initErr = nil
		require.NoError(t, ctx.Initialize())
		assert.Equal(t, 2, flaky.inits)
	})
}

func TestFrame(t *testing.T) {
	setup := func(t *testing.T, cfg imctx.Config) (*imctx.Context, *fakeProvider, *events, *fakeRenderer) {
		ctx, p, ev := newContext(t, cfg)
		renderer := &fakeRenderer{fakeBackend: fakeBackend{name: "renderer", ev: ev}}
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "platform", ev: ev}))
		require.NoError(t, ctx.AddBackend(renderer))
		require.NoError(t, ctx.Initialize())
		*ev = nil
		return ctx, p, ev, renderer
	}

	t.Run("backends start before the provider and draw data follows render", func(t *testing.T) {
		ctx, p, ev, renderer := setup(t, imctx.Config{})

		require.NoError(t, ctx.BeginFrame())
		assert.True(t, ctx.InFrame())
		require.NoError(t, ctx.EndFrame())

		assert.Equal(t, []string{
			"platform.NewFrame",
			"renderer.NewFrame",
			"provider.NewFrame",
			"provider.Render",
			"renderer.RenderDrawData",
		}, []string(*ev))
		require.Len(t, renderer.got, 1)
		assert.Same(t, p.data, renderer.got[0])
		assert.Equal(t, uint64(1), ctx.FrameCount())
		assert.False(t, ctx.InFrame())
	})

	t.Run("updates platform windows with viewports enabled", func(t *testing.T) {
		ctx, _, ev, _ := setup(t, imctx.Config{Viewports: true})

		require.NoError(t, ctx.BeginFrame())
		require.NoError(t, ctx.EndFrame())

		assert.Equal(t, []string{
			"platform.NewFrame",
			"renderer.NewFrame",
			"provider.NewFrame",
			"provider.Render",
			"renderer.RenderDrawData",
			"provider.UpdatePlatformWindows",
			"provider.RenderPlatformWindowsDefault",
		}, []string(*ev))
	})

	t.Run("restores the context as current", func(t *testing.T) {
		ctx, p, _, _ := setup(t, imctx.Config{})
		p.current = nil

		require.NoError(t, ctx.BeginFrame())
		assert.Same(t, ctx.Handle(), p.current)
		require.NoError(t, ctx.EndFrame())
	})

	t.Run("state errors", func(t *testing.T) {
		ctx, _, _ := newContext(t, imctx.Config{})
		assert.ErrorIs(t, ctx.BeginFrame(), imctx.ErrNotInitialized)
		assert.ErrorIs(t, ctx.EndFrame(), imctx.ErrNotInFrame)

		require.NoError(t, ctx.Initialize())
		require.NoError(t, ctx.BeginFrame())
		assert.ErrorIs(t, ctx.BeginFrame(), imctx.ErrInFrame)
		require.NoError(t, ctx.EndFrame())
		assert.ErrorIs(t, ctx.EndFrame(), imctx.ErrNotInFrame)
	})

	t.Run("Frame passes the injected surface", func(t *testing.T) {
		ctx, _, ev, _ := setup(t, imctx.Config{})
		rec := ctx.UI().(*guitest.Recorder)

		err := ctx.Frame(func(ui gui.ImGui) {
			ev.add("layout")
			gui.Window(ui, "Hello", func() { ui.Text("world") })
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"platform.NewFrame",
			"renderer.NewFrame",
			"provider.NewFrame",
			"layout",
			"provider.Render",
			"renderer.RenderDrawData",
		}, []string(*ev))
		assert.Equal(t, []string{"Begin", "End"}, rec.Names())
	})

	t.Run("Frame abandons the frame on panic", func(t *testing.T) {
		ctx, _, ev, renderer := setup(t, imctx.Config{})

		assert.Panics(t, func() {
			_ = ctx.Frame(func(gui.ImGui) { panic("layout bug") })
		})
		assert.False(t, ctx.InFrame())
		assert.Equal(t, []string{
			"platform.NewFrame",
			"renderer.NewFrame",
			"provider.NewFrame",
			"provider.EndFrame",
		}, []string(*ev))
		assert.Empty(t, renderer.got)

		require.NotPanics(t, func() {
			require.NoError(t, ctx.Frame(func(gui.ImGui) {}))
		})
		assert.Equal(t, uint64(1), ctx.FrameCount())
		assert.Len(t, renderer.got, 1)
	})
}

func TestDispose(t *testing.T) {
	t.Run("shuts down in reverse order and destroys the context once", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "platform", ev: ev}))
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "renderer", ev: ev}))
		require.NoError(t, ctx.Initialize())
		*ev = nil

		require.NoError(t, ctx.Dispose())
		require.NoError(t, ctx.Dispose())

		assert.Equal(t, []string{
			"renderer.Shutdown",
			"platform.Shutdown",
			"provider.DestroyContext",
		}, []string(*ev))
		assert.True(t, ctx.Disposed())
		assert.Nil(t, ctx.Handle())
	})

	t.Run("skips shutdown for backends never initialized", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "platform", ev: ev}))
		*ev = nil

		require.NoError(t, ctx.Dispose())
		assert.Equal(t, []string{"provider.DestroyContext"}, []string(*ev))
	})

	t.Run("joins shutdown errors and still destroys the context", func(t *testing.T) {
		ctx, _, ev := newContext(t, imctx.DefaultConfig())
		errA, errB := errors.New("a failed"), errors.New("b failed")
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "a", ev: ev, shutdownErr: errA}))
		require.NoError(t, ctx.AddBackend(&fakeBackend{name: "b", ev: ev, shutdownErr: errB}))
		require.NoError(t, ctx.Initialize())

		err := ctx.Dispose()
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
		assert.Contains(t, []string(*ev), "provider.DestroyContext")
	})

	t.Run("everything fails afterwards", func(t *testing.T) {
		ctx, _, _ := newContext(t, imctx.DefaultConfig())
		require.NoError(t, ctx.Initialize())
		require.NoError(t, ctx.BeginFrame())
		require.NoError(t, ctx.Dispose())

		assert.False(t, ctx.InFrame())
		assert.ErrorIs(t, ctx.Initialize(), imctx.ErrDisposed)
		assert.ErrorIs(t, ctx.BeginFrame(), imctx.ErrDisposed)
		assert.ErrorIs(t, ctx.EndFrame(), imctx.ErrDisposed)
		assert.ErrorIs(t, ctx.Frame(func(gui.ImGui) {}), imctx.ErrDisposed)
	})
}
