package ebiten

import (
	"runtime"
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen(t *testing.T) {
	t.Run("init needs a created backend", func(t *testing.T) {
		s := NewScreen(NewProvider(), "test", 640, 480)
		assert.ErrorIs(t, s.Init(nil), errNoBackend)
		assert.Equal(t, Name, s.Name())
	})

	t.Run("keeps the latest draw data", func(t *testing.T) {
		s := NewScreen(NewProvider(), "test", 640, 480)
		first, second := new(imgui.DrawData), new(imgui.DrawData)

		s.RenderDrawData(first)
		s.RenderDrawData(second)

		assert.Same(t, second, s.LastDrawData())
		assert.Equal(t, uint64(2), s.Frames())
	})

	t.Run("draw and layout are no-ops without a backend", func(t *testing.T) {
		s := NewScreen(NewProvider(), "test", 640, 480)
		assert.NotPanics(t, func() {
			s.Draw(nil)
			s.Layout(800, 600)
			s.NewFrame()
		})
		assert.NoError(t, s.Shutdown())
	})

	t.Run("draw skips null draw data", func(t *testing.T) {
		s := NewScreen(NewProvider(), "test", 640, 480)
		s.RenderDrawData(new(imgui.DrawData))
		assert.NotPanics(t, func() { s.Draw(nil) })
	})
}

func TestProvider(t *testing.T) {
	t.Run("creates a live context shared with the backend", func(t *testing.T) {
		p := NewProvider()
		ctx := p.CreateContext()
		require.NotNil(t, ctx)
		require.NotNil(t, ctx.CData)
		require.NotNil(t, p.backend)

		cur := p.CurrentContext()
		require.NotNil(t, cur)
		assert.Equal(t, ctx.CData, cur.CData)

		p.DestroyContext(ctx)
		assert.Nil(t, p.backend)
	})

	t.Run("a dropped backend does not destroy later contexts", func(t *testing.T) {
		first := NewProvider()
		first.DestroyContext(first.CreateContext())

		second := NewProvider()
		ctx := second.CreateContext()
		runtime.GC()
		runtime.GC()

		cur := imgui.CurrentContext()
		require.NotNil(t, cur.CData)
		assert.Equal(t, ctx.CData, cur.CData)
		second.DestroyContext(ctx)
	})
}
