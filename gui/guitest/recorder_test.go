package guitest_test

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui/guitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("records calls with their arguments", func(t *testing.T) {
		rec := guitest.NewRecorder()
		rec.Text("hello")
		rec.SameLine()
		rec.SetNextItemWidth(120)

		calls := rec.Calls()
		require.Len(t, calls, 3)
		assert.Equal(t, guitest.Call{Name: "Text", Args: []any{"hello"}}, calls[0])
		assert.Equal(t, "SameLine", calls[1].Name)
		assert.Empty(t, calls[1].Args)
		assert.Equal(t, float32(120), calls[2].Args[0])
	})

	t.Run("unqueued results are zero", func(t *testing.T) {
		rec := guitest.NewRecorder()
		assert.False(t, rec.Button("Ok"))
		assert.Zero(t, rec.Framerate())
		assert.Equal(t, imgui.Vec2{}, rec.DisplaySize())
	})

	t.Run("queued results are consumed and the last one sticks", func(t *testing.T) {
		rec := guitest.NewRecorder().Return("Button", true, false)
		assert.True(t, rec.Button("a"))
		assert.False(t, rec.Button("b"))
		assert.False(t, rec.Button("c"))
	})

	t.Run("results of the wrong type fall back to zero", func(t *testing.T) {
		rec := guitest.NewRecorder().Return("FrameCount", 3)
		assert.Zero(t, rec.FrameCount())
	})

	t.Run("hooks see pointer arguments", func(t *testing.T) {
		rec := guitest.NewRecorder()
		rec.Do("SliderFloat", func(args []any) { *(args[1].(*float32)) = 0.75 })

		v := float32(0.25)
		rec.SliderFloat("volume", &v, 0, 1)
		assert.Equal(t, float32(0.75), v)
	})

	t.Run("count, last and reset", func(t *testing.T) {
		rec := guitest.NewRecorder().Return("Begin", true)
		rec.Begin("one")
		rec.End()
		rec.Begin("two")
		rec.End()

		assert.Equal(t, 2, rec.Count("Begin"))
		last, ok := rec.Last("Begin")
		require.True(t, ok)
		assert.Equal(t, "two", last.Args[0])

		rec.Reset()
		assert.Empty(t, rec.Names())
		assert.False(t, rec.Begin("three"))
		_, ok = rec.Last("Separator")
		assert.False(t, ok)
	})
}
