package main

import (
	"bytes"
	"io"
	"testing"

	"charm.land/log/v2"
	"github.com/plus3/imdi/gui/guitest"
	"github.com/plus3/imdi/widgets"
	"github.com/stretchr/testify/assert"
)

func newTestDemo(out io.Writer) *demo {
	logger := log.NewWithOptions(out, log.Options{Level: log.DebugLevel})
	return newDemo(widgets.NewLogConsole(10), logger, true)
}

func TestDemoLayout(t *testing.T) {
	t.Run("default windows", func(t *testing.T) {
		d := newTestDemo(io.Discard)
		rec := guitest.NewRecorder()

		d.layout(rec)

		assert.Equal(t, 1, rec.Count("DockSpaceOverViewport"))
		assert.Equal(t, 3, rec.Count("End"), "performance, log and scene windows")
		assert.Zero(t, rec.Count("ShowDemoWindowV"))
	})

	t.Run("view menu toggles the demo window", func(t *testing.T) {
		d := newTestDemo(io.Discard)
		rec := guitest.NewRecorder().
			Return("BeginMainMenuBar", true).
			Return("BeginMenu", true)
		rec.Do("MenuItemBoolPtr", func(args []any) {
			if args[0] == "ImGui Demo" {
				*(args[2].(*bool)) = true
			}
		})

		d.layout(rec)

		assert.True(t, d.showDemo)
		assert.Equal(t, 1, rec.Count("ShowDemoWindowV"))
		assert.Equal(t, 2, rec.Count("EndMenu"))
		assert.Equal(t, 1, rec.Count("EndMainMenuBar"))
	})

	t.Run("scene edits are logged", func(t *testing.T) {
		var out bytes.Buffer
		d := newTestDemo(&out)
		rec := guitest.NewRecorder().Return("Begin", true)
		rec.Do("Checkbox", func(args []any) {
			if args[0] == "Enabled" {
				*(args[1].(*bool)) = false
			}
		}).Return("Checkbox", true).Return("TreeNodeStr", true)

		d.layout(rec)

		assert.False(t, d.settings.Grid.Enabled)
		assert.Contains(t, out.String(), "scene changed")
	})

	t.Run("capture changes are logged at debug", func(t *testing.T) {
		var out bytes.Buffer
		d := newTestDemo(&out)

		d.layout(guitest.NewRecorder().Return("WantCaptureMouse", true))
		assert.Contains(t, out.String(), "input capture changed")

		out.Reset()
		d.layout(guitest.NewRecorder().Return("WantCaptureMouse", true))
		assert.NotContains(t, out.String(), "input capture changed")
	})
}
