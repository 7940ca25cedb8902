package gui_test

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui"
	"github.com/plus3/imdi/gui/guitest"
	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	t.Run("collapsed window still ends", func(t *testing.T) {
		rec := guitest.NewRecorder()
		ran := false
		gui.Window(rec, "Stats", func() { ran = true })

		assert.False(t, ran)
		assert.Equal(t, []string{"Begin", "End"}, rec.Names())
	})

	t.Run("visible window runs body between begin and end", func(t *testing.T) {
		rec := guitest.NewRecorder().Return("BeginV", true)
		open := true
		gui.WindowV(rec, "Stats", &open, imgui.WindowFlagsNoResize, func() { rec.Separator() })

		assert.Equal(t, []string{"BeginV", "Separator", "End"}, rec.Names())
		call, _ := rec.Last("BeginV")
		assert.Equal(t, &open, call.Args[1])
		assert.Equal(t, imgui.WindowFlagsNoResize, call.Args[2])
	})

	t.Run("child always ends", func(t *testing.T) {
		rec := guitest.NewRecorder()
		gui.Child(rec, "##scroll", func() { t.Fatal("body ran for a clipped child") })
		assert.Equal(t, []string{"BeginChildStr", "EndChild"}, rec.Names())
	})
}

func TestConditionalScopes(t *testing.T) {
	scopes := []struct {
		name  string
		begin string
		end   string
		run   func(rec *guitest.Recorder, body func()) bool
	}{
		{"tree node", "TreeNodeStr", "TreePop", func(rec *guitest.Recorder, body func()) bool {
			return gui.TreeNode(rec, "node", body)
		}},
		{"menu", "BeginMenu", "EndMenu", func(rec *guitest.Recorder, body func()) bool {
			return gui.Menu(rec, "File", body)
		}},
		{"main menu bar", "BeginMainMenuBar", "EndMainMenuBar", func(rec *guitest.Recorder, body func()) bool {
			return gui.MainMenuBar(rec, body)
		}},
		{"table", "BeginTableV", "EndTable", func(rec *guitest.Recorder, body func()) bool {
			return gui.Table(rec, "entities", 3, imgui.TableFlagsBorders, body)
		}},
		{"tab bar", "BeginTabBar", "EndTabBar", func(rec *guitest.Recorder, body func()) bool {
			return gui.TabBar(rec, "tabs", body)
		}},
		{"tab item", "BeginTabItem", "EndTabItem", func(rec *guitest.Recorder, body func()) bool {
			return gui.TabItem(rec, "General", body)
		}},
		{"popup", "BeginPopup", "EndPopup", func(rec *guitest.Recorder, body func()) bool {
			return gui.Popup(rec, "ctx", body)
		}},
		{"combo", "BeginCombo", "EndCombo", func(rec *guitest.Recorder, body func()) bool {
			return gui.Combo(rec, "Mode", "fast", body)
		}},
	}

	for _, s := range scopes {
		t.Run(s.name+" closed", func(t *testing.T) {
			rec := guitest.NewRecorder()
			ran := false
			assert.False(t, s.run(rec, func() { ran = true }))
			assert.False(t, ran)
			assert.Equal(t, []string{s.begin}, rec.Names())
		})

		t.Run(s.name+" open", func(t *testing.T) {
			rec := guitest.NewRecorder().Return(s.begin, true)
			assert.True(t, s.run(rec, func() { rec.Spacing() }))
			assert.Equal(t, []string{s.begin, "Spacing", s.end}, rec.Names())
		})
	}
}

func TestEndRunsOnPanic(t *testing.T) {
	rec := guitest.NewRecorder().
		Return("TreeNodeStr", true).
		Return("Begin", true).
		Return("BeginV", true).
		Return("BeginChildStr", true)
	boom := func() { panic("boom") }

	assert.Panics(t, func() { gui.TreeNode(rec, "node", boom) })
	assert.Panics(t, func() { gui.Window(rec, "win", boom) })
	assert.Panics(t, func() { gui.WindowV(rec, "winv", nil, imgui.WindowFlagsNone, boom) })
	assert.Panics(t, func() { gui.Child(rec, "child", boom) })

	assert.Equal(t, 1, rec.Count("TreePop"))
	assert.Equal(t, 2, rec.Count("End"))
	assert.Equal(t, 1, rec.Count("EndChild"))
}

func TestIDScopes(t *testing.T) {
	rec := guitest.NewRecorder()
	gui.WithID(rec, "player", func() {
		gui.WithIntID(rec, 7, func() { rec.Button("Delete") })
	})

	assert.Equal(t, []string{"PushIDStr", "PushIDInt", "Button", "PopID", "PopID"}, rec.Names())
	call, _ := rec.Last("PushIDInt")
	assert.Equal(t, int32(7), call.Args[0])
}

func TestWithStyleColor(t *testing.T) {
	t.Run("pops every pushed colour at once", func(t *testing.T) {
		rec := guitest.NewRecorder()
		gui.WithStyleColor(rec, gui.StyleColors{
			imgui.ColText:   imgui.NewVec4(1, 0, 0, 1),
			imgui.ColButton: imgui.NewVec4(0, 1, 0, 1),
		}, func() { rec.Button("Go") })

		assert.Equal(t, 2, rec.Count("PushStyleColorVec4"))
		call, ok := rec.Last("PopStyleColorV")
		assert.True(t, ok)
		assert.Equal(t, int32(2), call.Args[0])
		assert.Equal(t, "PopStyleColorV", rec.Names()[len(rec.Names())-1])
	})

	t.Run("empty map pushes nothing", func(t *testing.T) {
		rec := guitest.NewRecorder()
		gui.WithStyleColor(rec, nil, func() {})
		assert.Empty(t, rec.Names())
	})
}

func TestStyleVarAndDisabled(t *testing.T) {
	rec := guitest.NewRecorder()
	gui.WithStyleVar(rec, imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0), func() {
		gui.WithStyleVarFloat(rec, imgui.StyleVarAlpha, 0.5, func() {
			gui.WithDisabled(rec, true, func() { rec.Button("Save") })
		})
	})

	assert.Equal(t, []string{
		"PushStyleVarVec2", "PushStyleVarFloat", "BeginDisabledV",
		"Button",
		"EndDisabled", "PopStyleVar", "PopStyleVar",
	}, rec.Names())
}

func TestTextHelpers(t *testing.T) {
	t.Run("percent signs in data are kept", func(t *testing.T) {
		rec := guitest.NewRecorder()
		gui.Textf(rec, "load: %s", "100%d")

		call, _ := rec.Last("TextUnformatted")
		assert.Equal(t, "load: 100%d", call.Args[0])
	})

	t.Run("coloured text restores the style", func(t *testing.T) {
		rec := guitest.NewRecorder()
		red := imgui.NewVec4(1, 0, 0, 1)
		gui.TextColoredf(rec, red, "%d errors", 3)

		assert.Equal(t, []string{"PushStyleColorVec4", "TextUnformatted", "PopStyleColor"}, rec.Names())
		call, _ := rec.Last("PushStyleColorVec4")
		assert.Equal(t, imgui.ColText, call.Args[0])
		assert.Equal(t, red, call.Args[1])
	})

	t.Run("wrapped and bullet text", func(t *testing.T) {
		rec := guitest.NewRecorder()
		gui.TextWrappedf(rec, "%s", "long")
		gui.BulletTextf(rec, "%s", "item")

		assert.Equal(t, []string{
			"PushTextWrapPosV", "TextUnformatted", "PopTextWrapPos",
			"Bullet", "TextUnformatted",
		}, rec.Names())
	})
}
