package main

import (
	"image/color"

	"charm.land/log/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/imdi/gui"
	"github.com/plus3/imdi/widgets"
)

type gridSettings struct {
	Enabled bool
	Spacing int
}

// sceneSettings is what the inspector window edits.
type sceneSettings struct {
	Label string
	Red   uint8
	Green uint8
	Blue  uint8
	Grid  gridSettings
	Tags  []string
}

type demo struct {
	console   *widgets.LogConsole
	logger    *log.Logger
	stats     *widgets.FrameStats
	inspector *widgets.Inspector
	capture   widgets.InputCapture
	docking   bool

	settings sceneSettings

	showStats     bool
	showConsole   bool
	showInspector bool
	showDemo      bool
}

func newDemo(console *widgets.LogConsole, logger *log.Logger, docking bool) *demo {
	return &demo{
		console:   console,
		logger:    logger,
		stats:     widgets.NewFrameStats(120),
		inspector: widgets.NewInspector(),
		docking:   docking,
		settings: sceneSettings{
			Label: "scene",
			Red:   30,
			Green: 34,
			Blue:  42,
			Grid:  gridSettings{Enabled: true, Spacing: 32},
			Tags:  []string{"demo"},
		},
		showStats:     true,
		showConsole:   true,
		showInspector: true,
	}
}

func (d *demo) layout(ui gui.ImGui) {
	prev := d.capture
	d.capture.Update(ui)
	if prev != d.capture {
		d.logger.Debug("input capture changed", "mouse", d.capture.WantCaptureMouse, "keyboard", d.capture.WantCaptureKeyboard)
	}

	if d.docking {
		ui.DockSpaceOverViewport()
	}

	gui.MainMenuBar(ui, func() {
		gui.Menu(ui, "View", func() {
			ui.MenuItemBoolPtr("Performance", "", &d.showStats)
			ui.MenuItemBoolPtr("Log", "", &d.showConsole)
			ui.MenuItemBoolPtr("Scene", "", &d.showInspector)
			ui.Separator()
			ui.MenuItemBoolPtr("ImGui Demo", "", &d.showDemo)
		})
		gui.Menu(ui, "Log", func() {
			if ui.MenuItemBool("Clear") {
				d.console.Clear()
			}
		})
	})

	if d.showStats {
		d.stats.Render(ui, ui.DeltaTime())
	}
	if d.showConsole {
		d.console.Render(ui, "Log")
	}
	if d.showInspector && d.inspector.Render(ui, "Scene", &d.settings) {
		d.logger.Info("scene changed",
			"label", d.settings.Label,
			"rgb", [3]uint8{d.settings.Red, d.settings.Green, d.settings.Blue},
			"grid", d.settings.Grid.Enabled,
		)
	}
	if d.showDemo {
		ui.ShowDemoWindowV(&d.showDemo)
	}
}

func (d *demo) background(screen *ebiten.Image) {
	s := d.settings
	screen.Fill(color.RGBA{R: s.Red, G: s.Green, B: s.Blue, A: 0xff})

	if !s.Grid.Enabled || s.Grid.Spacing < 4 {
		return
	}
	line := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x18}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for x := 0; x < w; x += s.Grid.Spacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, line, false)
	}
	for y := 0; y < h; y += s.Grid.Spacing {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, line, false)
	}
}
