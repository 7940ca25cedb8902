// Command imdi-demo opens an Ebiten window hosting the diagnostic widgets and
// the Dear ImGui demo window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"charm.land/log/v2"
	"github.com/hajimehoshi/ebiten/v2"
	imdiebiten "github.com/plus3/imdi/backend/ebiten"
	"github.com/plus3/imdi/imctx"
	"github.com/plus3/imdi/widgets"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
	consoleLines  = 500
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "imdi-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	iniFile := flag.String("ini", "", "Layout file. Overrides IMDI_INI_FILE; \"-\" disables persistence.")
	docking := flag.Bool("docking", true, "Enable docking.")
	width := flag.Int("width", defaultWidth, "Window width in pixels.")
	height := flag.Int("height", defaultHeight, "Window height in pixels.")
	debug := flag.Bool("debug", false, "Log lifecycle events at debug level.")
	flag.Parse()

	cfg, err := imctx.ConfigFromEnv()
	if err != nil {
		return err
	}
	switch *iniFile {
	case "":
	case "-":
		cfg.IniFilename = ""
	default:
		cfg.IniFilename = *iniFile
	}
	cfg.Docking = *docking
	if *debug {
		cfg.LogLevel = log.DebugLevel
	}

	console := widgets.NewLogConsole(consoleLines)
	logger := log.NewWithOptions(io.MultiWriter(os.Stderr, console), log.Options{
		Prefix:          "imdi",
		Level:           cfg.LogLevel,
		ReportTimestamp: true,
	})

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, screen, err := imdiebiten.NewContext(cfg, "imdi demo", *width, *height, imctx.WithLogger(logger))
	if err != nil {
		return err
	}

	d := newDemo(console, logger, cfg.Docking)
	logger.Info("starting", "width", *width, "height", *height, "ini", cfg.IniFilename, "docking", cfg.Docking)

	return imdiebiten.Run(&imdiebiten.Game{
		Context:    ctx,
		Screen:     screen,
		UI:         d.layout,
		Background: d.background,
		QuitKeys:   true,
	})
}
