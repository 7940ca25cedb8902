package imctx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"charm.land/log/v2"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvIniFile     = "IMDI_INI_FILE"
	EnvDocking     = "IMDI_DOCKING"
	EnvViewports   = "IMDI_VIEWPORTS"
	EnvNavKeyboard = "IMDI_NAV_KEYBOARD"
	EnvLogLevel    = "IMDI_LOG_LEVEL"
)

// Config holds the per-context settings applied at creation.
type Config struct {
	// IniFilename is where window layout is persisted. Empty is passed on as
	// an empty path, which ImGui fails to open, so nothing is loaded or saved.
	IniFilename string
	Docking     bool
	// Viewports lets windows leave the main window. EndFrame then also
	// updates and renders platform windows.
	Viewports   bool
	NavKeyboard bool
	LogLevel    log.Level
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		IniFilename: "imgui.ini",
		Docking:     true,
		NavKeyboard: true,
		LogLevel:    log.InfoLevel,
	}
}

// Flags converts the boolean switches to ImGui config flags.
func (c Config) Flags() imgui.ConfigFlags {
	var flags imgui.ConfigFlags
	if c.Docking {
		flags |= imgui.ConfigFlagsDockingEnable
	}
	if c.Viewports {
		flags |= imgui.ConfigFlagsViewportsEnable
	}
	if c.NavKeyboard {
		flags |= imgui.ConfigFlagsNavEnableKeyboard
	}
	return flags
}

// ConfigFromEnv starts from DefaultConfig and overrides it from the
// environment. The given .env files (or ".env" when none are given) are
// loaded first; missing files are ignored and variables already set in the
// process environment win.
func ConfigFromEnv(files ...string) (Config, error) {
	cfg := DefaultConfig()

	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v, ok := os.LookupEnv(EnvIniFile); ok {
		cfg.IniFilename = v
	}
	for name, dst := range map[string]*bool{
		EnvDocking:     &cfg.Docking,
		EnvViewports:   &cfg.Viewports,
		EnvNavKeyboard: &cfg.NavKeyboard,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := log.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
