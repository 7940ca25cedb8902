package imctx_test

import (
	"os"
	"path/filepath"
	"testing"

	"charm.land/log/v2"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/imctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlags(t *testing.T) {
	cfg := imctx.Config{Docking: true, Viewports: true}
	assert.Equal(t, imgui.ConfigFlagsDockingEnable|imgui.ConfigFlagsViewportsEnable, cfg.Flags())

	assert.Equal(t, imgui.ConfigFlags(0), imctx.Config{}.Flags())
	assert.NotZero(t, imctx.DefaultConfig().Flags()&imgui.ConfigFlagsNavEnableKeyboard)
}

func unsetOnCleanup(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		// Register restore of the original value, then clear it.
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestConfigFromEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("defaults without environment", func(t *testing.T) {
		unsetOnCleanup(t, imctx.EnvIniFile, imctx.EnvDocking, imctx.EnvViewports, imctx.EnvNavKeyboard, imctx.EnvLogLevel)

		cfg, err := imctx.ConfigFromEnv(missing)
		require.NoError(t, err)
		assert.Equal(t, imctx.DefaultConfig(), cfg)
	})

	t.Run("process environment overrides defaults", func(t *testing.T) {
		unsetOnCleanup(t, imctx.EnvNavKeyboard)
		t.Setenv(imctx.EnvIniFile, "")
		t.Setenv(imctx.EnvDocking, "false")
		t.Setenv(imctx.EnvViewports, "1")
		t.Setenv(imctx.EnvLogLevel, "debug")

		cfg, err := imctx.ConfigFromEnv(missing)
		require.NoError(t, err)
		assert.Empty(t, cfg.IniFilename)
		assert.False(t, cfg.Docking)
		assert.True(t, cfg.Viewports)
		assert.True(t, cfg.NavKeyboard)
		assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	})

	t.Run("dotenv file fills unset variables", func(t *testing.T) {
		unsetOnCleanup(t, imctx.EnvIniFile, imctx.EnvDocking, imctx.EnvViewports, imctx.EnvNavKeyboard, imctx.EnvLogLevel)
		t.Setenv(imctx.EnvDocking, "true")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("IMDI_INI_FILE=layout.ini\nIMDI_DOCKING=false\nIMDI_LOG_LEVEL=warn\n"), 0o644))

		cfg, err := imctx.ConfigFromEnv(path)
		require.NoError(t, err)
		assert.Equal(t, "layout.ini", cfg.IniFilename)
		assert.True(t, cfg.Docking, "process environment wins over the file")
		assert.Equal(t, log.WarnLevel, cfg.LogLevel)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv(imctx.EnvViewports, "maybe")

		_, err := imctx.ConfigFromEnv(missing)
		require.Error(t, err)
		assert.Contains(t, err.Error(), imctx.EnvViewports)
	})

	t.Run("invalid log level", func(t *testing.T) {
		unsetOnCleanup(t, imctx.EnvDocking, imctx.EnvViewports, imctx.EnvNavKeyboard)
		t.Setenv(imctx.EnvLogLevel, "loud")

		_, err := imctx.ConfigFromEnv(missing)
		require.Error(t, err)
		assert.Contains(t, err.Error(), imctx.EnvLogLevel)
	})
}
