package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/notepad/internal/clipboard"
	"github.com/iw2rmb/notepad/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "notepad", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Version)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.Equal(t, "c", rootCmd.PersistentFlags().Lookup("config").Shorthand)
	assert.Error(t, rootCmd.Args(rootCmd, []string{"file.txt"}))
}

func TestReadConfig_File(t *testing.T) {
	path := writeConfig(t, `
editor:
  wrap: none
  tab_width: 8
clipboard:
  mode: internal
`)
	v := viper.New()
	configure(v, path)

	cfg, err := readConfig(v)
	require.NoError(t, err)
	assert.Equal(t, config.WrapNone, cfg.Editor.Wrap)
	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.Equal(t, 1000, cfg.Editor.HistoryLimit)
	assert.IsType(t, &clipboard.Memory{}, newClipboard(cfg))
}

func TestReadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NOTEPAD_EDITOR_TAB_WIDTH", "2")
	v := viper.New()
	configure(v, writeConfig(t, "editor:\n  wrap: word\n"))

	cfg, err := readConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Editor.TabWidth)
}

func TestReadConfig_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		v := viper.New()
		configure(v, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := readConfig(v)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		v := viper.New()
		configure(v, writeConfig(t, "editor: [\n"))
		_, err := readConfig(v)
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("invalid value", func(t *testing.T) {
		v := viper.New()
		configure(v, writeConfig(t, "editor:\n  wrap: sideways\n"))
		_, err := readConfig(v)
		assert.ErrorContains(t, err, "invalid config")
	})
}

func TestNewClipboard_DefaultsToSystem(t *testing.T) {
	assert.IsType(t, &clipboard.System{}, newClipboard(config.Default()))
}

func TestNewLogger_DisabledIsNop(t *testing.T) {
	logger, err := newLogger(config.Default())
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}
