package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete notepad configuration
type Config struct {
	Editor    EditorConfig    `mapstructure:"editor"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Files     FilesConfig     `mapstructure:"files"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// EditorConfig controls the text surface
type EditorConfig struct {
	// ShowLineNumbers draws a line-number gutter
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	// Wrap is the soft-wrap mode: "word", "grapheme" or "none"
	Wrap string `mapstructure:"wrap"`
	// TabWidth is the number of cells a tab stop spans
	TabWidth int `mapstructure:"tab_width"`
	// HistoryLimit caps the undo stack (negative disables undo)
	HistoryLimit int `mapstructure:"history_limit"`
}

// ClipboardConfig selects the clipboard backend
type ClipboardConfig struct {
	// Mode is "system" (OS clipboard, falling back to internal) or "internal"
	Mode string `mapstructure:"mode"`
}

// FilesConfig controls the open and save dialogs
type FilesConfig struct {
	// StartDir is where the open dialog starts when no document is loaded.
	// Empty means the working directory.
	StartDir string `mapstructure:"start_dir"`
	// ShowHidden lists dot files in the open dialog
	ShowHidden bool `mapstructure:"show_hidden"`
}

// UIConfig controls the surrounding window
type UIConfig struct {
	// StatusTimeoutMs is how long transient status messages stay visible
	StatusTimeoutMs int `mapstructure:"status_timeout_ms"`
}

// LoggingConfig controls the debug log file
type LoggingConfig struct {
	// Enabled turns on the JSON log file
	Enabled bool `mapstructure:"enabled"`
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir is the directory holding notepad.log
	Dir string `mapstructure:"dir"`
}

// Wrap modes accepted by editor.wrap
const (
	WrapWord     = "word"
	WrapGrapheme = "grapheme"
	WrapNone     = "none"
)

// Clipboard modes accepted by clipboard.mode
const (
	ClipboardSystem   = "system"
	ClipboardInternal = "internal"
)

// Default returns a Config with the built-in defaults
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			ShowLineNumbers: false,
			Wrap:            WrapWord,
			TabWidth:        4,
			HistoryLimit:    1000,
		},
		Clipboard: ClipboardConfig{
			Mode: ClipboardSystem,
		},
		UI: UIConfig{
			StatusTimeoutMs: 2000,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "INFO",
			Dir:     DefaultLogDir(),
		},
	}
}

// StatusTimeout returns the status message lifetime as a Duration
func (c *UIConfig) StatusTimeout() time.Duration {
	return time.Duration(c.StatusTimeoutMs) * time.Millisecond
}

// SetDefaultsOn registers the defaults with v
func SetDefaultsOn(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("editor.show_line_numbers", defaults.Editor.ShowLineNumbers)
	v.SetDefault("editor.wrap", defaults.Editor.Wrap)
	v.SetDefault("editor.tab_width", defaults.Editor.TabWidth)
	v.SetDefault("editor.history_limit", defaults.Editor.HistoryLimit)

	v.SetDefault("clipboard.mode", defaults.Clipboard.Mode)

	v.SetDefault("files.start_dir", defaults.Files.StartDir)
	v.SetDefault("files.show_hidden", defaults.Files.ShowHidden)

	v.SetDefault("ui.status_timeout_ms", defaults.UI.StatusTimeoutMs)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// LoadFrom reads v into a Config and validates it
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notepad")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".notepad"
	}
	return filepath.Join(home, ".config", "notepad")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultLogDir returns the default directory for notepad.log
func DefaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "notepad")
	}
	return filepath.Join(dir, "notepad")
}
