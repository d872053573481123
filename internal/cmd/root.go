package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	notepad "github.com/iw2rmb/notepad"
	"github.com/iw2rmb/notepad/editor"
	"github.com/iw2rmb/notepad/internal/clipboard"
	"github.com/iw2rmb/notepad/internal/config"
	"github.com/iw2rmb/notepad/internal/filestore"
	"github.com/iw2rmb/notepad/internal/logging"
	"github.com/iw2rmb/notepad/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:     "notepad",
	Short:   "A minimal terminal notepad",
	Long:    `Notepad edits one plain-text document at a time with New, Open, Save and Save As.`,
	Version: notepad.VersionTag(),
	Args:    cobra.NoArgs,
	RunE:    runNotepad,

	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/notepad/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	configure(viper.GetViper(), viper.GetString("config"))
}

// configure points v at the config file and environment.
func configure(v *viper.Viper, cfgFile string) {
	config.SetDefaultsOn(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.ConfigDir())
		v.AddConfigPath("$HOME/.config/notepad")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("NOTEPAD")
	// NOTEPAD_EDITOR_WRAP for editor.wrap
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// readConfig loads the config file if there is one. A missing default file
// is fine; a missing explicit file or a malformed one is not.
func readConfig(v *viper.Viper) (*config.Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
}

func newClipboard(cfg *config.Config) editor.Clipboard {
	if cfg.Clipboard.Mode == config.ClipboardInternal {
		return &clipboard.Memory{}
	}
	return clipboard.NewSystem()
}

func runNotepad(cmd *cobra.Command, args []string) error {
	cfg, err := readConfig(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	logger.Info("starting", "version", notepad.Version(), "config", viper.ConfigFileUsed())

	model := tui.New(tui.Options{
		Config:    cfg,
		Store:     filestore.NewOS(),
		Clipboard: newClipboard(cfg),
		Logger:    logger,
		WorkDir:   cwd,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
