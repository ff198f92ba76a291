// Package cli implements the themekit command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/logging"
)

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	logLevel       string
	logFormat      string
	noProgress     bool
	nonInteractive bool

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "Resolve design tokens into themes and component styles",
	Long: `themekit resolves design token sets into light and dark themes and maps
component variants, sizes and states onto concrete styles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.config/themekit/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
		Output: os.Stderr,
	})
	logger = logging.Component("cli")
	appConfig = cfg

	logger.Debug().Str("preset", cfg.Tokens.Preset).Str("appearance", cfg.Appearance.Mode).Msg("config loaded")
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before the
// root command has run.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}
