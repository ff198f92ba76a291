// Package cli provides the interactive preview command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/appearance"
	"github.com/opencode-ai/themekit/internal/tokens"
	"github.com/opencode-ai/themekit/internal/tui"
)

var previewTokens tokenSelection

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewTokens.file, "tokens", "t", "", "token file to preview")
	previewCmd.Flags().StringVarP(&previewTokens.preset, "preset", "p", "", "token set name")
}

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"ui"},
	Short:   "Launch the interactive style gallery",
	Long:    "Launch a terminal gallery of every component style. Press d to toggle dark mode.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

func runPreview() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "preview requires an interactive terminal",
			Hint:     "Run with a TTY, or use the resolve and style subcommands",
			NextStep: "themekit style button --render",
		}
	}

	p, err := newProvider(previewTokens, nil)
	if err != nil {
		return err
	}

	if path := GetConfig().Appearance.WatchFile; path != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		watcher := appearance.NewWatcher(path, appearance.WithLogger(logger))
		go func() {
			if err := watcher.Run(ctx, p.SetAppearance); err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("appearance watcher stopped")
			}
		}()
	}

	sets, err := tokens.LoadFromSearchPaths(GetConfig().Tokens.ProjectDir)
	if err != nil {
		logger.Warn().Err(err).Msg("discover token sets")
	}

	return tui.RunWithConfig(tui.Config{
		Provider:  p,
		TokenSets: sets,
	})
}
