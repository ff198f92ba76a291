// Package cli provides the appearance watch command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/appearance"
	"github.com/opencode-ai/themekit/internal/provider"
)

var (
	watchTokens   tokenSelection
	watchFile     string
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchTokens.file, "tokens", "t", "", "token file to resolve")
	watchCmd.Flags().StringVarP(&watchTokens.preset, "preset", "p", "", "token set name")
	watchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "appearance signal file (default appearance.watch_file)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", appearance.DefaultDebounce, "quiet period before a change is applied")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the appearance signal and print theme changes",
	Long: `Watch an appearance signal file containing "light" or "dark" and print
the resolved theme every time the mode changes. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := strings.TrimSpace(watchFile)
		if path == "" {
			path = GetConfig().Appearance.WatchFile
		}
		if path == "" {
			return &PreflightError{
				Message:  "no appearance signal file configured",
				Hint:     "Pass --file or set appearance.watch_file in the config",
				NextStep: "themekit watch --file ~/.config/themekit/appearance",
			}
		}

		watcher := appearance.NewWatcher(path,
			appearance.WithDebounce(watchDebounce),
			appearance.WithLogger(logger),
		)
		initial, err := watcher.Read()
		if err != nil {
			return err
		}

		var seed *bool
		if initial != appearance.Unspecified {
			dark := initial.IsDark()
			seed = &dark
		}
		p, err := newProvider(watchTokens, seed)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd.OutOrStdout(), p, watcher)
	},
}

func runWatch(ctx context.Context, out io.Writer, p *provider.Provider, watcher *appearance.Watcher) error {
	if err := writeChange(out, provider.Change{Theme: p.Theme(), IsDarkMode: p.IsDarkMode(), Version: p.Version()}); err != nil {
		return err
	}

	sub := p.Subscribe(func(change provider.Change) {
		if err := writeChange(out, change); err != nil {
			logger.Warn().Err(err).Msg("write theme change")
		}
	})
	defer sub.Unsubscribe()

	return watcher.Run(ctx, p.SetAppearance)
}

// ChangeOutput is one line of `themekit watch --jsonl`.
type ChangeOutput struct {
	Version uint64      `json:"version"`
	Source  string      `json:"source,omitempty"`
	Theme   ThemeOutput `json:"theme"`
}

func writeChange(out io.Writer, change provider.Change) error {
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, ChangeOutput{
			Version: change.Version,
			Source:  string(change.Source),
			Theme:   newThemeOutput(change.Theme),
		})
	}
	colors := change.Theme.Colors
	_, err := fmt.Fprintf(out, "v%d %s %s background=%s text=%s primary=%s\n",
		change.Version,
		change.Theme.Tokens.Name,
		formatMode(change.IsDarkMode),
		swatch(colors.Background),
		swatch(colors.TextPrimary),
		swatch(colors.Primary),
	)
	return err
}
