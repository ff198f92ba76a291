// Package cli provides the theme resolution command.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tokens"
)

var (
	resolveTokens tokenSelection
	resolveDark   bool
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveTokens.file, "tokens", "t", "", "token file to resolve")
	resolveCmd.Flags().StringVarP(&resolveTokens.preset, "preset", "p", "", "token set name")
	resolveCmd.Flags().BoolVar(&resolveDark, "dark", false, "resolve dark mode (default from appearance)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print a resolved theme",
	Long:  "Resolve a token set for light or dark mode and print every color role and scale.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dark *bool
		if cmd.Flags().Changed("dark") {
			dark = &resolveDark
		}
		p, err := newProvider(resolveTokens, dark)
		if err != nil {
			return err
		}
		return writeTheme(cmd.OutOrStdout(), p.Theme())
	},
}

// ThemeOutput is the payload printed by `themekit resolve`.
type ThemeOutput struct {
	Name       string              `json:"name"`
	Source     string              `json:"source"`
	Mode       string              `json:"mode"`
	Colors     theme.Colors        `json:"colors"`
	Spacing    tokens.SpacingScale `json:"spacing"`
	Radius     tokens.RadiusScale  `json:"radius"`
	Typography tokens.Typography   `json:"typography"`
	Shadows    tokens.Shadows      `json:"shadows"`
}

func newThemeOutput(th *theme.Theme) ThemeOutput {
	return ThemeOutput{
		Name:       th.Tokens.Name,
		Source:     th.Tokens.Source,
		Mode:       th.Mode(),
		Colors:     th.Colors,
		Spacing:    th.Spacing(),
		Radius:     th.Radius(),
		Typography: th.Typography(),
		Shadows:    th.Shadows(),
	}
}

func writeTheme(out io.Writer, th *theme.Theme) error {
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, newThemeOutput(th))
	}

	fmt.Fprintf(out, "Theme %s (%s)\n\n", th.Tokens.Name, formatMode(th.IsDarkMode))

	colors := th.Colors.Map()
	roles := newTable("ROLE", "VALUE")
	for _, role := range theme.RoleNames() {
		roles.add(role, swatch(colors[role]))
	}
	if err := roles.write(out); err != nil {
		return err
	}

	fmt.Fprintln(out)
	scales := newTable("SCALE", "STEP", "VALUE")
	for _, step := range th.Spacing().Steps() {
		scales.add("spacing", step.Name, formatFloat(step.Value))
	}
	for _, step := range th.Radius().Steps() {
		scales.add("radius", step.Name, formatFloat(step.Value))
	}
	return scales.write(out)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
