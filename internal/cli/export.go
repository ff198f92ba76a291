// Package cli provides export commands for resolved themes.
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/provider"
	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/theme"
)

var exportTokens tokenSelection

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportThemeCmd)

	exportThemeCmd.Flags().StringVarP(&exportTokens.file, "tokens", "t", "", "token file to export")
	exportThemeCmd.Flags().StringVarP(&exportTokens.preset, "preset", "p", "", "token set name")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export resolved themes",
	Long:  "Export resolved themes and component styles for other tools.",
}

var exportThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Export both modes with every component style",
	Long:  "Export the light and dark themes with the style of every component variant and size as JSON.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		light := false
		p, err := newProvider(exportTokens, &light)
		if err != nil {
			return err
		}

		export, err := buildExport(p)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, export)
		}

		writer := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
		for _, mode := range export.Modes {
			fmt.Fprintf(writer, "%s:\t%d roles\t%d styles\n", mode.Theme.Mode, len(theme.RoleNames()), len(mode.Styles))
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(out, "Use --json or --jsonl for full export output.")
		return nil
	},
}

// ExportTheme is the payload returned by `themekit export theme`.
type ExportTheme struct {
	Name  string       `json:"name"`
	Modes []ExportMode `json:"modes"`
}

// ExportMode is one resolved mode with its component styles.
type ExportMode struct {
	Theme  ThemeOutput   `json:"theme"`
	Styles []StyleOutput `json:"styles"`
}

// buildExport resolves every request in both modes and leaves p in the mode
// it started in.
func buildExport(p *provider.Provider) (ExportTheme, error) {
	start := p.IsDarkMode()
	defer p.SetDarkMode(start)

	export := ExportTheme{Name: p.Tokens().Name}
	for _, dark := range []bool{false, true} {
		p.SetDarkMode(dark)
		th := p.Theme()

		mode := ExportMode{Theme: newThemeOutput(th)}
		for _, req := range exportRequests() {
			rs, err := p.Style(req)
			if err != nil {
				return ExportTheme{}, err
			}
			mode.Styles = append(mode.Styles, StyleOutput{
				Kind:    string(req.Kind),
				Variant: req.Variant,
				Size:    string(req.Size),
				Mode:    th.Mode(),
				Style:   rs,
			})
		}
		export.Modes = append(export.Modes, mode)
	}
	return export, nil
}

func exportRequests() []styles.Request {
	var reqs []styles.Request
	for _, variant := range styles.ButtonVariants {
		for _, size := range styles.Sizes {
			reqs = append(reqs, styles.Request{Kind: styles.KindButton, Variant: string(variant), Size: size})
		}
	}
	for _, variant := range styles.CardVariants {
		for _, size := range styles.CardSizes {
			reqs = append(reqs, styles.Request{Kind: styles.KindCard, Variant: string(variant), Size: size})
		}
	}
	for _, variant := range styles.InputVariants {
		for _, size := range styles.Sizes {
			reqs = append(reqs, styles.Request{Kind: styles.KindInput, Variant: string(variant), Size: size})
		}
	}
	for _, variant := range styles.HeaderVariants {
		reqs = append(reqs, styles.Request{Kind: styles.KindHeader, Variant: string(variant)})
	}
	for _, size := range []styles.Size{styles.SizeSmall, styles.SizeLarge} {
		reqs = append(reqs, styles.Request{Kind: styles.KindSpinner, Size: size})
	}
	return reqs
}
