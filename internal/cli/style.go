// Package cli provides the component style command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/styles"
)

var (
	styleTokens  tokenSelection
	styleVariant string
	styleSize    string
	styleState   styles.State
	styleDark    bool
	styleRender  bool
)

func init() {
	rootCmd.AddCommand(styleCmd)

	flags := styleCmd.Flags()
	flags.StringVarP(&styleTokens.file, "tokens", "t", "", "token file to resolve")
	flags.StringVarP(&styleTokens.preset, "preset", "p", "", "token set name")
	flags.StringVar(&styleVariant, "variant", "", "component variant (default: the kind's first variant)")
	flags.StringVar(&styleSize, "size", string(styles.SizeMedium), "component size (none, small, medium, large)")
	flags.BoolVar(&styleState.Disabled, "disabled", false, "disabled state")
	flags.BoolVar(&styleState.Loading, "loading", false, "loading state")
	flags.BoolVar(&styleState.Focused, "focused", false, "focused state")
	flags.BoolVar(&styleState.Error, "error", false, "error state")
	flags.BoolVar(&styleState.Pressed, "pressed", false, "pressed state")
	flags.BoolVar(&styleDark, "dark", false, "resolve against dark mode (default from appearance)")
	flags.BoolVar(&styleRender, "render", false, "render a terminal sample after the table")
}

var styleCmd = &cobra.Command{
	Use:       "style <button|card|input|header|spinner>",
	Short:     "Print a resolved component style",
	Long:      "Map a component kind, variant, size and interaction state onto a resolved style.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := styles.ParseKind(args[0])
		if err != nil {
			return err
		}

		var dark *bool
		if cmd.Flags().Changed("dark") {
			dark = &styleDark
		}
		p, err := newProvider(styleTokens, dark)
		if err != nil {
			return err
		}

		req := styles.Request{
			Kind:    kind,
			Variant: styleVariant,
			Size:    styles.Size(strings.ToLower(styleSize)),
			State:   styleState,
		}
		rs, err := p.Style(req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, StyleOutput{
				Kind:    string(kind),
				Variant: styleVariant,
				Size:    string(req.Size),
				Mode:    p.Theme().Mode(),
				Style:   rs,
			})
		}
		if err := writeStyle(out, rs); err != nil {
			return err
		}
		if styleRender {
			fmt.Fprintln(out)
			fmt.Fprintln(out, styles.Lipgloss(rs).Render(sampleLabel(kind)))
		}
		return nil
	},
}

// StyleOutput is the payload printed by `themekit style`.
type StyleOutput struct {
	Kind    string               `json:"kind"`
	Variant string               `json:"variant,omitempty"`
	Size    string               `json:"size"`
	Mode    string               `json:"mode"`
	Style   styles.ResolvedStyle `json:"style"`
}

func kindNames() []string {
	names := make([]string, 0, len(styles.Kinds))
	for _, kind := range styles.Kinds {
		names = append(names, string(kind))
	}
	return names
}

func sampleLabel(kind styles.Kind) string {
	switch kind {
	case styles.KindInput:
		return "you@example.com"
	case styles.KindHeader:
		return "Header"
	case styles.KindSpinner:
		return "..."
	default:
		return strings.ToUpper(string(kind[:1])) + string(kind[1:])
	}
}

func writeStyle(out io.Writer, rs styles.ResolvedStyle) error {
	props := newTable("PROPERTY", "VALUE")
	props.add("backgroundColor", swatch(rs.BackgroundColor))
	props.add("borderColor", swatch(rs.BorderColor))
	props.add("borderWidth", formatFloat(rs.BorderWidth))
	props.add("borderRadius", formatFloat(rs.BorderRadius))
	props.add("textColor", swatch(rs.TextColor))
	props.add("fontSize", formatFloat(rs.FontSize))
	props.add("fontWeight", rs.FontWeight)
	props.add("paddingVertical", formatFloat(rs.PaddingVertical))
	props.add("paddingHorizontal", formatFloat(rs.PaddingHorizontal))
	props.add("minHeight", formatFloat(rs.MinHeight))
	props.add("opacity", formatFloat(rs.Opacity))
	props.add("scale", formatFloat(rs.Scale))
	if rs.Shadow.Elevation > 0 {
		props.add("shadow", fmt.Sprintf("%s elevation %s", rs.Shadow.Color, formatFloat(rs.Shadow.Elevation)))
	}
	if rs.LabelColor != "" {
		props.add("labelColor", swatch(rs.LabelColor))
	}
	if rs.PlaceholderColor != "" {
		props.add("placeholderColor", swatch(rs.PlaceholderColor))
	}
	if rs.IndicatorColor != "" {
		props.add("indicatorColor", swatch(rs.IndicatorColor))
		props.add("showIndicator", formatOnOff(rs.ShowIndicator))
	}
	return props.write(out)
}
