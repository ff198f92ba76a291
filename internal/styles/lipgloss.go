package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tokens"
)

// Terminal cells are much coarser than points; these ratios convert the
// point-based scales into cell padding.
const (
	pointsPerRow    = 16.0
	pointsPerColumn = 8.0
)

// Styles contains lipgloss styles for terminal chrome derived from a theme.
type Styles struct {
	Theme   *theme.Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// BuildStyles converts a resolved theme into terminal chrome styles.
func BuildStyles(th *theme.Theme) Styles {
	colors := th.Colors

	return Styles{
		Theme:   th,
		Title:   lipgloss.NewStyle().Foreground(terminalColor(colors.TextPrimary)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(terminalColor(colors.TextPrimary)),
		Muted:   lipgloss.NewStyle().Foreground(terminalColor(colors.TextTertiary)),
		Accent:  lipgloss.NewStyle().Foreground(terminalColor(colors.Primary)),
		Panel:   lipgloss.NewStyle().Foreground(terminalColor(colors.TextPrimary)).Background(terminalColor(colors.Surface)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(terminalColor(colors.Border)),
		Border:  lipgloss.NewStyle().Foreground(terminalColor(colors.Border)),
		Success: lipgloss.NewStyle().Foreground(terminalColor(colors.Success)),
		Warning: lipgloss.NewStyle().Foreground(terminalColor(colors.Warning)),
		Error:   lipgloss.NewStyle().Foreground(terminalColor(colors.Error)),
		Info:    lipgloss.NewStyle().Foreground(terminalColor(colors.Info)),
	}
}

// Lipgloss converts a resolved style into a terminal style.
func Lipgloss(rs ResolvedStyle) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(terminalColor(rs.TextColor)).
		Padding(cells(rs.PaddingVertical, pointsPerRow), cells(rs.PaddingHorizontal, pointsPerColumn))

	if !isTransparent(rs.BackgroundColor) {
		style = style.Background(terminalColor(rs.BackgroundColor))
	}

	switch {
	case rs.BorderWidth >= 2:
		style = style.Border(lipgloss.ThickBorder())
	case rs.BorderWidth >= 1 && rs.BorderRadius > 0:
		style = style.Border(lipgloss.RoundedBorder())
	case rs.BorderWidth >= 1:
		style = style.Border(lipgloss.NormalBorder())
	case rs.BorderWidth > 0:
		style = style.Border(lipgloss.NormalBorder(), false, false, true, false)
	}
	if rs.BorderWidth > 0 && !isTransparent(rs.BorderColor) {
		style = style.BorderForeground(terminalColor(rs.BorderColor))
	}

	if weight, ok := tokens.ParseFontWeight(rs.FontWeight); ok && weight >= 600 {
		style = style.Bold(true)
	}
	if rs.Opacity > 0 && rs.Opacity < 1 {
		style = style.Faint(true)
	}
	return style
}

func cells(points, ratio float64) int {
	if points <= 0 {
		return 0
	}
	return int(math.Max(1, math.Round(points/ratio)))
}

// terminalColor drops the alpha byte of #RRGGBBAA values; functional
// colors have no terminal equivalent and render as the default color.
func terminalColor(value string) lipgloss.TerminalColor {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "#") && len(value) == 9:
		return lipgloss.Color(value[:7])
	case strings.HasPrefix(value, "#"):
		return lipgloss.Color(value)
	default:
		return lipgloss.NoColor{}
	}
}

func isTransparent(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || value == transparent || strings.HasPrefix(value, "rgba(")
}
