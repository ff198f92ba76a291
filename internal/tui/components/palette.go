package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themekit/internal/styles"
)

// RenderPalette renders one swatch line per role, in the given order.
// Roles without a hex value are shown without a swatch.
func RenderPalette(styleSet styles.Styles, colors map[string]string, roles []string) string {
	width := 0
	for _, role := range roles {
		width = max(width, len(role))
	}

	lines := make([]string, 0, len(roles))
	for _, role := range roles {
		value := colors[role]
		block := "  "
		if strings.HasPrefix(value, "#") {
			hex := value
			if len(hex) == 9 {
				hex = hex[:7]
			}
			block = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", block, styleSet.Text.Render(fmt.Sprintf("%-*s", width, role)), styleSet.Muted.Render(value)))
	}
	return strings.Join(lines, "\n")
}
