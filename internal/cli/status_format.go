// Package cli provides status and color formatting helpers.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorGreen  = lipgloss.Color("2")
	colorRed    = lipgloss.Color("1")
	colorYellow = lipgloss.Color("3")
)

// colorEnabled is false when output is piped or structured.
var colorEnabled = func() bool {
	return !IsJSONOutput() && !IsJSONLOutput() && hasTTY()
}

func colorize(text string, color lipgloss.Color) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func formatValidationStatus(err error) string {
	if err == nil {
		return colorize("OK", colorGreen)
	}
	return colorize("ERR", colorRed)
}

func formatMode(dark bool) string {
	if dark {
		return colorize("dark", colorYellow)
	}
	return "light"
}

// swatch renders a two-cell color sample followed by the raw value.
func swatch(value string) string {
	if !colorEnabled() || !strings.HasPrefix(value, "#") {
		return value
	}
	hex := value
	if len(hex) == 9 {
		hex = hex[:7]
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return fmt.Sprintf("%s %s", block, value)
}
