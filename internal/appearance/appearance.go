// Package appearance reads the platform's preferred light/dark signal.
package appearance

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// EnvVar overrides the detected appearance when no explicit mode is set.
const EnvVar = "THEMEKIT_APPEARANCE"

// Appearance is the platform's color scheme preference.
type Appearance int

const (
	Unspecified Appearance = iota
	Light
	Dark
)

// Mode values accepted by Detect in addition to the appearance names.
const (
	ModeAuto = "auto"
)

func (a Appearance) String() string {
	switch a {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unspecified"
	}
}

// IsDark reports whether the appearance asks for dark mode. Unspecified
// seeds light mode.
func (a Appearance) IsDark() bool {
	return a == Dark
}

// FromDark maps a dark-mode flag to an appearance.
func FromDark(dark bool) Appearance {
	if dark {
		return Dark
	}
	return Light
}

// Parse maps a name to an appearance. Unknown names are Unspecified.
func Parse(value string) Appearance {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return Unspecified
	}
}

// terminalDark is swapped in tests; it is only consulted for a TTY.
var terminalDark = func() (bool, bool) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false, false
	}
	return lipgloss.HasDarkBackground(), true
}

// Detect resolves the appearance for a configured mode. An explicit light or
// dark mode wins; auto asks the terminal; otherwise the environment decides.
func Detect(mode string) Appearance {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if explicit := Parse(mode); explicit != Unspecified {
		return explicit
	}
	if mode == ModeAuto {
		if dark, ok := terminalDark(); ok {
			return FromDark(dark)
		}
	}
	return Parse(os.Getenv(EnvVar))
}
