// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/opencode-ai/themekit/internal/styles"
)

// StateLabel lists the active interaction flags, e.g. "disabled+focused".
// It is empty for the resting state.
func StateLabel(state styles.State) string {
	var flags []string
	if state.Disabled {
		flags = append(flags, "disabled")
	}
	if state.Loading {
		flags = append(flags, "loading")
	}
	if state.Pressed {
		flags = append(flags, "pressed")
	}
	if state.Focused {
		flags = append(flags, "focused")
	}
	if state.Error {
		flags = append(flags, "error")
	}
	return strings.Join(flags, "+")
}

// RenderStateBadge renders the interaction state with a color for its most
// significant flag.
func RenderStateBadge(styleSet styles.Styles, state styles.State) string {
	label := StateLabel(state)
	switch {
	case label == "":
		return styleSet.Muted.Render("resting")
	case state.Error:
		return styleSet.Error.Render(label)
	case state.Disabled:
		return styleSet.Muted.Render(label)
	case state.Loading:
		return styleSet.Info.Render(label)
	default:
		return styleSet.Accent.Render(label)
	}
}
