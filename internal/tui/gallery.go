package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themekit/internal/forms"
	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tui/components"
)

func (m model) render(req styles.Request, label string) string {
	rs, err := m.provider.Style(req)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}
	if rs.ShowIndicator {
		label = "… " + label
	}
	return styles.Lipgloss(rs).Render(label)
}

func (m model) headerLine() string {
	rs, err := m.provider.Style(styles.Request{Kind: styles.KindHeader})
	if err != nil {
		return m.styles.Title.Render("themekit gallery")
	}
	style := styles.Lipgloss(rs)
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render("themekit gallery")
}

func (m model) viewLines() []string {
	switch m.view {
	case viewCards:
		return m.cardLines()
	case viewInputs:
		return m.inputLines()
	case viewForm:
		return m.formLines()
	case viewTokens:
		return m.tokenLines()
	default:
		return m.buttonLines()
	}
}

func (m model) buttonLines() []string {
	samples := make([]string, 0, len(styles.ButtonVariants))
	for _, variant := range styles.ButtonVariants {
		req := styles.Request{Kind: styles.KindButton, Variant: string(variant), Size: m.currentSize(), State: m.state}
		samples = append(samples, m.render(req, string(variant)))
	}
	return []string{
		m.sectionTitle("Buttons"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, spaced(samples)...),
	}
}

func (m model) cardLines() []string {
	samples := make([]string, 0, len(styles.CardVariants))
	for _, variant := range styles.CardVariants {
		req := styles.Request{Kind: styles.KindCard, Variant: string(variant), Size: m.currentSize(), State: m.state}
		samples = append(samples, m.render(req, fmt.Sprintf("%s card", variant)))
	}
	return []string{
		m.sectionTitle("Cards"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, spaced(samples)...),
	}
}

func (m model) inputLines() []string {
	lines := []string{m.sectionTitle("Inputs"), ""}
	for _, variant := range styles.InputVariants {
		req := styles.Request{Kind: styles.KindInput, Variant: string(variant), Size: m.currentSize(), State: m.state}
		lines = append(lines, m.labeledInput(req, string(variant), "you@example.com"))
	}
	spinner := m.render(styles.Request{Kind: styles.KindSpinner, Size: styles.SizeSmall}, "loading")
	return append(lines, "", spinner)
}

// sectionTitle labels a component section with the interaction state it is
// rendered in.
func (m model) sectionTitle(title string) string {
	return m.styles.Accent.Render(title) + "  " + components.RenderStateBadge(m.styles, m.state)
}

func (m model) labeledInput(req styles.Request, label, value string) string {
	rs, err := m.provider.Style(req)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(rs.LabelColor))
	if rs.PlaceholderColor != "" && value == "" {
		value = lipgloss.NewStyle().Foreground(lipgloss.Color(rs.PlaceholderColor)).Render("Enter " + label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), styles.Lipgloss(rs).Width(32).Render(value))
}

func (m model) formLines() []string {
	lines := []string{m.styles.Accent.Render("Login form"), ""}

	for _, field := range []string{forms.FieldEmail, forms.FieldPassword} {
		state := styles.State{Focused: m.formField == field}
		if m.submitted {
			state = m.formErrors.State(field, state)
		}
		value := m.email
		if field == forms.FieldPassword {
			value = strings.Repeat("•", len([]rune(m.password)))
		}
		lines = append(lines, m.labeledInput(styles.Request{Kind: styles.KindInput, Size: styles.SizeMedium, State: state}, field, value))
		if msg, failed := m.formErrors[field]; failed && m.submitted {
			lines = append(lines, m.styles.Error.Render(msg))
		}
	}

	submit := styles.Request{Kind: styles.KindButton, Variant: string(styles.ButtonPrimary), State: styles.State{Disabled: m.email == "" && m.password == ""}}
	lines = append(lines, "", m.render(submit, "Sign in"))
	if m.submitted && m.formErrors.OK() {
		lines = append(lines, m.styles.Success.Render("Signed in."))
	}
	return lines
}

func (m model) tokenLines() []string {
	lines := []string{m.styles.Accent.Render("Token sets"), ""}
	if len(m.tokenSets) == 0 {
		if m.width > 0 && m.width < compactWidth {
			return append(lines, components.EmptyTokenSets().RenderCompact(m.styles))
		}
		return append(lines, components.EmptyTokenSets().Render(m.styles))
	}

	active := m.provider.Tokens().Name
	for _, set := range m.tokenSets {
		marker := "  "
		if set.Name == active {
			marker = "> "
		}
		lines = append(lines, m.styles.Text.Render(marker+set.Name)+m.styles.Muted.Render("  "+set.Source))
	}

	lines = append(lines, "", m.styles.Accent.Render("Palette"))
	lines = append(lines, components.RenderPalette(m.styles, m.styles.Theme.Colors.Map(), theme.RoleNames()))
	return lines
}

func spaced(samples []string) []string {
	out := make([]string, 0, len(samples)*2)
	for i, sample := range samples {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, sample)
	}
	return out
}
