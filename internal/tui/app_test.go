package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themekit/internal/appearance"
	"github.com/opencode-ai/themekit/internal/forms"
	"github.com/opencode-ai/themekit/internal/provider"
	"github.com/opencode-ai/themekit/internal/tokens"
)

func testModel(t *testing.T) model {
	t.Helper()
	tk, ok := tokens.Preset("modern")
	require.True(t, ok)
	p, err := provider.New(tk, appearance.Light, provider.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return initialModel(Config{Provider: p, TokenSets: tokens.Builtins()})
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		updated, _ := m.Update(msg)
		m = updated.(model)
	}
	return m
}

func TestToggleDarkMode(t *testing.T) {
	m := testModel(t)
	require.False(t, m.provider.IsDarkMode())

	m = press(t, m, "d")
	assert.True(t, m.provider.IsDarkMode())
	assert.True(t, m.styles.Theme.IsDarkMode)
	assert.Equal(t, "#1C1C1E", m.styles.Theme.Colors.Background)

	m = press(t, m, "d")
	assert.False(t, m.provider.IsDarkMode())
}

func TestThemeChangedMsgRebuildsStyles(t *testing.T) {
	m := testModel(t)
	m.provider.SetDarkMode(true)

	updated, _ := m.Update(ThemeChangedMsg{Change: provider.Change{Theme: m.provider.Theme(), IsDarkMode: true, Version: m.provider.Version()}})
	m = updated.(model)
	assert.True(t, m.styles.Theme.IsDarkMode)
	assert.Equal(t, uint64(1), m.themeVersion)
}

func TestOutOfOrderThemeChangesKeepLatest(t *testing.T) {
	m := testModel(t)
	var changes []provider.Change
	m.provider.Subscribe(func(c provider.Change) { changes = append(changes, c) })

	m = press(t, m, "d", "d")
	require.Len(t, changes, 2)

	for _, change := range []provider.Change{changes[1], changes[0]} {
		updated, _ := m.Update(ThemeChangedMsg{Change: change})
		m = updated.(model)
	}

	assert.False(t, m.provider.IsDarkMode())
	assert.Equal(t, uint64(2), m.provider.Version())
	assert.Equal(t, m.provider.IsDarkMode(), m.styles.Theme.IsDarkMode)
	assert.Equal(t, uint64(2), m.themeVersion)
	assert.Contains(t, m.statusLine(), "(light) v2")
}

func TestStaleThemeChangeFromWatcherIgnored(t *testing.T) {
	m := testModel(t)
	var changes []provider.Change
	m.provider.Subscribe(func(c provider.Change) { changes = append(changes, c) })

	m.provider.SetAppearance(appearance.Dark)
	m = press(t, m, "d")
	require.Len(t, changes, 2)
	require.False(t, m.styles.Theme.IsDarkMode)

	updated, _ := m.Update(ThemeChangedMsg{Change: changes[0]})
	m = updated.(model)
	assert.False(t, m.styles.Theme.IsDarkMode)
}

func TestViewNavigation(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, viewButtons, m.view)

	m = press(t, m, "g")
	assert.Equal(t, viewCards, m.view)
	m = press(t, m, "5")
	assert.Equal(t, viewTokens, m.view)
	m = press(t, m, "g")
	assert.Equal(t, viewButtons, m.view)
}

func TestStateToggles(t *testing.T) {
	m := testModel(t)
	m = press(t, m, "x", "e", "s")
	assert.True(t, m.state.Disabled)
	assert.True(t, m.state.Error)
	assert.Equal(t, "large", string(m.currentSize()))

	m = press(t, m, "r")
	assert.False(t, m.state.Disabled)
}

func TestLoginForm(t *testing.T) {
	m := testModel(t)
	m = press(t, m, "4")
	require.Equal(t, viewForm, m.view)

	m = press(t, m, "a", "d", "a", "enter")
	assert.Equal(t, "ada", m.email)
	assert.False(t, m.provider.IsDarkMode(), "d is text inside the form")
	assert.Equal(t, "Email is invalid.", m.formErrors[forms.FieldEmail])
	assert.Equal(t, "Password is required.", m.formErrors[forms.FieldPassword])
	assert.Contains(t, m.View(), "Email is invalid.")

	m = press(t, m, "@x.io", "tab", "secret1", "backspace", "9", "enter")
	assert.Equal(t, "ada@x.io", m.email)
	assert.Equal(t, "secret9", m.password)
	assert.True(t, m.formErrors.OK())

	m = press(t, m, "esc")
	assert.Equal(t, viewButtons, m.view)
}

func TestViewRendersEveryGalleryView(t *testing.T) {
	m := testModel(t)
	for _, view := range []viewID{viewButtons, viewCards, viewInputs, viewForm, viewTokens} {
		m.view = view
		out := m.View()
		assert.Contains(t, out, "themekit gallery")
		assert.NotEmpty(t, strings.TrimSpace(out))
	}

	m.view = viewButtons
	assert.Contains(t, m.View(), "danger")
	m.view = viewTokens
	assert.Contains(t, m.View(), "high-contrast")
}

func TestStatusLineShowsStyleCache(t *testing.T) {
	m := testModel(t)
	_ = m.View()
	_ = m.View()

	stats := m.provider.StyleStats()
	require.Positive(t, stats.Hits)
	assert.Contains(t, m.statusLine(), fmt.Sprintf("cache %d hit/%d miss", stats.Hits, stats.Misses))
}

func TestSectionTitleShowsStateBadge(t *testing.T) {
	m := testModel(t)
	assert.Contains(t, m.View(), "resting")

	m = press(t, m, "e")
	assert.Contains(t, m.View(), "error")
	assert.NotContains(t, m.View(), "resting")
}

func TestEmptyTokenViewCompactWhenNarrow(t *testing.T) {
	m := testModel(t)
	m.tokenSets = nil
	m.view = viewTokens

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(model)
	out := m.View()
	assert.Contains(t, out, "Try: themekit tokens list")
	assert.NotContains(t, out, "Get started:")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m = updated.(model)
	assert.Contains(t, m.View(), "Get started:")
}

func TestSmallTerminal(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(model)
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}
