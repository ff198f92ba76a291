package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themekit/internal/forms"
	"github.com/opencode-ai/themekit/internal/provider"
	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tokens"
	"github.com/opencode-ai/themekit/internal/tui/components"
)

// Config configures the gallery.
type Config struct {
	Provider  *provider.Provider
	TokenSets []*tokens.DesignTokens
}

// RunWithConfig launches the gallery.
func RunWithConfig(cfg Config) error {
	if cfg.Provider == nil {
		cfg.Provider = provider.Default()
	}
	m := initialModel(cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	subscribe := SubscribeToTheme(cfg.Provider)(program)
	go program.Send(subscribe())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int

	provider     *provider.Provider
	styles       styles.Styles
	themeVersion uint64
	subscription *provider.Subscription
	tokenSets    []*tokens.DesignTokens

	view  viewID
	size  int
	state styles.State

	email      string
	password   string
	formField  string
	formErrors forms.FieldErrors
	submitted  bool

	lastChanged time.Time
	now         time.Time
}

const (
	minWidth  = 60
	minHeight = 15

	// Below this width the token view uses single-line hints.
	compactWidth = 100
)

func initialModel(cfg Config) model {
	now := time.Now()
	th, version := cfg.Provider.Snapshot()
	return model{
		provider:     cfg.Provider,
		styles:       styles.BuildStyles(th),
		themeVersion: version,
		tokenSets:    cfg.TokenSets,
		view:         viewButtons,
		size:         1,
		formField:    forms.FieldEmail,
		formErrors:   forms.FieldErrors{},
		lastChanged:  now,
		now:          now,
	}
}

// applyTheme rebuilds the styles unless a newer theme is already shown.
// Changes are delivered from separate goroutines and may arrive out of order.
func (m *model) applyTheme(th *theme.Theme, version uint64) {
	if version <= m.themeVersion {
		return
	}
	m.styles = styles.BuildStyles(th)
	m.themeVersion = version
	m.lastChanged = m.now
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.view == viewForm {
			return m.updateForm(msg)
		}
		return m.updateGallery(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case SubscribedMsg:
		m.subscription = msg.Subscription
	case ThemeChangedMsg:
		m.applyTheme(msg.Change.Theme, msg.Change.Version)
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	}
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.subscription != nil {
		return m, tea.Sequence(Unsubscribe(m.subscription), tea.Quit)
	}
	return m, tea.Quit
}

func (m model) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		m.provider.ToggleDarkMode()
		m.applyTheme(m.provider.Snapshot())
	case "1":
		m.view = viewButtons
	case "2":
		m.view = viewCards
	case "3":
		m.view = viewInputs
	case "4":
		m.view = viewForm
	case "5":
		m.view = viewTokens
	case "g", "tab":
		m.view = nextView(m.view)
	case "s":
		m.size = (m.size + 1) % len(styles.Sizes)
	case "x":
		m.state.Disabled = !m.state.Disabled
	case "l":
		m.state.Loading = !m.state.Loading
	case "p":
		m.state.Pressed = !m.state.Pressed
	case "f":
		m.state.Focused = !m.state.Focused
	case "e":
		m.state.Error = !m.state.Error
	case "r":
		m.state = styles.State{}
	case "q", "esc", "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEsc:
		m.view = viewButtons
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		if m.formField == forms.FieldEmail {
			m.formField = forms.FieldPassword
		} else {
			m.formField = forms.FieldEmail
		}
	case tea.KeyEnter:
		m.formErrors = forms.ValidateLogin(m.email, m.password)
		m.submitted = true
	case tea.KeyBackspace:
		m.setField(trimLastRune(m.field()))
	case tea.KeyRunes, tea.KeySpace:
		m.setField(m.field() + string(msg.Runes))
	}
	return m, nil
}

func (m model) field() string {
	if m.formField == forms.FieldPassword {
		return m.password
	}
	return m.email
}

func (m *model) setField(value string) {
	if m.formField == forms.FieldPassword {
		m.password = value
		return
	}
	m.email = value
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) == 0 {
		return value
	}
	return string(runes[:len(runes)-1])
}

func (m model) currentSize() styles.Size {
	return styles.Sizes[m.size]
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", strings.Join(m.smallViewLines(), "\n"))
		}
	}

	lines := []string{m.headerLine(), ""}
	lines = append(lines, m.viewLines()...)
	lines = append(lines, "", m.styles.Muted.Render(m.statusLine()))
	lines = append(lines, "", m.styles.Muted.Render(m.shortcutsLine()))
	return fmt.Sprintf("%s\n", strings.Join(lines, "\n"))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) shortcutsLine() string {
	if m.view == viewForm {
		return "Form: type to edit | tab switch field | enter validate | esc back"
	}
	return "Shortcuts: d dark mode | 1-5 views | g next | s size | x disabled | l loading | p pressed | f focus | e error | r reset | q quit"
}

func (m model) statusLine() string {
	th := m.styles.Theme
	stats := m.provider.StyleStats()
	label := fmt.Sprintf("Theme %s (%s) v%d | size %s | cache %d hit/%d miss | changed %s",
		th.Tokens.Name, th.Mode(), m.themeVersion, m.currentSize(), stats.Hits, stats.Misses, m.lastChanged.Format("15:04:05"))
	if badge := components.StateLabel(m.state); badge != "" {
		label += " | " + badge
	}
	return label
}

type viewID int

const (
	viewButtons viewID = iota
	viewCards
	viewInputs
	viewForm
	viewTokens
)

func nextView(current viewID) viewID {
	switch current {
	case viewButtons:
		return viewCards
	case viewCards:
		return viewInputs
	case viewInputs:
		return viewForm
	case viewForm:
		return viewTokens
	default:
		return viewButtons
	}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
