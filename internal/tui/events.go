// Package tui implements the themekit terminal style gallery.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themekit/internal/provider"
)

// ThemeChangedMsg wraps a provider change for the TUI.
type ThemeChangedMsg struct {
	Change provider.Change
}

// SubscribedMsg carries the subscription handle back to the model.
type SubscribedMsg struct {
	Subscription *provider.Subscription
}

// themeSubscriber bridges the provider to the TUI.
type themeSubscriber struct {
	program *tea.Program
}

// onChange runs inside the provider's notify sequence, which may itself be
// inside Update, so the message is sent from its own goroutine. Sends may
// therefore arrive out of order; the model keeps the highest Version.
func (s *themeSubscriber) onChange(change provider.Change) {
	if s.program != nil {
		go s.program.Send(ThemeChangedMsg{Change: change})
	}
}

// SubscribeToTheme returns a tea.Cmd that subscribes the program to theme
// changes. Changes arrive as ThemeChangedMsg.
func SubscribeToTheme(p *provider.Provider) func(*tea.Program) tea.Cmd {
	return func(program *tea.Program) tea.Cmd {
		return func() tea.Msg {
			if p == nil {
				return nil
			}
			subscriber := &themeSubscriber{program: program}
			return SubscribedMsg{Subscription: p.Subscribe(subscriber.onChange)}
		}
	}
}

// Unsubscribe returns a tea.Cmd that ends a theme subscription.
func Unsubscribe(sub *provider.Subscription) tea.Cmd {
	return func() tea.Msg {
		sub.Unsubscribe()
		return nil
	}
}
