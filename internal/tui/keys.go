package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/tui/focus"
)

// KeyMap defines all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Enter   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding

	// View switching
	Trends key.Binding
	Search key.Binding
	Report key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding

	// Input
	Submit key.Binding
	Cancel key.Binding
}

// ShouldHandleGlobally reports whether a key belongs to the app shell
// rather than the focused view, given the current focus mode.
func (k KeyMap) ShouldHandleGlobally(mode focus.Mode, msg tea.KeyMsg) bool {
	// While typing, only ctrl+c stays global; everything else is input.
	if mode == focus.ModeInput {
		return msg.String() == "ctrl+c"
	}

	// Under an overlay, the shell keeps quit and back.
	if mode == focus.ModeOverlay {
		return key.Matches(msg, k.Quit) || key.Matches(msg, k.Back)
	}

	return key.Matches(msg, k.Quit) ||
		key.Matches(msg, k.Trends) ||
		key.Matches(msg, k.Search) ||
		key.Matches(msg, k.Report)
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),

		Trends: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "trends"),
		),
		Search: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "search"),
		),
		Report: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "report"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns a short help message
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Enter, k.Back, k.Help, k.Quit,
	}
}

// FullHelp returns the full help message
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Back, k.Refresh},
		{k.Trends, k.Search, k.Report, k.Quit},
	}
}
