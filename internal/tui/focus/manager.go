// Package focus tracks which input layer owns the keyboard: list
// navigation, the search box, or a detail overlay.
package focus

// Mode represents different focus modes in the TUI
type Mode int

const (
	// ModeNavigation allows navigation between views and lists
	ModeNavigation Mode = iota
	// ModeInput routes keystrokes to the active text input
	ModeInput
	// ModeOverlay means a detail overlay is on top of the current view
	ModeOverlay
)

// Manager holds the current focus mode.
type Manager struct {
	mode Mode
}

// NewManager creates a manager in navigation mode.
func NewManager() *Manager {
	return &Manager{mode: ModeNavigation}
}

// SetMode changes the focus mode
func (m *Manager) SetMode(mode Mode) {
	m.mode = mode
}

// Mode returns the current focus mode
func (m *Manager) Mode() Mode {
	return m.mode
}

// IsNavigation returns true if in navigation mode
func (m *Manager) IsNavigation() bool {
	return m.mode == ModeNavigation
}

// IsInput returns true if keystrokes belong to a text input
func (m *Manager) IsInput() bool {
	return m.mode == ModeInput
}

// IsOverlay returns true if a detail overlay is active
func (m *Manager) IsOverlay() bool {
	return m.mode == ModeOverlay
}
