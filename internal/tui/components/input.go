package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trendhub/internal/tui/styles"
)

// Input wraps a text input with a label and inline error state. It backs
// the search box and the report keyword lookup.
type Input struct {
	textInput textinput.Model
	label     string
	error     string
}

// NewInput creates a new input component
func NewInput(label, placeholder string) Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40

	return Input{
		textInput: ti,
		label:     label,
	}
}

// Focus sets the input as focused
func (i *Input) Focus() tea.Cmd {
	return i.textInput.Focus()
}

// Blur removes focus from input
func (i *Input) Blur() {
	i.textInput.Blur()
}

// Focused returns whether input is focused
func (i *Input) Focused() bool {
	return i.textInput.Focused()
}

// SetValue sets the input value
func (i *Input) SetValue(v string) {
	i.textInput.SetValue(v)
	i.textInput.CursorEnd()
}

// Value returns the current input value
func (i *Input) Value() string {
	return i.textInput.Value()
}

// SetError sets an error message
func (i *Input) SetError(err string) {
	i.error = err
}

// Update handles input updates
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.textInput, cmd = i.textInput.Update(msg)

	// Clear error on input change
	if i.error != "" {
		i.error = ""
	}

	return cmd
}

// View renders the input
func (i Input) View() string {
	var labelStyle lipgloss.Style
	var inputStyle lipgloss.Style

	if i.Focused() {
		labelStyle = styles.InputFocusedStyle
		inputStyle = styles.InputFocusedStyle
	} else {
		labelStyle = styles.InputPromptStyle
		inputStyle = styles.InputStyle
	}

	result := labelStyle.Render(i.label) + "\n"
	result += inputStyle.Render(i.textInput.View())

	if i.error != "" {
		result += "\n" + styles.ErrorStyle.Render("✗ "+i.error)
	}

	return result
}
