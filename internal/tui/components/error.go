package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/tui/styles"
	"trendhub/pkg/models"
)

// ErrorView displays primary-content failures with a retry hint. When
// verbose is off (production) only the human-readable message is shown;
// endpoint and status detail stays hidden.
type ErrorView struct {
	err     error
	message string
	verbose bool
	onRetry func() tea.Msg
}

// NewErrorView creates a new error view
func NewErrorView(message string, verbose bool, onRetry func() tea.Msg) ErrorView {
	return ErrorView{
		message: message,
		verbose: verbose,
		onRetry: onRetry,
	}
}

// SetError updates the error
func (e *ErrorView) SetError(err error) {
	e.err = err
}

// Clear clears the error
func (e *ErrorView) Clear() {
	e.err = nil
}

// HasError returns whether an error is present
func (e ErrorView) HasError() bool {
	return e.err != nil
}

// Retry triggers the retry action
func (e ErrorView) Retry() tea.Msg {
	if e.onRetry != nil {
		return e.onRetry()
	}
	return nil
}

// View renders the error
func (e ErrorView) View() string {
	if !e.HasError() {
		return ""
	}

	detail := e.err.Error()
	if apiErr, ok := models.AsAPIError(e.err); ok {
		detail = apiErr.Message
		if e.verbose {
			detail = fmt.Sprintf("%s (endpoint %s, status %d)", apiErr.Message, apiErr.Endpoint, apiErr.StatusCode)
		}
	}

	return styles.CardStyle.Render(
		styles.ErrorStyle.Render("⚠ 오류가 발생했습니다") + "\n\n" +
			styles.CardContentStyle.Render(e.message) + "\n" +
			styles.HelpStyle.Render(detail) + "\n\n" +
			styles.HelpKeyStyle.Render("r") + styles.HelpStyle.Render(" 다시 시도") + "  " +
			styles.HelpKeyStyle.Render("esc") + styles.HelpStyle.Render(" 뒤로"),
	)
}
