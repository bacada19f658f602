package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"trendhub/pkg/models"
)

// Dracula color palette
const (
	Background  = "#282a36"
	CurrentLine = "#44475a"
	Foreground  = "#f8f8f2"
	Comment     = "#6272a4"
	Cyan        = "#8be9fd"
	Green       = "#50fa7b"
	Orange      = "#ffb86c"
	Pink        = "#ff79c6"
	Purple      = "#bd93f9"
	Red         = "#ff5555"
	Yellow      = "#f1fa8c"
)

var (
	// App-level styles
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Background(lipgloss.Color(Background)).
			Foreground(lipgloss.Color(Foreground))

	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Purple)).
			Background(lipgloss.Color(Background)).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan)).
			Background(lipgloss.Color(Background))

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground)).
			Background(lipgloss.Color(CurrentLine)).
			Padding(0, 1)

	StatusBarActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Green)).
				Background(lipgloss.Color(CurrentLine)).
				Bold(true).
				Padding(0, 1)

	// Input styles
	InputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground)).
			Background(lipgloss.Color(CurrentLine)).
			Padding(0, 1)

	InputFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Pink)).
				Background(lipgloss.Color(CurrentLine)).
				Bold(true).
				Padding(0, 1)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Purple)).
				Bold(true)

	// List styles
	ListItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground)).
			PaddingLeft(2)

	ListItemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Pink)).
				Background(lipgloss.Color(CurrentLine)).
				Bold(true).
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color(Purple))

	ListItemTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Cyan)).
				Bold(true)

	ListItemDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Comment))

	// Card/Box styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Purple)).
			Padding(1, 2).
			MarginBottom(1)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Pink)).
			Bold(true)

	CardContentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Foreground))

	// Info/Alert styles
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan)).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Green)).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Yellow)).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Red)).
			Bold(true)

	// Help/Hints styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment)).
			Italic(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Purple)).
			Bold(true)

	// Trend status styles
	TrendUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Green)).
			Bold(true)

	TrendDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Red)).
			Bold(true)

	TrendSameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment))

	// Rank badge styles
	RankTopStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Pink)).
			Bold(true).
			Padding(0, 1)

	RankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Purple)).
			Bold(true).
			Padding(0, 1)

	// Sparkline styles
	SparklineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan))

	// Link/Highlight styles
	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan)).
			Underline(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Yellow)).
			Bold(true)

	// Divider/Border styles
	DividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(CurrentLine))

	// Spinner styles
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Purple))

	// Metadata/Stats styles
	MetaKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Purple)).
			Bold(true)

	MetaValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Cyan))

	// Tab styles
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment)).
			Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Pink)).
			Background(lipgloss.Color(CurrentLine)).
			Bold(true).
			Padding(0, 2)

	// Pagination styles
	PageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment)).
			Padding(0, 1)

	PageActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Purple)).
			Bold(true).
			Padding(0, 1)

	// Dialog/Modal styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Pink)).
			Padding(1, 2).
			Background(lipgloss.Color(Background))

	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(Pink)).
				Bold(true).
				Align(lipgloss.Center)
)

// Helper functions for common operations

// Truncate truncates text to maxLen runes and adds "..." if needed.
// Rune-based so multibyte keywords are never cut mid-character.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}

// RenderDivider renders a horizontal divider
func RenderDivider(width int) string {
	divider := ""
	for i := 0; i < width; i++ {
		divider += "─"
	}
	return DividerStyle.Render(divider)
}

// RenderKeyValue renders a key-value pair with styling
func RenderKeyValue(key, value string) string {
	return MetaKeyStyle.Render(key+":") + " " + MetaValueStyle.Render(value)
}

// RenderStatus renders a trend status arrow.
func RenderStatus(status models.TrendStatus) string {
	switch status {
	case models.StatusUp:
		return TrendUpStyle.Render("▲")
	case models.StatusDown:
		return TrendDownStyle.Render("▼")
	default:
		return TrendSameStyle.Render("─")
	}
}

// RenderChange renders a signed percent change in the status color.
func RenderChange(change int) string {
	text := fmt.Sprintf("%+d%%", change)
	switch {
	case change > 0:
		return TrendUpStyle.Render(text)
	case change < 0:
		return TrendDownStyle.Render(text)
	default:
		return TrendSameStyle.Render("0%")
	}
}

// RenderRank renders a rank badge; the top three get the accent color.
func RenderRank(rank int) string {
	text := fmt.Sprintf("%2d", rank)
	if rank <= 3 {
		return RankTopStyle.Render(text)
	}
	return RankStyle.Render(text)
}
