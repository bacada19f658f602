package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/core"
	"trendhub/internal/tui/components"
	"trendhub/internal/tui/styles"
	"trendhub/pkg/models"
)

// DetailModel displays one trend keyword in full: score curve, description,
// and the articles behind it.
type DetailModel struct {
	item   *models.TrendItem
	cursor int

	// Window size
	width  int
	height int
}

// NewDetailModel creates a new detail model
func NewDetailModel() DetailModel {
	return DetailModel{}
}

// SetItem sets the trend item to display
func (m *DetailModel) SetItem(item models.TrendItem) {
	m.item = &item
	m.cursor = 0
}

// Init initializes the model
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.item == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
			if m.cursor < len(m.item.Articles)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("s", "enter"))):
			item := *m.item
			return m, func() tea.Msg {
				return SearchTrendMsg{Query: core.SearchQuery(item)}
			}
		}
	}

	return m, nil
}

// View renders the detail view
func (m DetailModel) View() string {
	if m.item == nil {
		return styles.InfoStyle.Render("선택된 키워드가 없습니다")
	}

	item := *m.item
	var b strings.Builder

	header := fmt.Sprintf("%s %s %s",
		styles.RenderRank(item.Rank),
		styles.TitleStyle.Render(item.Keyword),
		styles.RenderStatus(item.Status))
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(styles.RenderKeyValue("총점", fmt.Sprintf("%.1f", item.Score)))
	b.WriteString("  ")
	b.WriteString(styles.RenderKeyValue("추이", components.Sparkline(item.TrendData)))
	b.WriteString("\n\n")

	b.WriteString(styles.CardStyle.Render(
		styles.CardTitleStyle.Render("키워드 설명") + "\n" +
			styles.CardContentStyle.Render(item.Description)))
	b.WriteString("\n")

	if len(item.Articles) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("관련 기사"))
		b.WriteString("\n")
		for i, article := range item.Articles {
			prefix := "  "
			style := styles.ListItemStyle
			if i == m.cursor {
				prefix = "▸ "
				style = styles.ListItemSelectedStyle
			}
			line := fmt.Sprintf("%s%s %s %s", prefix,
				styles.ListItemTitleStyle.Render(styles.Truncate(article.Title, 44)),
				styles.MetaValueStyle.Render(article.Source),
				styles.HelpStyle.Render(article.Date))
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("s/Enter 뉴스 검색 • esc 뒤로"))

	return b.String()
}

// Messages

// SearchTrendMsg asks the app to run an article search for a trend keyword.
type SearchTrendMsg struct {
	Query string
}
