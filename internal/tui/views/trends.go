package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/api"
	"trendhub/internal/core"
	"trendhub/internal/tui/components"
	"trendhub/internal/tui/styles"
	"trendhub/pkg/models"
	"trendhub/pkg/utils"
)

// TrendsModel displays the ranked trending keyword list
type TrendsModel struct {
	apiClient *api.Client

	// Data
	records []models.RankingRecord
	items   []models.TrendItem

	// State
	spin        components.Spinner
	animate     bool
	loading     bool
	err         error
	categoryIdx int
	cursor      int

	// Window size
	width  int
	height int
}

// NewTrendsModel creates a new trends model. With animate off the loading
// state renders as static text instead of a ticking spinner.
func NewTrendsModel(apiClient *api.Client, animate bool) TrendsModel {
	return TrendsModel{
		apiClient: apiClient,
		spin:      components.NewSpinner("트렌드를 불러오는 중..."),
		animate:   animate,
		loading:   true,
	}
}

// Init initializes and loads data
func (m TrendsModel) Init() tea.Cmd {
	if m.animate {
		return tea.Batch(m.loadRanking(), m.spin.Tick())
	}
	return m.loadRanking()
}

// Update handles messages
func (m TrendsModel) Update(msg tea.Msg) (TrendsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("tab"))):
			m.categoryIdx = (m.categoryIdx + 1) % len(models.Categories)
			m.applyCategory()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("shift+tab"))):
			m.categoryIdx = (m.categoryIdx + len(models.Categories) - 1) % len(models.Categories)
			m.applyCategory()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
			m.cursor++
			m.clampCursor()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
			m.cursor--
			m.clampCursor()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
			m.loading = true
			m.err = nil
			if m.animate {
				return m, tea.Batch(m.loadRanking(), m.spin.Tick())
			}
			return m, m.loadRanking()

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				return m, func() tea.Msg {
					return SelectTrendMsg{Item: item}
				}
			}
			return m, nil
		}

	case RankingLoadedMsg:
		m.loading = false
		m.err = nil
		m.records = msg.Records
		m.applyCategory()
		return m, nil

	case TrendsErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	if m.loading && m.animate {
		return m, m.spin.Update(msg)
	}
	return m, nil
}

// applyCategory rebuilds display items for the active category.
func (m *TrendsModel) applyCategory() {
	m.items = core.Reconcile(m.records, models.Categories[m.categoryIdx])
	m.cursor = 0
}

// View renders the trends view
func (m TrendsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🔥 실시간 트렌드"))
	b.WriteString("\n\n")

	// Category tabs
	var tabs []string
	for i, category := range models.Categories {
		if i == m.categoryIdx {
			tabs = append(tabs, styles.TabActiveStyle.Render(string(category)))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(string(category)))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")
	b.WriteString(styles.RenderDivider(50))
	b.WriteString("\n\n")

	if m.loading {
		if m.animate {
			b.WriteString(m.spin.View())
		} else {
			b.WriteString(styles.InfoStyle.Render("트렌드를 불러오는 중..."))
		}
		return b.String()
	}

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("트렌드를 불러오지 못했습니다"))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render(m.err.Error()))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("r 키로 다시 시도하세요"))
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(styles.InfoStyle.Render("표시할 트렌드가 없습니다"))
		return b.String()
	}

	for i, item := range m.items {
		prefix := "  "
		style := styles.ListItemStyle
		if i == m.cursor {
			prefix = "▸ "
			style = styles.ListItemSelectedStyle
		}

		rank := styles.RenderRank(item.Rank)
		keyword := styles.ListItemTitleStyle.Render(styles.Truncate(item.Keyword, 24))
		status := styles.RenderStatus(item.Status)
		score := styles.MetaValueStyle.Render(fmt.Sprintf("%.1f", item.Score))
		spark := components.Sparkline(item.TrendData)

		line := fmt.Sprintf("%s%s %s %s %s %s", prefix, rank, keyword, status, score, spark)
		b.WriteString(style.Render(line))

		if i == m.cursor && len(item.Articles) > 0 {
			title := styles.Truncate(item.Articles[0].Title, 50)
			b.WriteString("\n     ")
			b.WriteString(styles.ListItemDescStyle.Render(title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ 이동 • Tab 카테고리 • Enter 상세 • r 새로고침"))

	return b.String()
}

// clampCursor keeps cursor in bounds
func (m *TrendsModel) clampCursor() {
	max := len(m.items) - 1
	if max < 0 {
		max = 0
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > max {
		m.cursor = max
	}
}

// loadRanking fetches the raw ranking from the trend backend.
func (m TrendsModel) loadRanking() tea.Cmd {
	apiClient := m.apiClient
	return func() tea.Msg {
		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		records, err := apiClient.FetchRanking(ctx)
		if err != nil {
			return TrendsErrorMsg{Err: err}
		}
		return RankingLoadedMsg{Records: records}
	}
}

// Messages

// RankingLoadedMsg is sent when the ranking fetch completes
type RankingLoadedMsg struct {
	Records []models.RankingRecord
}

// TrendsErrorMsg is sent on ranking fetch errors
type TrendsErrorMsg struct {
	Err error
}

// SelectTrendMsg is sent when the user opens a trend's detail
type SelectTrendMsg struct {
	Item models.TrendItem
}
