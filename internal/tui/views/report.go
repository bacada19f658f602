package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/core"
	"trendhub/internal/report"
	"trendhub/internal/tui/components"
	"trendhub/internal/tui/styles"
	"trendhub/pkg/models"
	"trendhub/pkg/utils"
)

// reportPane is which layer of the report view has focus.
type reportPane int

const (
	paneList reportPane = iota
	paneDetail
	paneLookup
)

// ReportModel displays the data-report: ranked keywords with frequency
// statistics, plus a per-keyword detail with time series and related data.
type ReportModel struct {
	loader *report.Loader

	// Data
	entries   []models.KeywordData
	detail    *models.KeywordData
	updatedAt time.Time

	// Lookup input
	lookup components.Input

	// State. detailSeq is a liveness counter for detail loads: changing or
	// clearing the selection bumps it, and a facet result carrying an older
	// value is ignored.
	pane          reportPane
	loading       bool
	facetsLoading bool
	detailSeq     int
	err           error
	notFound      string
	cursor        int

	// Window size
	width  int
	height int
}

// NewReportModel creates a new report model
func NewReportModel(loader *report.Loader) ReportModel {
	return ReportModel{
		loader: loader,
		lookup: components.NewInput("키워드 조회", "키워드를 입력하세요..."),
	}
}

// Init initializes and loads the ranking
func (m ReportModel) Init() tea.Cmd {
	return m.loadRanking()
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (ReportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.pane {
		case paneLookup:
			return m.updateLookup(msg)
		case paneDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}

	case ReportRankingMsg:
		m.loading = false
		m.err = nil
		m.entries = msg.Entries
		m.updatedAt = time.Now()
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
		// An open detail is re-resolved against the fresh snapshot by id.
		// If the keyword fell out of the ranking the old detail stays up.
		if m.detail != nil && m.detail.ID != "" {
			for _, entry := range m.entries {
				if entry.ID == m.detail.ID {
					m.detailSeq++
					return m, m.loadDetail(entry, m.detailSeq)
				}
			}
		}
		return m, nil

	case ReportDetailMsg:
		if msg.Seq != m.detailSeq {
			return m, nil
		}
		m.loading = false
		m.facetsLoading = false
		m.err = nil
		m.notFound = ""
		data := msg.Data
		m.detail = &data
		m.pane = paneDetail
		return m, nil

	case ReportNotFoundMsg:
		m.loading = false
		m.notFound = msg.Keyword
		m.pane = paneList
		return m, nil

	case ReportErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// updateList handles keys while the ranking list has focus.
func (m ReportModel) updateList(msg tea.KeyMsg) (ReportModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		m.loading = true
		m.err = nil
		m.notFound = ""
		return m, m.loadRanking()

	case key.Matches(msg, key.NewBinding(key.WithKeys("/"))):
		m.pane = paneLookup
		m.notFound = ""
		return m, m.lookup.Focus()

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		if len(m.entries) > 0 {
			entry := m.entries[m.cursor]
			// The ranking already holds the summary fields, so the detail
			// pane opens immediately and facets merge in when they settle.
			m.detailSeq++
			summary := entry
			m.detail = &summary
			m.pane = paneDetail
			m.facetsLoading = true
			return m, m.loadDetail(entry, m.detailSeq)
		}
		return m, nil
	}

	return m, nil
}

// updateDetail handles keys while the detail panel has focus.
func (m ReportModel) updateDetail(msg tea.KeyMsg) (ReportModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "backspace"))):
		m.detailSeq++
		m.pane = paneList
		m.detail = nil
		m.facetsLoading = false
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		// Refresh the ranking in place; the open detail is re-resolved
		// when the new snapshot arrives.
		return m, m.loadRanking()
	}
	return m, nil
}

// updateLookup handles keys while the lookup input has focus.
func (m ReportModel) updateLookup(msg tea.KeyMsg) (ReportModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		m.pane = paneList
		m.lookup.Blur()
		m.lookup.SetValue("")
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		query := strings.TrimSpace(m.lookup.Value())
		if query == "" {
			return m, nil
		}
		m.pane = paneList
		m.lookup.Blur()
		m.lookup.SetValue("")
		m.detailSeq++
		m.loading = true
		return m, m.lookupKeyword(query, m.detailSeq)
	}

	cmd := m.lookup.Update(msg)
	return m, cmd
}

// InputFocused reports whether the keyword lookup input owns the keyboard.
func (m ReportModel) InputFocused() bool {
	return m.pane == paneLookup
}

// View renders the report view
func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📊 데이터 리포트"))
	b.WriteString("\n\n")

	if m.pane == paneLookup {
		b.WriteString(m.lookup.View())
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Enter 조회 • esc 취소"))
		return b.String()
	}

	if m.loading {
		b.WriteString(styles.SpinnerStyle.Render("⟳ "))
		b.WriteString(styles.InfoStyle.Render("리포트를 불러오는 중..."))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("리포트를 불러오지 못했습니다"))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render(m.err.Error()))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("r 키로 다시 시도하세요"))
		return b.String()
	}

	if m.pane == paneDetail && m.detail != nil {
		b.WriteString(m.renderDetail(*m.detail))
		return b.String()
	}

	if m.notFound != "" {
		b.WriteString(styles.InfoStyle.Render("키워드를 찾을 수 없습니다: "))
		b.WriteString(styles.HighlightStyle.Render(m.notFound))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(styles.InfoStyle.Render("표시할 데이터가 없습니다"))
		return b.String()
	}

	b.WriteString(styles.SubtitleStyle.Render("Top Keywords"))
	if !m.updatedAt.IsZero() {
		b.WriteString(styles.HelpStyle.Render(m.updatedAt.Format("  15:04 기준")))
	}
	b.WriteString("\n")
	b.WriteString(styles.RenderDivider(50))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		prefix := "  "
		style := styles.ListItemStyle
		if i == m.cursor {
			prefix = "▸ "
			style = styles.ListItemSelectedStyle
		}

		line := fmt.Sprintf("%s%s %s %s %s %s", prefix,
			styles.RenderRank(entry.Rank),
			styles.ListItemTitleStyle.Render(styles.Truncate(entry.Keyword, 20)),
			styles.RenderStatus(entry.Status),
			styles.RenderChange(entry.Change),
			components.Sparkline(entry.TrendData))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ 이동 • Enter 상세 • / 키워드 조회 • r 새로고침"))

	return b.String()
}

// renderDetail renders one keyword's full report.
func (m ReportModel) renderDetail(data models.KeywordData) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(data.Keyword))
	b.WriteString("  ")
	b.WriteString(styles.RenderStatus(data.Status))
	b.WriteString(" ")
	b.WriteString(styles.RenderChange(data.Change))
	b.WriteString("\n\n")

	if m.facetsLoading {
		b.WriteString(styles.SpinnerStyle.Render("⟳ "))
		b.WriteString(styles.HelpStyle.Render("상세 정보를 불러오는 중..."))
		b.WriteString("\n\n")
	}

	points := core.ChartPoints(data)
	if len(points) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("시간대별 추이"))
		b.WriteString("\n")
		b.WriteString(components.Sparkline(core.SeriesScores(data.TimeSeries)))
		b.WriteString("\n")
		var labels []string
		for _, p := range points {
			labels = append(labels, p.Label)
		}
		b.WriteString(styles.HelpStyle.Render(strings.Join(labels, " ")))
		b.WriteString("\n\n")
	}

	if data.Analysis != nil {
		b.WriteString(styles.SubtitleStyle.Render("분석"))
		b.WriteString("\n")
		b.WriteString(styles.CardContentStyle.Render(data.Analysis.Summary))
		b.WriteString("\n")
		if data.Analysis.ExpectedDuration != nil {
			b.WriteString(styles.HelpStyle.Render(data.Analysis.ExpectedDuration.Description))
			b.WriteString("\n")
		}
		for _, factor := range data.Analysis.Factors {
			b.WriteString(styles.MetaValueStyle.Render("· " + factor.Title))
			b.WriteString(" ")
			b.WriteString(styles.HelpStyle.Render(factor.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(data.RelatedKeywords) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("연관 키워드"))
		b.WriteString("\n")
		b.WriteString(styles.MetaValueStyle.Render(strings.Join(data.RelatedKeywords, " · ")))
		b.WriteString("\n\n")
	}

	if len(data.Articles) > 0 {
		b.WriteString(styles.SubtitleStyle.Render("관련 기사"))
		b.WriteString("\n")
		for _, article := range data.Articles {
			b.WriteString("  ")
			b.WriteString(styles.ListItemTitleStyle.Render(styles.Truncate(article.Title, 44)))
			b.WriteString(" ")
			b.WriteString(styles.MetaValueStyle.Render(article.Source))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("esc 목록으로"))

	return b.String()
}

// loadRanking fetches the report ranking with per-entry change rates.
func (m ReportModel) loadRanking() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		entries, err := loader.BuildRanking(ctx)
		if err != nil {
			return ReportErrorMsg{Err: err}
		}
		return ReportRankingMsg{Entries: entries}
	}
}

// loadDetail fetches the detail facets for one ranked entry.
func (m ReportModel) loadDetail(entry models.KeywordData, seq int) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		return ReportDetailMsg{Seq: seq, Data: loader.LoadKeyword(ctx, entry)}
	}
}

// lookupKeyword resolves free text to a keyword and loads its report.
// Unlike ranking selection there is no summary to show yet, so the caller
// keeps a blocking loading state until this settles.
func (m ReportModel) lookupKeyword(query string, seq int) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		data, err := loader.BuildFromSearch(ctx, query)
		if err != nil {
			if errors.Is(err, models.ErrKeywordNotFound) {
				return ReportNotFoundMsg{Keyword: query}
			}
			return ReportErrorMsg{Err: err}
		}
		return ReportDetailMsg{Seq: seq, Data: data}
	}
}

// Messages

// ReportRankingMsg is sent when the report ranking loads
type ReportRankingMsg struct {
	Entries []models.KeywordData
}

// ReportDetailMsg is sent when a keyword's detail loads. Seq ties it to
// the selection that requested it.
type ReportDetailMsg struct {
	Seq  int
	Data models.KeywordData
}

// ReportNotFoundMsg is sent when a keyword lookup finds nothing
type ReportNotFoundMsg struct {
	Keyword string
}

// ReportErrorMsg is sent on report errors
type ReportErrorMsg struct {
	Err error
}
