package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/api"
	"trendhub/internal/tui/components"
	"trendhub/internal/tui/styles"
	"trendhub/pkg/models"
	"trendhub/pkg/utils"
)

// defaultSuggestDebounce is how long typing must pause before a suggestion
// fetch when the config does not say otherwise.
const defaultSuggestDebounce = 300 * time.Millisecond

// minSuggestChars is the minimum query length that triggers suggestions.
// Whitespace-only input clears the panel without a fetch.
const minSuggestChars = 1

// SearchModel handles news article search with live suggestions
type SearchModel struct {
	apiClient *api.Client

	// Input
	searchInput textinput.Model

	// Suggestions. seq is a generation counter: every keystroke bumps it,
	// and responses carrying an older seq are dropped so a slow fetch for
	// a stale query can never overwrite a newer one.
	suggestions   []models.SearchSuggestion
	seq           int
	suggestCursor int
	showSuggest   bool

	// Results. firstPage caches the response that opened the session so
	// navigating back to page 1 does not refetch.
	results   []models.SearchResult
	total     int
	lastQuery string
	firstPage *models.SearchResultResponse

	// State
	loading      bool
	errView      components.ErrorView
	hasSearched  bool
	cursor       int
	inputFocused bool

	// Pagination
	page     int
	pageSize int

	debounce time.Duration

	// Window size
	width  int
	height int
}

// NewSearchModel creates a new search model. debounce is the typing pause
// before a suggestion fetch; verboseErrors controls whether failure panels
// include endpoint and status detail.
func NewSearchModel(apiClient *api.Client, pageSize int, debounce time.Duration, verboseErrors bool) SearchModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "검색어를 입력하세요..."
	searchInput.CharLimit = 100
	searchInput.Width = 50
	searchInput.Focus()

	if pageSize < 1 {
		pageSize = api.DefaultPageSize
	}
	if debounce <= 0 {
		debounce = defaultSuggestDebounce
	}

	return SearchModel{
		apiClient:    apiClient,
		searchInput:  searchInput,
		errView:      components.NewErrorView("검색에 실패했습니다", verboseErrors, nil),
		inputFocused: true,
		page:         1,
		pageSize:     pageSize,
		debounce:     debounce,
	}
}

// Init initializes the model
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetQuery prefills the query and immediately runs a search. Used when a
// trend detail hands its keyword over to this view.
func (m *SearchModel) SetQuery(query string) tea.Cmd {
	m.searchInput.SetValue(query)
	m.searchInput.CursorEnd()
	m.seq++
	m.showSuggest = false
	m.suggestions = nil
	m.page = 1
	m.cursor = 0
	m.firstPage = nil
	m.loading = true
	m.hasSearched = true
	m.errView.Clear()
	m.lastQuery = query
	return m.doSearch(query)
}

// Update handles messages
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.inputFocused {
			return m.updateInput(msg)
		}
		return m.updateResults(msg)

	case suggestTickMsg:
		// The debounce window for this keystroke elapsed. Only the latest
		// generation is still worth fetching.
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.fetchSuggestions(msg.seq, msg.query)

	case SuggestionsMsg:
		if msg.Seq != m.seq {
			// Stale response for an earlier query; drop it.
			return m, nil
		}
		m.suggestions = msg.Items
		m.suggestCursor = -1
		m.showSuggest = len(msg.Items) > 0 && m.inputFocused
		return m, nil

	case SearchResultsMsg:
		if msg.Query != m.lastQuery || msg.Page != m.page {
			// Late response for a query or page the user has already
			// navigated away from.
			return m, nil
		}
		m.loading = false
		m.errView.Clear()
		m.results = msg.Response.Items
		m.total = msg.Response.Total
		m.page = msg.Response.Page
		if m.page <= 1 {
			m.firstPage = msg.Response
		}
		m.cursor = 0
		if len(m.results) > 0 {
			m.inputFocused = false
			m.searchInput.Blur()
		}
		return m, nil

	case SearchErrorMsg:
		m.loading = false
		m.errView.SetError(msg.Err)
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// updateInput handles keystrokes while the search box is focused.
func (m SearchModel) updateInput(msg tea.KeyMsg) (SearchModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		query := m.searchInput.Value()
		if m.showSuggest && m.suggestCursor >= 0 && m.suggestCursor < len(m.suggestions) {
			query = m.suggestions[m.suggestCursor].Keyword
			m.searchInput.SetValue(query)
			m.searchInput.CursorEnd()
		}
		if strings.TrimSpace(query) == "" {
			return m, nil
		}
		m.seq++
		m.showSuggest = false
		m.suggestions = nil
		m.page = 1
		m.firstPage = nil
		m.loading = true
		m.hasSearched = true
		m.errView.Clear()
		m.lastQuery = query
		return m, m.doSearch(query)

	case key.Matches(msg, key.NewBinding(key.WithKeys("down"))):
		if m.showSuggest {
			if m.suggestCursor < len(m.suggestions)-1 {
				m.suggestCursor++
			}
			return m, nil
		}
		if len(m.results) > 0 {
			m.inputFocused = false
			m.searchInput.Blur()
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("up"))):
		if m.showSuggest && m.suggestCursor >= 0 {
			m.suggestCursor--
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		if m.showSuggest {
			m.seq++
			m.showSuggest = false
			m.suggestions = nil
			return m, nil
		}
		return m, nil
	}

	oldValue := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	newValue := m.searchInput.Value()
	if newValue == oldValue {
		return m, cmd
	}

	// Every edit invalidates in-flight suggestion work.
	m.seq++
	m.suggestCursor = -1

	trimmed := strings.TrimSpace(newValue)
	if len([]rune(trimmed)) < minSuggestChars {
		m.suggestions = nil
		m.showSuggest = false
		return m, cmd
	}

	seq := m.seq
	debounce := tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return suggestTickMsg{seq: seq, query: trimmed}
	})
	return m, tea.Batch(cmd, debounce)
}

// updateResults handles keystrokes while the result list is focused.
func (m SearchModel) updateResults(msg tea.KeyMsg) (SearchModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("/"))):
		m.inputFocused = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
		if m.cursor > 0 {
			m.cursor--
			return m, nil
		}
		m.inputFocused = true
		return m, m.searchInput.Focus()

	case key.Matches(msg, key.NewBinding(key.WithKeys("n", "right", "pgdown"))):
		if m.page < m.totalPages() {
			m.page++
			m.cursor = 0
			m.loading = true
			return m, m.doSearch(m.lastQuery)
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("p", "left", "pgup"))):
		if m.page > 1 {
			m.page--
			m.cursor = 0
			if m.page == 1 && m.firstPage != nil {
				m.results = m.firstPage.Items
				m.total = m.firstPage.Total
				return m, nil
			}
			m.loading = true
			return m, m.doSearch(m.lastQuery)
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		if m.errView.HasError() && m.lastQuery != "" {
			m.loading = true
			m.errView.Clear()
			return m, m.doSearch(m.lastQuery)
		}
		return m, nil
	}

	return m, nil
}

// View renders the search view
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🔍 뉴스 검색"))
	b.WriteString("\n\n")

	inputStyle := styles.InputStyle
	if m.inputFocused {
		inputStyle = styles.InputFocusedStyle
	}
	b.WriteString(inputStyle.Render("검색: "))
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")

	if m.showSuggest {
		for i, suggestion := range m.suggestions {
			prefix := "  "
			style := styles.ListItemStyle
			if i == m.suggestCursor {
				prefix = "▸ "
				style = styles.ListItemSelectedStyle
			}
			line := prefix + suggestion.Keyword
			if suggestion.Count != nil {
				line += styles.HelpStyle.Render(fmt.Sprintf(" (%.0f)", *suggestion.Count))
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(styles.SpinnerStyle.Render("⟳ "))
		b.WriteString(styles.InfoStyle.Render("검색 중..."))
		return b.String()
	}

	if m.errView.HasError() {
		b.WriteString(m.errView.View())
		return b.String()
	}

	if !m.hasSearched {
		b.WriteString(styles.HelpStyle.Render("검색어를 입력하고 Enter를 누르세요"))
		return b.String()
	}

	if len(m.results) == 0 {
		b.WriteString(styles.InfoStyle.Render("검색 결과가 없습니다: "))
		b.WriteString(styles.HighlightStyle.Render(m.lastQuery))
		return b.String()
	}

	pageInfo := fmt.Sprintf("%d건의 결과 (%d/%d 페이지)", m.total, m.page, m.totalPages())
	b.WriteString(styles.SubtitleStyle.Render(pageInfo))
	b.WriteString("\n")
	b.WriteString(styles.RenderDivider(50))
	b.WriteString("\n\n")

	for i, result := range m.results {
		prefix := "  "
		style := styles.ListItemStyle
		if i == m.cursor && !m.inputFocused {
			prefix = "▸ "
			style = styles.ListItemSelectedStyle
		}

		title := styles.ListItemTitleStyle.Render(styles.Truncate(result.Title, 46))
		press := styles.MetaValueStyle.Render(result.Press)
		date := styles.HelpStyle.Render(utils.FormatPubDate(result.PubDate))

		b.WriteString(style.Render(fmt.Sprintf("%s%s %s %s", prefix, title, press, date)))

		if i == m.cursor && !m.inputFocused && result.Description != "" {
			b.WriteString("\n     ")
			b.WriteString(styles.ListItemDescStyle.Render(styles.Truncate(result.Description, 60)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.RenderPagination(m.page, m.totalPages()))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("/ 검색창 • ↑/↓ 이동 • n/p 페이지 • r 재시도"))

	return b.String()
}

// totalPages calculates total pages
func (m SearchModel) totalPages() int {
	if m.total == 0 {
		return 1
	}
	pages := m.total / m.pageSize
	if m.total%m.pageSize > 0 {
		pages++
	}
	return pages
}

// doSearch performs the search API call
func (m SearchModel) doSearch(query string) tea.Cmd {
	apiClient := m.apiClient
	page, pageSize := m.page, m.pageSize
	return func() tea.Msg {
		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		resp, err := apiClient.SearchArticles(ctx, query, page, pageSize)
		if err != nil {
			return SearchErrorMsg{Err: err}
		}
		return SearchResultsMsg{Query: query, Page: page, Response: resp}
	}
}

// fetchSuggestions fetches autocomplete candidates for one generation.
func (m SearchModel) fetchSuggestions(seq int, query string) tea.Cmd {
	apiClient := m.apiClient
	return func() tea.Msg {
		ctx, cancel := utils.WithTimeout(context.Background())
		defer cancel()

		return SuggestionsMsg{
			Seq:   seq,
			Items: apiClient.SearchSuggestions(ctx, query),
		}
	}
}

// InputFocused reports whether keystrokes currently belong to the search box.
func (m SearchModel) InputFocused() bool {
	return m.inputFocused
}

// SelectedResult returns the currently highlighted article, if any.
func (m SearchModel) SelectedResult() *models.SearchResult {
	if !m.inputFocused && m.cursor < len(m.results) {
		return &m.results[m.cursor]
	}
	return nil
}

// Messages

// suggestTickMsg fires when a keystroke's debounce window elapses.
type suggestTickMsg struct {
	seq   int
	query string
}

// SuggestionsMsg carries fetched suggestions tagged with their generation.
type SuggestionsMsg struct {
	Seq   int
	Items []models.SearchSuggestion
}

// SearchResultsMsg carries one page of results tagged with the query and
// page it was issued for, so responses superseded by a newer request in
// the same session can be discarded.
type SearchResultsMsg struct {
	Query    string
	Page     int
	Response *models.SearchResultResponse
}

// SearchErrorMsg is sent on search errors
type SearchErrorMsg struct {
	Err error
}
