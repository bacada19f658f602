// Package tui is the terminal front end: a three-view dashboard over the
// trend ranking, article search, and data-report backends.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trendhub/internal/api"
	"trendhub/internal/report"
	"trendhub/internal/tui/config"
	"trendhub/internal/tui/focus"
	"trendhub/internal/tui/styles"
	"trendhub/internal/tui/views"
)

// View represents different screens in the TUI
type View int

const (
	ViewTrends View = iota
	ViewSearch
	ViewReport
	ViewDetail
)

// Model is the root Bubble Tea model
type Model struct {
	// Configuration
	config *config.Config

	// API client
	apiClient *api.Client

	// Focus manager
	focusManager *focus.Manager

	// Current view
	currentView  View
	previousView View

	// Key bindings
	keys KeyMap

	// Window dimensions
	width  int
	height int

	// View models
	trendsModel views.TrendsModel
	searchModel views.SearchModel
	reportModel views.ReportModel
	detailModel views.DetailModel
}

// New creates a new TUI application
func New(cfg *config.Config) *Model {
	apiClient := api.NewClient(api.Config{
		TrendBaseURL:  cfg.API.TrendBaseURL,
		SearchBaseURL: cfg.API.SearchBaseURL,
		ReportBaseURL: cfg.API.ReportBaseURL,
		APIKey:        cfg.API.Key,
	})
	loader := report.NewLoader(apiClient)

	m := &Model{
		config:       cfg,
		apiClient:    apiClient,
		focusManager: focus.NewManager(),
		currentView:  ViewTrends,
		keys:         DefaultKeyMap(),
	}

	debounce := time.Duration(cfg.UI.DebounceMs) * time.Millisecond
	m.trendsModel = views.NewTrendsModel(apiClient, cfg.UI.EnableAnimations)
	m.searchModel = views.NewSearchModel(apiClient, cfg.UI.PageSize, debounce, cfg.Environment != config.EnvProduction)
	m.reportModel = views.NewReportModel(loader)
	m.detailModel = views.NewDetailModel()

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.trendsModel.Init()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Propagate to views
		m.trendsModel, _ = m.trendsModel.Update(msg)
		m.searchModel, _ = m.searchModel.Update(msg)
		m.reportModel, _ = m.reportModel.Update(msg)
		m.detailModel, _ = m.detailModel.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if m.keys.ShouldHandleGlobally(m.focusManager.Mode(), msg) {
			switch {
			case msg.String() == "ctrl+c":
				return m, tea.Quit

			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.keys.Back):
				if m.currentView == ViewDetail {
					m.currentView = m.previousView
					m.focusManager.SetMode(focus.ModeNavigation)
					return m, nil
				}

			case key.Matches(msg, m.keys.Trends):
				m.previousView = m.currentView
				m.currentView = ViewTrends
				m.focusManager.SetMode(focus.ModeNavigation)
				return m, m.trendsModel.Init()

			case key.Matches(msg, m.keys.Search):
				m.previousView = m.currentView
				m.currentView = ViewSearch
				m.focusManager.SetMode(focus.ModeInput)
				return m, m.searchModel.Init()

			case key.Matches(msg, m.keys.Report):
				m.previousView = m.currentView
				m.currentView = ViewReport
				m.focusManager.SetMode(focus.ModeNavigation)
				return m, m.reportModel.Init()
			}
		}

	// Navigation from views
	case views.SelectTrendMsg:
		m.previousView = m.currentView
		m.currentView = ViewDetail
		m.focusManager.SetMode(focus.ModeOverlay)
		m.detailModel.SetItem(msg.Item)
		return m, nil

	case views.SearchTrendMsg:
		m.previousView = m.currentView
		m.currentView = ViewSearch
		m.focusManager.SetMode(focus.ModeInput)
		return m, m.searchModel.SetQuery(msg.Query)
	}

	return m.updateCurrentView(msg)
}

// updateCurrentView routes updates to the active view
func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewTrends:
		m.trendsModel, cmd = m.trendsModel.Update(msg)
	case ViewSearch:
		m.searchModel, cmd = m.searchModel.Update(msg)
	case ViewReport:
		m.reportModel, cmd = m.reportModel.Update(msg)
	case ViewDetail:
		m.detailModel, cmd = m.detailModel.Update(msg)
	}

	m.syncFocus()
	return m, cmd
}

// syncFocus keeps the shell's focus mode in step with views that move
// keyboard ownership internally (search box vs result list).
func (m *Model) syncFocus() {
	switch m.currentView {
	case ViewSearch:
		if m.searchModel.InputFocused() {
			m.focusManager.SetMode(focus.ModeInput)
		} else {
			m.focusManager.SetMode(focus.ModeNavigation)
		}
	case ViewReport:
		if m.reportModel.InputFocused() {
			m.focusManager.SetMode(focus.ModeInput)
		} else {
			m.focusManager.SetMode(focus.ModeNavigation)
		}
	case ViewDetail:
		m.focusManager.SetMode(focus.ModeOverlay)
	default:
		m.focusManager.SetMode(focus.ModeNavigation)
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.currentView {
	case ViewTrends:
		content = m.trendsModel.View()
	case ViewSearch:
		content = m.searchModel.View()
	case ViewReport:
		content = m.reportModel.View()
	case ViewDetail:
		content = m.detailModel.View()
	default:
		content = "Unknown view"
	}

	return styles.AppStyle.Render(content + "\n\n" + m.renderStatusBar())
}

// renderStatusBar renders the bottom status bar
func (m Model) renderStatusBar() string {
	viewName := ""
	switch m.currentView {
	case ViewTrends:
		viewName = "트렌드"
	case ViewSearch:
		viewName = "검색"
	case ViewReport:
		viewName = "리포트"
	case ViewDetail:
		viewName = "상세"
	}

	left := styles.StatusBarActiveStyle.Render("● " + viewName)
	right := styles.StatusBarStyle.Render("1 트렌드 | 2 검색 | 3 리포트 | q 종료")

	spacing := m.width - len(left) - len(right) - 4
	if spacing < 0 {
		spacing = 0
	}
	spaces := ""
	for i := 0; i < spacing; i++ {
		spaces += " "
	}

	return left + spaces + right
}
