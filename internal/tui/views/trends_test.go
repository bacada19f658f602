package views

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendhub/pkg/models"
)

func score(v float64) *float64 { return &v }

func TestLoadingWithoutAnimationsRendersStaticText(t *testing.T) {
	m := NewTrendsModel(nil, false)
	require.True(t, m.loading)

	view := m.View()
	assert.Contains(t, view, "트렌드를 불러오는 중")

	// Spinner frames are not advanced when animations are off.
	m, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
	_ = m
}

func TestLoadingWithAnimationsAdvancesSpinner(t *testing.T) {
	m := NewTrendsModel(nil, true)
	require.True(t, m.loading)

	_, cmd := m.Update(spinner.TickMsg{})
	assert.NotNil(t, cmd)
}

func TestRankingLoadedRendersItems(t *testing.T) {
	m := NewTrendsModel(nil, false)
	m, _ = m.Update(RankingLoadedMsg{Records: []models.RankingRecord{
		{Keyword: "태풍", Rank: 1, Status: "up", Score: score(82.5)},
		{Keyword: "폭염", Rank: 2, Status: "down", Score: score(41.0)},
	}})

	require.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "태풍")
	assert.Contains(t, view, "폭염")
}

func TestSelectedTrendEmitsSelectMsg(t *testing.T) {
	m := NewTrendsModel(nil, false)
	m, _ = m.Update(RankingLoadedMsg{Records: []models.RankingRecord{
		{Keyword: "태풍", Rank: 1, Status: "new", Score: score(82.5)},
	}})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SelectTrendMsg)
	require.True(t, ok)
	assert.Equal(t, "태풍", msg.Item.Keyword)
}
