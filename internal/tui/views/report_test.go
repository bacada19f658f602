package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendhub/pkg/models"
)

func rankedEntries() []models.KeywordData {
	return []models.KeywordData{
		{ID: "k1", Rank: 1, Keyword: "한덕수", Score: 300, Change: 12, Status: models.StatusUp},
		{ID: "k2", Rank: 2, Keyword: "비상계엄", Score: 210, Status: models.StatusSame},
	}
}

func TestRankingSelectionShowsSummaryImmediately(t *testing.T) {
	m := NewReportModel(nil)
	m, _ = m.Update(ReportRankingMsg{Entries: rankedEntries()})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// The summary is on screen before any facet has settled.
	require.NotNil(t, m.detail)
	assert.Equal(t, "한덕수", m.detail.Keyword)
	assert.Equal(t, paneDetail, m.pane)
	assert.True(t, m.facetsLoading)
	assert.NotNil(t, cmd)

	merged := *m.detail
	merged.RelatedKeywords = []string{"국무총리"}
	m, _ = m.Update(ReportDetailMsg{Seq: m.detailSeq, Data: merged})

	assert.False(t, m.facetsLoading)
	assert.Equal(t, []string{"국무총리"}, m.detail.RelatedKeywords)
}

func TestLateFacetsForClosedDetailAreDropped(t *testing.T) {
	m := NewReportModel(nil)
	m, _ = m.Update(ReportRankingMsg{Entries: rankedEntries()})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	staleSeq := m.detailSeq

	// Closing the detail supersedes the in-flight facet load.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, m.detail)

	m, _ = m.Update(ReportDetailMsg{Seq: staleSeq, Data: rankedEntries()[0]})
	assert.Nil(t, m.detail)
	assert.Equal(t, paneList, m.pane)
}

func TestRefreshReresolvesOpenDetailById(t *testing.T) {
	m := NewReportModel(nil)
	m, _ = m.Update(ReportRankingMsg{Entries: rankedEntries()})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(ReportDetailMsg{Seq: m.detailSeq, Data: rankedEntries()[0]})

	refreshed := []models.KeywordData{
		{ID: "k1", Rank: 2, Keyword: "한덕수", Score: 280, Status: models.StatusDown},
	}
	m, cmd := m.Update(ReportRankingMsg{Entries: refreshed})
	assert.NotNil(t, cmd, "a still-ranked keyword should reload its detail")
	assert.Equal(t, "한덕수", m.detail.Keyword)
}

func TestRefreshLeavesVanishedKeywordDetailUntouched(t *testing.T) {
	m := NewReportModel(nil)
	m, _ = m.Update(ReportRankingMsg{Entries: rankedEntries()})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(ReportDetailMsg{Seq: m.detailSeq, Data: rankedEntries()[0]})

	refreshed := []models.KeywordData{
		{ID: "k9", Rank: 1, Keyword: "폭염", Score: 500, Status: models.StatusUp},
	}
	m, cmd := m.Update(ReportRankingMsg{Entries: refreshed})
	assert.Nil(t, cmd)
	require.NotNil(t, m.detail)
	assert.Equal(t, "한덕수", m.detail.Keyword)
}
