package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendhub/pkg/models"
)

func TestDetailSearchHandoffConvertsCompositeKeyword(t *testing.T) {
	m := NewDetailModel()
	m.SetItem(models.TrendItem{
		Rank:            1,
		Keyword:         "국민배우 안성기 복귀",
		OriginalKeyword: "국민배우:안성기",
		TrendData:       []float64{60, 70, 80, 80, 90, 100},
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	require.NotNil(t, cmd)
	msg, ok := cmd().(SearchTrendMsg)
	require.True(t, ok)
	assert.Equal(t, "국민배우 안성기", msg.Query)
}

func TestDetailViewWithoutSelection(t *testing.T) {
	m := NewDetailModel()

	assert.Contains(t, m.View(), "선택된 키워드가 없습니다")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestDetailCursorStaysInArticleBounds(t *testing.T) {
	m := NewDetailModel()
	m.SetItem(models.TrendItem{
		Keyword: "폭염",
		Articles: []models.Article{
			{ID: 1, Title: "기사 하나"},
			{ID: 2, Title: "기사 둘"},
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}
