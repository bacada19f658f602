package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendhub/pkg/models"
)

func fptr(v float64) *float64 {
	return &v
}

func TestReconcileCurrentSchema(t *testing.T) {
	records := []models.RankingRecord{
		{
			Keyword:     "한덕수",
			Rank:        1,
			Status:      "new",
			Score24h:    fptr(100),
			ScoreRecent: fptr(80),
			ScorePrev:   fptr(60),
			DiffScore:   fptr(20),
		},
	}

	items := Reconcile(records, models.CategoryAll)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, 1, item.Rank)
	assert.Equal(t, "한덕수", item.Keyword)
	assert.Equal(t, "한덕수", item.OriginalKeyword)
	assert.Equal(t, models.StatusUp, item.Status)
	assert.Equal(t, []float64{60, 70, 80, 80, 90, 100}, item.TrendData)
	assert.Contains(t, item.Description, "한덕수")
	assert.Contains(t, item.Description, "100.0")
}

func TestReconcileLegacySchema(t *testing.T) {
	records := []models.RankingRecord{
		{
			Keyword:           "실형",
			Rank:              2,
			Status:            "up",
			LegacyTotalScore:  fptr(50),
			LegacyRecentScore: fptr(40),
			LegacyTrendScore:  fptr(10),
		},
	}

	items := Reconcile(records, models.CategoryAll)
	require.Len(t, items, 1)
	assert.Equal(t, []float64{20, 30, 40, 40, 45, 50}, items[0].TrendData)
}

func TestReconcileTrendDataInvariants(t *testing.T) {
	records := []models.RankingRecord{
		// diffScore larger than recent drives prev negative; clamped to 0.
		{Keyword: "a", Rank: 1, Status: "up", Score24h: fptr(10), ScoreRecent: fptr(5), DiffScore: fptr(50)},
		// no score fields at all
		{Keyword: "b", Rank: 2, Status: "same"},
		// score-only fallback
		{Keyword: "c", Rank: 3, Status: "down", Score: fptr(42)},
	}

	items := Reconcile(records, models.CategoryAll)
	require.Len(t, items, 3)

	expectedTotals := []float64{10, 0, 42}
	for i, item := range items {
		require.Len(t, item.TrendData, models.TrendDataPoints)
		for _, v := range item.TrendData {
			assert.GreaterOrEqual(t, v, 0.0)
		}
		assert.Equal(t, expectedTotals[i], item.TrendData[len(item.TrendData)-1])
	}
}

func TestReconcileStatusMapping(t *testing.T) {
	cases := map[string]models.TrendStatus{
		"new":  models.StatusUp,
		"up":   models.StatusUp,
		"down": models.StatusDown,
		"same": models.StatusSame,
		"":     models.StatusUp,
	}

	for status, want := range cases {
		items := Reconcile([]models.RankingRecord{{Keyword: "k", Rank: 1, Status: status}}, models.CategoryAll)
		require.Len(t, items, 1)
		assert.Equal(t, want, items[0].Status, "status %q", status)
	}
}

func TestReconcileDisplayKeyword(t *testing.T) {
	records := []models.RankingRecord{
		{
			Keyword:  "국민배우:안성기",
			Rank:     1,
			Status:   "up",
			Articles: []string{"안성기, 새 영화 주연 확정", "두 번째 기사"},
		},
	}

	items := Reconcile(records, models.CategoryAll)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "안성기, 새 영화 주연 확정", item.Keyword)
	assert.Equal(t, "국민배우:안성기", item.OriginalKeyword)
	require.Len(t, item.Articles, 2)
	assert.Equal(t, "안성기, 새 영화 주연 확정", item.Articles[0].Title)

	assert.Equal(t, "국민배우 안성기", SearchQuery(item))
}

func TestReconcileIdempotent(t *testing.T) {
	records := []models.RankingRecord{
		{Keyword: "a", Rank: 1, Status: "up", Score24h: fptr(10), ScoreRecent: fptr(8)},
		{Keyword: "b", Rank: 2, Status: "down", Score24h: fptr(9)},
	}

	first := Reconcile(records, models.CategoryAll)
	second := Reconcile(records, models.CategoryAll)
	assert.Equal(t, first, second)
}

func TestReconcileCategoryFilterDormant(t *testing.T) {
	records := []models.RankingRecord{
		{Keyword: "a", Rank: 1, Status: "up"},
	}

	// All items default to the all-categories sentinel, so a specific
	// category currently matches nothing.
	assert.Len(t, Reconcile(records, models.CategoryAll), 1)
	assert.Empty(t, Reconcile(records, models.CategoryTech))
}
