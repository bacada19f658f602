package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendhub/pkg/models"
)

type fakeClient struct {
	ranking     []models.ReportRanking
	rankingErr  error
	series      map[string][]models.TimeSeriesPoint
	seriesErr   error
	articles    []models.RelatedArticle
	articlesErr error
	keywords    []models.RelatedKeyword
	keywordsErr error
	hits        []models.KeywordHit
	hitsErr     error
}

func (f *fakeClient) FetchReportRanking(ctx context.Context) ([]models.ReportRanking, error) {
	return f.ranking, f.rankingErr
}

func (f *fakeClient) FetchTimeSeries(ctx context.Context, keywordID string, limit int) ([]models.TimeSeriesPoint, error) {
	if f.seriesErr != nil {
		return nil, f.seriesErr
	}
	return f.series[keywordID], nil
}

func (f *fakeClient) FetchRelatedArticles(ctx context.Context, keywordID string) ([]models.RelatedArticle, error) {
	return f.articles, f.articlesErr
}

func (f *fakeClient) FetchRelatedKeywords(ctx context.Context, keywordID string) ([]models.RelatedKeyword, error) {
	return f.keywords, f.keywordsErr
}

func (f *fakeClient) SearchKeyword(ctx context.Context, keyword string, limit int) ([]models.KeywordHit, error) {
	return f.hits, f.hitsErr
}

// newestFirst builds a backend-order series whose chart-order scores are the
// given values reversed.
func newestFirst(scores ...float64) []models.TimeSeriesPoint {
	points := make([]models.TimeSeriesPoint, len(scores))
	for i, score := range scores {
		points[i] = models.TimeSeriesPoint{
			BucketTime: "2026-08-31T12:00:00Z",
			ScoreSum:   score,
		}
	}
	return points
}

func TestLoadFacetsPartialFailure(t *testing.T) {
	client := &fakeClient{
		series: map[string][]models.TimeSeriesPoint{
			"k1": newestFirst(300, 250, 200),
		},
		articlesErr: errors.New("related articles unavailable"),
		keywords: []models.RelatedKeyword{
			{ID: "k2", NormalizedText: "국무총리"},
		},
	}
	loader := NewLoader(client)

	facets := loader.LoadFacets(context.Background(), "k1")
	merged := Merge(models.KeywordData{ID: "k1", Keyword: "한덕수"}, facets)

	assert.Empty(t, merged.Articles)
	require.Len(t, merged.TimeSeries, 3)
	assert.Equal(t, []string{"국무총리"}, merged.RelatedKeywords)
}

func TestMergeReversesSeriesAndDerivesChange(t *testing.T) {
	facets := Facets{
		// Backend order is newest first; chart order is 100, 200, 300.
		TimeSeries: newestFirst(300, 200, 100),
	}

	merged := Merge(models.KeywordData{ID: "k1"}, facets)

	require.Len(t, merged.TimeSeries, 3)
	assert.InDelta(t, 100, merged.TimeSeries[0].ScoreSum, 0.001)
	assert.InDelta(t, 300, merged.TimeSeries[2].ScoreSum, 0.001)
	// Trailing average of [100, 200] is 150; (300-150)/150 = +100%.
	assert.Equal(t, 100, merged.Change)
	assert.Equal(t, models.StatusUp, merged.Status)
	assert.Equal(t, []float64{100, 200, 300}, merged.TrendData)

	// A merged series also yields a derived analysis.
	require.NotNil(t, merged.Analysis)
	assert.NotEmpty(t, merged.Analysis.Summary)
	assert.NotNil(t, merged.Analysis.ExpectedDuration)
}

func TestMergeMapsArticleFields(t *testing.T) {
	facets := Facets{
		RelatedArticles: []models.RelatedArticle{
			{Title: "속보", Publisher: "한겨레", URL: "https://news.example/a1", Weight: 0.9},
		},
	}

	merged := Merge(models.KeywordData{ID: "k1"}, facets)

	require.Len(t, merged.Articles, 1)
	assert.Equal(t, "속보", merged.Articles[0].Title)
	assert.Equal(t, "한겨레", merged.Articles[0].Source)
	assert.Equal(t, "https://news.example/a1", merged.Articles[0].URL)
}

func TestMergeEmptyFacetsKeepsBase(t *testing.T) {
	base := models.KeywordData{
		ID: "k1", Keyword: "한덕수", Change: 12,
		Status: models.StatusUp, TrendData: []float64{1, 2, 3},
	}

	merged := Merge(base, Facets{})

	assert.Equal(t, 12, merged.Change)
	assert.Equal(t, models.StatusUp, merged.Status)
	assert.Equal(t, []float64{1, 2, 3}, merged.TrendData)
	assert.Empty(t, merged.Articles)
	assert.Empty(t, merged.RelatedKeywords)
}

func TestBuildRankingDerivesPerEntryChange(t *testing.T) {
	client := &fakeClient{
		ranking: []models.ReportRanking{
			{ID: "k1", NormalizedText: "한덕수", ScoreSum: 812.4},
			{ID: "k2", NormalizedText: "환율", ScoreSum: 640.0},
			{NormalizedText: "무명", ScoreSum: 10},
		},
		series: map[string][]models.TimeSeriesPoint{
			"k1": newestFirst(300, 200, 100),
		},
	}
	loader := NewLoader(client)

	entries, err := loader.BuildRanking(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "한덕수", entries[0].Keyword)
	assert.Equal(t, 100, entries[0].Change)
	assert.Equal(t, models.StatusUp, entries[0].Status)

	// No series for k2; change stays zero.
	assert.Equal(t, 2, entries[1].Rank)
	assert.Zero(t, entries[1].Change)
	assert.Equal(t, models.StatusSame, entries[1].Status)

	// Row without an id never triggers a series fetch.
	assert.Equal(t, 3, entries[2].Rank)
	assert.Zero(t, entries[2].Change)
}

func TestBuildRankingPropagatesRankingError(t *testing.T) {
	loader := NewLoader(&fakeClient{rankingErr: errors.New("ranking down")})

	_, err := loader.BuildRanking(context.Background())

	require.Error(t, err)
}

func TestBuildFromSearchMergesSimilarKeywords(t *testing.T) {
	client := &fakeClient{
		hits: []models.KeywordHit{
			{ID: "k1", NormalizedText: "한덕수"},
			{ID: "k2", NormalizedText: "한덕수 총리"},
			{ID: "k3", NormalizedText: "한덕수"},
		},
		series: map[string][]models.TimeSeriesPoint{
			"k1": newestFirst(300, 200, 100),
		},
		keywords: []models.RelatedKeyword{
			{ID: "k4", NormalizedText: "국무총리"},
		},
	}
	loader := NewLoader(client)

	data, err := loader.BuildFromSearch(context.Background(), "한덕수")

	require.NoError(t, err)
	assert.Equal(t, "k1", data.ID)
	assert.Equal(t, "한덕수", data.Keyword)
	assert.Equal(t, []string{"국무총리", "한덕수 총리"}, data.RelatedKeywords)
	assert.Equal(t, 100, data.Change)
}

func TestBuildFromSearchNotFound(t *testing.T) {
	loader := NewLoader(&fakeClient{})

	_, err := loader.BuildFromSearch(context.Background(), "없는키워드")

	require.ErrorIs(t, err, models.ErrKeywordNotFound)
}
