// Package report assembles display-ready keyword data from the data-report
// backend: a base ranking row plus detail facets (time series, related
// articles, related keywords) fetched on demand.
package report

import (
	"context"
	"fmt"
	"sync"

	"trendhub/internal/core"
	"trendhub/pkg/logger"
	"trendhub/pkg/models"
)

// DefaultSeriesLimit bounds the time-series fetch for detail views.
const DefaultSeriesLimit = 24

// sparklinePoints caps how many series points feed the inline sparkline.
const sparklinePoints = 6

// Client is the slice of the API surface the loader needs.
type Client interface {
	FetchReportRanking(ctx context.Context) ([]models.ReportRanking, error)
	FetchTimeSeries(ctx context.Context, keywordID string, limit int) ([]models.TimeSeriesPoint, error)
	FetchRelatedArticles(ctx context.Context, keywordID string) ([]models.RelatedArticle, error)
	FetchRelatedKeywords(ctx context.Context, keywordID string) ([]models.RelatedKeyword, error)
	SearchKeyword(ctx context.Context, keyword string, limit int) ([]models.KeywordHit, error)
}

// Loader fetches and merges report keyword data.
type Loader struct {
	client Client
}

// NewLoader creates a loader backed by the given client.
func NewLoader(client Client) *Loader {
	return &Loader{client: client}
}

// Facets holds the on-demand detail data for one keyword. Any facet whose
// fetch failed is left empty; the failure itself is recorded for logging.
type Facets struct {
	TimeSeries      []models.TimeSeriesPoint
	RelatedArticles []models.RelatedArticle
	RelatedKeywords []models.RelatedKeyword
}

// LoadFacets fetches the three detail facets in parallel. A failed facet
// never fails the load as a whole; it just stays empty in the result.
func (l *Loader) LoadFacets(ctx context.Context, keywordID string) Facets {
	var (
		facets Facets
		wg     sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		series, err := l.client.FetchTimeSeries(ctx, keywordID, DefaultSeriesLimit)
		if err != nil {
			logger.Warn(fmt.Sprintf("time series fetch failed for %s: %v", keywordID, err))
			return
		}
		facets.TimeSeries = series
	}()
	go func() {
		defer wg.Done()
		articles, err := l.client.FetchRelatedArticles(ctx, keywordID)
		if err != nil {
			logger.Warn(fmt.Sprintf("related articles fetch failed for %s: %v", keywordID, err))
			return
		}
		facets.RelatedArticles = articles
	}()
	go func() {
		defer wg.Done()
		keywords, err := l.client.FetchRelatedKeywords(ctx, keywordID)
		if err != nil {
			logger.Warn(fmt.Sprintf("related keywords fetch failed for %s: %v", keywordID, err))
			return
		}
		facets.RelatedKeywords = keywords
	}()
	wg.Wait()

	return facets
}

// Merge folds facets into a base keyword entry. The backend's newest-first
// series is reversed to chart order here, and the change percentage and
// status are recomputed from the merged series.
func Merge(base models.KeywordData, facets Facets) models.KeywordData {
	merged := base
	merged.Articles = []models.ReportArticle{}
	merged.RelatedKeywords = []string{}

	if len(facets.TimeSeries) > 0 {
		merged.TimeSeries = core.ReverseSeries(facets.TimeSeries)
		scores := core.SeriesScores(merged.TimeSeries)
		merged.Change = core.ChangeRate(scores)
		merged.Status = core.StatusFromChange(merged.Change)
		merged.TrendData = tailScores(scores, sparklinePoints)
	}

	for _, article := range facets.RelatedArticles {
		merged.Articles = append(merged.Articles, models.ReportArticle{
			Title:  article.Title,
			Source: article.Publisher,
			Weight: article.Weight,
			URL:    article.URL,
		})
	}

	for _, keyword := range facets.RelatedKeywords {
		if keyword.NormalizedText != "" {
			merged.RelatedKeywords = append(merged.RelatedKeywords, keyword.NormalizedText)
		}
	}

	merged.Analysis = core.Analyze(merged)

	return merged
}

func tailScores(scores []float64, n int) []float64 {
	if len(scores) <= n {
		return scores
	}
	return scores[len(scores)-n:]
}

// LoadKeyword fetches all facets for one keyword and merges them into base.
func (l *Loader) LoadKeyword(ctx context.Context, base models.KeywordData) models.KeywordData {
	if base.ID == "" {
		return base
	}
	return Merge(base, l.LoadFacets(ctx, base.ID))
}

// BuildRanking fetches the report ranking and derives the change percentage
// for each entry from its recent time series. Series fetches run in parallel
// and are best-effort; an entry whose series is unavailable keeps change 0.
func (l *Loader) BuildRanking(ctx context.Context) ([]models.KeywordData, error) {
	rankings, err := l.client.FetchReportRanking(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.KeywordData, len(rankings))
	var wg sync.WaitGroup
	for i, row := range rankings {
		entries[i] = baseEntry(i+1, row)

		if row.ID == "" {
			continue
		}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			series, err := l.client.FetchTimeSeries(ctx, id, DefaultSeriesLimit)
			if err != nil || len(series) == 0 {
				return
			}
			ordered := core.ReverseSeries(series)
			scores := core.SeriesScores(ordered)
			entries[i].Change = core.ChangeRate(scores)
			entries[i].Status = core.StatusFromChange(entries[i].Change)
			entries[i].TrendData = tailScores(scores, sparklinePoints)
		}(i, row.ID)
	}
	wg.Wait()

	return entries, nil
}

func baseEntry(rank int, row models.ReportRanking) models.KeywordData {
	return models.KeywordData{
		ID:        row.ID,
		Rank:      rank,
		Keyword:   row.NormalizedText,
		Score:     row.ScoreSum,
		Status:    models.StatusSame,
		TrendData: []float64{},
	}
}

// BuildFromSearch resolves free text to the closest report keyword, loads
// its facets, and records the remaining hits as similar keywords. Returns
// models.ErrKeywordNotFound when the lookup comes back empty.
func (l *Loader) BuildFromSearch(ctx context.Context, keyword string) (models.KeywordData, error) {
	hits, err := l.client.SearchKeyword(ctx, keyword, 0)
	if err != nil {
		return models.KeywordData{}, err
	}
	if len(hits) == 0 {
		return models.KeywordData{}, models.ErrKeywordNotFound
	}

	base := models.KeywordData{
		ID:        hits[0].ID,
		Keyword:   hits[0].NormalizedText,
		Status:    models.StatusSame,
		TrendData: []float64{},
	}
	merged := Merge(base, l.LoadFacets(ctx, base.ID))

	// Other hits are close matches worth surfacing alongside the backend's
	// co-occurrence keywords.
	for _, hit := range hits[1:] {
		if hit.NormalizedText != "" && hit.NormalizedText != merged.Keyword {
			merged.RelatedKeywords = append(merged.RelatedKeywords, hit.NormalizedText)
		}
	}

	return merged, nil
}
