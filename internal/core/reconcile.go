// Package core holds the pure data-shaping logic between backend payloads
// and display-ready records. Nothing here performs I/O.
package core

import (
	"fmt"
	"strings"

	"trendhub/pkg/models"
)

// Reconcile converts raw ranking records into display-ready trend items and
// applies the category filter. It is a pure function: identical inputs yield
// identical outputs.
func Reconcile(records []models.RankingRecord, category models.Category) []models.TrendItem {
	items := make([]models.TrendItem, 0, len(records))
	for i, record := range records {
		items = append(items, buildTrendItem(record, i))
	}

	if category == models.CategoryAll {
		return items
	}
	// The backend does not assign categories yet, so this branch currently
	// filters everything out for non-default selections. The seam stays so
	// real categories slot in without an interface change.
	filtered := make([]models.TrendItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// buildTrendItem derives one TrendItem from the record at position index.
func buildTrendItem(record models.RankingRecord, index int) models.TrendItem {
	total, recent, prev := resolveScores(record)

	displayKeyword := record.Keyword
	if len(record.Articles) > 0 {
		displayKeyword = record.Articles[0]
	}

	return models.TrendItem{
		ID:              index + 1,
		Rank:            record.Rank,
		Keyword:         displayKeyword,
		OriginalKeyword: record.Keyword,
		Category:        models.CategoryAll,
		Score:           total,
		Description: fmt.Sprintf(
			"%s 키워드는 현재 총점 %.1f점으로 많은 관심을 받고 있는 키워드입니다.",
			record.Keyword, total),
		Status:    mapStatus(record.Status),
		TrendData: buildTrendData(total, recent, prev),
		Articles:  buildArticles(record.Articles, index),
	}
}

// resolveScores walks the fallback chains across both ranking schemas.
func resolveScores(record models.RankingRecord) (total, recent, prev float64) {
	switch {
	case record.Score24h != nil:
		total = *record.Score24h
	case record.Score != nil:
		total = *record.Score
	case record.LegacyTotalScore != nil:
		total = *record.LegacyTotalScore
	}

	switch {
	case record.ScoreRecent != nil:
		recent = *record.ScoreRecent
	case record.LegacyRecentScore != nil:
		recent = *record.LegacyRecentScore
	default:
		recent = total
	}

	switch {
	case record.ScorePrev != nil:
		prev = *record.ScorePrev
	case record.DiffScore != nil:
		prev = recent - *record.DiffScore
	case record.LegacyTrendScore != nil:
		prev = recent - 2*(*record.LegacyTrendScore)
	default:
		prev = recent * 0.7
		if prev < 0 {
			prev = 0
		}
	}

	return total, recent, prev
}

// buildTrendData produces the fixed 6-point synthetic sequence ramping from
// the previous-interval score to the total score. Every point is clamped to
// zero and the final point always equals total.
func buildTrendData(total, recent, prev float64) []float64 {
	points := []float64{
		prev,
		(prev + recent) / 2,
		recent,
		total * 0.8,
		total * 0.9,
		total,
	}
	for i, v := range points {
		if v < 0 {
			points[i] = 0
		}
	}
	return points
}

// mapStatus folds backend status values onto the three display states.
// Unknown values (including "new") render as rising.
func mapStatus(status string) models.TrendStatus {
	switch status {
	case "down":
		return models.StatusDown
	case "same":
		return models.StatusSame
	default:
		return models.StatusUp
	}
}

// buildArticles turns the backend's bare title list into display articles.
func buildArticles(titles []string, index int) []models.Article {
	articles := make([]models.Article, 0, len(titles))
	for i, title := range titles {
		articles = append(articles, models.Article{
			ID:        i + 1,
			Thumbnail: fmt.Sprintf("https://picsum.photos/200/120?random=%d", index*10+i),
			Title:     title,
			Summary:   fmt.Sprintf("%s에 대한 상세 내용입니다.", title),
			Source:    "트렌드뉴스",
			Date:      "1시간 전",
		})
	}
	return articles
}

// SearchQuery returns the query string to use when searching articles for a
// trend item. Composite keywords join their parts with ":", which the search
// backend does not understand, so separators become spaces.
func SearchQuery(item models.TrendItem) string {
	keyword := item.OriginalKeyword
	if keyword == "" {
		keyword = item.Keyword
	}
	return strings.TrimSpace(strings.ReplaceAll(keyword, ":", " "))
}
