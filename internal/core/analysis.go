package core

import (
	"fmt"

	"trendhub/pkg/models"
)

// Trend pattern identifiers.
const (
	PatternSuddenSpike = "sudden_spike"
	PatternGradualRise = "gradual_rise"
	PatternSustained   = "sustained"
	PatternFluctuating = "fluctuating"
)

// Analyze derives an editorial-style analysis for a keyword from its merged
// detail data. Returns nil when the series is too short to say anything.
func Analyze(keyword models.KeywordData) *models.KeywordAnalysis {
	scores := SeriesScores(keyword.TimeSeries)
	if len(scores) < 2 {
		return nil
	}

	pattern := classifyPattern(scores)
	if peak := peakLabel(keyword); peak != "" {
		pattern.PeakTime = peak
	}

	analysis := &models.KeywordAnalysis{
		Summary:          summarize(keyword, pattern),
		TrendPattern:     pattern,
		ExpectedDuration: durationFor(pattern.Pattern),
		RelatedIssues:    keyword.RelatedKeywords,
	}

	if len(keyword.RelatedKeywords) > 0 {
		analysis.Factors = append(analysis.Factors, models.AnalysisFactor{
			Type:        "related",
			Title:       keyword.RelatedKeywords[0],
			Description: fmt.Sprintf("'%s' 키워드와 함께 언급되고 있습니다", keyword.RelatedKeywords[0]),
			Impact:      impactFor(keyword.Change),
			Evidence:    articleTitles(keyword.Articles, 3),
		})
	}

	return analysis
}

// classifyPattern inspects a chronological score sequence.
func classifyPattern(scores []float64) models.TrendPattern {
	last := scores[len(scores)-1]

	var sum float64
	for _, v := range scores[:len(scores)-1] {
		sum += v
	}
	avg := sum / float64(len(scores)-1)

	switch {
	case avg > 0 && last >= avg*2:
		return models.TrendPattern{
			Pattern:     PatternSuddenSpike,
			Description: "짧은 시간에 급격히 상승한 키워드입니다",
		}
	case isRising(scores):
		return models.TrendPattern{
			Pattern:     PatternGradualRise,
			Description: "꾸준히 상승세를 이어가는 키워드입니다",
		}
	case directionChanges(scores) >= 2:
		return models.TrendPattern{
			Pattern:     PatternFluctuating,
			Description: "등락을 반복하고 있는 키워드입니다",
		}
	default:
		return models.TrendPattern{
			Pattern:     PatternSustained,
			Description: "일정한 관심을 유지하고 있는 키워드입니다",
		}
	}
}

func isRising(scores []float64) bool {
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[i-1] {
			return false
		}
	}
	return scores[len(scores)-1] > scores[0]
}

func directionChanges(scores []float64) int {
	changes := 0
	prevDir := 0
	for i := 1; i < len(scores); i++ {
		dir := 0
		if scores[i] > scores[i-1] {
			dir = 1
		} else if scores[i] < scores[i-1] {
			dir = -1
		}
		if dir != 0 && prevDir != 0 && dir != prevDir {
			changes++
		}
		if dir != 0 {
			prevDir = dir
		}
	}
	return changes
}

func durationFor(pattern string) *models.ExpectedDuration {
	switch pattern {
	case PatternSuddenSpike:
		return &models.ExpectedDuration{
			Level:       "short",
			Description: "급상승 키워드는 관심이 빠르게 식는 경향이 있습니다",
		}
	case PatternSustained:
		return &models.ExpectedDuration{
			Level:       "long",
			Description: "안정적인 관심이 당분간 이어질 것으로 보입니다",
		}
	default:
		return &models.ExpectedDuration{
			Level:       "medium",
			Description: "며칠간 관심이 유지될 것으로 보입니다",
		}
	}
}

func impactFor(change int) string {
	switch {
	case change >= 50 || change <= -50:
		return "high"
	case change >= 10 || change <= -10:
		return "medium"
	default:
		return "low"
	}
}

// peakLabel returns the chart label of the highest-scoring bucket.
func peakLabel(keyword models.KeywordData) string {
	points := ChartPoints(keyword)
	if len(points) == 0 {
		return ""
	}
	peak := points[0]
	for _, p := range points[1:] {
		if p.Score > peak.Score {
			peak = p
		}
	}
	return peak.Label
}

func summarize(keyword models.KeywordData, pattern models.TrendPattern) string {
	direction := "보합세입니다"
	if keyword.Change > 0 {
		direction = fmt.Sprintf("직전 평균 대비 %d%% 상승했습니다", keyword.Change)
	} else if keyword.Change < 0 {
		direction = fmt.Sprintf("직전 평균 대비 %d%% 하락했습니다", -keyword.Change)
	}
	return fmt.Sprintf("'%s' 키워드는 %s. %s", keyword.Keyword, direction, pattern.Description)
}

func articleTitles(articles []models.ReportArticle, limit int) []string {
	var titles []string
	for _, article := range articles {
		if article.Title == "" {
			continue
		}
		titles = append(titles, article.Title)
		if len(titles) == limit {
			break
		}
	}
	return titles
}
