package core

import (
	"fmt"
	"time"

	"trendhub/pkg/models"
)

// ChartPoint is one labeled sample of a keyword chart.
type ChartPoint struct {
	Label string
	Score float64
}

// bucketLayouts are the timestamp formats the report backend has been seen
// emitting for bucketTime.
var bucketLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ChartPoints labels a keyword's series for charting. Timestamped buckets
// get zero-padded HH:MM labels; a bare trend sequence falls back to T-<n>
// counting down to the newest point.
func ChartPoints(keyword models.KeywordData) []ChartPoint {
	if len(keyword.TimeSeries) > 0 {
		points := make([]ChartPoint, len(keyword.TimeSeries))
		for i, bucket := range keyword.TimeSeries {
			points[i] = ChartPoint{
				Label: bucketLabel(bucket.BucketTime),
				Score: bucket.ScoreSum,
			}
		}
		return points
	}

	points := make([]ChartPoint, len(keyword.TrendData))
	for i, score := range keyword.TrendData {
		points[i] = ChartPoint{
			Label: fmt.Sprintf("T-%d", len(keyword.TrendData)-i-1),
			Score: score,
		}
	}
	return points
}

func bucketLabel(bucketTime string) string {
	for _, layout := range bucketLayouts {
		if t, err := time.Parse(layout, bucketTime); err == nil {
			return t.Format("15:04")
		}
	}
	return bucketTime
}

// ReverseSeries flips a newest-first time series into chronological order.
// The input slice is not modified.
func ReverseSeries(series []models.TimeSeriesPoint) []models.TimeSeriesPoint {
	reversed := make([]models.TimeSeriesPoint, len(series))
	for i, bucket := range series {
		reversed[len(series)-1-i] = bucket
	}
	return reversed
}

// SeriesScores extracts the score column of a chronological series.
func SeriesScores(series []models.TimeSeriesPoint) []float64 {
	scores := make([]float64, len(series))
	for i, bucket := range series {
		scores[i] = bucket.ScoreSum
	}
	return scores
}
