package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendhub/pkg/models"
)

func TestChartPointsWithTimestamps(t *testing.T) {
	keyword := models.KeywordData{
		TimeSeries: []models.TimeSeriesPoint{
			{BucketTime: "2026-08-31T09:05:00Z", ScoreSum: 12},
			{BucketTime: "2026-08-31T10:00:00Z", ScoreSum: 30},
		},
	}

	points := ChartPoints(keyword)
	require.Len(t, points, 2)
	assert.Equal(t, "09:05", points[0].Label)
	assert.Equal(t, 12.0, points[0].Score)
	assert.Equal(t, "10:00", points[1].Label)
}

func TestChartPointsFallbackLabels(t *testing.T) {
	keyword := models.KeywordData{TrendData: []float64{1, 2, 3}}

	points := ChartPoints(keyword)
	require.Len(t, points, 3)
	assert.Equal(t, "T-2", points[0].Label)
	assert.Equal(t, "T-1", points[1].Label)
	assert.Equal(t, "T-0", points[2].Label)
}

func TestChartPointsUnparseableBucketKeptVerbatim(t *testing.T) {
	keyword := models.KeywordData{
		TimeSeries: []models.TimeSeriesPoint{{BucketTime: "not-a-time", ScoreSum: 1}},
	}

	points := ChartPoints(keyword)
	require.Len(t, points, 1)
	assert.Equal(t, "not-a-time", points[0].Label)
}

func TestReverseSeries(t *testing.T) {
	series := []models.TimeSeriesPoint{
		{BucketTime: "c", ScoreSum: 3},
		{BucketTime: "b", ScoreSum: 2},
		{BucketTime: "a", ScoreSum: 1},
	}

	reversed := ReverseSeries(series)
	assert.Equal(t, "a", reversed[0].BucketTime)
	assert.Equal(t, "c", reversed[2].BucketTime)
	// input untouched
	assert.Equal(t, "c", series[0].BucketTime)

	assert.Equal(t, []float64{1, 2, 3}, SeriesScores(reversed))
}
