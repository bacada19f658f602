package core

import (
	"math"

	"trendhub/pkg/models"
)

// ChangeRate derives the integer percent change of the last trend point
// against the average of the trailing min(3, len-1) points before it.
// Series that are too short, or whose trailing average is zero, report 0.
func ChangeRate(trend []float64) int {
	n := len(trend)
	if n < 2 {
		return 0
	}

	count := 3
	if n-1 < count {
		count = n - 1
	}

	var sum float64
	for _, v := range trend[n-1-count : n-1] {
		sum += v
	}
	avg := sum / float64(count)
	if avg <= 0 {
		return 0
	}

	return int(math.Round((trend[n-1] - avg) / avg * 100))
}

// StatusFromChange maps a change percentage onto a display status.
func StatusFromChange(change int) models.TrendStatus {
	switch {
	case change > 0:
		return models.StatusUp
	case change < 0:
		return models.StatusDown
	default:
		return models.StatusSame
	}
}
