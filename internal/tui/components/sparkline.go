package components

import (
	"strings"

	"trendhub/internal/tui/styles"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a score series as a row of block characters. All-equal
// or empty input collapses to the lowest block per point.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	span := max - min
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - min) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return styles.SparklineStyle.Render(b.String())
}
