package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNumbersWindow(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		expected    []string
	}{
		{
			name:        "first page of many",
			currentPage: 1,
			totalPages:  12,
			expected:    []string{"1", "2", "3", "4", "...", "12"},
		},
		{
			name:        "last page of many",
			currentPage: 12,
			totalPages:  12,
			expected:    []string{"1", "...", "9", "10", "11", "12"},
		},
		{
			name:        "middle page",
			currentPage: 6,
			totalPages:  12,
			expected:    []string{"1", "...", "5", "6", "7", "...", "12"},
		},
		{
			name:        "few pages show everything",
			currentPage: 2,
			totalPages:  3,
			expected:    []string{"1", "2", "3"},
		},
		{
			name:        "exactly five pages",
			currentPage: 5,
			totalPages:  5,
			expected:    []string{"1", "2", "3", "4", "5"},
		},
		{
			name:        "leading window boundary",
			currentPage: 3,
			totalPages:  12,
			expected:    []string{"1", "2", "3", "4", "...", "12"},
		},
		{
			name:        "trailing window boundary",
			currentPage: 10,
			totalPages:  12,
			expected:    []string{"1", "...", "9", "10", "11", "12"},
		},
		{
			name:        "single page",
			currentPage: 1,
			totalPages:  1,
			expected:    []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageNumbers(tt.currentPage, tt.totalPages))
		})
	}
}

func TestPageNumbersClampsOutOfRangeCurrent(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "...", "12"}, PageNumbers(0, 12))
	assert.Equal(t, []string{"1", "...", "9", "10", "11", "12"}, PageNumbers(99, 12))
	assert.Empty(t, PageNumbers(1, 0))
}

func TestSparklineShape(t *testing.T) {
	flat := Sparkline([]float64{5, 5, 5})
	assert.Contains(t, flat, "▁▁▁")

	rising := Sparkline([]float64{0, 50, 100})
	assert.Contains(t, rising, "▁")
	assert.Contains(t, rising, "█")

	assert.Empty(t, Sparkline(nil))
}
