package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trendhub/pkg/models"
)

func TestChangeRate(t *testing.T) {
	tests := []struct {
		name  string
		trend []float64
		want  int
	}{
		{
			name:  "rising series averages trailing three",
			trend: []float64{820, 920, 1050, 1180, 1240},
			// avg(920, 1050, 1180) = 1050; (1240-1050)/1050 ≈ 18.1%
			want: 18,
		},
		{
			name:  "short series uses what precedes the last point",
			trend: []float64{100, 50},
			want:  -50,
		},
		{
			name:  "zero trailing average reports zero",
			trend: []float64{0, 0, 0, 10},
			want:  0,
		},
		{
			name:  "flat series",
			trend: []float64{5, 5, 5, 5},
			want:  0,
		},
		{
			name:  "single point",
			trend: []float64{42},
			want:  0,
		},
		{
			name:  "empty series",
			trend: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChangeRate(tt.trend))
		})
	}
}

func TestStatusFromChange(t *testing.T) {
	assert.Equal(t, models.StatusUp, StatusFromChange(21))
	assert.Equal(t, models.StatusDown, StatusFromChange(-2))
	assert.Equal(t, models.StatusSame, StatusFromChange(0))
}
