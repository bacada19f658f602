package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPubDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"rfc3339", "2026-08-30T09:15:00Z", "2026-08-30"},
		{"rfc1123z", "Sun, 30 Aug 2026 09:15:00 +0900", "2026-08-30"},
		{"bare date", "2026-08-30", "2026-08-30"},
		{"unparseable kept verbatim", "어제", "어제"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPubDate(tt.raw))
		})
	}
}
