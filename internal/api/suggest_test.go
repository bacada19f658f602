package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSuggestionsItemsWrapper(t *testing.T) {
	raw := []byte(`{"items":[{"title":"한덕수"}]}`)

	suggestions := normalizeSuggestions(raw)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "한덕수", suggestions[0].Keyword)
	assert.Nil(t, suggestions[0].Count)
}

func TestNormalizeSuggestionsBareStringArray(t *testing.T) {
	suggestions := normalizeSuggestions([]byte(`["a","b"]`))

	require.Len(t, suggestions, 2)
	assert.Equal(t, "a", suggestions[0].Keyword)
	assert.Equal(t, "b", suggestions[1].Keyword)
}

func TestNormalizeSuggestionsEmptyObject(t *testing.T) {
	suggestions := normalizeSuggestions([]byte(`{}`))

	assert.Empty(t, suggestions)
}

func TestNormalizeSuggestionsWrapperVariants(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "suggestions wrapper",
			raw:      `{"suggestions":[{"keyword":"증시"},{"keyword":"환율"}]}`,
			expected: []string{"증시", "환율"},
		},
		{
			name:     "results wrapper",
			raw:      `{"results":[{"query":"올림픽"}]}`,
			expected: []string{"올림픽"},
		},
		{
			name:     "object array with mixed key names",
			raw:      `[{"text":"장마"},{"name":"폭염"},{"label":"태풍"}]`,
			expected: []string{"장마", "폭염", "태풍"},
		},
		{
			name:     "single object",
			raw:      `{"keyword":"총선"}`,
			expected: []string{"총선"},
		},
		{
			name:     "entries without keyword text dropped",
			raw:      `{"items":[{"title":"   "},{"title":"유가"},{"count":3}]}`,
			expected: []string{"유가"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := normalizeSuggestions([]byte(tt.raw))

			require.Len(t, suggestions, len(tt.expected))
			for i, keyword := range tt.expected {
				assert.Equal(t, keyword, suggestions[i].Keyword)
			}
		})
	}
}

func TestNormalizeSuggestionsCountFallsBackToScore(t *testing.T) {
	suggestions := normalizeSuggestions([]byte(`[{"keyword":"금리","score":12.5}]`))

	require.Len(t, suggestions, 1)
	require.NotNil(t, suggestions[0].Count)
	assert.InDelta(t, 12.5, *suggestions[0].Count, 0.001)
}

func TestNormalizeSuggestionsMalformedPayload(t *testing.T) {
	assert.Empty(t, normalizeSuggestions([]byte(`not json at all`)))
	assert.Empty(t, normalizeSuggestions([]byte(`42`)))
}
