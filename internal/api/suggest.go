package api

import (
	"encoding/json"
	"strings"

	"trendhub/pkg/models"
)

// suggestionShape identifies which of the known suggestion payload layouts
// a response uses. The search backend has shipped several over time, so the
// shape is detected explicitly instead of probing fields at call sites.
type suggestionShape int

const (
	shapeUnknown suggestionShape = iota
	shapeArray
	shapeItems
	shapeSuggestions
	shapeResults
	shapeObject
)

// detectShape classifies the payload and returns its entries.
func detectShape(raw []byte) (suggestionShape, []json.RawMessage) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err == nil {
		return shapeArray, entries
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil {
		return shapeUnknown, nil
	}

	wrappers := []struct {
		key   string
		shape suggestionShape
	}{
		{"items", shapeItems},
		{"suggestions", shapeSuggestions},
		{"results", shapeResults},
	}
	for _, w := range wrappers {
		inner, ok := object[w.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &entries); err == nil {
			return w.shape, entries
		}
	}

	// A lone object is treated as a single suggestion entry.
	return shapeObject, []json.RawMessage{json.RawMessage(raw)}
}

// suggestionEntry collects every field name the backend has used for the
// keyword text and the hit count.
type suggestionEntry struct {
	Title   string   `json:"title"`
	Keyword string   `json:"keyword"`
	Query   string   `json:"query"`
	Text    string   `json:"text"`
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Count   *float64 `json:"count"`
	Score   *float64 `json:"score"`
}

func (e suggestionEntry) keyword() string {
	for _, candidate := range []string{e.Title, e.Keyword, e.Query, e.Text, e.Name, e.Label} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// extractSuggestion maps one entry to a SearchSuggestion. Entries may be
// bare strings or objects; anything without usable keyword text is dropped.
func extractSuggestion(raw json.RawMessage) (models.SearchSuggestion, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			return models.SearchSuggestion{}, false
		}
		return models.SearchSuggestion{Keyword: text}, true
	}

	var entry suggestionEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return models.SearchSuggestion{}, false
	}
	keyword := entry.keyword()
	if keyword == "" {
		return models.SearchSuggestion{}, false
	}
	count := entry.Count
	if count == nil {
		count = entry.Score
	}
	return models.SearchSuggestion{Keyword: keyword, Count: count}, true
}

// normalizeSuggestions converts any known payload shape into a flat
// suggestion list. Unrecognized input yields an empty slice, never an error.
func normalizeSuggestions(raw []byte) []models.SearchSuggestion {
	shape, entries := detectShape(raw)
	if shape == shapeUnknown {
		return []models.SearchSuggestion{}
	}

	suggestions := make([]models.SearchSuggestion, 0, len(entries))
	for _, entry := range entries {
		if s, ok := extractSuggestion(entry); ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
