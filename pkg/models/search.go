package models

// SearchSuggestion is one autocomplete entry.
type SearchSuggestion struct {
	Keyword string   `json:"keyword"`
	Count   *float64 `json:"count,omitempty"`
}

// SearchResult is one article returned by the search backend.
type SearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Press       string `json:"press"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// SearchResultResponse is one page of search results. Total is the
// server-declared count and is independent of len(Items).
type SearchResultResponse struct {
	Total    int            `json:"total"`
	Items    []SearchResult `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
