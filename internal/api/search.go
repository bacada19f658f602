package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"trendhub/pkg/logger"
	"trendhub/pkg/models"
)

// DefaultPageSize is used when the caller passes a non-positive page size.
const DefaultPageSize = 10

// SearchSuggestions fetches autocomplete candidates for a partial query.
// Autocomplete is best-effort: transport errors, error statuses, and
// unrecognized payloads all degrade to an empty slice, never an error.
func (c *Client) SearchSuggestions(ctx context.Context, query string) []models.SearchSuggestion {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	endpoint := "/articles/search"
	params := url.Values{}
	params.Set("query", trimmed)

	resp, err := c.get(ctx, backendSearch, c.searchBaseURL+endpoint+"?"+params.Encode())
	if err != nil {
		logger.Debug(fmt.Sprintf("suggestion fetch failed for %q: %v", trimmed, err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug(fmt.Sprintf("suggestion fetch for %q returned status %d", trimmed, resp.StatusCode))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	return normalizeSuggestions(body)
}

// searchItem mirrors one article entry in the search backend's payload.
type searchItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	URL         string `json:"url"`
	Press       string `json:"press"`
	Publisher   string `json:"publisher"`
	PubDate     string `json:"pubDate"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type searchPayload struct {
	Total    int          `json:"total"`
	Items    []searchItem `json:"items"`
	Page     int          `json:"page"`
	Size     int          `json:"size"`
	PageSize int          `json:"pageSize"`
}

// SearchArticles runs a full article search. Unlike suggestions this is
// primary content: failures come back as a typed *models.APIError so the
// caller can render a retryable error state.
func (c *Client) SearchArticles(ctx context.Context, query string, page, pageSize int) (*models.SearchResultResponse, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &models.SearchResultResponse{Items: []models.SearchResult{}, Page: 1, PageSize: pageSize}, nil
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	endpoint := "/articles/search"
	params := url.Values{}
	params.Set("query", trimmed)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(pageSize))

	resp, err := c.get(ctx, backendSearch, c.searchBaseURL+endpoint+"?"+params.Encode())
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, models.NewHTTPError(endpoint, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}
	return normalizeSearchResults(body, page, pageSize), nil
}

// normalizeSearchResults accepts either the {total, items[]} envelope or a
// bare article array and maps both to a SearchResultResponse. Malformed
// payloads degrade to an empty result rather than an error.
func normalizeSearchResults(body []byte, page, pageSize int) *models.SearchResultResponse {
	out := &models.SearchResultResponse{
		Items:    []models.SearchResult{},
		Page:     page,
		PageSize: pageSize,
	}

	var payload searchPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Items != nil {
		out.Total = payload.Total
		if payload.Page > 0 {
			out.Page = payload.Page
		}
		if payload.PageSize > 0 {
			out.PageSize = payload.PageSize
		} else if payload.Size > 0 {
			out.PageSize = payload.Size
		}
		for _, item := range payload.Items {
			out.Items = append(out.Items, mapSearchItem(item))
		}
		if out.Total == 0 {
			out.Total = len(out.Items)
		}
		return out
	}

	var bare []searchItem
	if err := json.Unmarshal(body, &bare); err == nil {
		for _, item := range bare {
			out.Items = append(out.Items, mapSearchItem(item))
		}
		out.Total = len(out.Items)
	}
	return out
}

func mapSearchItem(item searchItem) models.SearchResult {
	link := item.Link
	if link == "" {
		link = item.URL
	}
	id := item.ID
	if id == "" {
		id = link
	}
	press := item.Press
	if press == "" {
		press = item.Publisher
	}
	pubDate := item.PubDate
	if pubDate == "" {
		pubDate = item.PublishedAt
	}
	return models.SearchResult{
		ID:          id,
		Title:       item.Title,
		Link:        link,
		Press:       press,
		PubDate:     pubDate,
		Description: item.Description,
		Category:    item.Category,
	}
}
