package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"trendhub/pkg/models"
)

// DefaultKeywordSearchLimit bounds keyword lookups on the report backend.
const DefaultKeywordSearchLimit = 20

// FetchReportRanking retrieves the data-report keyword ranking.
func (c *Client) FetchReportRanking(ctx context.Context) ([]models.ReportRanking, error) {
	endpoint := "/data-report/ranking"
	resp, err := c.get(ctx, backendReport, c.reportBaseURL+endpoint)
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}

	var rankings []models.ReportRanking
	if err := decodePrimary(resp, endpoint, &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

// FetchTimeSeries retrieves frequency buckets for one keyword, newest first.
// A non-positive limit leaves the backend default in place.
func (c *Client) FetchTimeSeries(ctx context.Context, keywordID string, limit int) ([]models.TimeSeriesPoint, error) {
	endpoint := "/data-report/time-series"
	params := url.Values{}
	params.Set("keywordId", keywordID)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := c.get(ctx, backendReport, c.reportBaseURL+endpoint+"?"+params.Encode())
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}

	var points []models.TimeSeriesPoint
	if err := decodePrimary(resp, endpoint, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// FetchRelatedArticles retrieves articles linked to one keyword.
func (c *Client) FetchRelatedArticles(ctx context.Context, keywordID string) ([]models.RelatedArticle, error) {
	endpoint := "/data-report/related-articles"
	params := url.Values{}
	params.Set("keywordId", keywordID)

	resp, err := c.get(ctx, backendReport, c.reportBaseURL+endpoint+"?"+params.Encode())
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}

	var articles []models.RelatedArticle
	if err := decodePrimary(resp, endpoint, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// FetchRelatedKeywords retrieves co-occurring keywords for one keyword.
func (c *Client) FetchRelatedKeywords(ctx context.Context, keywordID string) ([]models.RelatedKeyword, error) {
	endpoint := "/data-report/related-keywords"
	params := url.Values{}
	params.Set("keywordId", keywordID)

	resp, err := c.get(ctx, backendReport, c.reportBaseURL+endpoint+"?"+params.Encode())
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}

	var keywords []models.RelatedKeyword
	if err := decodePrimary(resp, endpoint, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// SearchKeyword resolves free text to report keyword entries.
func (c *Client) SearchKeyword(ctx context.Context, keyword string, limit int) ([]models.KeywordHit, error) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return []models.KeywordHit{}, nil
	}
	if limit < 1 {
		limit = DefaultKeywordSearchLimit
	}

	endpoint := "/data-report/search-keyword"
	params := url.Values{}
	params.Set("keyword", trimmed)
	params.Set("limit", strconv.Itoa(limit))

	resp, err := c.get(ctx, backendReport, c.reportBaseURL+endpoint+"?"+params.Encode())
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}

	var hits []models.KeywordHit
	if err := decodePrimary(resp, endpoint, &hits); err != nil {
		return nil, err
	}
	return hits, nil
}
