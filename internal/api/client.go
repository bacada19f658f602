// Package api is the HTTP client layer for the three trendhub backends:
// the trend ranking API, the article search API, and the data-report API.
// It owns URL building, header handling, and response normalization; callers
// receive typed records or a *models.APIError.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trendhub/pkg/logger"
	"trendhub/pkg/models"
	"trendhub/pkg/utils"
)

// Backend names used for logging and header selection.
const (
	backendTrend  = "trend"
	backendSearch = "search"
	backendReport = "report"
)

// Config carries the client's connection settings.
type Config struct {
	TrendBaseURL  string
	SearchBaseURL string
	ReportBaseURL string
	// APIKey is attached as X-API-Key to trend calls only.
	APIKey string
}

// Client handles HTTP API communication
type Client struct {
	trendBaseURL  string
	searchBaseURL string
	reportBaseURL string
	apiKey        string
	httpClient    *http.Client
}

// NewClient creates a new API client
func NewClient(cfg Config) *Client {
	return &Client{
		trendBaseURL:  strings.TrimRight(cfg.TrendBaseURL, "/"),
		searchBaseURL: strings.TrimRight(cfg.SearchBaseURL, "/"),
		reportBaseURL: strings.TrimRight(cfg.ReportBaseURL, "/"),
		apiKey:        cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get performs a GET against one backend. Each call is a single attempt;
// there are no retries.
func (c *Client) get(ctx context.Context, backend, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if backend == backendTrend && c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	requestID := utils.NewRequestID()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := int(time.Since(start).Milliseconds())
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"api":        backend,
			"request_id": requestID,
			"latency":    latency,
		}).Warn(fmt.Sprintf("GET %s failed: %v", rawURL, err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.APICall(backend, http.MethodGet, rawURL, resp.StatusCode, latency)
	return resp, nil
}

// decodePrimary decodes a primary-content response into target, converting
// any non-2xx status into a typed APIError.
func decodePrimary(resp *http.Response, endpoint string, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return models.NewHTTPError(endpoint, resp.StatusCode, string(body))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// FetchRanking retrieves the current keyword ranking from the trend backend.
func (c *Client) FetchRanking(ctx context.Context) ([]models.RankingRecord, error) {
	endpoint := "/trend/top"
	resp, err := c.get(ctx, backendTrend, c.trendBaseURL+endpoint)
	if err != nil {
		return nil, models.NewTransportError(endpoint, err)
	}

	var records []models.RankingRecord
	if err := decodePrimary(resp, endpoint, &records); err != nil {
		return nil, err
	}
	return records, nil
}
