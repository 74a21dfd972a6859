// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package canteen

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mensarec/internal/breaker"
	"github.com/tomtom215/mensarec/internal/metrics"
	"github.com/tomtom215/mensarec/internal/models"
)

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

// WeekFetcher loads one published week.
type WeekFetcher interface {
	FetchWeek(ctx context.Context, canteenID string, year, week int) (*models.Week, error)
}

var _ WeekFetcher = (*FeedClient)(nil)

// FeedClient fetches weekly menus from the eat-api feed.
type FeedClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *breaker.Breaker
}

// NewFeedClient creates a client for the feed rooted at baseURL. b may be nil.
func NewFeedClient(baseURL string, timeout time.Duration, b *breaker.Breaker) *FeedClient {
	return &FeedClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: b,
	}
}

// WeekURL returns the feed URL of a canteen's week.
func (c *FeedClient) WeekURL(canteenID string, year, week int) string {
	return fmt.Sprintf("%s/%s/%d/%02d.json", c.baseURL, url.PathEscape(canteenID), year, week)
}

// FetchWeek downloads and decodes one week. A 404 is reported as
// ErrWeekNotFound and does not count against the circuit breaker. Every
// other failure wraps ErrFeedUnavailable.
func (c *FeedClient) FetchWeek(ctx context.Context, canteenID string, year, week int) (*models.Week, error) {
	weekURL := c.WeekURL(canteenID, year, week)

	start := time.Now()
	result, err := breaker.Execute(c.breaker, func() (*models.Week, error) {
		return c.get(ctx, weekURL)
	})
	metrics.RecordUpstreamRequest("menu_feed", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", ErrWeekNotFound, weekURL)
	}
	return result, nil
}

// get returns nil, nil for a 404.
func (c *FeedClient) get(ctx context.Context, weekURL string) (*models.Week, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, weekURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu feed request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			return nil, fmt.Errorf("menu feed returned status %d (failed to read body)", resp.StatusCode)
		}
		return nil, fmt.Errorf("menu feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var week models.Week
	if err := json.NewDecoder(resp.Body).Decode(&week); err != nil {
		return nil, fmt.Errorf("failed to decode menu week: %w", err)
	}
	return &week, nil
}
