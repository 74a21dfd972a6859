// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package recommend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mensarec/internal/breaker"
	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/metrics"
	"github.com/tomtom215/mensarec/internal/models"
)

// maxErrorBody caps how much of an error response is kept for logs.
const maxErrorBody = 512

var _ Generator = (*Client)(nil)

// Client calls the recommendation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *breaker.Breaker
}

// NewClient creates a Client for the service at baseURL. b may be nil.
func NewClient(baseURL string, timeout time.Duration, b *breaker.Breaker) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: b,
	}
}

// Generate asks the service to pick one of todays for a user who likes
// favorites. It returns "" when the service cannot be reached or answers
// with anything other than a 2xx JSON body.
func (c *Client) Generate(ctx context.Context, favorites, todays []string) string {
	text, err := c.Recommend(ctx, favorites, todays)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("url", c.baseURL+"/recommend").
			Int("favorites", len(favorites)).
			Int("todays", len(todays)).
			Msg("Recommendation service call failed")
		return ""
	}
	return text
}

// Recommend is Generate with the error kept. Every error wraps
// ErrUpstreamUnavailable.
func (c *Client) Recommend(ctx context.Context, favorites, todays []string) (string, error) {
	if favorites == nil {
		favorites = []string{}
	}
	if todays == nil {
		todays = []string{}
	}

	body, err := json.Marshal(models.RecommendRequest{FavoriteMenu: favorites, TodaysMenu: todays})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %w", ErrUpstreamUnavailable, err)
	}

	start := time.Now()
	text, err := breaker.Execute(c.breaker, func() (string, error) {
		return c.post(ctx, body)
	})
	metrics.RecordUpstreamRequest("recommender", time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return text, nil
}

func (c *Client) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := logging.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recommendation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err != nil {
			return "", fmt.Errorf("recommendation service returned status %d (failed to read body)", resp.StatusCode)
		}
		return "", fmt.Errorf("recommendation service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result models.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode recommendation: %w", err)
	}
	return result.Recommendation, nil
}
