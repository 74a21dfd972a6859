// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package metrics provides Prometheus metrics for the API server and the LLM proxy.

Metrics are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Upstream Metrics:
  - upstream_request_duration_seconds: Latency of menu feed, recommender and LLM calls
    Labels: upstream, result
  - menu_lookups_total: Today-menu lookups by canteen and result (found, empty, failed)
  - recommendations_total: Recommendation outcomes (success, no_content, error)
  - llm_completions_total: Chat completion calls by model and result

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

The preference store registers its own preference_store_* metrics in
package preferences.

# Usage

	start := time.Now()
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	// ... handle request ...
	metrics.RecordAPIRequest("GET", "/recommend/{name}", "200", time.Since(start))
*/
package metrics
