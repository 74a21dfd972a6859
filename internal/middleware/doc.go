// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package middleware provides HTTP middleware shared by the API server and the
LLM proxy.

Key Components:

  - Request ID: UUID-based request tracking, propagated to the logging context
  - Prometheus Metrics: request count, latency and in-flight gauge per route
  - Access Log: one structured log line per request

All middleware has the func(http.Handler) http.Handler shape used by chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Metrics are labelled with the chi route pattern (for example
/preferences/{name}) rather than the raw path, so user names never become
label values. Requests that match no route are labelled "unmatched".
*/
package middleware
