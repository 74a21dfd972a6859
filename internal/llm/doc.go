// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package llm implements the recommendation service behind POST /recommend.

It renders a fixed prompt from the user's favorite meals and today's menu,
sends it as a single user message to an OpenAI-compatible chat completion
endpoint and returns the trimmed answer as the recommended dish.

Routes:

	GET  /         service information
	GET  /health   {"status":"healthy","service":"LLM Recommendation Service"}
	POST /recommend {"favorite_menu":[...],"todays_menu":[...]} -> {"recommendation":"..."}
	GET  /metrics  Prometheus exposition

Errors are returned as {"detail": "..."}: 400 when a list is empty, 500 when
the completion fails.

Upstream calls are throttled with a token bucket (golang.org/x/time/rate) so
a burst of page loads cannot exhaust the GPU quota.
*/
package llm
