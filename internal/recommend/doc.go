// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

// Package recommend picks one of today's dishes for a user.
//
// Client talks to the external recommendation service (see package llm for
// the bundled implementation) over POST {base}/recommend. Orchestrator ties
// the pieces together: it loads the user's favorites, looks up today's
// menu and asks the Generator for a single dish name.
//
// # Outcomes
//
// Recommend returns ErrNoContent when the user is unknown, has no
// favorites, or the service produced no text. Upstream failures are
// absorbed by Client and surface as ErrNoContent, never as a server error.
//
// # Usage
//
//	client := recommend.NewClient(cfg.Recommender.BaseURL, cfg.Recommender.Timeout, breaker)
//	orch := recommend.NewOrchestrator(prefsService, canteenService, client, "mensa-garching")
//
//	rec, err := orch.Recommend(ctx, "alice")
//	if errors.Is(err, recommend.ErrNoContent) {
//	    // 204
//	}
package recommend
