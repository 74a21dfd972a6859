// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package models

// Recommendation is the single-field result of GET /recommend/{name} and
// of the recommendation service's POST /recommend.
type Recommendation struct {
	Recommendation string `json:"recommendation"`
}

// RecommendRequest is the body of POST /recommend. Both lists are plain
// meal names.
type RecommendRequest struct {
	FavoriteMenu []string `json:"favorite_menu"`
	TodaysMenu   []string `json:"todays_menu"`
}
