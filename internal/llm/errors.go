// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package llm

import "errors"

var (
	// ErrEmptyFavorites is returned when favorite_menu has no entries.
	ErrEmptyFavorites = errors.New("favorite_menu cannot be empty")

	// ErrEmptyTodays is returned when todays_menu has no entries.
	ErrEmptyTodays = errors.New("todays_menu cannot be empty")

	// ErrNoChoices is returned when the completion carries no choices.
	ErrNoChoices = errors.New("unexpected response format from API")
)
