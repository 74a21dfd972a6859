// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package recommend

import "errors"

var (
	// ErrNoContent means there is nothing to recommend.
	ErrNoContent = errors.New("no recommendation available")

	// ErrUpstreamUnavailable wraps every failed call to the recommendation service.
	ErrUpstreamUnavailable = errors.New("recommendation service unavailable")
)
