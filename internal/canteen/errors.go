// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package canteen

import "errors"

var (
	// ErrFeedUnavailable wraps every failure to obtain a decoded week.
	ErrFeedUnavailable = errors.New("menu feed unavailable")

	// ErrWeekNotFound is returned when the feed has no document for the week.
	ErrWeekNotFound = errors.New("menu week not published")

	// ErrDayNotFound is returned when the week has no entry for the date.
	ErrDayNotFound = errors.New("no menu for date")
)
