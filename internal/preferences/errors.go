// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import "errors"

var (
	// ErrInvalidInput is returned when a name or meal is empty or whitespace.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when no record exists for the name.
	ErrNotFound = errors.New("preferences not found")

	// ErrStoreClosed is returned by a Store after Close.
	ErrStoreClosed = errors.New("preference store is closed")

	// errTooManyConflicts is returned when a transaction keeps conflicting
	// with concurrent writers to the same key.
	errTooManyConflicts = errors.New("too many transaction conflicts")
)
