// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import (
	"context"

	"github.com/tomtom215/mensarec/internal/models"
)

// MutateFunc decides the next state of a record. current is nil when no
// record exists. Returning write=false leaves storage untouched and makes
// Update return current. A non-nil error aborts the transaction and is
// returned from Update unchanged.
//
// A MutateFunc may run more than once if the transaction conflicts, so it
// must not have side effects and must not modify current.
type MutateFunc func(current *models.UserPreferences) (next *models.UserPreferences, write bool, err error)

// Store persists preference records keyed by user name.
type Store interface {
	// Get returns the record for name, or ErrNotFound.
	Get(ctx context.Context, name string) (*models.UserPreferences, error)

	// Update runs fn against the stored record and persists its result
	// atomically when fn asks for a write.
	Update(ctx context.Context, name string, fn MutateFunc) (*models.UserPreferences, error)
}
