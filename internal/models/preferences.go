// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package models

import "slices"

// UserPreferences is the favorite-meal list of one user.
//
// Name is the primary key. FavoriteMeals keeps insertion order and never
// holds the same meal twice.
type UserPreferences struct {
	Name          string   `json:"name"`
	FavoriteMeals []string `json:"favoriteMeals"`
}

// HasFavorite reports whether meal is already in the list. Comparison is
// exact, matching how meals are stored.
func (p *UserPreferences) HasFavorite(meal string) bool {
	return slices.Contains(p.FavoriteMeals, meal)
}

// Clone returns a deep copy so callers can mutate without aliasing the
// stored slice.
func (p *UserPreferences) Clone() *UserPreferences {
	if p == nil {
		return nil
	}
	return &UserPreferences{
		Name:          p.Name,
		FavoriteMeals: slices.Clone(p.FavoriteMeals),
	}
}
