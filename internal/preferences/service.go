// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tomtom215/mensarec/internal/models"
)

// Service implements the favorite-meal operations on top of a Store.
type Service struct {
	store Store
}

// NewService creates a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Get returns the record for name.
func (s *Service) Get(ctx context.Context, name string) (*models.UserPreferences, error) {
	if isBlank(name) {
		return nil, fmt.Errorf("%w: name must not be blank", ErrInvalidInput)
	}
	return s.store.Get(ctx, name)
}

// AddFavorite appends meal to the user's favorites, creating the record on
// first use. Adding a meal that is already present changes nothing.
func (s *Service) AddFavorite(ctx context.Context, name, meal string) (*models.UserPreferences, error) {
	if isBlank(name) {
		return nil, fmt.Errorf("%w: name must not be blank", ErrInvalidInput)
	}
	if isBlank(meal) {
		return nil, fmt.Errorf("%w: meal must not be blank", ErrInvalidInput)
	}

	return s.store.Update(ctx, name, func(current *models.UserPreferences) (*models.UserPreferences, bool, error) {
		if current == nil {
			return &models.UserPreferences{Name: name, FavoriteMeals: []string{meal}}, true, nil
		}
		if current.HasFavorite(meal) {
			return current, false, nil
		}
		next := current.Clone()
		next.FavoriteMeals = append(next.FavoriteMeals, meal)
		return next, true, nil
	})
}

// RemoveFavorite removes meal from the user's favorites. Removing a meal
// that is not present changes nothing.
func (s *Service) RemoveFavorite(ctx context.Context, name, meal string) (*models.UserPreferences, error) {
	if isBlank(name) {
		return nil, fmt.Errorf("%w: name must not be blank", ErrInvalidInput)
	}
	if isBlank(meal) {
		return nil, fmt.Errorf("%w: meal must not be blank", ErrInvalidInput)
	}

	return s.store.Update(ctx, name, func(current *models.UserPreferences) (*models.UserPreferences, bool, error) {
		if current == nil {
			return nil, false, ErrNotFound
		}
		if !current.HasFavorite(meal) {
			return current, false, nil
		}
		next := current.Clone()
		next.FavoriteMeals = slices.DeleteFunc(next.FavoriteMeals, func(m string) bool { return m == meal })
		return next, true, nil
	})
}
