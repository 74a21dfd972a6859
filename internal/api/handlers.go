// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/mensarec/internal/models"
)

// PreferenceService manages favorite meals.
type PreferenceService interface {
	Get(ctx context.Context, name string) (*models.UserPreferences, error)
	AddFavorite(ctx context.Context, name, meal string) (*models.UserPreferences, error)
	RemoveFavorite(ctx context.Context, name, meal string) (*models.UserPreferences, error)
}

// Recommender produces a recommendation for a user.
type Recommender interface {
	Recommend(ctx context.Context, name string) (*models.Recommendation, error)
}

// MenuService lists today's dishes of a canteen.
type MenuService interface {
	GetTodayMeals(ctx context.Context, canteenID string) []models.Dish
}

// Pinger reports whether a dependency can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the services behind the HTTP endpoints.
type Handler struct {
	prefs       PreferenceService
	recommender Recommender
	menus       MenuService
	store       Pinger
	startTime   time.Time
}

// NewHandler creates a Handler. store is used by the readiness check and may be nil.
func NewHandler(prefs PreferenceService, recommender Recommender, menus MenuService, store Pinger) *Handler {
	return &Handler{
		prefs:       prefs,
		recommender: recommender,
		menus:       menus,
		store:       store,
		startTime:   time.Now(),
	}
}
