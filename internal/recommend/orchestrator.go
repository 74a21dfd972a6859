// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/metrics"
	"github.com/tomtom215/mensarec/internal/models"
	"github.com/tomtom215/mensarec/internal/preferences"
)

// DefaultCanteen is the canteen used when none is configured.
const DefaultCanteen = "mensa-garching"

// PreferenceReader loads a user's record.
type PreferenceReader interface {
	Get(ctx context.Context, name string) (*models.UserPreferences, error)
}

// MenuSource lists today's dishes for a canteen. It never fails.
type MenuSource interface {
	GetTodayMeals(ctx context.Context, canteenID string) []models.Dish
}

// Generator picks a dish name. It returns "" when it cannot.
type Generator interface {
	Generate(ctx context.Context, favorites, todays []string) string
}

// Orchestrator produces a recommendation for a user.
type Orchestrator struct {
	prefs     PreferenceReader
	menus     MenuSource
	generator Generator
	canteenID string
}

// NewOrchestrator wires the collaborators. An empty canteenID selects DefaultCanteen.
func NewOrchestrator(prefs PreferenceReader, menus MenuSource, generator Generator, canteenID string) *Orchestrator {
	if strings.TrimSpace(canteenID) == "" {
		canteenID = DefaultCanteen
	}
	return &Orchestrator{
		prefs:     prefs,
		menus:     menus,
		generator: generator,
		canteenID: canteenID,
	}
}

// Recommend returns one dish for name. It returns ErrNoContent when the
// user is unknown, has no favorites, or nothing was generated.
// preferences.ErrInvalidInput is passed through for blank names.
func (o *Orchestrator) Recommend(ctx context.Context, name string) (*models.Recommendation, error) {
	logger := logging.Ctx(ctx).With().Str("user", name).Str("canteen", o.canteenID).Logger()

	prefs, err := o.prefs.Get(ctx, name)
	switch {
	case errors.Is(err, preferences.ErrNotFound):
		logger.Debug().Msg("No preferences stored")
		metrics.RecordRecommendation("no_content")
		return nil, ErrNoContent
	case err != nil:
		if !errors.Is(err, preferences.ErrInvalidInput) {
			metrics.RecordRecommendation("error")
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	case len(prefs.FavoriteMeals) == 0:
		logger.Debug().Msg("No favorite meals")
		metrics.RecordRecommendation("no_content")
		return nil, ErrNoContent
	}

	// An empty menu is still sent; the service decides what to answer.
	todays := models.DishNames(o.menus.GetTodayMeals(ctx, o.canteenID))

	// Whitespace-only text counts as nothing; other text is passed through as sent.
	text := o.generator.Generate(ctx, prefs.FavoriteMeals, todays)
	if strings.TrimSpace(text) == "" {
		logger.Debug().Int("todays", len(todays)).Msg("Recommendation service returned nothing")
		metrics.RecordRecommendation("no_content")
		return nil, ErrNoContent
	}

	logger.Debug().Str("recommendation", text).Msg("Recommendation generated")
	metrics.RecordRecommendation("success")
	return &models.Recommendation{Recommendation: text}, nil
}
