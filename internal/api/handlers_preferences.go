// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package api

import (
	"net/http"
)

// GetPreferences returns a user's favorite meals.
//
// @Summary Get favorite meals
// @Description Returns the stored favorite-meal list of a user in insertion order.
// @Tags Preferences
// @Produce json
// @Param name path string true "User name"
// @Success 200 {object} models.UserPreferences "Stored preferences"
// @Failure 400 {object} models.APIResponse "Blank name"
// @Failure 404 {object} models.APIResponse "No preferences stored for this user"
// @Router /preferences/{name} [get]
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	req := NameRequest{Name: pathParam(r, "name")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	prefs, err := h.prefs.Get(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondRaw(w, http.StatusOK, prefs)
}

// AddFavorite adds a meal to a user's favorites.
//
// @Summary Add a favorite meal
// @Description Appends the meal to the user's favorites, creating the record on first use. Adding a meal that is already present changes nothing.
// @Tags Preferences
// @Produce json
// @Param name path string true "User name"
// @Param meal query string true "Meal name"
// @Success 200 {object} models.UserPreferences "Updated preferences"
// @Failure 400 {object} models.APIResponse "Blank name or meal"
// @Router /preferences/{name} [post]
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	req := PreferenceRequest{Name: pathParam(r, "name"), Meal: r.URL.Query().Get("meal")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	prefs, err := h.prefs.AddFavorite(r.Context(), req.Name, req.Meal)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondRaw(w, http.StatusOK, prefs)
}

// RemoveFavorite removes a meal from a user's favorites.
//
// @Summary Remove a favorite meal
// @Description Removes the meal from the user's favorites. Removing a meal that is not present changes nothing.
// @Tags Preferences
// @Produce json
// @Param name path string true "User name"
// @Param meal query string true "Meal name"
// @Success 200 {object} models.UserPreferences "Updated preferences"
// @Failure 400 {object} models.APIResponse "Blank name or meal"
// @Failure 404 {object} models.APIResponse "No preferences stored for this user"
// @Router /preferences/{name} [delete]
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	req := PreferenceRequest{Name: pathParam(r, "name"), Meal: r.URL.Query().Get("meal")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	prefs, err := h.prefs.RemoveFavorite(r.Context(), req.Name, req.Meal)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondRaw(w, http.StatusOK, prefs)
}
