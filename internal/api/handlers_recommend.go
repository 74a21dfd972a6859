// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package api

import (
	"net/http"
)

// Recommend picks one of today's dishes for a user.
//
// @Summary Recommend a dish
// @Description Picks one dish from today's menu that matches the user's favorite meals. Returns 204 when the user has no favorites or nothing could be recommended.
// @Tags Recommendations
// @Produce json
// @Param name path string true "User name"
// @Success 200 {object} models.Recommendation "Recommended dish"
// @Success 204 "No recommendation available"
// @Failure 400 {object} models.APIResponse "Blank name"
// @Router /recommend/{name} [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	req := NameRequest{Name: pathParam(r, "name")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	rec, err := h.recommender.Recommend(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondRaw(w, http.StatusOK, rec)
}
