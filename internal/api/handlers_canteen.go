// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package api

import (
	"net/http"
)

// TodayMeals lists today's dishes of a canteen.
//
// @Summary Today's menu
// @Description Returns today's dishes of the canteen in feed order. Returns 204 when the canteen serves nothing today or the menu feed is unavailable.
// @Tags Canteens
// @Produce json
// @Param canteen path string true "Canteen id, e.g. mensa-garching"
// @Success 200 {array} models.Dish "Today's dishes"
// @Success 204 "No menu today"
// @Failure 400 {object} models.APIResponse "Blank canteen id"
// @Router /{canteen}/today [get]
func (h *Handler) TodayMeals(w http.ResponseWriter, r *http.Request) {
	req := CanteenRequest{Canteen: pathParam(r, "canteen")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	dishes := h.menus.GetTodayMeals(r.Context(), req.Canteen)
	if len(dishes) == 0 {
		respondNoContent(w)
		return
	}

	respondRaw(w, http.StatusOK, dishes)
}
