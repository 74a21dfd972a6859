// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package api

// Request validation structs, checked with validation.ValidateStruct.

// NameRequest identifies a user.
type NameRequest struct {
	Name string `json:"name" validate:"notblank"`
}

// PreferenceRequest adds or removes one favorite meal.
type PreferenceRequest struct {
	Name string `json:"name" validate:"notblank"`
	Meal string `json:"meal" validate:"notblank"`
}

// CanteenRequest identifies a canteen in the menu feed.
type CanteenRequest struct {
	Canteen string `json:"canteen" validate:"notblank"`
}
