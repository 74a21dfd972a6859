// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package models defines the data structures shared across the service.

Owned data:
  - UserPreferences: a user's favorite meal names, keyed by user name

Transient views over the canteen menu feed (never persisted):
  - Week, Day, Dish, Date

Request/response shapes:
  - Recommendation: {"recommendation": "..."}
  - RecommendRequest: the body sent to the recommendation service
  - APIResponse, APIError, Metadata: error envelope for HTTP handlers

JSON field names follow the external contracts (the eat-api feed, the
recommendation service and the web client), so some use snake_case and
some camelCase.
*/
package models
