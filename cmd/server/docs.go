// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

// @title Mensa Recommender API
// @version 1.0
// @description Favorite meals, today's canteen menu and a personal dish recommendation.
// @description
// @description ## Error Responses
// @description
// @description Successful responses return the resource itself. Errors use this envelope:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "meal must not be blank"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2025-05-08T12:00:00Z"
// @description   }
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/mensarec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Preferences
// @tag.description Favorite meals per user
//
// @tag.name Recommendations
// @tag.description Dish recommendations from today's menu
//
// @tag.name Canteens
// @tag.description Today's menu of a canteen
//
// @tag.name Health
// @tag.description liveness and readiness checks
package main
