// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package api provides the HTTP layer of the recommendation backend.

Routes:

	GET    /preferences/{name}          stored favorites (404 if unknown)
	POST   /preferences/{name}?meal=    add a favorite
	DELETE /preferences/{name}?meal=    remove a favorite
	GET    /recommend/{name}            one dish from today's menu (204 if none)
	GET    /{canteen}/today             today's dishes (204 if none)
	GET    /api/v1/health/live          liveness check
	GET    /api/v1/health/ready         readiness check (503 if the store is closed)
	GET    /metrics                     Prometheus metrics
	GET    /swagger/*                   API documentation

Successful responses carry the domain object as the JSON body, exactly as
the web client expects. Errors use the models.APIResponse envelope:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "..."},
	  "error": {"code": "VALIDATION_ERROR", "message": "name must not be blank"}
	}

Error mapping:

  - preferences.ErrInvalidInput or a validation failure: 400 VALIDATION_ERROR
  - preferences.ErrNotFound: 404 NOT_FOUND
  - recommend.ErrNoContent: 204 with no body
  - anything else: 500 INTERNAL_ERROR

Middleware stack (outermost first): request ID, access log, real IP,
panic recovery, CORS, Prometheus metrics, then per-group rate limiting,
security headers and compression.
*/
package api
