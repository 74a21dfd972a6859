// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package main is the entry point for the Mensa Recommender API server.

The server stores each user's favorite meals, looks up today's menu of a
canteen in the public eat-api feed and asks the recommendation service
(cmd/llm) to pick one of today's dishes.

# Application Architecture

	RootSupervisor ("mensarec")
	├── DataSupervisor ("data-layer")
	│   └── BadgerGCService (value log GC of the preference store)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Preference store: BadgerDB at STORE_PATH (or in memory)
 4. Circuit breakers for the menu feed and the recommendation service
 5. Menu, preference and recommendation services
 6. HTTP router (chi) and the supervisor tree

# Configuration

Frequently used variables:

	HTTP_PORT             listener port (default 8080)
	CANTEEN_BASE_URL      menu feed base (default https://tum-dev.github.io/eat-api/)
	CANTEEN_ID            canteen for recommendations (default mensa-garching)
	CANTEEN_WEEK_SCHEME   iso, iso-week-year or us (default iso)
	RECOMMENDER_BASE_URL  recommendation service (default http://localhost:5000)
	STORE_PATH            BadgerDB directory (default /data/preferences)
	STORE_IN_MEMORY       keep preferences in memory only
	LOG_LEVEL, LOG_FORMAT logging

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to 10s and the preference store is closed after the tree stops.

# API Documentation

Swagger UI is served at /swagger/index.html. Regenerate the docs package
after changing handler annotations:

	swag init -g cmd/server/docs.go -o docs
*/
package main
