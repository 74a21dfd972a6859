// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package supervisor runs the long-lived services of a process under a suture
v4 supervisor tree.

	Root ("mensarec")
	├── data-layer
	│   └── BadgerGCService
	└── api-layer
	    └── HTTPServerService

cmd/llm builds the same tree under the root name "mensarec-llm" and only
uses the API layer.

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, bridged to zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{Name: "mensarec"})
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewBadgerGCService(store, cfg.Store.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
