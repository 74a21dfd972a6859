// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/mensarec/docs" // Import generated swagger docs
	"github.com/tomtom215/mensarec/internal/api"
	"github.com/tomtom215/mensarec/internal/breaker"
	"github.com/tomtom215/mensarec/internal/canteen"
	"github.com/tomtom215/mensarec/internal/config"
	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/preferences"
	"github.com/tomtom215/mensarec/internal/recommend"
	"github.com/tomtom215/mensarec/internal/supervisor"
	"github.com/tomtom215/mensarec/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("canteen", cfg.Canteen.CanteenID).
		Str("week_scheme", cfg.Canteen.WeekScheme).
		Str("feed", cfg.Canteen.BaseURL).
		Str("recommender", cfg.Recommender.BaseURL).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Configuration loaded")

	store, err := preferences.NewBadgerStore(preferences.StoreConfig{
		Path:           cfg.Store.Path,
		InMemory:       cfg.Store.InMemory,
		SyncWrites:     cfg.Store.SyncWrites,
		GCDiscardRatio: cfg.Store.GCDiscardRatio,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open preference store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing preference store")
		}
	}()

	scheme, err := canteen.ParseWeekScheme(cfg.Canteen.WeekScheme)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid week scheme")
	}
	location, err := time.LoadLocation(cfg.Canteen.Timezone)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid canteen timezone")
	}

	feedBreaker := breaker.New("menu-feed", cfg.Breaker)
	recommenderBreaker := breaker.New("recommender", cfg.Breaker)

	menus := canteen.NewService(
		canteen.NewFeedClient(cfg.Canteen.BaseURL, cfg.Canteen.Timeout, feedBreaker),
		canteen.ServiceConfig{Location: location, WeekScheme: scheme},
	)
	prefs := preferences.NewService(store)
	orchestrator := recommend.NewOrchestrator(
		prefs,
		menus,
		recommend.NewClient(cfg.Recommender.BaseURL, cfg.Recommender.Timeout, recommenderBreaker),
		cfg.Canteen.CanteenID,
	)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(prefs, orchestrator, menus, store)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		Name:             supervisor.DefaultRootName,
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddDataService(services.NewBadgerGCService(store, cfg.Store.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The tree sends exactly one result and never closes errCh.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Server stopped gracefully")
}
