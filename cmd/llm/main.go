// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

// Package main runs the recommendation service that answers
// POST /recommend with a dish picked by an OpenAI-compatible chat model.
//
// Required: LLM_API_KEY (or CHAIR_API_KEY). Optional: LLM_PORT (5000),
// LLM_API_URL, LLM_MODEL (llama3:latest), LLM_RATE_PER_SECOND, LLM_BURST.
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

	"github.com/tomtom215/mensarec/internal/config"
	"github.com/tomtom215/mensarec/internal/llm"
	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/supervisor"
	"github.com/tomtom215/mensarec/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadLLM()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("api_url", cfg.LLM.APIURL).
		Str("model", cfg.LLM.Model).
		Float64("rate_per_second", cfg.LLM.RatePerSecond).
		Msg("Configuration loaded")

	handler := llm.NewHandler(llm.NewService(cfg.LLM))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		Name:            "mensarec-llm",
		ShutdownTimeout: 10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Completions can take most of the upstream timeout.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.LLM.Port),
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewNamedHTTPServerService("llm-http-server", server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting recommendation service")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}
	logging.Info().Msg("Recommendation service stopped")
}
