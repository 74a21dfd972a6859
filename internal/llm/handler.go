// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/middleware"
	"github.com/tomtom215/mensarec/internal/models"
)

const (
	serviceName    = "LLM Recommendation Service"
	serviceVersion = "1.0.0"

	// maxBodyBytes bounds POST /recommend bodies.
	maxBodyBytes = 1 << 20
)

// Recommender picks a dish from today's menu.
type Recommender interface {
	Recommend(ctx context.Context, favorites, todays []string) (string, error)
}

// Handler serves the recommendation service routes.
type Handler struct {
	recommender Recommender
}

// NewHandler creates a Handler.
func NewHandler(recommender Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// Routes returns the chi router for the service.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

	r.Get("/", h.Info)
	r.Get("/health", h.Health)
	r.Post("/recommend", h.Recommend)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// Info describes the service and its endpoints.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":     serviceName,
		"version":     serviceVersion,
		"description": "Generates personalized food recommendations using an OpenAI-compatible chat API",
		"endpoints": map[string]string{
			"health":    "/health",
			"recommend": "/recommend",
			"metrics":   "/metrics",
		},
	})
}

// Recommend handles POST /recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.recommender.Recommend(r.Context(), req.FavoriteMenu, req.TodaysMenu)
	switch {
	case errors.Is(err, ErrEmptyFavorites), errors.Is(err, ErrEmptyTodays):
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Error generating recommendation")
		writeDetail(w, http.StatusInternalServerError, "Failed to generate recommendation: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.Recommendation{Recommendation: text})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}
