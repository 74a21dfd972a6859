// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/tomtom215/mensarec/internal/config"
	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/metrics"
)

// Service turns meal lists into a single recommended dish.
type Service struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

// NewService creates a Service for the chat API described by cfg. The
// client appends /chat/completions to cfg.APIURL.
func NewService(cfg config.LLMConfig) *Service {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = strings.TrimSuffix(cfg.APIURL, "/")
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	return &Service{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Recommend validates the lists, renders the prompt and returns the
// model's trimmed answer.
func (s *Service) Recommend(ctx context.Context, favorites, todays []string) (string, error) {
	if len(favorites) == 0 {
		return "", ErrEmptyFavorites
	}
	if len(todays) == 0 {
		return "", ErrEmptyTodays
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	text, err := s.complete(ctx, BuildPrompt(favorites, todays))
	metrics.RecordUpstreamRequest("llm", time.Since(start), err)
	metrics.RecordLLMCompletion(s.model, err)
	if err != nil {
		return "", err
	}

	logging.Ctx(ctx).Debug().
		Int("favorites", len(favorites)).
		Int("todays", len(todays)).
		Str("recommendation", text).
		Msg("Completion received")
	return text, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
