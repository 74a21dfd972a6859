// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

// Package config loads the service configuration with Koanf v2.
//
// Sources, lowest to highest priority:
//  1. Defaults from defaultConfig()
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, ./config.yml)
//  3. Environment variables listed in envMappings
//
// A .env file in the working directory is read into the process
// environment before step 3 when it exists.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
package config

import (
	"time"
)

// Config is the root configuration shared by cmd/server and cmd/llm.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Logging     LoggingConfig     `koanf:"logging"`
	Canteen     CanteenConfig     `koanf:"canteen"`
	Recommender RecommenderConfig `koanf:"recommender"`
	Store       StoreConfig       `koanf:"store"`
	Breaker     BreakerConfig     `koanf:"breaker"`
	Security    SecurityConfig    `koanf:"security"`
	LLM         LLMConfig         `koanf:"llm"`
}

// ServerConfig holds HTTP listener settings for the recommender API.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// LoggingConfig maps onto logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CanteenConfig configures the weekly menu feed.
//
// The feed is addressed as {BaseURL}/{canteen}/{year}/{week:02d}.json.
// WeekScheme selects how (year, week) is derived from today's date and must
// match the feed's own numbering.
type CanteenConfig struct {
	BaseURL    string        `koanf:"base_url"`
	CanteenID  string        `koanf:"canteen_id"`
	WeekScheme string        `koanf:"week_scheme"` // iso, iso-week-year, us
	Timezone   string        `koanf:"timezone"`    // IANA name or Local
	Timeout    time.Duration `koanf:"timeout"`
}

// RecommenderConfig points at the service answering POST /recommend.
type RecommenderConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// StoreConfig configures the BadgerDB preference store.
type StoreConfig struct {
	Path           string        `koanf:"path"`
	InMemory       bool          `koanf:"in_memory"`
	SyncWrites     bool          `koanf:"sync_writes"`
	GCInterval     time.Duration `koanf:"gc_interval"`
	GCDiscardRatio float64       `koanf:"gc_discard_ratio"`
}

// BreakerConfig configures the circuit breakers around the menu feed and
// the recommendation service.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`  // requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`      // closed-state count reset
	Timeout      time.Duration `koanf:"timeout"`       // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`  // requests before tripping is considered
	FailureRatio float64       `koanf:"failure_ratio"` // trip threshold, 0 < r <= 1
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LLMConfig configures the cmd/llm proxy that turns favorites and today's
// menu into a single dish name via an OpenAI-compatible chat API.
type LLMConfig struct {
	Port          int           `koanf:"port"`
	APIURL        string        `koanf:"api_url"`
	APIKey        string        `koanf:"api_key"`
	Model         string        `koanf:"model"`
	Timeout       time.Duration `koanf:"timeout"`
	RatePerSecond float64       `koanf:"rate_per_second"`
	Burst         int           `koanf:"burst"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
