// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the settings needed by cmd/server.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCanteen(); err != nil {
		return err
	}
	if err := c.validateRecommender(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	return c.validateSecurity()
}

// ValidateLLM checks the settings needed by cmd/llm. The API key is only
// required there, so Validate does not look at it.
func (c *Config) ValidateLLM() error {
	if err := validatePort(c.LLM.Port, "LLM_PORT"); err != nil {
		return err
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY (or CHAIR_API_KEY) is required")
	}
	if err := validateHTTPURL(c.LLM.APIURL, "LLM_API_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return fmt.Errorf("LLM_MODEL must not be empty")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %v", c.LLM.Timeout)
	}
	if c.LLM.RatePerSecond <= 0 {
		return fmt.Errorf("LLM_RATE_PER_SECOND must be positive, got %v", c.LLM.RatePerSecond)
	}
	if c.LLM.Burst < 1 {
		return fmt.Errorf("LLM_BURST must be at least 1, got %d", c.LLM.Burst)
	}
	return nil
}

func validatePort(port int, name string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if err := validatePort(c.Server.Port, "HTTP_PORT"); err != nil {
		return err
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validWeekSchemes mirrors the schemes understood by canteen.ParseWeekScheme.
var validWeekSchemes = map[string]bool{
	"iso":           true,
	"iso-week-year": true,
	"us":            true,
}

func (c *Config) validateCanteen() error {
	if err := validateHTTPURL(c.Canteen.BaseURL, "CANTEEN_BASE_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.Canteen.CanteenID) == "" {
		return fmt.Errorf("CANTEEN_ID must not be empty")
	}
	if !validWeekSchemes[c.Canteen.WeekScheme] {
		return fmt.Errorf("CANTEEN_WEEK_SCHEME must be one of: iso, iso-week-year, us")
	}
	if _, err := time.LoadLocation(c.Canteen.Timezone); err != nil {
		return fmt.Errorf("CANTEEN_TIMEZONE is invalid: %w", err)
	}
	if c.Canteen.Timeout <= 0 {
		return fmt.Errorf("CANTEEN_TIMEOUT must be positive, got %v", c.Canteen.Timeout)
	}
	return nil
}

func (c *Config) validateRecommender() error {
	if err := validateHTTPURL(c.Recommender.BaseURL, "RECOMMENDER_BASE_URL"); err != nil {
		return err
	}
	if c.Recommender.Timeout <= 0 {
		return fmt.Errorf("RECOMMENDER_TIMEOUT must be positive, got %v", c.Recommender.Timeout)
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("STORE_PATH is required unless STORE_IN_MEMORY=true")
	}
	if c.Store.GCInterval < time.Minute {
		return fmt.Errorf("STORE_GC_INTERVAL must be at least 1m, got %v", c.Store.GCInterval)
	}
	if c.Store.GCDiscardRatio <= 0 || c.Store.GCDiscardRatio >= 1 {
		return fmt.Errorf("STORE_GC_DISCARD_RATIO must be between 0 and 1 (exclusive), got %v", c.Store.GCDiscardRatio)
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.MaxRequests == 0 {
		return fmt.Errorf("BREAKER_MAX_REQUESTS must be at least 1")
	}
	if c.Breaker.Interval <= 0 || c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_INTERVAL and BREAKER_TIMEOUT must be positive")
	}
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}
