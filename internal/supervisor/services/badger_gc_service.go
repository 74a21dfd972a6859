// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package services

import (
	"context"
	"errors"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/preferences"
)

// GCRunner is satisfied by *preferences.BadgerStore.
type GCRunner interface {
	RunGC() error
}

// BadgerGCService runs value-log GC on the preference store at a fixed
// interval.
type BadgerGCService struct {
	store    GCRunner
	interval time.Duration
	name     string
}

// NewBadgerGCService creates the service. interval defaults to 10m.
func NewBadgerGCService(store GCRunner, interval time.Duration) *BadgerGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &BadgerGCService{
		store:    store,
		interval: interval,
		name:     "badger-gc",
	}
}

// Serve implements suture.Service. A GC error other than a closed store is
// logged and the loop continues; a closed store ends the service so suture
// does not spin on it.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(s.name)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.store.RunGC(); err != nil {
				if errors.Is(err, preferences.ErrStoreClosed) {
					logger.Info().Msg("Preference store closed, stopping GC")
					return suture.ErrDoNotRestart
				}
				logger.Warn().Err(err).Msg("Value log GC failed")
			}
		}
	}
}

// String implements fmt.Stringer for suture logs.
func (s *BadgerGCService) String() string {
	return s.name
}
