// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/models"
)

// keyPrefix namespaces preference records inside the database.
const keyPrefix = "pref:"

// maxConflictAttempts bounds how often Update re-runs a conflicting transaction.
const maxConflictAttempts = 8

// StoreConfig configures a BadgerStore.
type StoreConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Nothing survives Close.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// GCDiscardRatio is passed to RunValueLogGC. Defaults to 0.5.
	GCDiscardRatio float64
}

// BadgerStore implements Store on BadgerDB. Values are JSON encoded
// UserPreferences stored under pref:<name>.
type BadgerStore struct {
	db  *badger.DB
	cfg StoreConfig
}

// NewBadgerStore opens (or creates) the database described by cfg.
func NewBadgerStore(cfg StoreConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if cfg.GCDiscardRatio <= 0 || cfg.GCDiscardRatio >= 1 {
		cfg.GCDiscardRatio = 0.5
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("Preference store opened")

	return &BadgerStore{db: db, cfg: cfg}, nil
}

func recordKey(name string) []byte {
	return []byte(keyPrefix + name)
}

// Get returns the stored record for name.
func (s *BadgerStore) Get(ctx context.Context, name string) (*models.UserPreferences, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	var prefs *models.UserPreferences
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		prefs, err = readRecord(txn, name)
		return err
	})
	if err != nil {
		storeOperations.WithLabelValues("get", "error").Inc()
		return nil, fmt.Errorf("read preferences for %q: %w", name, err)
	}
	if prefs == nil {
		storeOperations.WithLabelValues("get", "not_found").Inc()
		return nil, ErrNotFound
	}

	storeOperations.WithLabelValues("get", "success").Inc()
	return prefs, nil
}

// Update reads the record, applies fn and writes the result in one
// transaction. If another writer commits the same key first, BadgerDB
// reports a conflict and the whole read-decide-write cycle runs again
// against the fresh value.
func (s *BadgerStore) Update(ctx context.Context, name string, fn MutateFunc) (*models.UserPreferences, error) {
	for attempt := 1; attempt <= maxConflictAttempts; attempt++ {
		if err := s.ready(ctx); err != nil {
			return nil, err
		}

		result, err := s.updateOnce(name, fn)
		if errors.Is(err, badger.ErrConflict) {
			storeConflicts.Inc()
			logging.Debug().
				Str("name", name).
				Int("attempt", attempt).
				Msg("Preference transaction conflicted, re-running")
			continue
		}
		if errors.Is(err, ErrNotFound) {
			storeOperations.WithLabelValues("update", "not_found").Inc()
			return nil, err
		}
		if err != nil {
			storeOperations.WithLabelValues("update", "error").Inc()
			return nil, err
		}

		storeOperations.WithLabelValues("update", "success").Inc()
		return result, nil
	}

	storeOperations.WithLabelValues("update", "error").Inc()
	return nil, fmt.Errorf("update preferences for %q: %w", name, errTooManyConflicts)
}

// updateOnce runs a single transaction. Errors from fn are returned
// unwrapped so callers can match sentinels such as ErrNotFound.
func (s *BadgerStore) updateOnce(name string, fn MutateFunc) (*models.UserPreferences, error) {
	var (
		result  *models.UserPreferences
		fnErr   error
		written bool
	)

	err := s.db.Update(func(txn *badger.Txn) error {
		current, err := readRecord(txn, name)
		if err != nil {
			return err
		}

		next, write, err := fn(current)
		if err != nil {
			fnErr = err
			return err
		}
		if !write {
			result = current
			return nil
		}
		if next == nil {
			return fmt.Errorf("mutation requested a write without a record")
		}

		next.Name = name
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal preferences: %w", err)
		}
		if err := txn.Set(recordKey(name), data); err != nil {
			return err
		}
		result = next
		written = true
		return nil
	})

	switch {
	case fnErr != nil:
		return nil, fnErr
	case errors.Is(err, badger.ErrConflict):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("update preferences for %q: %w", name, err)
	}

	if written {
		storeWrites.Inc()
	}
	return result, nil
}

// readRecord returns nil, nil when the key is absent.
func readRecord(txn *badger.Txn, name string) (*models.UserPreferences, error) {
	item, err := txn.Get(recordKey(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var prefs models.UserPreferences
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &prefs)
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal preferences: %w", err)
	}
	if prefs.FavoriteMeals == nil {
		prefs.FavoriteMeals = []string{}
	}
	return &prefs, nil
}

func (s *BadgerStore) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	return nil
}

// Ping reports whether the store can serve requests.
func (s *BadgerStore) Ping(ctx context.Context) error {
	return s.ready(ctx)
}

// RunGC runs value log garbage collection until nothing more can be
// reclaimed. It is a no-op for in-memory stores.
func (s *BadgerStore) RunGC() error {
	if s.db.IsClosed() {
		return ErrStoreClosed
	}
	if s.cfg.InMemory {
		return nil
	}

	start := time.Now()
	defer func() {
		storeGCLatency.Observe(time.Since(start).Seconds())
		storeGCRuns.Inc()
	}()

	// Run GC until no more cleanup is possible
	for {
		err := s.db.RunValueLogGC(s.cfg.GCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close flushes and closes the database.
func (s *BadgerStore) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	logging.Info().Msg("Preference store closed")
	return nil
}
