// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/models"
)

func openInMemory(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore(StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewBadgerStore_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := NewBadgerStore(StoreConfig{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestBadgerStore_GetMissing(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)
	if _, err := store.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestBadgerStore_ServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewService(openInMemory(t))
	ctx := context.Background()

	for _, meal := range []string{"Pizza", "Pasta", "Pizza", "Curry"} {
		if _, err := svc.AddFavorite(ctx, "alice", meal); err != nil {
			t.Fatalf("AddFavorite(%q) error = %v", meal, err)
		}
	}
	if _, err := svc.RemoveFavorite(ctx, "alice", "Pasta"); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if want := []string{"Pizza", "Curry"}; !slices.Equal(got.FavoriteMeals, want) {
		t.Errorf("FavoriteMeals = %v, want %v", got.FavoriteMeals, want)
	}

	if _, err := svc.RemoveFavorite(ctx, "bob", "Pizza"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveFavorite(bob) error = %v, want ErrNotFound", err)
	}
}

func TestBadgerStore_NoOpMutationSkipsWrite(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)
	ctx := context.Background()

	calls := 0
	got, err := store.Update(ctx, "alice", func(current *models.UserPreferences) (*models.UserPreferences, bool, error) {
		calls++
		return current, false, nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got != nil {
		t.Errorf("Update() = %+v, want nil for absent record", got)
	}
	if calls != 1 {
		t.Errorf("mutation ran %d times, want 1", calls)
	}
	if _, err := store.Get(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound after no-op", err)
	}
}

func TestBadgerStore_MutationErrorIsReturnedUnchanged(t *testing.T) {
	t.Parallel()

	store := openInMemory(t)
	sentinel := errors.New("boom")

	_, err := store.Update(context.Background(), "alice", func(*models.UserPreferences) (*models.UserPreferences, bool, error) {
		return nil, false, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Update() error = %v, want sentinel", err)
	}
}

func TestBadgerStore_ConcurrentAddsAreNotLost(t *testing.T) {
	t.Parallel()

	svc := NewService(openInMemory(t))
	ctx := context.Background()

	// Each conflict implies another writer committed, so this many writers
	// can never exhaust the attempt budget.
	const writers = maxConflictAttempts
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.AddFavorite(ctx, "alice", fmt.Sprintf("Meal %02d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("AddFavorite() error = %v", err)
	}

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.FavoriteMeals) != writers {
		t.Errorf("len(FavoriteMeals) = %d, want %d: %v", len(got.FavoriteMeals), writers, got.FavoriteMeals)
	}
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewBadgerStore(StoreConfig{Path: dir, SyncWrites: true})
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	if _, err := NewService(store).AddFavorite(ctx, "alice", "Pizza"); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewBadgerStore(StoreConfig{Path: dir})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !slices.Equal(got.FavoriteMeals, []string{"Pizza"}) {
		t.Errorf("FavoriteMeals = %v, want [Pizza]", got.FavoriteMeals)
	}
}

func TestBadgerStore_Closed(t *testing.T) {
	t.Parallel()

	store, err := NewBadgerStore(StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping() before close error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := store.Ping(context.Background()); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Ping() error = %v, want ErrStoreClosed", err)
	}
	if _, err := store.Get(context.Background(), "alice"); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Get() error = %v, want ErrStoreClosed", err)
	}
	if err := store.RunGC(); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("RunGC() error = %v, want ErrStoreClosed", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

// Not parallel: swaps the global logger.
func TestNewBadgerStore_LogsOpenOnce(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(previous) })

	store, err := NewBadgerStore(StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	defer func() { _ = store.Close() }()

	logged := buf.String()
	if n := strings.Count(logged, "Preference store opened"); n != 1 {
		t.Errorf("open logged %d times, want 1: %s", n, logged)
	}
	if !strings.Contains(logged, `"in_memory":true`) {
		t.Errorf("open log should carry the store settings: %s", logged)
	}
}
