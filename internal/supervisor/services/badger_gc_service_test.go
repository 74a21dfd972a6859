// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/mensarec/internal/preferences"
)

var _ suture.Service = (*BadgerGCService)(nil)

type stubGC struct {
	runs atomic.Int32
	err  atomic.Value
}

func (s *stubGC) RunGC() error {
	s.runs.Add(1)
	if err, ok := s.err.Load().(error); ok {
		return err
	}
	return nil
}

func TestNewBadgerGCService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewBadgerGCService(&stubGC{}, 0)
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.String() != "badger-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestBadgerGCService_RunsOnEveryTick(t *testing.T) {
	t.Parallel()

	gc := &stubGC{}
	gc.err.Store(errors.New("transient"))
	svc := NewBadgerGCService(gc, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.After(2 * time.Second)
	for gc.runs.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("GC ran %d times, want at least 3", gc.runs.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestBadgerGCService_StopsOnClosedStore(t *testing.T) {
	t.Parallel()

	gc := &stubGC{}
	gc.err.Store(preferences.ErrStoreClosed)
	svc := NewBadgerGCService(gc, 5*time.Millisecond)

	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(context.Background()) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, suture.ErrDoNotRestart) {
			t.Errorf("Serve() = %v, want ErrDoNotRestart", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return for a closed store")
	}
}

func TestBadgerGCService_RealStore(t *testing.T) {
	t.Parallel()

	store, err := preferences.NewBadgerStore(preferences.StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	svc := NewBadgerGCService(store, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() on open store = %v, want DeadlineExceeded", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() on closed store = %v, want ErrDoNotRestart", err)
	}
}
