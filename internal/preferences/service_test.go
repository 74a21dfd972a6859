// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/tomtom215/mensarec/internal/models"
)

// countingStore is an in-process Store that records reads and writes.
type countingStore struct {
	mu      sync.Mutex
	records map[string]*models.UserPreferences
	gets    int
	updates int
	writes  int
}

func newCountingStore(seed ...*models.UserPreferences) *countingStore {
	s := &countingStore{records: make(map[string]*models.UserPreferences)}
	for _, p := range seed {
		s.records[p.Name] = p.Clone()
	}
	return s
}

func (s *countingStore) Get(_ context.Context, name string) (*models.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	p, ok := s.records[name]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

func (s *countingStore) Update(_ context.Context, name string, fn MutateFunc) (*models.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	next, write, err := fn(s.records[name].Clone())
	if err != nil {
		return nil, err
	}
	if !write {
		return next, nil
	}
	s.writes++
	s.records[name] = next.Clone()
	return next, nil
}

func (s *countingStore) touched() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets + s.updates
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	store := newCountingStore(&models.UserPreferences{Name: "alice", FavoriteMeals: []string{"Pizza", "Pasta"}})
	svc := NewService(store)

	got, err := svc.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !slices.Equal(got.FavoriteMeals, []string{"Pizza", "Pasta"}) {
		t.Errorf("FavoriteMeals = %v, want [Pizza Pasta]", got.FavoriteMeals)
	}

	if _, err := svc.Get(context.Background(), "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(bob) error = %v, want ErrNotFound", err)
	}
}

func TestService_BlankInputNeverTouchesStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(*Service) error
	}{
		{"get empty name", func(s *Service) error { _, err := s.Get(context.Background(), ""); return err }},
		{"get whitespace name", func(s *Service) error { _, err := s.Get(context.Background(), "  \t"); return err }},
		{"add empty name", func(s *Service) error { _, err := s.AddFavorite(context.Background(), "", "Pizza"); return err }},
		{"add blank meal", func(s *Service) error { _, err := s.AddFavorite(context.Background(), "alice", " "); return err }},
		{"remove empty name", func(s *Service) error { _, err := s.RemoveFavorite(context.Background(), "", "Pizza"); return err }},
		{"remove blank meal", func(s *Service) error { _, err := s.RemoveFavorite(context.Background(), "alice", ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newCountingStore()
			err := tt.call(NewService(store))
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
			if n := store.touched(); n != 0 {
				t.Errorf("store touched %d times, want 0", n)
			}
		})
	}
}

func TestService_AddFavorite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		seed       []*models.UserPreferences
		meal       string
		want       []string
		wantWrites int
	}{
		{
			name:       "creates record on first add",
			meal:       "Pizza",
			want:       []string{"Pizza"},
			wantWrites: 1,
		},
		{
			name:       "appends new meal",
			seed:       []*models.UserPreferences{{Name: "alice", FavoriteMeals: []string{"Pizza"}}},
			meal:       "Pasta",
			want:       []string{"Pizza", "Pasta"},
			wantWrites: 1,
		},
		{
			name:       "duplicate is a no-op",
			seed:       []*models.UserPreferences{{Name: "alice", FavoriteMeals: []string{"Pizza"}}},
			meal:       "Pizza",
			want:       []string{"Pizza"},
			wantWrites: 0,
		},
		{
			name:       "match is case sensitive",
			seed:       []*models.UserPreferences{{Name: "alice", FavoriteMeals: []string{"Pizza"}}},
			meal:       "pizza",
			want:       []string{"Pizza", "pizza"},
			wantWrites: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newCountingStore(tt.seed...)
			svc := NewService(store)

			got, err := svc.AddFavorite(context.Background(), "alice", tt.meal)
			if err != nil {
				t.Fatalf("AddFavorite() error = %v", err)
			}
			if got.Name != "alice" {
				t.Errorf("Name = %q, want alice", got.Name)
			}
			if !slices.Equal(got.FavoriteMeals, tt.want) {
				t.Errorf("FavoriteMeals = %v, want %v", got.FavoriteMeals, tt.want)
			}
			if store.writes != tt.wantWrites {
				t.Errorf("writes = %d, want %d", store.writes, tt.wantWrites)
			}
		})
	}
}

func TestService_AddFavoriteTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newCountingStore()
	svc := NewService(store)
	ctx := context.Background()

	first, err := svc.AddFavorite(ctx, "alice", "Pizza")
	if err != nil {
		t.Fatalf("first AddFavorite() error = %v", err)
	}
	second, err := svc.AddFavorite(ctx, "alice", "Pizza")
	if err != nil {
		t.Fatalf("second AddFavorite() error = %v", err)
	}

	if !slices.Equal(first.FavoriteMeals, second.FavoriteMeals) {
		t.Errorf("second result %v differs from first %v", second.FavoriteMeals, first.FavoriteMeals)
	}
	if store.writes != 1 {
		t.Errorf("writes = %d, want 1", store.writes)
	}
}

func TestService_RemoveFavorite(t *testing.T) {
	t.Parallel()

	seed := &models.UserPreferences{Name: "alice", FavoriteMeals: []string{"Pizza", "Pasta", "Curry"}}

	tests := []struct {
		name       string
		seed       []*models.UserPreferences
		meal       string
		want       []string
		wantErr    error
		wantWrites int
	}{
		{
			name:       "removes present meal and keeps order",
			seed:       []*models.UserPreferences{seed},
			meal:       "Pasta",
			want:       []string{"Pizza", "Curry"},
			wantWrites: 1,
		},
		{
			name:       "absent meal is a no-op",
			seed:       []*models.UserPreferences{seed},
			meal:       "Sushi",
			want:       []string{"Pizza", "Pasta", "Curry"},
			wantWrites: 0,
		},
		{
			name:    "unknown user is not found",
			meal:    "Pizza",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newCountingStore(tt.seed...)
			svc := NewService(store)

			got, err := svc.RemoveFavorite(context.Background(), "alice", tt.meal)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RemoveFavorite() error = %v, want %v", err, tt.wantErr)
				}
				if store.writes != 0 {
					t.Errorf("writes = %d, want 0", store.writes)
				}
				return
			}
			if err != nil {
				t.Fatalf("RemoveFavorite() error = %v", err)
			}
			if !slices.Equal(got.FavoriteMeals, tt.want) {
				t.Errorf("FavoriteMeals = %v, want %v", got.FavoriteMeals, tt.want)
			}
			if store.writes != tt.wantWrites {
				t.Errorf("writes = %d, want %d", store.writes, tt.wantWrites)
			}
		})
	}
}

func TestService_RemoveLastFavoriteKeepsRecord(t *testing.T) {
	t.Parallel()

	store := newCountingStore(&models.UserPreferences{Name: "alice", FavoriteMeals: []string{"Pizza"}})
	svc := NewService(store)
	ctx := context.Background()

	if _, err := svc.RemoveFavorite(ctx, "alice", "Pizza"); err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.FavoriteMeals) != 0 {
		t.Errorf("FavoriteMeals = %v, want empty", got.FavoriteMeals)
	}
}
