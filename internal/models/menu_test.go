// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

const feedWeekJSON = `{
	"number": 19,
	"year": 2025,
	"version": "2.1",
	"days": [
		{
			"date": "2025-05-05",
			"dishes": [
				{"name": "Spaghetti Bolognese", "dish_type": "Pasta", "labels": ["GLUTEN"], "prices": {"students": {"base_price": 0}}}
			]
		},
		{
			"date": "2025-05-08",
			"dishes": [
				{"name": "Margherita Pizza", "dish_type": "Pizza", "labels": ["VEGETARIAN"]},
				{"name": "Chicken Curry", "dish_type": "Fleisch", "labels": []}
			]
		}
	]
}`

func TestWeek_DecodeIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	var week Week
	if err := json.Unmarshal([]byte(feedWeekJSON), &week); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if week.Number != 19 || week.Year != 2025 {
		t.Errorf("week = %d/%d, want 19/2025", week.Number, week.Year)
	}
	if len(week.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(week.Days))
	}
	if week.Days[1].Date != (Date{Year: 2025, Month: time.May, Day: 8}) {
		t.Errorf("Days[1].Date = %v, want 2025-05-08", week.Days[1].Date)
	}
	dish := week.Days[1].Dishes[0]
	if dish.Name != "Margherita Pizza" || dish.DishType != "Pizza" {
		t.Errorf("dish = %+v", dish)
	}
	if len(dish.Labels) != 1 || dish.Labels[0] != "VEGETARIAN" {
		t.Errorf("labels = %v, want [VEGETARIAN]", dish.Labels)
	}
}

func TestWeek_FindDay(t *testing.T) {
	t.Parallel()

	var week Week
	if err := json.Unmarshal([]byte(feedWeekJSON), &week); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	day, ok := week.FindDay(Date{Year: 2025, Month: time.May, Day: 8})
	if !ok {
		t.Fatal("expected 2025-05-08 to be found")
	}
	if got := DishNames(day.Dishes); len(got) != 2 || got[0] != "Margherita Pizza" || got[1] != "Chicken Curry" {
		t.Errorf("DishNames = %v", got)
	}

	if _, ok := week.FindDay(Date{Year: 2025, Month: time.May, Day: 7}); ok {
		t.Error("2025-05-07 is not in the feed and must not match")
	}

	var nilWeek *Week
	if _, ok := nilWeek.FindDay(Date{Year: 2025, Month: time.May, Day: 8}); ok {
		t.Error("nil week must not match")
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	berlin := time.FixedZone("CEST", 2*60*60)
	// 23:30 UTC on May 7 is already May 8 in Berlin.
	instant := time.Date(2025, time.May, 7, 23, 30, 0, 0, time.UTC)

	if got := DateOf(instant); got.String() != "2025-05-07" {
		t.Errorf("DateOf(UTC) = %s, want 2025-05-07", got)
	}
	if got := DateOf(instant.In(berlin)); got.String() != "2025-05-08" {
		t.Errorf("DateOf(Berlin) = %s, want 2025-05-08", got)
	}

	if _, err := ParseDate("08.05.2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}

	data, err := json.Marshal(Day{Date: Date{Year: 2025, Month: time.May, Day: 8}, Dishes: []Dish{}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"date":"2025-05-08","dishes":[]}` {
		t.Errorf("Marshal(Day) = %s", data)
	}

	var d Date
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("expected error for numeric date")
	}
}

func TestUserPreferences(t *testing.T) {
	t.Parallel()

	prefs := &UserPreferences{Name: "alice", FavoriteMeals: []string{"Pizza", "Pasta"}}
	if !prefs.HasFavorite("Pizza") || prefs.HasFavorite("pizza") {
		t.Error("HasFavorite must match exactly")
	}

	clone := prefs.Clone()
	clone.FavoriteMeals[0] = "Curry"
	if prefs.FavoriteMeals[0] != "Pizza" {
		t.Error("Clone must not alias the favorites slice")
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"name":"alice","favoriteMeals":["Pizza","Pasta"]}` {
		t.Errorf("Marshal(UserPreferences) = %s", data)
	}
}
