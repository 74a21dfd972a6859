// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is the calendar date format used by the menu feed.
const DateLayout = "2006-01-02"

// Week is one published week of a canteen menu, fetched from
// {base}/{canteen}/{year}/{week}.json. Unknown feed fields are ignored.
type Week struct {
	Number int   `json:"number"`
	Year   int   `json:"year"`
	Days   []Day `json:"days"`
}

// Day is the menu of a single calendar date.
type Day struct {
	Date   Date   `json:"date"`
	Dishes []Dish `json:"dishes"`
}

// Dish is one menu item as published by the feed.
type Dish struct {
	Name     string   `json:"name"`
	DishType string   `json:"dish_type"`
	Labels   []string `json:"labels"`
}

// DishNames projects dishes to their names, preserving order.
func DishNames(dishes []Dish) []string {
	names := make([]string, 0, len(dishes))
	for i := range dishes {
		names = append(names, dishes[i].Name)
	}
	return names
}

// FindDay returns the day whose date equals date, or false.
func (w *Week) FindDay(date Date) (*Day, bool) {
	if w == nil {
		return nil, false
	}
	for i := range w.Days {
		if w.Days[i].Date == date {
			return &w.Days[i], true
		}
	}
	return nil, false
}

// Date is a calendar date without time or zone. Two Dates are equal when
// year, month and day match, so == is the right comparison.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. null leaves d unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
