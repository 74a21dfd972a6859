// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package canteen

import (
	"fmt"
	"time"
)

// WeekScheme selects how a date maps to the {year}/{week} pair of a feed URL.
type WeekScheme string

const (
	// WeekSchemeISO pairs the calendar year with the ISO-8601 week number.
	// In the last days of December this can yield week 1 of the old year,
	// and in early January week 52 or 53 of the new year.
	WeekSchemeISO WeekScheme = "iso"

	// WeekSchemeISOWeekYear pairs the ISO week-based year with the ISO week.
	WeekSchemeISOWeekYear WeekScheme = "iso-week-year"

	// WeekSchemeUS pairs the calendar year with a Sunday-start week in
	// which week 1 contains January 1.
	WeekSchemeUS WeekScheme = "us"
)

// ParseWeekScheme converts a configuration value into a WeekScheme.
// The empty string selects WeekSchemeISO.
func ParseWeekScheme(s string) (WeekScheme, error) {
	switch WeekScheme(s) {
	case "", WeekSchemeISO:
		return WeekSchemeISO, nil
	case WeekSchemeISOWeekYear:
		return WeekSchemeISOWeekYear, nil
	case WeekSchemeUS:
		return WeekSchemeUS, nil
	default:
		return "", fmt.Errorf("unknown week scheme %q", s)
	}
}

// YearWeek returns the year and week used to address t's menu.
// t should already be in the canteen's location.
func (s WeekScheme) YearWeek(t time.Time) (year, week int) {
	switch s {
	case WeekSchemeISOWeekYear:
		return t.ISOWeek()
	case WeekSchemeUS:
		jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
		offset := int(jan1.Weekday()) // Sunday = 0
		return t.Year(), (t.YearDay()-1+offset)/7 + 1
	default:
		_, w := t.ISOWeek()
		return t.Year(), w
	}
}
