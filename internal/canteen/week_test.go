// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package canteen

import (
	"testing"
	"time"
)

func TestParseWeekScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    WeekScheme
		wantErr bool
	}{
		{"", WeekSchemeISO, false},
		{"iso", WeekSchemeISO, false},
		{"iso-week-year", WeekSchemeISOWeekYear, false},
		{"us", WeekSchemeUS, false},
		{"ISO", "", true},
		{"gregorian", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseWeekScheme(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekScheme(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWeekScheme(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekScheme_YearWeek(t *testing.T) {
	t.Parallel()

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		scheme   WeekScheme
		t        time.Time
		wantYear int
		wantWeek int
	}{
		{"iso mid year", WeekSchemeISO, date(2025, time.May, 8), 2025, 19},
		{"iso-week-year mid year", WeekSchemeISOWeekYear, date(2025, time.May, 8), 2025, 19},
		{"us mid year", WeekSchemeUS, date(2025, time.May, 8), 2025, 19},

		// Monday 2024-12-30 belongs to ISO week 1 of 2025.
		{"iso year end keeps calendar year", WeekSchemeISO, date(2024, time.December, 30), 2024, 1},
		{"iso-week-year year end", WeekSchemeISOWeekYear, date(2024, time.December, 30), 2025, 1},
		{"us year end", WeekSchemeUS, date(2024, time.December, 30), 2024, 53},

		// Friday 2021-01-01 belongs to ISO week 53 of 2020.
		{"iso new year keeps calendar year", WeekSchemeISO, date(2021, time.January, 1), 2021, 53},
		{"iso-week-year new year", WeekSchemeISOWeekYear, date(2021, time.January, 1), 2020, 53},
		{"us new year", WeekSchemeUS, date(2021, time.January, 1), 2021, 1},

		// Sunday starts a new US week but not a new ISO week.
		{"us sunday", WeekSchemeUS, date(2025, time.January, 5), 2025, 2},
		{"iso sunday", WeekSchemeISO, date(2025, time.January, 5), 2025, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			year, week := tt.scheme.YearWeek(tt.t)
			if year != tt.wantYear || week != tt.wantWeek {
				t.Errorf("YearWeek(%s) = %d/%d, want %d/%d", tt.t.Format(time.DateOnly), year, week, tt.wantYear, tt.wantWeek)
			}
		})
	}
}
