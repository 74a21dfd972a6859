// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package canteen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/mensarec/internal/logging"
	"github.com/tomtom215/mensarec/internal/metrics"
	"github.com/tomtom215/mensarec/internal/models"
)

// ServiceConfig configures a Service. Zero values select SystemClock,
// time.Local and WeekSchemeISO.
type ServiceConfig struct {
	Clock      Clock
	Location   *time.Location
	WeekScheme WeekScheme
}

type weekURLer interface {
	WeekURL(canteenID string, year, week int) string
}

// Service resolves today's menu for a canteen.
type Service struct {
	feed     WeekFetcher
	clock    Clock
	location *time.Location
	scheme   WeekScheme
}

// NewService creates a Service that reads weeks from feed.
func NewService(feed WeekFetcher, cfg ServiceConfig) *Service {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.WeekScheme == "" {
		cfg.WeekScheme = WeekSchemeISO
	}
	return &Service{
		feed:     feed,
		clock:    cfg.Clock,
		location: cfg.Location,
		scheme:   cfg.WeekScheme,
	}
}

// lookupDate is today's date and the feed week it belongs to, resolved
// from a single clock reading.
type lookupDate struct {
	date       models.Date
	year, week int
}

func (s *Service) resolveToday() lookupDate {
	now := s.clock.Now().In(s.location)
	year, week := s.scheme.YearWeek(now)
	return lookupDate{date: models.DateOf(now), year: year, week: week}
}

// TodayMenu fetches the week containing today and returns today's entry.
func (s *Service) TodayMenu(ctx context.Context, canteenID string) (*models.Day, error) {
	return s.menuFor(ctx, canteenID, s.resolveToday())
}

func (s *Service) menuFor(ctx context.Context, canteenID string, at lookupDate) (*models.Day, error) {
	if strings.TrimSpace(canteenID) == "" {
		return nil, fmt.Errorf("%w: canteen id is empty", ErrFeedUnavailable)
	}

	menu, err := s.feed.FetchWeek(ctx, canteenID, at.year, at.week)
	if err != nil {
		return nil, err
	}

	day, ok := menu.FindDay(at.date)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s week %d/%02d", ErrDayNotFound, at.date, canteenID, at.year, at.week)
	}
	return day, nil
}

// GetTodayMeals returns today's dishes for canteenID in feed order. It
// never returns nil. Every failure is logged and yields an empty list.
func (s *Service) GetTodayMeals(ctx context.Context, canteenID string) []models.Dish {
	at := s.resolveToday()
	day, err := s.menuFor(ctx, canteenID, at)
	if err != nil {
		event := logging.Ctx(ctx).Warn().
			Err(err).
			Str("canteen", canteenID).
			Int("year", at.year).
			Int("week", at.week).
			Str("date", at.date.String())
		if u, ok := s.feed.(weekURLer); ok {
			if weekURL := u.WeekURL(canteenID, at.year, at.week); weekURL != "" {
				event = event.Str("url", weekURL)
			}
		}
		event.Msg("No menu available for today")

		metrics.RecordMenuLookup(canteenID, "failed")
		return []models.Dish{}
	}

	if len(day.Dishes) == 0 {
		metrics.RecordMenuLookup(canteenID, "empty")
		return []models.Dish{}
	}

	metrics.RecordMenuLookup(canteenID, "found")
	dishes := make([]models.Dish, len(day.Dishes))
	copy(dishes, day.Dishes)
	return dishes
}
