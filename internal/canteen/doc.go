// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package canteen looks up today's dishes from a canteen's published weekly menu.

The menu feed (https://tum-dev.github.io/eat-api/) publishes one JSON
document per canteen and week:

	GET {base}/{canteen}/{year}/{week}.json

where week is zero padded to two digits. FeedClient fetches and decodes
these documents through a circuit breaker. Service derives the year and
week for "today" from an injected Clock and a WeekScheme, fetches the week
and returns the dishes of the matching day.

GetTodayMeals never fails. Transport errors, bad status codes, malformed
documents, missing days and an open circuit all produce an empty list and
a warning log. TodayMenu exposes the same lookup with the error intact.
*/
package canteen
