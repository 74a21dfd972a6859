// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

// Package services adapts blocking components to suture.Service.
//
// Each wrapper implements Serve(ctx) error and String() string. Serve
// returns ctx.Err() after a requested shutdown and a wrapped error when the
// component fails, which lets suture restart it.
package services
