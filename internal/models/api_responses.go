// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package models

import (
	"time"
)

// APIResponse is the envelope used for error responses and health checks.
// Domain payloads (preferences, dishes, recommendations) are written raw so
// that the web client sees the same shapes the menu feed and recommendation
// service use.
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2025-05-08T12:00:00Z"},
//	  "error": {"code": "VALIDATION_ERROR", "message": "meal is required"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries the response timestamp.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError is a machine-readable code plus a human-readable message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
