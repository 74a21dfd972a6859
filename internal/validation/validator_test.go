// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type mealRequest struct {
	Name  string `json:"name" validate:"notblank,max=20"`
	Meal  string `json:"meal" validate:"notblank"`
	Scope string `validate:"omitempty,oneof=today week"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input mealRequest
	}{
		{"plain", mealRequest{Name: "alice", Meal: "Pizza"}},
		{"meal with spaces inside", mealRequest{Name: "alice", Meal: "Spaghetti Carbonara"}},
		{"padded but not blank", mealRequest{Name: " alice ", Meal: " Pizza"}},
		{"optional oneof", mealRequest{Name: "alice", Meal: "Pizza", Scope: "week"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() error = %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     mealRequest
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"empty name", mealRequest{Name: "", Meal: "Pizza"}, "name", "notblank", "name must not be blank"},
		{"whitespace name", mealRequest{Name: " \t\n", Meal: "Pizza"}, "name", "notblank", "name must not be blank"},
		{"blank meal", mealRequest{Name: "alice", Meal: "   "}, "meal", "notblank", "meal must not be blank"},
		{"name too long", mealRequest{Name: strings.Repeat("a", 21), Meal: "Pizza"}, "name", "max", "name must be at most 20 characters"},
		{"bad oneof", mealRequest{Name: "alice", Meal: "Pizza", Scope: "year"}, "Scope", "oneof", "Scope must be one of: today week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("field/tag = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&mealRequest{Name: "alice", Meal: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "meal must not be blank" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "meal" {
		t.Errorf("Details[field] = %v, want meal", apiErr.Details["field"])
	}
	if _, ok := apiErr.Details["value"]; ok {
		t.Error("Details must not echo the rejected value")
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&mealRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Message != "name must not be blank; meal must not be blank" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %#v, want 2 entries", apiErr.Details["fields"])
	}
}

func TestNotBlank_NonStringField(t *testing.T) {
	t.Parallel()

	type counter struct {
		N int `validate:"notblank"`
	}
	if err := ValidateStruct(&counter{N: 3}); err == nil {
		t.Error("notblank on a non-string field must fail")
	}
}
