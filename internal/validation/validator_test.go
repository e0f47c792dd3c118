// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package validation

import (
	"strings"
	"testing"
)

type recommendBody struct {
	MovieName string `json:"movie_name" validate:"required"`
}

type pagingBody struct {
	Query string `json:"q" validate:"required,min=1,max=100"`
	TopN  int    `json:"top_n" validate:"gte=1,lte=50"`
}

func TestValidateStructPasses(t *testing.T) {
	if err := ValidateStruct(&recommendBody{MovieName: "Avatar"}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
	if err := ValidateStruct(&pagingBody{Query: "av", TopN: 5}); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructUsesJSONTagNames(t *testing.T) {
	err := ValidateStruct(&recommendBody{})
	if err == nil {
		t.Fatal("expected validation error for empty movie_name")
	}
	if got := err.Error(); got != "movie_name is required" {
		t.Errorf("expected 'movie_name is required', got %q", got)
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(errs))
	}
	if errs[0].Field() != "movie_name" {
		t.Errorf("expected field 'movie_name', got %q", errs[0].Field())
	}
	if errs[0].Tag() != "required" {
		t.Errorf("expected tag 'required', got %q", errs[0].Tag())
	}
}

func TestValidateStructMessages(t *testing.T) {
	tests := []struct {
		name string
		body pagingBody
		want string
	}{
		{
			name: "missing query",
			body: pagingBody{TopN: 5},
			want: "q is required",
		},
		{
			name: "query too long",
			body: pagingBody{Query: strings.Repeat("x", 101), TopN: 5},
			want: "q must be at most 100 characters",
		},
		{
			name: "top_n too small",
			body: pagingBody{Query: "av", TopN: 0},
			want: "top_n must be greater than or equal to 1",
		},
		{
			name: "top_n too large",
			body: pagingBody{Query: "av", TopN: 51},
			want: "top_n must be less than or equal to 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.body)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateStructJoinsMultipleErrors(t *testing.T) {
	err := ValidateStruct(&pagingBody{Query: "", TopN: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}
	msg := err.Error()
	if !strings.Contains(msg, "q is required") {
		t.Errorf("expected message to mention q, got %q", msg)
	}
	if !strings.Contains(msg, "top_n") {
		t.Errorf("expected message to mention top_n, got %q", msg)
	}
}

func TestGetValidatorReturnsSameInstance(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("expected GetValidator to return the singleton instance")
	}
}
