// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package api exposes the recommendation engine over HTTP. Response
// shapes are flat and stable; every body carries a success flag and
// errors carry a plain message string.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/recommend"
)

// RecommendResponse is the body of a successful POST /recommend.
type RecommendResponse struct {
	Success         bool                       `json:"success"`
	Movie           string                     `json:"movie"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// MoviesResponse is the body of GET /movies. Count reports the full
// model size even when the movie list is capped.
type MoviesResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Movies  []string `json:"movies"`
}

// SearchResponse is the body of GET /search. Count reports the total
// number of matches even when the movie list is capped.
type SearchResponse struct {
	Success bool     `json:"success"`
	Query   string   `json:"query"`
	Count   int      `json:"count"`
	Movies  []string `json:"movies"`
}

// InfoResponse is the body of GET /api.
type InfoResponse struct {
	Success      bool              `json:"success"`
	Service      string            `json:"service"`
	Version      string            `json:"version"`
	Status       string            `json:"status"`
	Movies       int               `json:"movies"`
	ModelBuiltAt time.Time         `json:"model_built_at"`
	Endpoints    map[string]string `json:"endpoints"`
}

// ErrorResponse is the body of any failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON writes a response body with proper headers. Encode
// failures are logged; by then the status line is already on the wire.
func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a failed response with a plain message.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, r, statusCode, ErrorResponse{Success: false, Error: message})
}
