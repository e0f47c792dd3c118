// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package model

import (
	"strings"

	"github.com/tomtom215/reelrank/internal/dataset"
)

// Soup concatenates a movie's textual metadata into the single string
// the vectorizer consumes. Field order is fixed at overview, genres,
// keywords, cast, director so repeated builds see identical input.
// Cast is capped at topCast leading entries; genres and keywords are
// uncapped; the director contributes at most one name.
func Soup(movie dataset.MovieRow, credits dataset.CreditsRow, topCast int) string {
	return strings.Join([]string{
		movie.Overview,
		dataset.ParseNames(movie.Genres, "name", 0),
		dataset.ParseNames(movie.Keywords, "name", 0),
		dataset.ParseNames(credits.Cast, "name", topCast),
		dataset.Director(credits.Crew),
	}, " ")
}
