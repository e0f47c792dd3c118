// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package model

import (
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/reelrank/internal/dataset"
	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/vectorize"
)

// DefaultTopCast is the number of leading cast members folded into each
// soup. Lead performers dominate content similarity; longer cast tails
// mostly add noise.
const DefaultTopCast = 3

// Options configure a model build.
type Options struct {
	// TopCast caps cast names per movie; <= 0 uses DefaultTopCast.
	TopCast int
	// Workers sets similarity matrix parallelism; <= 0 uses GOMAXPROCS.
	Workers int
}

// Build joins the movie and credits tables, derives soups, fits the
// vectorizer and computes the full pairwise similarity matrix. Rows are
// indexed densely in movie-table order, restricted to ids present in
// both tables.
func Build(movies *dataset.MoviesTable, credits []dataset.CreditsRow, opts Options) (*Artifact, error) {
	logger := logging.With().Str("component", "model").Logger()

	topCast := opts.TopCast
	if topCast <= 0 {
		topCast = DefaultTopCast
	}

	// First credits row wins for a duplicated movie_id.
	creditsByID := make(map[int]dataset.CreditsRow, len(credits))
	for _, row := range credits {
		if _, ok := creditsByID[row.MovieID]; !ok {
			creditsByID[row.MovieID] = row
		}
	}

	rows := make([]Movie, 0, len(movies.Rows))
	corpus := make([]string, 0, len(movies.Rows))
	for _, movie := range movies.Rows {
		credit, ok := creditsByID[movie.ID]
		if !ok {
			continue
		}

		title := movie.Title
		if !movies.HasTitle {
			title = movie.OriginalTitle
		}

		soup := Soup(movie, credit, topCast)
		rows = append(rows, Movie{
			ID:       movie.ID,
			Title:    title,
			Soup:     soup,
			Overview: movie.Overview,
		})
		corpus = append(corpus, soup)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("join produced no rows: no shared movie ids between tables")
	}
	logger.Info().
		Int("movies", len(movies.Rows)).
		Int("credits", len(credits)).
		Int("joined", len(rows)).
		Msg("Joined movie and credits tables")

	vectorizer, vectors := vectorize.FitTransform(corpus)
	if vectorizer.VocabularySize() == 0 {
		return nil, fmt.Errorf("fitted vocabulary is empty: all soups reduce to stop words")
	}
	logger.Info().
		Int("vocabulary_size", vectorizer.VocabularySize()).
		Msg("Fitted TF-IDF vectorizer")

	start := time.Now()
	matrix := vectorize.Matrix(vectors, opts.Workers)
	logger.Info().
		Int("rows", len(matrix)).
		Dur("duration", time.Since(start)).
		Msg("Computed similarity matrix")

	return &Artifact{
		Version:    ArtifactVersion,
		BuiltAt:    time.Now().UTC(),
		Movies:     rows,
		Similarity: matrix,
	}, nil
}

// BuildFromFiles checks that both input files exist before any reading
// or computation starts, then loads them and runs Build. A missing
// input is reported as a precondition failure and no artifact work
// begins.
func BuildFromFiles(moviesPath, creditsPath string, opts Options) (*Artifact, error) {
	for _, path := range []string{moviesPath, creditsPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("input file precondition failed: %w", err)
		}
	}

	movies, err := dataset.LoadMovies(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	credits, err := dataset.LoadCredits(creditsPath)
	if err != nil {
		return nil, fmt.Errorf("load credits: %w", err)
	}

	return Build(movies, credits, opts)
}
