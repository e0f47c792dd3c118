// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package recommend serves similarity queries against a loaded model.
// The engine holds the artifact as immutable state for the process
// lifetime; every method is safe for concurrent use without locking
// because nothing mutates after construction.
package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/reelrank/internal/model"
)

// ErrNotFound reports that a query matched no movie title. It is a
// distinct outcome from a successful query with zero neighbors.
var ErrNotFound = errors.New("movie not found")

// Recommendation pairs a neighbor's title with its similarity score,
// rounded to four decimal digits.
type Recommendation struct {
	Title string  `json:"title"`
	Score float64 `json:"similarity_score"`
}

// Engine answers title queries against a precomputed model.
type Engine struct {
	movies      []model.Movie
	similarity  [][]float64
	titlesLower []string
	builtAt     time.Time
}

// NewEngine validates the artifact and indexes titles for matching.
// The artifact must not be mutated after being handed to the engine.
func NewEngine(artifact *model.Artifact) (*Engine, error) {
	if artifact == nil {
		return nil, fmt.Errorf("nil artifact")
	}
	if err := artifact.Validate(); err != nil {
		return nil, fmt.Errorf("artifact rejected: %w", err)
	}

	titlesLower := make([]string, len(artifact.Movies))
	for i, m := range artifact.Movies {
		titlesLower[i] = strings.ToLower(m.Title)
	}

	return &Engine{
		movies:      artifact.Movies,
		similarity:  artifact.Similarity,
		titlesLower: titlesLower,
		builtAt:     artifact.BuiltAt,
	}, nil
}

// Count returns the number of movies in the model.
func (e *Engine) Count() int {
	return len(e.movies)
}

// BuiltAt returns the model's build timestamp.
func (e *Engine) BuiltAt() time.Time {
	return e.builtAt
}

// match resolves a query to a row index. Case-insensitive exact title
// matches win over substring matches; within each tier the first row in
// table order wins.
func (e *Engine) match(query string) (int, bool) {
	q := strings.ToLower(query)
	for i, title := range e.titlesLower {
		if title == q {
			return i, true
		}
	}
	for i, title := range e.titlesLower {
		if strings.Contains(title, q) {
			return i, true
		}
	}
	return 0, false
}

// Recommend returns up to topN movies most similar to the first title
// matching query, ordered by descending score with ties broken by
// original row order. The matched row is excluded by dropping the head
// of the sorted list; its self-similarity of 1 ranks it first except
// when an identical row earlier in the table ties with it.
func (e *Engine) Recommend(query string, topN int) (string, []Recommendation, error) {
	idx, ok := e.match(query)
	if !ok {
		return "", nil, ErrNotFound
	}

	row := e.similarity[idx]
	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if row[order[a]] != row[order[b]] {
			return row[order[a]] > row[order[b]]
		}
		return order[a] < order[b]
	})

	// Positional self-exclusion: drop the top-ranked entry.
	order = order[1:]

	if topN < 0 {
		topN = 0
	}
	if topN > len(order) {
		topN = len(order)
	}

	recs := make([]Recommendation, 0, topN)
	for _, j := range order[:topN] {
		recs = append(recs, Recommendation{
			Title: e.movies[j].Title,
			Score: roundScore(row[j]),
		})
	}
	return e.movies[idx].Title, recs, nil
}

// Titles returns every movie title in table order. Callers needing a
// bounded payload cap the slice themselves.
func (e *Engine) Titles() []string {
	titles := make([]string, len(e.movies))
	for i, m := range e.movies {
		titles[i] = m.Title
	}
	return titles
}

// Search returns all titles containing query case-insensitively, in
// table order.
func (e *Engine) Search(query string) []string {
	q := strings.ToLower(query)
	var matches []string
	for i, title := range e.titlesLower {
		if strings.Contains(title, q) {
			matches = append(matches, e.movies[i].Title)
		}
	}
	return matches
}

func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
