// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package model builds and persists the recommendation model: joined
// movie metadata plus a precomputed pairwise similarity matrix.
package model

import (
	"fmt"
	"time"
)

// ArtifactVersion is bumped whenever the serialized layout changes.
const ArtifactVersion = 1

// Movie is one row of the model. Matrix row i describes Movies[i].
type Movie struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Soup     string `json:"soup"`
	Overview string `json:"overview"`
}

// Artifact is the complete precomputed model. Movies and Similarity are
// index-aligned: Similarity[i][j] is the cosine similarity between
// Movies[i] and Movies[j].
type Artifact struct {
	Version    int         `json:"version"`
	BuiltAt    time.Time   `json:"built_at"`
	Movies     []Movie     `json:"movies"`
	Similarity [][]float64 `json:"similarity"`
}

// Validate checks that the artifact is structurally sound: supported
// version and a square similarity matrix aligned with the movie list.
func (a *Artifact) Validate() error {
	if a.Version != ArtifactVersion {
		return fmt.Errorf("unsupported artifact version %d, want %d", a.Version, ArtifactVersion)
	}

	n := len(a.Movies)
	if len(a.Similarity) != n {
		return fmt.Errorf("similarity matrix has %d rows, want %d", len(a.Similarity), n)
	}
	for i, row := range a.Similarity {
		if len(row) != n {
			return fmt.Errorf("similarity row %d has %d columns, want %d", i, len(row), n)
		}
	}
	return nil
}
