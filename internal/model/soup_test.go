// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package model

import (
	"testing"

	"github.com/tomtom215/reelrank/internal/dataset"
)

func TestSoupFieldOrder(t *testing.T) {
	movie := dataset.MovieRow{
		Overview: "A marine on Pandora",
		Genres:   `[{"name": "Action"}, {"name": "Adventure"}]`,
		Keywords: `[{"name": "culture clash"}]`,
	}
	credits := dataset.CreditsRow{
		Cast: `[{"name": "Sam Worthington"}, {"name": "Zoe Saldana"}, {"name": "Sigourney Weaver"}, {"name": "Stephen Lang"}]`,
		Crew: `[{"job": "Producer", "name": "Jon Landau"}, {"job": "Director", "name": "James Cameron"}]`,
	}

	want := "A marine on Pandora Action Adventure cultureclash SamWorthington ZoeSaldana SigourneyWeaver JamesCameron"
	if got := Soup(movie, credits, 3); got != want {
		t.Errorf("Soup() = %q, want %q", got, want)
	}
}

func TestSoupEmptyFields(t *testing.T) {
	got := Soup(dataset.MovieRow{}, dataset.CreditsRow{}, 3)
	// Five empty fields joined by four separator spaces.
	if got != "    " {
		t.Errorf("Soup() = %q, want four spaces", got)
	}
}

func TestSoupMalformedMetadata(t *testing.T) {
	movie := dataset.MovieRow{
		Overview: "Story",
		Genres:   "definitely not json",
		Keywords: `[{"name": 42}]`,
	}
	credits := dataset.CreditsRow{
		Cast: `[{`,
		Crew: `[{"job": "Writer", "name": "Someone"}]`,
	}

	// Every structured field degrades to empty; the overview survives.
	if got := Soup(movie, credits, 3); got != "Story    " {
		t.Errorf("Soup() = %q, want overview plus empty fields", got)
	}
}

func TestSoupCastCap(t *testing.T) {
	credits := dataset.CreditsRow{
		Cast: `[{"name": "One"}, {"name": "Two"}, {"name": "Three"}, {"name": "Four"}]`,
	}

	got := Soup(dataset.MovieRow{}, credits, 2)
	if got != "   One Two " {
		t.Errorf("Soup() = %q, want cast capped at two names", got)
	}
}
