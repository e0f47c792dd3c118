// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package dataset loads the TMDB movie and credits CSV exports and
// parses their JSON-encoded metadata columns. Loaders are tolerant of
// optional columns but fail fast when a join key column is missing.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MovieRow is a single row from the movies table. Genres and Keywords
// hold the raw JSON-encoded column values; ParseNames decodes them.
type MovieRow struct {
	ID            int
	Title         string
	OriginalTitle string
	Overview      string
	Genres        string
	Keywords      string
}

// MoviesTable is the loaded movies CSV. HasTitle reports whether the
// source file carried a title column; when false, callers fall back to
// the original title.
type MoviesTable struct {
	Rows     []MovieRow
	HasTitle bool
}

// CreditsRow is a single row from the credits table. Cast and Crew hold
// the raw JSON-encoded column values.
type CreditsRow struct {
	MovieID int
	Cast    string
	Crew    string
}

// headerIndex maps trimmed column names to their positions. The first
// cell is stripped of a UTF-8 BOM if present.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// field returns the value of the named column for a row, or empty
// string when the column is absent or the row is short.
func field(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func newReader(f io.Reader) *csv.Reader {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// LoadMovies reads the movies CSV. The id column is required; all other
// columns are optional and default to empty strings.
func LoadMovies(path string) (*MoviesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open movies file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := newReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read movies header: %w", err)
	}
	idx := headerIndex(header)

	if _, ok := idx["id"]; !ok {
		return nil, fmt.Errorf("missing column %q in %s", "id", path)
	}
	_, hasTitle := idx["title"]

	table := &MoviesTable{HasTitle: hasTitle}
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read movies row %d: %w", rowNum, err)
		}

		rawID := strings.TrimSpace(field(row, idx, "id"))
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, fmt.Errorf("movies row %d: invalid id %q", rowNum, rawID)
		}

		table.Rows = append(table.Rows, MovieRow{
			ID:            id,
			Title:         field(row, idx, "title"),
			OriginalTitle: field(row, idx, "original_title"),
			Overview:      field(row, idx, "overview"),
			Genres:        field(row, idx, "genres"),
			Keywords:      field(row, idx, "keywords"),
		})
	}

	return table, nil
}

// LoadCredits reads the credits CSV. The movie_id column is required.
func LoadCredits(path string) ([]CreditsRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open credits file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := newReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read credits header: %w", err)
	}
	idx := headerIndex(header)

	if _, ok := idx["movie_id"]; !ok {
		return nil, fmt.Errorf("missing column %q in %s", "movie_id", path)
	}

	var rows []CreditsRow
	for rowNum := 2; ; rowNum++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read credits row %d: %w", rowNum, err)
		}

		rawID := strings.TrimSpace(field(row, idx, "movie_id"))
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, fmt.Errorf("credits row %d: invalid movie_id %q", rowNum, rawID)
		}

		rows = append(rows, CreditsRow{
			MovieID: id,
			Cast:    field(row, idx, "cast"),
			Crew:    field(row, idx, "crew"),
		})
	}

	return rows, nil
}
