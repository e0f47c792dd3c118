// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package model

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// Save writes the artifact as gzip-compressed JSON. The write goes to a
// temp file in the target directory followed by an atomic rename, so an
// interrupted save never leaves a partial artifact at path.
func Save(a *Artifact, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeArtifact(tmp, a); err != nil {
		tmp.Close()          //nolint:errcheck // already failing
		os.Remove(tmpPath)   //nolint:errcheck // already failing
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath) //nolint:errcheck // already failing
		return fmt.Errorf("close temp artifact: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) //nolint:errcheck // already failing
		return fmt.Errorf("rename artifact into place: %w", err)
	}
	return nil
}

func writeArtifact(f *os.File, a *Artifact) error {
	gz := gzip.NewWriter(f)
	if err := json.NewEncoder(gz).Encode(a); err != nil {
		gz.Close() //nolint:errcheck // already failing
		return fmt.Errorf("encode artifact: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("flush artifact: %w", err)
	}
	return nil
}

// Load reads and validates an artifact written by Save.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress artifact: %w", err)
	}
	defer gz.Close() //nolint:errcheck // read-only stream

	var a Artifact
	if err := json.NewDecoder(gz).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid artifact: %w", err)
	}
	return &a, nil
}
