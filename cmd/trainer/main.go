// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package main is the Reelrank model trainer.
//
// The trainer reads the TMDB movie and credits CSV exports, builds the
// TF-IDF cosine similarity model, and writes it as a gzip-compressed
// JSON artifact for the query service to load. Training is a pure
// offline step: the query service never touches the CSVs.
//
// # Example Usage
//
//	export MOVIES_CSV=data/tmdb_5000_movies.csv
//	export CREDITS_CSV=data/tmdb_5000_credits.csv
//	export MODEL_PATH=model/recommender_model.json.gz
//	./reelrank-trainer
//
// The similarity computation is parallelized; TRAINER_WORKERS bounds
// the worker pool (default: GOMAXPROCS).
package main

import (
	"time"

	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/model"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("movies_csv", cfg.Trainer.MoviesPath).
		Str("credits_csv", cfg.Trainer.CreditsPath).
		Int("top_cast", cfg.Trainer.TopCast).
		Int("workers", cfg.Trainer.Workers).
		Msg("Starting Reelrank trainer")

	start := time.Now()

	artifact, err := model.BuildFromFiles(cfg.Trainer.MoviesPath, cfg.Trainer.CreditsPath, model.Options{
		TopCast: cfg.Trainer.TopCast,
		Workers: cfg.Trainer.Workers,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Model build failed")
	}

	if err := model.Save(artifact, cfg.Model.Path); err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Model.Path).Msg("Failed to write model artifact")
	}

	logging.Info().
		Int("movies", len(artifact.Movies)).
		Str("path", cfg.Model.Path).
		Dur("duration", time.Since(start)).
		Msg("Model artifact written")
}
