// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package main is the entry point for the Reelrank query service.
//
// Reelrank serves content-based movie recommendations from a
// precomputed TF-IDF cosine similarity model. The model artifact is
// produced offline by cmd/trainer; this binary loads it once at
// startup and answers queries entirely from memory.
//
// # Application Architecture
//
// The server runs under a Suture v4 supervision tree:
//
//	RootSupervisor ("reelrank")
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server (recommend, movies, search, api, metrics)
//
// Component initialization order:
//
//  1. Configuration: Koanf v2 with environment variables and config files
//  2. Logging: zerolog with configurable level and format
//  3. Model: load and validate the gzip JSON artifact
//  4. Engine: index titles for matching
//  5. HTTP Server: Chi router with CORS, rate limiting, and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (PORT, MODEL_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//
// # Example Usage
//
// Serve a previously trained model:
//
//	export MODEL_PATH=model/recommender_model.json.gz
//	export PORT=5000
//	./reelrank-server
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelrank/internal/api"
	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/metrics"
	"github.com/tomtom215/reelrank/internal/model"
	"github.com/tomtom215/reelrank/internal/recommend"
	"github.com/tomtom215/reelrank/internal/supervisor"
	"github.com/tomtom215/reelrank/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet, the default logger applies.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Reelrank query service")
	logging.Info().
		Str("model_path", cfg.Model.Path).
		Int("default_top_n", cfg.API.DefaultTopN).
		Bool("rate_limit_disabled", cfg.Security.RateLimitDisabled).
		Msg("Configuration loaded")

	artifact, err := model.Load(cfg.Model.Path)
	if err != nil {
		logging.Fatal().
			Err(err).
			Str("path", cfg.Model.Path).
			Msg("Failed to load model artifact; run the trainer first (cmd/trainer)")
	}

	engine, err := recommend.NewEngine(artifact)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}
	metrics.SetModelInfo(engine.Count(), engine.BuiltAt())
	logging.Info().
		Int("movies", engine.Count()).
		Time("built_at", engine.BuiltAt()).
		Msg("Model loaded")

	handlers := api.NewHandlers(engine, cfg, version)
	router := api.NewRouter(handlers, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog needs an slog logger; bridge it to zerolog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
