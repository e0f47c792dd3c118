// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package config provides centralized configuration for both Reelrank
// binaries, loaded with Koanf v2 in three layers:
//
//  1. Defaults: built-in values that run the demo with zero setup
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting (PORT alone matches the
//     original deployment surface)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Model    ModelConfig    `koanf:"model"`
	Trainer  TrainerConfig  `koanf:"trainer"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings for the query service.
//
// Environment Variables:
//   - PORT: listen port (default: 5000)
//   - HOST: bind address (default: 0.0.0.0)
//   - SERVER_TIMEOUT: read/write timeout (default: 30s)
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// ModelConfig locates the serialized model artifact shared by the trainer
// (writer) and the server (reader).
//
// Environment Variables:
//   - MODEL_PATH: artifact file path (default: model/recommender_model.json.gz)
type ModelConfig struct {
	Path string `koanf:"path"`
}

// TrainerConfig holds the offline build inputs and tuning knobs.
//
// Environment Variables:
//   - MOVIES_CSV: movie metadata CSV path
//   - CREDITS_CSV: credits CSV path
//   - TRAINER_WORKERS: similarity workers, 0 = GOMAXPROCS
type TrainerConfig struct {
	// MoviesPath is the movie metadata CSV (id, title, overview, genres, keywords).
	MoviesPath string `koanf:"movies_path"`

	// CreditsPath is the credits CSV (movie_id, cast, crew).
	CreditsPath string `koanf:"credits_path"`

	// TopCast caps how many leading cast names feed the soup.
	TopCast int `koanf:"top_cast"`

	// Workers bounds the similarity worker pool. 0 means GOMAXPROCS.
	Workers int `koanf:"workers"`
}

// APIConfig holds response-shaping limits for the query service.
type APIConfig struct {
	// MoviesPageSize caps the /movies payload (count still reports the full total).
	MoviesPageSize int `koanf:"movies_page_size"`

	// SearchPageSize caps the /search payload (count still reports all matches).
	SearchPageSize int `koanf:"search_page_size"`

	// DefaultTopN is the recommendation list length.
	DefaultTopN int `koanf:"default_top_n"`
}

// SecurityConfig holds rate limiting and CORS settings.
// There is no authentication surface in this service.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks that the configuration is coherent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateTrainer(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	return c.validateSecurity()
}

// validateServer validates the HTTP server settings.
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	return nil
}

// validateModel validates the artifact location.
func (c *Config) validateModel() error {
	if c.Model.Path == "" {
		return fmt.Errorf("MODEL_PATH must not be empty")
	}
	return nil
}

// validateTrainer validates the offline build settings.
func (c *Config) validateTrainer() error {
	if c.Trainer.MoviesPath == "" {
		return fmt.Errorf("MOVIES_CSV must not be empty")
	}
	if c.Trainer.CreditsPath == "" {
		return fmt.Errorf("CREDITS_CSV must not be empty")
	}
	if c.Trainer.TopCast < 0 {
		return fmt.Errorf("trainer top_cast must not be negative, got %d", c.Trainer.TopCast)
	}
	if c.Trainer.Workers < 0 {
		return fmt.Errorf("TRAINER_WORKERS must not be negative, got %d", c.Trainer.Workers)
	}
	return nil
}

// validateAPI validates the response-shaping limits.
func (c *Config) validateAPI() error {
	if c.API.MoviesPageSize < 1 {
		return fmt.Errorf("api movies_page_size must be at least 1, got %d", c.API.MoviesPageSize)
	}
	if c.API.SearchPageSize < 1 {
		return fmt.Errorf("api search_page_size must be at least 1, got %d", c.API.SearchPageSize)
	}
	if c.API.DefaultTopN < 1 {
		return fmt.Errorf("api default_top_n must be at least 1, got %d", c.API.DefaultTopN)
	}
	return nil
}

// validateSecurity validates rate limiting settings.
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}
