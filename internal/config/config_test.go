// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// mappedEnvVars lists every environment variable the loader understands,
// so tests can isolate themselves from the ambient process environment.
var mappedEnvVars = []string{
	"PORT", "HOST", "SERVER_TIMEOUT",
	"MODEL_PATH",
	"MOVIES_CSV", "CREDITS_CSV", "TRAINER_TOP_CAST", "TRAINER_WORKERS",
	"API_MOVIES_PAGE_SIZE", "API_SEARCH_PAGE_SIZE", "API_DEFAULT_TOP_N",
	"RATE_LIMIT_REQS", "RATE_LIMIT_WINDOW", "RATE_LIMIT_DISABLED", "CORS_ORIGINS",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_CALLER",
	"CONFIG_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range mappedEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Model.Path != "model/recommender_model.json.gz" {
		t.Errorf("Model.Path = %q, want default artifact path", cfg.Model.Path)
	}
	if cfg.Trainer.MoviesPath != "data/tmdb_5000_movies.csv" {
		t.Errorf("Trainer.MoviesPath = %q, want default", cfg.Trainer.MoviesPath)
	}
	if cfg.Trainer.TopCast != 3 {
		t.Errorf("Trainer.TopCast = %d, want 3", cfg.Trainer.TopCast)
	}
	if cfg.API.MoviesPageSize != 100 {
		t.Errorf("API.MoviesPageSize = %d, want 100", cfg.API.MoviesPageSize)
	}
	if cfg.API.SearchPageSize != 20 {
		t.Errorf("API.SearchPageSize = %d, want 20", cfg.API.SearchPageSize)
	}
	if cfg.API.DefaultTopN != 10 {
		t.Errorf("API.DefaultTopN = %d, want 10", cfg.API.DefaultTopN)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("MODEL_PATH", "/tmp/model.json.gz")
	t.Setenv("MOVIES_CSV", "/tmp/movies.csv")
	t.Setenv("SERVER_TIMEOUT", "10s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_DISABLED", "true")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Model.Path != "/tmp/model.json.gz" {
		t.Errorf("Model.Path = %q, want env override", cfg.Model.Path)
	}
	if cfg.Trainer.MoviesPath != "/tmp/movies.csv" {
		t.Errorf("Trainer.MoviesPath = %q, want env override", cfg.Trainer.MoviesPath)
	}
	if cfg.Server.Timeout != 10*time.Second {
		t.Errorf("Server.Timeout = %v, want 10s", cfg.Server.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled = false, want true")
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.Security.CORSOrigins[i] != origin {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], origin)
		}
	}
	// Untouched settings keep their defaults
	if cfg.API.DefaultTopN != 10 {
		t.Errorf("API.DefaultTopN = %d, want default 10", cfg.API.DefaultTopN)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	configYAML := `
server:
  port: 6000
api:
  default_top_n: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 6000 {
		t.Errorf("Server.Port = %d, want 6000 from file", cfg.Server.Port)
	}
	if cfg.API.DefaultTopN != 5 {
		t.Errorf("API.DefaultTopN = %d, want 5 from file", cfg.API.DefaultTopN)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default alongside file values", cfg.Server.Host)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 6000\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want env override 7000", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "empty model path",
			mutate:  func(c *Config) { c.Model.Path = "" },
			wantErr: true,
		},
		{
			name:    "empty movies path",
			mutate:  func(c *Config) { c.Trainer.MoviesPath = "" },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Trainer.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "zero movies page size",
			mutate:  func(c *Config) { c.API.MoviesPageSize = 0 },
			wantErr: true,
		},
		{
			name:    "zero top n",
			mutate:  func(c *Config) { c.API.DefaultTopN = 0 },
			wantErr: true,
		},
		{
			name:    "zero rate limit reqs",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: true,
		},
		{
			name: "zero rate limit reqs allowed when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitDisabled = true
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
