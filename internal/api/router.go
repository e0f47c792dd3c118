// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/metrics"
	"github.com/tomtom215/reelrank/internal/middleware"
)

// webDir holds the static landing page assets.
const webDir = "./web"

// NewRouter assembles the full HTTP surface: the JSON API under rate
// limiting, the Prometheus endpoint and the static landing page.
func NewRouter(h *Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Prometheus)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// API endpoints share one IP-keyed rate limit bucket.
	r.Group(func(r chi.Router) {
		r.Use(rateLimit(cfg))

		r.Post("/recommend", h.Recommend)
		r.Get("/movies", h.Movies)
		r.Get("/search", h.Search)
		r.Get("/api", h.Info)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Everything else is the static landing page.
	r.Get("/*", serveStaticOrIndex)

	return r
}

// rateLimit builds the IP-keyed limiter middleware, or a no-op when
// rate limiting is disabled.
func rateLimit(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.Security.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(r.URL.Path)
			writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}

// serveStaticOrIndex serves files from webDir and falls back to the
// landing page for unknown paths.
func serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css"):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".ico"):
		w.Header().Set("Cache-Control", "public, max-age=604800")
	default:
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if path != "/" && fileExists(path) {
		http.FileServer(http.Dir(webDir)).ServeHTTP(w, r)
		return
	}

	http.ServeFile(w, r, webDir+"/index.html")
}

func fileExists(path string) bool {
	f, err := http.Dir(webDir).Open(path)
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // read-only probe

	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return !stat.IsDir()
}
