// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package metrics provides Prometheus instrumentation for the HTTP API
// and the recommendation engine. All metrics are registered on the
// default registry and exposed via the /metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes recorded by RecordRecommendation.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

var (
	// HTTPRequestsTotal counts API requests by method, endpoint and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// HTTPRequestDuration tracks request latency by method and endpoint.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelrank_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// HTTPActiveRequests tracks the number of requests currently in flight.
	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_http_active_requests",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// RateLimitHits counts requests rejected by the rate limiter.
	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_rate_limit_hits_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"endpoint"},
	)

	// RecommendationsTotal counts recommendation lookups by outcome.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_recommendations_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"outcome"},
	)

	// RecommendationDuration tracks the latency of recommendation lookups.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelrank_recommendation_duration_seconds",
			Help:    "Recommendation lookup duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// RecommendCacheLookups counts recommendation cache hits and misses.
	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelrank_recommend_cache_lookups_total",
			Help: "Total number of recommendation cache lookups by result",
		},
		[]string{"result"},
	)

	// ModelMovies reports the number of movies in the loaded model.
	ModelMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_model_movies",
			Help: "Number of movies in the loaded recommendation model",
		},
	)

	// ModelBuiltTimestamp reports when the loaded model was built.
	ModelBuiltTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelrank_model_built_timestamp_seconds",
			Help: "Unix timestamp of when the loaded model was built",
		},
	)
)

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// TrackActiveRequest adjusts the in-flight request gauge. Call with true
// when a request starts and false when it completes.
func TrackActiveRequest(active bool) {
	if active {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	RateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records a recommendation lookup and its latency.
func RecordRecommendation(outcome string, duration float64) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration)
}

// RecordCacheLookup records a recommendation cache hit or miss.
func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RecommendCacheLookups.WithLabelValues(result).Inc()
}

// SetModelInfo publishes gauges describing the currently loaded model.
func SetModelInfo(movieCount int, builtAt time.Time) {
	ModelMovies.Set(float64(movieCount))
	if !builtAt.IsZero() {
		ModelBuiltTimestamp.Set(float64(builtAt.Unix()))
	}
}
