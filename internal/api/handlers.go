// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelrank/internal/cache"
	"github.com/tomtom215/reelrank/internal/config"
	"github.com/tomtom215/reelrank/internal/logging"
	"github.com/tomtom215/reelrank/internal/metrics"
	"github.com/tomtom215/reelrank/internal/recommend"
	"github.com/tomtom215/reelrank/internal/validation"
)

const serviceName = "reelrank"

// maxRequestBody bounds POST bodies; recommendation requests are tiny.
const maxRequestBody = 1 << 20

// Recommendation memoization. Entries are tiny (a title plus topN
// scored titles), so a small cache covers the popular-query hot path.
const (
	recommendCacheSize = 1024
	recommendCacheTTL  = 5 * time.Minute
)

// RecommendRequest is the body of POST /recommend.
type RecommendRequest struct {
	MovieName string `json:"movie_name" validate:"required"`
}

// cachedRecommendation memoizes one engine lookup. The echoed movie
// name is request-specific, so only the matched title and the scored
// list are cached.
type cachedRecommendation struct {
	matched string
	recs    []recommend.Recommendation
}

// Handlers bundles the dependencies shared by all HTTP handlers. The
// engine is immutable, so handlers need no synchronization beyond the
// cache's own locking.
type Handlers struct {
	engine   *recommend.Engine
	cfg      *config.Config
	recCache *cache.LRU
	version  string
}

// NewHandlers wires an engine and configuration into the handler set.
func NewHandlers(engine *recommend.Engine, cfg *config.Config, version string) *Handlers {
	return &Handlers{
		engine:   engine,
		cfg:      cfg,
		recCache: cache.NewLRU(recommendCacheSize, recommendCacheTTL),
		version:  version,
	}
}

// Recommend handles POST /recommend.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	outcome := metrics.OutcomeOK
	defer func() {
		metrics.RecordRecommendation(outcome, time.Since(start).Seconds())
	}()

	var req RecommendRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		outcome = metrics.OutcomeBadRequest
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Trim before validating so whitespace-only names fail required.
	req.MovieName = strings.TrimSpace(req.MovieName)
	if verr := validation.ValidateStruct(&req); verr != nil {
		outcome = metrics.OutcomeBadRequest
		writeError(w, r, http.StatusBadRequest, verr.Error())
		return
	}
	name := req.MovieName

	// Matching lowercases the query, so the cache key can too: any
	// casing of the same name resolves to the same row and scores.
	topN := h.cfg.API.DefaultTopN
	cacheKey := strings.ToLower(name) + "|" + strconv.Itoa(topN)

	var matched string
	var recs []recommend.Recommendation
	if v, ok := h.recCache.Get(cacheKey); ok {
		metrics.RecordCacheLookup(true)
		hit := v.(cachedRecommendation)
		matched, recs = hit.matched, hit.recs
	} else {
		metrics.RecordCacheLookup(false)
		var err error
		matched, recs, err = h.engine.Recommend(name, topN)
		if errors.Is(err, recommend.ErrNotFound) {
			outcome = metrics.OutcomeNotFound
			writeError(w, r, http.StatusNotFound, fmt.Sprintf("no movie found matching %q", name))
			return
		}
		if err != nil {
			outcome = metrics.OutcomeError
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}
		if recs == nil {
			recs = []recommend.Recommendation{}
		}
		h.recCache.Add(cacheKey, cachedRecommendation{matched: matched, recs: recs})
	}

	logging.Ctx(r.Context()).Info().
		Str("component", "api").
		Str("movie", name).
		Str("matched", matched).
		Int("recommendations", len(recs)).
		Msg("Served recommendations")

	writeJSON(w, r, http.StatusOK, RecommendResponse{
		Success:         true,
		Movie:           name,
		Recommendations: recs,
	})
}

// Movies handles GET /movies. The list is capped at the configured
// page size; count always reports the full model size.
func (h *Handlers) Movies(w http.ResponseWriter, r *http.Request) {
	titles := h.engine.Titles()
	total := len(titles)
	if len(titles) > h.cfg.API.MoviesPageSize {
		titles = titles[:h.cfg.API.MoviesPageSize]
	}

	writeJSON(w, r, http.StatusOK, MoviesResponse{
		Success: true,
		Count:   total,
		Movies:  titles,
	})
}

// Search handles GET /search?q=... The list is capped at the
// configured page size; count always reports the total match count.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter q is required")
		return
	}

	matches := h.engine.Search(query)
	total := len(matches)
	if len(matches) > h.cfg.API.SearchPageSize {
		matches = matches[:h.cfg.API.SearchPageSize]
	}
	if matches == nil {
		matches = []string{}
	}

	writeJSON(w, r, http.StatusOK, SearchResponse{
		Success: true,
		Query:   query,
		Count:   total,
		Movies:  matches,
	})
}

// Info handles GET /api with service metadata and model stats.
func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, InfoResponse{
		Success:      true,
		Service:      serviceName,
		Version:      h.version,
		Status:       "ok",
		Movies:       h.engine.Count(),
		ModelBuiltAt: h.engine.BuiltAt(),
		Endpoints: map[string]string{
			"POST /recommend": "top similar movies for a title",
			"GET /movies":     "list movie titles",
			"GET /search":     "search titles by substring",
			"GET /api":        "service metadata",
			"GET /metrics":    "prometheus metrics",
		},
	})
}
