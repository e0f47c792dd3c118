// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package dataset

import (
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// ParseNames decodes a JSON-encoded list of objects and joins the
// string values found at key with single spaces. When topN is positive,
// only the leading topN items are considered. Items whose key is absent
// or not a string are skipped. Whitespace inside each extracted name is
// removed so multi-word names survive tokenization as single tokens.
//
// The function is total: malformed, null or empty input yields an empty
// string, never an error. Real-world metadata is frequently malformed
// and a single bad cell must not abort a model build.
func ParseNames(raw, key string, topN int) string {
	items := decodeObjects(raw)
	if len(items) == 0 {
		return ""
	}
	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := item[key].(string)
		if !ok {
			continue
		}
		names = append(names, stripWhitespace(name))
	}

	return strings.Join(names, " ")
}

// Director scans a JSON-encoded crew list for the first entry whose job
// is "director" (case-insensitive) and returns that entry's name with
// whitespace removed. Returns empty string when no director is found or
// the input does not decode.
func Director(raw string) string {
	for _, item := range decodeObjects(raw) {
		job, ok := item["job"].(string)
		if !ok || !strings.EqualFold(job, "director") {
			continue
		}
		name, _ := item["name"].(string)
		return stripWhitespace(name)
	}
	return ""
}

func decodeObjects(raw string) []map[string]interface{} {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
