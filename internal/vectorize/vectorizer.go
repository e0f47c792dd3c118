// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package vectorize implements a TF-IDF text vectorizer and sparse
// cosine similarity. Term weights use raw term frequency, smoothed
// inverse document frequency and L2 row normalization, with vocabulary
// indices assigned in lexicographic term order. Repeated runs over the
// same corpus produce bit-identical output.
package vectorize

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Tokenize lowercases the text and extracts maximal runs of letters,
// digits and underscores that are at least two runes long. Stop words
// are removed after tokenization, so a stop word embedded in a longer
// token survives.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)

	var tokens []string
	start := -1
	runes := 0
	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
				runes = 0
			}
			runes++
			continue
		}
		if start >= 0 {
			if runes >= 2 {
				if tok := lower[start:i]; !isStopWord(tok) {
					tokens = append(tokens, tok)
				}
			}
			start = -1
		}
	}
	if start >= 0 && runes >= 2 {
		if tok := lower[start:]; !isStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Vectorizer holds a learned vocabulary and per-term inverse document
// frequencies. A vectorizer is tied to the corpus it was fitted on;
// Transform silently drops terms outside the vocabulary.
type Vectorizer struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// FitTransform learns the vocabulary from the corpus and returns the
// fitted vectorizer together with one normalized row per document.
func FitTransform(corpus []string) (*Vectorizer, []Vector) {
	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tf[tok]++
		}
		counts[i] = tf
		for tok := range tf {
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		vocabulary[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1. The +1 terms keep
		// idf finite and positive even for terms in every document.
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v := &Vectorizer{vocabulary: vocabulary, terms: terms, idf: idf}

	rows := make([]Vector, len(corpus))
	for i, tf := range counts {
		rows[i] = v.vectorize(tf)
	}
	return v, rows
}

// Fit learns the vocabulary and IDF weights without materializing rows.
func Fit(corpus []string) *Vectorizer {
	v, _ := FitTransform(corpus)
	return v
}

// Transform maps a single document onto the fitted vocabulary.
func (v *Vectorizer) Transform(doc string) Vector {
	tf := make(map[string]int)
	for _, tok := range Tokenize(doc) {
		tf[tok]++
	}
	return v.vectorize(tf)
}

// VocabularySize returns the number of learned terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

// vectorize converts term counts to a normalized sparse row. Indices
// are sorted ascending so later dot products sum in a fixed order.
func (v *Vectorizer) vectorize(tf map[string]int) Vector {
	indices := make([]int, 0, len(tf))
	for term := range tf {
		if idx, ok := v.vocabulary[term]; ok {
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sumSquares float64
	for i, idx := range indices {
		w := float64(tf[v.terms[idx]]) * v.idf[idx]
		values[i] = w
		sumSquares += w * w
	}

	if norm := math.Sqrt(sumSquares); norm > 0 {
		for i := range values {
			values[i] /= norm
		}
	}

	return Vector{Indices: indices, Values: values}
}
