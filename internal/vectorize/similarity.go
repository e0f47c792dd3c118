// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

package vectorize

import (
	"runtime"
	"sync"
)

// Vector is a sparse TF-IDF row. Indices are sorted ascending and
// Values[i] is the weight of the term at Indices[i]. Rows produced by
// the vectorizer are L2-normalized, so Dot between two rows is their
// cosine similarity.
type Vector struct {
	Indices []int
	Values  []float64
}

// Dot computes the inner product of two sparse vectors with a merge
// join over their sorted indices. The summation order is fully
// determined by the index order, which makes results reproducible and
// Dot(a, b) bitwise equal to Dot(b, a).
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Matrix computes the full n x n pairwise similarity matrix. Rows are
// distributed across workers in contiguous chunks; workers <= 0 uses
// GOMAXPROCS. Every worker computes complete rows, so the output is
// independent of the worker count.
func Matrix(vectors []Vector, workers int) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	if n == 0 {
		return matrix
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				row := make([]float64, n)
				for j := 0; j < n; j++ {
					row[j] = Dot(vectors[i], vectors[j])
				}
				matrix[i] = row
			}
		}(start, end)
	}
	wg.Wait()

	return matrix
}
