// SPDX-License-Identifier: MIT

// Package generator produces random dense capacity matrices for exercising
// max-flow solvers. The core solver never depends on it.
//
// Model: every ordered pair (i,j) with i != j becomes an edge independently
// with probability p; its capacity is uniform in the configured range.
// Trials run in row-major order (i asc, j asc), so a fixed seed yields the
// same matrix on every platform.
package generator

import "fmt"

const methodGenerate = "Generate"

// Generate returns an n×n capacity matrix with zero diagonal.
//
// Errors:
//   - ErrTooFewVertices when n < 2.
//   - ErrInvalidProbability when p is outside [0,1].
//   - ErrNeedRandSource when 0 < p < 1 and no RNG option was given.
//     For p == 0 or p == 1 the edge set is fixed; with no RNG every capacity
//     is then the range minimum.
//
// Complexity: O(n²) time and memory.
func Generate(n int, p float64, opts ...Option) ([][]int64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodGenerate, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	span := cfg.hi - cfg.lo + 1
	capacity := make([][]int64, n)
	for i := range capacity {
		capacity[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng == nil {
				if p == 1 {
					capacity[i][j] = cfg.lo
				}
				continue
			}
			if rng.Float64() < p {
				capacity[i][j] = cfg.lo + rng.Int63n(span)
			}
		}
	}

	return capacity, nil
}
