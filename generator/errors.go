// SPDX-License-Identifier: MIT
// Package: densflow/generator
//
// errors.go — sentinel errors for the generator package.
//
// Callers branch with errors.Is; Generate attaches parameter context with %w.
// Option constructors panic on meaningless values instead of returning these.

package generator

import "errors"

// ErrTooFewVertices indicates n < 2; a flow network needs distinct endpoints.
var ErrTooFewVertices = errors.New("generator: too few vertices")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("generator: probability out of range")

// ErrNeedRandSource indicates 0 < p < 1 without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generator: rng is required")
