// SPDX-License-Identifier: MIT

// Package network holds the Flow State of a single max-flow computation:
// an immutable dense capacity matrix and a mutable flow matrix of the same
// shape, both stored row-major in flat slices.
//
// Invariants maintained by every mutation (Push):
//
//	F[u][v] == -F[v][u]            antisymmetry
//	C[u][v] - F[u][v] >= 0         residual non-negativity
//
// A Network is not safe for concurrent use. One computation owns it for its
// whole lifetime and lends it read-only to the level builder and read-write
// to the path executor, never both at once.
package network

// Vertex is a positional vertex identifier in [0, n).
type Vertex = int

// Network is the dense Flow State of one max-flow computation.
type Network struct {
	n        int     // vertex count
	capacity []int64 // n*n, row-major, immutable after New
	flow     []int64 // n*n, row-major, antisymmetric
	total    int64   // sum of all capacities
}
