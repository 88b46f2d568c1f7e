// SPDX-License-Identifier: MIT
// Package: densflow/network
//
// errors.go — sentinel errors for the network package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers match with errors.Is.
//   • Context (row, column, vertex) is attached with %w at the return site.
//   • Validation happens once, in New and ValidateEndpoints. Hot-path accessors
//     (Capacity/Flow/Residual/Push) assume validated indices and never fail.

package network

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph indicates a capacity matrix that is empty, not square,
// or holds a negative entry.
var ErrInvalidGraph = errors.New("network: invalid capacity matrix")

// ErrInvalidVertex indicates a source or sink outside [0, n), or source == sink.
var ErrInvalidVertex = errors.New("network: invalid source or sink")

// ErrInvariantViolated is reported by CheckInvariants when the flow matrix
// breaks antisymmetry, residual non-negativity, or conservation.
var ErrInvariantViolated = errors.New("network: flow invariant violated")

// CapacityError describes a negative capacity entry.
// It unwraps to ErrInvalidGraph so errors.Is keeps working.
type CapacityError struct {
	Row, Col int
	Value    int64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("network: negative capacity %d at [%d][%d]", e.Value, e.Row, e.Col)
}

// Unwrap returns ErrInvalidGraph.
func (e CapacityError) Unwrap() error { return ErrInvalidGraph }
