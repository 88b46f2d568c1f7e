// SPDX-License-Identifier: MIT

package network

import "fmt"

// CheckInvariants verifies the flow matrix against the capacity matrix:
//
//  1. antisymmetry: F[u][v] == -F[v][u] for all u, v;
//  2. residual non-negativity: C[u][v] - F[u][v] >= 0 for all u, v;
//  3. conservation: NetOutflow(v) == 0 for every v other than source and sink.
//
// The first violation found (row-major order, checks in the order above) is
// returned wrapped around ErrInvariantViolated.
//
// Complexity: O(n²).
func (net *Network) CheckInvariants(source, sink Vertex) error {
	n := net.n
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			if f, b := net.flow[u*n+v], net.flow[v*n+u]; f != -b {
				return fmt.Errorf("antisymmetry: F[%d][%d]=%d, F[%d][%d]=%d: %w", u, v, f, v, u, b, ErrInvariantViolated)
			}
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if r := net.Residual(u, v); r < 0 {
				return fmt.Errorf("residual R[%d][%d]=%d < 0: %w", u, v, r, ErrInvariantViolated)
			}
		}
	}
	for v := 0; v < n; v++ {
		if v == source || v == sink {
			continue
		}
		if out := net.NetOutflow(v); out != 0 {
			return fmt.Errorf("conservation at %d: net outflow %d: %w", v, out, ErrInvariantViolated)
		}
	}
	return nil
}
