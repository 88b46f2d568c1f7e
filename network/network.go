// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
)

// New validates capacity and returns a Network with a zero flow matrix.
// The input is copied; later changes to capacity do not affect the Network.
//
// Stage 1 (Validate): non-empty, square, every entry >= 0, sum fits int64.
// Stage 2 (Prepare): copy rows into a flat row-major slice, sum capacities.
// Stage 3 (Finalize): allocate the zero flow matrix.
//
// Errors:
//   - ErrInvalidGraph wrapped with the offending row when the matrix is empty
//     or not square.
//   - CapacityError (unwraps to ErrInvalidGraph) for a negative entry.
//   - ErrInvalidGraph when the capacities sum past math.MaxInt64; the sum
//     bounds every flow value and serves as the unbounded bottleneck.
//
// Complexity: O(n²) time and memory.
func New(capacity [][]int64) (*Network, error) {
	n := len(capacity)
	if n == 0 {
		return nil, fmt.Errorf("New: empty matrix: %w", ErrInvalidGraph)
	}

	data := make([]int64, n*n)
	var total int64
	for i, row := range capacity {
		if len(row) != n {
			return nil, fmt.Errorf("New: row %d has %d columns, want %d: %w", i, len(row), n, ErrInvalidGraph)
		}
		for j, c := range row {
			if c < 0 {
				return nil, CapacityError{Row: i, Col: j, Value: c}
			}
			if c > math.MaxInt64-total {
				return nil, fmt.Errorf("New: capacity sum overflows int64 at row %d, col %d: %w", i, j, ErrInvalidGraph)
			}
			data[i*n+j] = c
			total += c
		}
	}

	return &Network{
		n:        n,
		capacity: data,
		flow:     make([]int64, n*n),
		total:    total,
	}, nil
}

// Size returns the vertex count n.
func (net *Network) Size() int { return net.n }

// Capacity returns C[u][v].
func (net *Network) Capacity(u, v Vertex) int64 { return net.capacity[u*net.n+v] }

// Flow returns F[u][v].
func (net *Network) Flow(u, v Vertex) int64 { return net.flow[u*net.n+v] }

// Residual returns C[u][v] - F[u][v]. A backward edge whose forward twin
// carries flow has positive residual even with zero capacity.
func (net *Network) Residual(u, v Vertex) int64 {
	i := u*net.n + v
	return net.capacity[i] - net.flow[i]
}

// TotalCapacity returns the sum of all capacities. No augmenting path can
// carry more, so it serves as the finite "unbounded" starting bottleneck.
func (net *Network) TotalCapacity() int64 { return net.total }

// Push records amount units of flow on u→v and the matching backward credit
// on v→u. The caller guarantees amount <= Residual(u, v).
func (net *Network) Push(u, v Vertex, amount int64) {
	net.flow[u*net.n+v] += amount
	net.flow[v*net.n+u] -= amount
}

// Reset zeroes the flow matrix, returning the Network to its initial state.
func (net *Network) Reset() {
	clear(net.flow)
}

// Clone returns a deep copy including the current flow.
func (net *Network) Clone() *Network {
	c := &Network{
		n:        net.n,
		capacity: make([]int64, len(net.capacity)),
		flow:     make([]int64, len(net.flow)),
		total:    net.total,
	}
	copy(c.capacity, net.capacity)
	copy(c.flow, net.flow)
	return c
}

// ValidateEndpoints reports ErrInvalidVertex when source or sink lies outside
// [0, n) or when they coincide.
func (net *Network) ValidateEndpoints(source, sink Vertex) error {
	if source < 0 || source >= net.n {
		return fmt.Errorf("source %d not in [0,%d): %w", source, net.n, ErrInvalidVertex)
	}
	if sink < 0 || sink >= net.n {
		return fmt.Errorf("sink %d not in [0,%d): %w", sink, net.n, ErrInvalidVertex)
	}
	if source == sink {
		return fmt.Errorf("source and sink are both %d: %w", source, ErrInvalidVertex)
	}
	return nil
}

// EdgeCount returns the number of ordered pairs with positive capacity.
func (net *Network) EdgeCount() int {
	var m int
	for _, c := range net.capacity {
		if c > 0 {
			m++
		}
	}
	return m
}

// NetOutflow returns Σ_w F[v][w]. Under antisymmetry this is outflow minus
// inflow: positive at the source, negative at the sink, zero elsewhere.
func (net *Network) NetOutflow(v Vertex) int64 {
	var sum int64
	row := net.flow[v*net.n : (v+1)*net.n]
	for _, f := range row {
		sum += f
	}
	return sum
}

// CapacityMatrix returns a fresh [][]int64 copy of the capacity matrix.
func (net *Network) CapacityMatrix() [][]int64 { return net.rows(net.capacity) }

// FlowMatrix returns a fresh [][]int64 copy of the current flow matrix.
func (net *Network) FlowMatrix() [][]int64 { return net.rows(net.flow) }

func (net *Network) rows(data []int64) [][]int64 {
	out := make([][]int64, net.n)
	for i := range out {
		out[i] = make([]int64, net.n)
		copy(out[i], data[i*net.n:(i+1)*net.n])
	}
	return out
}
