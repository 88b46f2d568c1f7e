package flow

import "github.com/katalvlaran/densflow/network"

// Unreached is the level of a vertex the BFS did not discover.
const Unreached = -1

// Levels maps each vertex to its residual distance from the source.
type Levels []int

// Reached reports whether v was discovered.
func (l Levels) Reached(v network.Vertex) bool { return l[v] != Unreached }

// BuildLevels runs a breadth-first search from source over residual edges of
// net and returns the level of every vertex. ok is false when sink was not
// reached, meaning no augmenting path exists at any length.
//
// Complexity: O(V²) time, O(V) memory. Read-only over net.
func BuildLevels(net *network.Network, source, sink network.Vertex) (Levels, bool) {
	levels := make(Levels, net.Size())
	ok := buildLevels(net, source, sink, levels, make([]int, 0, net.Size()))
	return levels, ok
}

// buildLevels fills levels in place using queue as scratch space.
func buildLevels(net *network.Network, source, sink network.Vertex, levels Levels, queue []int) bool {
	n := net.Size()
	for i := range levels {
		levels[i] = Unreached
	}
	levels[source] = 0
	queue = append(queue[:0], source)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		next := levels[u] + 1
		for v := 0; v < n; v++ {
			if levels[v] == Unreached && net.Residual(u, v) > 0 {
				levels[v] = next
				queue = append(queue, v)
			}
		}
	}

	return levels[sink] != Unreached
}
