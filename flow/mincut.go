package flow

import (
	"sort"

	"github.com/katalvlaran/densflow/network"
)

// CutEdge is an original edge crossing from the source side to the sink side.
type CutEdge struct {
	From, To network.Vertex
	Capacity int64
}

// Cut is an s–t cut read off a Flow State.
type Cut struct {
	// SourceSide lists vertices reachable from the source in the residual
	// graph, in increasing order.
	SourceSide []network.Vertex
	// Edges are the original edges leaving SourceSide, ordered by (From, To).
	Edges []CutEdge
	// Capacity is the sum of Edges' capacities.
	Capacity int64

	side []bool
}

// InSourceSide reports whether v lies on the source side of the cut.
// It is false for vertices outside the network and for the zero Cut.
func (c Cut) InSourceSide(v network.Vertex) bool {
	return v >= 0 && v < len(c.side) && c.side[v]
}

// MinCut derives the cut induced by the residual reachability set of source.
// After a maximum flow has been computed on net, Capacity equals the flow
// value and every crossing edge is saturated.
//
// Complexity: O(V²).
func MinCut(net *network.Network, source network.Vertex) Cut {
	n := net.Size()
	levels := make(Levels, n)
	// the sink argument is irrelevant here; only reachability is used
	buildLevels(net, source, source, levels, make([]int, 0, n))

	cut := Cut{side: make([]bool, n)}
	for v, l := range levels {
		if l != Unreached {
			cut.side[v] = true
			cut.SourceSide = append(cut.SourceSide, v)
		}
	}
	for _, u := range cut.SourceSide {
		for v := 0; v < n; v++ {
			if cut.side[v] {
				continue
			}
			if c := net.Capacity(u, v); c > 0 {
				cut.Edges = append(cut.Edges, CutEdge{From: u, To: v, Capacity: c})
				cut.Capacity += c
			}
		}
	}
	sort.Slice(cut.Edges, func(i, j int) bool {
		if cut.Edges[i].From != cut.Edges[j].From {
			return cut.Edges[i].From < cut.Edges[j].From
		}
		return cut.Edges[i].To < cut.Edges[j].To
	})
	return cut
}
