package flow_test

import (
	"fmt"

	"github.com/katalvlaran/densflow/flow"
)

// ExampleMaxFlow computes the flow of a four-vertex diamond.
//
//	0→1(3)→3
//	0→2(2)→3
//	1→3 has capacity 2, 2→3 capacity 3
func ExampleMaxFlow() {
	capacity := [][]int64{
		{0, 3, 2, 0},
		{0, 0, 0, 2},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
	}
	res, err := flow.MaxFlow(capacity, 0, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Value, res.Phases, res.Augmentations)
	// Output:
	// 4 1 2
}

// ExampleMinCut prints the saturated edges separating source and sink.
func ExampleMinCut() {
	res, _ := flow.MaxFlow([][]int64{
		{0, 10, 10, 0},
		{0, 0, 0, 10},
		{0, 0, 0, 10},
		{0, 0, 0, 0},
	}, 0, 3)
	cut := flow.MinCut(res.Network, 0)
	for _, e := range cut.Edges {
		fmt.Printf("%d→%d %d\n", e.From, e.To, e.Capacity)
	}
	fmt.Println(cut.Capacity)
	// Output:
	// 0→1 10
	// 0→2 10
	// 20
}

// ExampleMaxFlow_cdn models the throughput of a small content delivery
// network: a client feeds two points of presence, which forward to two
// origins, which forward to the backbone (capacities in Gbps).
//
//	0 Client  → 1 PoP1 (10), 2 PoP2 (15)
//	1 PoP1    → 3 Origin1 (5), 4 Origin2 (5)
//	2 PoP2    → 3 Origin1 (10), 4 Origin2 (3)
//	3 Origin1 → 5 Backbone (20)
//	4 Origin2 → 5 Backbone (20)
//
// PoP1 can forward all 10 it receives, PoP2 only 13 of 15.
func ExampleMaxFlow_cdn() {
	capacity := [][]int64{
		{0, 10, 15, 0, 0, 0},
		{0, 0, 0, 5, 5, 0},
		{0, 0, 0, 10, 3, 0},
		{0, 0, 0, 0, 0, 20},
		{0, 0, 0, 0, 0, 20},
		{0, 0, 0, 0, 0, 0},
	}
	res, _ := flow.MaxFlow(capacity, 0, 5)
	fmt.Println(res.Value)
	// Output:
	// 23
}
