// Package densflow computes maximum flows in dense capacitated networks
// with Dinic's blocking-flow algorithm.
//
// Layout:
//
//	network/      Flow State: capacity and flow matrices, validation, invariants
//	flow/         level graphs (BFS), blocking flow (iterative DFS), MaxFlow, MinCut
//	generator/    seeded random capacity matrices
//	sweep/        benchmark sweeps over increasing vertex counts, TOML configs
//	render/       Graphviz DOT/SVG drawings of solved networks
//	cmd/densflow/ command-line driver (menu, demo, sweep, solve, render)
//
// Quick example:
//
//	res, err := flow.MaxFlow([][]int64{
//	    {0, 3, 2, 0},
//	    {0, 0, 0, 2},
//	    {0, 0, 0, 3},
//	    {0, 0, 0, 0},
//	}, 0, 3)
//	// res.Value == 4
//
//	go get github.com/katalvlaran/densflow
package densflow
