package flow

import (
	"fmt"
	"time"

	"github.com/katalvlaran/densflow/network"
)

// EdmondsKarp computes the maximum flow with shortest augmenting paths:
// one BFS per augmentation, each path pushed with its full bottleneck.
// It shares Dinic's Flow State and Result type and serves as an independent
// cross-check. Phases in the Result equals Augmentations.
//
// Only WithContext and WithLogger affect this algorithm.
//
// Complexity: O(V · E²) in the worst case, O(V²) per BFS on the dense matrix.
func EdmondsKarp(capacity [][]int64, source, sink network.Vertex, opts ...Option) (*Result, error) {
	net, err := network.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("flow: EdmondsKarp: %w", err)
	}
	if err = net.ValidateEndpoints(source, sink); err != nil {
		return nil, fmt.Errorf("flow: EdmondsKarp: %w", err)
	}
	cfg := newConfig(opts...)

	res := &Result{Source: source, Sink: sink, Network: net}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	n := net.Size()
	parent := make([]int, n)
	queue := make([]int, 0, n)
	for {
		if err = cfg.ctx.Err(); err != nil {
			return res, err
		}
		bottle := shortestAugmentingPath(net, source, sink, parent, queue, &res.Work)
		if bottle == 0 {
			break
		}
		for v := sink; v != source; v = parent[v] {
			net.Push(parent[v], v, bottle)
		}
		res.Value += bottle
		res.Augmentations++
		res.Phases++
		cfg.logger.Debug("augmenting path", "flow", bottle, "total", res.Value)
	}

	return res, nil
}

// shortestAugmentingPath runs a BFS over residual edges, records predecessors
// in parent, and returns the bottleneck of the path to sink (0 when none).
func shortestAugmentingPath(net *network.Network, source, sink network.Vertex, parent, queue []int, work *int64) int64 {
	n := net.Size()
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	queue = append(queue[:0], source)

	for head := 0; head < len(queue) && parent[sink] < 0; head++ {
		u := queue[head]
		for v := 0; v < n; v++ {
			*work++
			if parent[v] < 0 && net.Residual(u, v) > 0 {
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	if parent[sink] < 0 {
		return 0
	}

	bottle := net.Residual(parent[sink], sink)
	for v := parent[sink]; v != source; v = parent[v] {
		bottle = min(bottle, net.Residual(parent[v], v))
	}
	return bottle
}
