package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/densflow/network"
)

// ErrNilNetwork is returned by Solve when net is nil.
var ErrNilNetwork = errors.New("flow: network is nil")

// Result is the outcome of one max-flow computation.
type Result struct {
	// Value is the maximum flow from Source to Sink.
	Value int64
	// Source and Sink are the validated endpoints.
	Source, Sink network.Vertex
	// Phases counts level graphs that reached the sink.
	Phases int
	// Augmentations counts successful path pushes.
	Augmentations int
	// Work counts neighbor inspections made by the path executor.
	Work int64
	// Network is the final Flow State; its flow matrix is a maximum flow.
	Network *network.Network
	// Elapsed is the wall-clock duration of the phase loop.
	Elapsed time.Duration
}

// MaxFlow validates capacity, builds a fresh Flow State and runs Dinic's
// algorithm from source to sink.
//
// Steps:
//  1. network.New rejects empty, non-square or negative matrices
//     (ErrInvalidGraph) before any search starts.
//  2. Solve validates the endpoints (ErrInvalidVertex) and runs the phase loop.
//
// Complexity: O(V²) per level build, at most V phases.
func MaxFlow(capacity [][]int64, source, sink network.Vertex, opts ...Option) (*Result, error) {
	net, err := network.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("flow: MaxFlow: %w", err)
	}
	return Solve(net, source, sink, opts...)
}

// Solve resets net's flow to zero and runs Dinic's phase loop on it.
//
// Steps:
//  1. Validate net and endpoints; apply options.
//  2. Repeat:
//     a. Check for cancellation.
//     b. BuildLevels; stop when the sink is unreachable.
//     c. Push one path at a time from the source with bottleneck
//     net.TotalCapacity() until a push returns 0, checking for
//     cancellation after each success.
//     d. Fail with ErrInvariantViolated if the phase pushed nothing.
//     e. Optionally verify invariants.
//  3. Return the accumulated value.
//
// On cancellation the partial Result is returned together with ctx.Err().
func Solve(net *network.Network, source, sink network.Vertex, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := net.ValidateEndpoints(source, sink); err != nil {
		return nil, fmt.Errorf("flow: Solve: %w", err)
	}
	cfg := newConfig(opts...)
	ctx, logger := cfg.ctx, cfg.logger

	net.Reset()
	res := &Result{Source: source, Sink: sink, Network: net}
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	levels := make(Levels, net.Size())
	queue := make([]int, 0, net.Size())
	ex := newExecutor(net, levels, sink, cfg.pruneDead)
	unbounded := net.TotalCapacity()

	for {
		if err := ctx.Err(); err != nil {
			res.Work = ex.work
			return res, err
		}

		if !buildLevels(net, source, sink, levels, queue) {
			logger.Debug("sink unreachable", "phases", res.Phases, "maxflow", res.Value)
			break
		}
		res.Phases++
		ex.reset(levels)

		var phaseFlow int64
		for {
			pushed := ex.push(source, unbounded)
			if pushed == 0 {
				break
			}
			phaseFlow += pushed
			res.Value += pushed
			res.Augmentations++
			logger.Debug("augmented", "pushed", pushed, "total", res.Value)

			if err := ctx.Err(); err != nil {
				res.Work = ex.work
				return res, err
			}
		}
		logger.Debug("phase complete", "phase", res.Phases, "depth", levels[sink], "flow", phaseFlow)

		// a level graph that reaches the sink always carries a path
		if phaseFlow == 0 {
			res.Work = ex.work
			return res, fmt.Errorf("flow: phase %d reached the sink but pushed nothing: %w", res.Phases, network.ErrInvariantViolated)
		}

		if cfg.checkInvariants {
			if err := net.CheckInvariants(source, sink); err != nil {
				res.Work = ex.work
				return res, fmt.Errorf("flow: phase %d: %w", res.Phases, err)
			}
		}
	}

	res.Work = ex.work
	return res, nil
}
