// Package flow computes maximum flows on dense capacity matrices with
// Dinic's blocking-flow algorithm.
//
// The computation is split into three procedures that share one
// *network.Network (the Flow State):
//
//   - BuildLevels
//
//   - Method: breadth-first search over residual edges (C[u][v]-F[u][v] > 0),
//     neighbors scanned in increasing index order, first touch wins.
//
//   - Result: per-vertex distance from the source, or ok=false when the sink
//     is unreachable. Unreachable is the normal termination signal, not an error.
//
//   - Time: O(V²) per call (dense scan).
//
//   - PushOnePath
//
//   - Method: depth-first, level-respecting search for one augmenting path,
//     first-fit over increasing neighbor index, run on an explicit stack.
//
//   - Result: the amount pushed (0 leaves the network untouched).
//
//   - MaxFlow / Solve
//
//   - Method: phase loop. Build levels; drain the level graph with PushOnePath
//     until it returns 0; repeat until the sink is unreachable.
//
//   - Phases: at most V, since the source–sink residual distance strictly
//     grows from one phase to the next.
//
// # Options
//
//	flow.WithContext(ctx)          // checked between phases and augmentations
//	flow.WithLogger(logger)        // charmbracelet/log, debug lines per phase
//	flow.WithDeadVertexPruning()   // skip exhausted vertices within a phase
//	flow.WithInvariantChecks()     // CheckInvariants after every phase
//
// Dead-vertex pruning never changes the result or the final flow matrix; it
// only removes repeated dead-end scans.
//
// # Errors
//
//	network.ErrInvalidGraph       - capacity matrix empty, not square, or negative.
//	network.ErrInvalidVertex      - source/sink out of range, or equal.
//	network.ErrInvariantViolated  - only with WithInvariantChecks.
//	ErrNilNetwork                 - Solve called with a nil network.
//	context.Canceled / context.DeadlineExceeded - from WithContext.
//
// Validation happens once at the entry point; BuildLevels and PushOnePath
// assume validated input and never fail.
//
// EdmondsKarp solves the same problem with shortest augmenting paths and is
// used to cross-check Dinic. MinCut extracts the source side and the
// saturated crossing edges from a solved network.
package flow
