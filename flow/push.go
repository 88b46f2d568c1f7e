package flow

import "github.com/katalvlaran/densflow/network"

// PushOnePath searches the level graph for one augmenting path from u to sink
// and applies it. bottleneck caps the amount; pass net.TotalCapacity() from
// the source for an unbounded search.
//
// Neighbors v of each vertex are tried in increasing index order and the
// first one with levels[v] == levels[u]+1, positive residual capacity, and a
// successful continuation wins. On success every edge of the path receives
// the pushed amount (with its backward credit) and the amount is returned.
// A return of 0 means no path exists and net is unchanged.
//
// The search runs on an explicit stack, so depth is bounded by memory rather
// than by the goroutine stack.
func PushOnePath(net *network.Network, levels Levels, u, sink network.Vertex, bottleneck int64) int64 {
	ex := newExecutor(net, levels, sink, false)
	return ex.push(u, bottleneck)
}

// frame is one vertex on the current DFS path.
type frame struct {
	v    network.Vertex
	next network.Vertex // next neighbor index to scan
	cap  int64          // bottleneck of the path up to v
}

// executor holds per-phase scratch state for repeated path pushes.
type executor struct {
	net    *network.Network
	levels Levels
	sink   network.Vertex
	stack  []frame
	dead   []bool // nil unless pruning is enabled
	work   int64  // neighbor inspections, for Result.Work
}

func newExecutor(net *network.Network, levels Levels, sink network.Vertex, prune bool) *executor {
	ex := &executor{
		net:    net,
		levels: levels,
		sink:   sink,
		stack:  make([]frame, 0, 16),
	}
	if prune {
		ex.dead = make([]bool, net.Size())
	}
	return ex
}

// reset prepares the executor for a new phase with fresh levels.
func (ex *executor) reset(levels Levels) {
	ex.levels = levels
	if ex.dead != nil {
		clear(ex.dead)
	}
}

// push is the iterative form of:
//
//	if u == sink { return cap }
//	for v := range n, in order:
//	    if L[v] == L[u]+1 && R[u][v] > 0:
//	        if got := push(v, min(cap, R[u][v])); got > 0 { F[u][v] += got; F[v][u] -= got; return got }
//	return 0
func (ex *executor) push(u network.Vertex, bottleneck int64) int64 {
	if bottleneck <= 0 {
		return 0
	}
	n := ex.net.Size()
	ex.stack = append(ex.stack[:0], frame{v: u, cap: bottleneck})

	for len(ex.stack) > 0 {
		top := &ex.stack[len(ex.stack)-1]
		if top.v == ex.sink {
			return ex.augment(top.cap)
		}

		want := ex.levels[top.v] + 1
		advanced := false
		for v := top.next; v < n; v++ {
			ex.work++
			if ex.levels[v] != want || (ex.dead != nil && ex.dead[v]) {
				continue
			}
			r := ex.net.Residual(top.v, v)
			if r <= 0 {
				continue
			}
			top.next = v + 1
			ex.stack = append(ex.stack, frame{v: v, cap: min(top.cap, r)})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		// dead end: pop and let the parent resume its scan
		if ex.dead != nil {
			ex.dead[top.v] = true
		}
		ex.stack = ex.stack[:len(ex.stack)-1]
	}

	return 0
}

// augment applies amount along the path held in the stack.
func (ex *executor) augment(amount int64) int64 {
	for i := len(ex.stack) - 1; i > 0; i-- {
		ex.net.Push(ex.stack[i-1].v, ex.stack[i].v, amount)
	}
	return amount
}
