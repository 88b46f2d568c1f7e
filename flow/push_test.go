package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densflow/flow"
	"github.com/katalvlaran/densflow/generator"
	"github.com/katalvlaran/densflow/network"
)

// recursivePush is the textbook recursive path search, kept here as the
// reference the iterative executor must match step for step.
func recursivePush(net *network.Network, levels flow.Levels, u, sink int, bottleneck int64) int64 {
	if u == sink {
		return bottleneck
	}
	for v := 0; v < net.Size(); v++ {
		r := net.Residual(u, v)
		if levels[v] == levels[u]+1 && r > 0 {
			if got := recursivePush(net, levels, v, sink, min(bottleneck, r)); got > 0 {
				net.Push(u, v, got)
				return got
			}
		}
	}
	return 0
}

// recursiveMaxFlow drives recursivePush with the same phase loop as Solve.
func recursiveMaxFlow(net *network.Network, source, sink int) int64 {
	var total int64
	for {
		levels, ok := flow.BuildLevels(net, source, sink)
		if !ok {
			return total
		}
		for {
			pushed := recursivePush(net, levels, source, sink, net.TotalCapacity())
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
}

// TestPushOnePathSinkBaseCase returns the bottleneck unchanged at the sink.
func TestPushOnePathSinkBaseCase(t *testing.T) {
	net, err := network.New([][]int64{{0, 1}, {0, 0}})
	require.NoError(t, err)
	levels, _ := flow.BuildLevels(net, 0, 1)
	require.Equal(t, int64(42), flow.PushOnePath(net, levels, 1, 1, 42))
	require.Equal(t, int64(0), net.Flow(0, 1))
}

// TestPushOnePathFirstFit picks the lowest-index qualifying neighbor and
// tightens the bottleneck along the path.
func TestPushOnePathFirstFit(t *testing.T) {
	net, err := network.New([][]int64{
		{0, 5, 9, 0},
		{0, 0, 0, 4},
		{0, 0, 0, 9},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	levels, ok := flow.BuildLevels(net, 0, 3)
	require.True(t, ok)

	require.Equal(t, int64(4), flow.PushOnePath(net, levels, 0, 3, net.TotalCapacity()))
	require.Equal(t, int64(4), net.Flow(0, 1), "vertex 1 is tried before 2")
	require.Equal(t, int64(0), net.Flow(0, 2))

	require.Equal(t, int64(9), flow.PushOnePath(net, levels, 0, 3, net.TotalCapacity()))
	require.Equal(t, int64(9), net.Flow(0, 2))
	require.Equal(t, int64(0), flow.PushOnePath(net, levels, 0, 3, net.TotalCapacity()))
}

// TestPushOnePathBacktracks resumes the parent's scan after a dead end.
func TestPushOnePathBacktracks(t *testing.T) {
	// 0→1→2 dead end (2 has no way on), 0→1→3→4 succeeds.
	c := make([][]int64, 5)
	for i := range c {
		c[i] = make([]int64, 5)
	}
	c[0][1], c[1][2], c[1][3], c[3][4] = 3, 3, 2, 5
	c[2][0] = 1
	net, err := network.New(c)
	require.NoError(t, err)
	levels, ok := flow.BuildLevels(net, 0, 4)
	require.True(t, ok)

	require.Equal(t, int64(2), flow.PushOnePath(net, levels, 0, 4, net.TotalCapacity()))
	require.Equal(t, int64(0), net.Flow(1, 2), "dead-end edge untouched")
	require.Equal(t, int64(2), net.Flow(1, 3))
	require.NoError(t, net.CheckInvariants(0, 4))
}

// TestPushOnePathZeroLeavesStateAlone checks the no-path contract.
func TestPushOnePathZeroLeavesStateAlone(t *testing.T) {
	net, err := network.New([][]int64{{0, 3, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	levels, _ := flow.BuildLevels(net, 0, 2)
	before := net.FlowMatrix()
	require.Equal(t, int64(0), flow.PushOnePath(net, levels, 0, 2, net.TotalCapacity()))
	require.Equal(t, before, net.FlowMatrix())
	require.Equal(t, int64(0), flow.PushOnePath(net, levels, 0, 2, 0))
}

// TestIterativeMatchesRecursive compares final flow matrices on random
// networks; identical augmentation order yields identical matrices.
func TestIterativeMatchesRecursive(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		c, err := generator.Generate(12+int(seed%7), 0.3, generator.WithSeed(seed))
		require.NoError(t, err)
		sink := len(c) - 1

		ref, err := network.New(c)
		require.NoError(t, err)
		want := recursiveMaxFlow(ref, 0, sink)

		for _, opts := range [][]flow.Option{nil, {flow.WithDeadVertexPruning()}} {
			res, err := flow.MaxFlow(c, 0, sink, opts...)
			require.NoError(t, err)
			require.Equal(t, want, res.Value, "seed %d", seed)
			require.Equal(t, ref.FlowMatrix(), res.Network.FlowMatrix(), "seed %d", seed)
		}
	}
}

// TestDeadVertexPruningReducesWork checks pruning never adds scans.
func TestDeadVertexPruningReducesWork(t *testing.T) {
	c, err := generator.Generate(60, 0.2, generator.WithSeed(99))
	require.NoError(t, err)

	plain, err := flow.MaxFlow(c, 0, 59)
	require.NoError(t, err)
	pruned, err := flow.MaxFlow(c, 0, 59, flow.WithDeadVertexPruning())
	require.NoError(t, err)

	require.Equal(t, plain.Value, pruned.Value)
	require.Equal(t, plain.Augmentations, pruned.Augmentations)
	require.LessOrEqual(t, pruned.Work, plain.Work)
}

// TestDeepPathNoRecursion pushes along a long chain.
func TestDeepPathNoRecursion(t *testing.T) {
	const n = 1500
	net := chain(t, n)
	res, err := flow.Solve(net, 0, n-1)
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Value)
	require.Equal(t, 1, res.Phases)
}

func chain(t *testing.T, n int) *network.Network {
	t.Helper()
	c := make([][]int64, n)
	for i := range c {
		c[i] = make([]int64, n)
		if i+1 < n {
			c[i][i+1] = 1
		}
	}
	net, err := network.New(c)
	require.NoError(t, err)
	return net
}
