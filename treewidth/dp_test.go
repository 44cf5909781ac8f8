package treewidth_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshunter/dshunter/decomposition"
	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/treewidth"
)

func newPath(t *testing.T, vertices ...int) *instance.Instance {
	t.Helper()
	g := instance.New()
	for _, v := range vertices {
		g.AddNodeAt(v, false)
	}
	for i := 0; i+1 < len(vertices); i++ {
		require.NoError(t, g.AddEdge(vertices[i], vertices[i+1], instance.Unconstrained))
	}
	return g
}

func TestSolveOnP5(t *testing.T) {
	require := require.New(t)
	// P5: 1-2-3-4-5. Minimum dominating set has size 2 (e.g. {2,4}).
	g := newPath(t, 1, 2, 3, 4, 5)

	err := treewidth.Solve(context.Background(), g, decomposition.EliminationDecomposer{}, treewidth.MaxMemoryInBytes)
	require.NoError(err)
	require.Len(g.DS, 2)
	require.True(dominatesAll(g, g.DS, []int{1, 2, 3, 4, 5}))
}

func TestSolveOnTriangle(t *testing.T) {
	require := require.New(t)
	g := instance.New()
	for _, v := range []int{1, 2, 3} {
		g.AddNodeAt(v, false)
	}
	require.NoError(g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(g.AddEdge(1, 3, instance.Unconstrained))
	require.NoError(g.AddEdge(2, 3, instance.Unconstrained))

	err := treewidth.Solve(context.Background(), g, decomposition.EliminationDecomposer{}, treewidth.MaxMemoryInBytes)
	require.NoError(err)
	require.Len(g.DS, 1, "any single vertex of a triangle dominates it")
}

func TestSolveOnStar(t *testing.T) {
	require := require.New(t)
	// K1,4: center 1, leaves 2,3,4,5. MDS = {1}.
	g := instance.New()
	for _, v := range []int{1, 2, 3, 4, 5} {
		g.AddNodeAt(v, false)
	}
	for _, leaf := range []int{2, 3, 4, 5} {
		require.NoError(g.AddEdge(1, leaf, instance.Unconstrained))
	}

	err := treewidth.Solve(context.Background(), g, decomposition.EliminationDecomposer{}, treewidth.MaxMemoryInBytes)
	require.NoError(err)
	require.Equal([]int{1}, g.DS)
}

func TestSolveRespectsCancellation(t *testing.T) {
	require := require.New(t)
	g := newPath(t, 1, 2, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := treewidth.Solve(ctx, g, decomposition.EliminationDecomposer{}, treewidth.MaxMemoryInBytes)
	require.ErrorIs(err, treewidth.ErrUnsolvableByBackend)
}

// dominatesAll reports whether every vertex in universe is either in ds or
// adjacent to a member of ds.
func dominatesAll(g *instance.Instance, ds, universe []int) bool {
	taken := make(map[int]bool, len(ds))
	for _, v := range ds {
		taken[v] = true
	}
	for _, v := range universe {
		if taken[v] {
			continue
		}
		dominated := false
		for _, u := range g.NeighboursOpen(v) {
			if taken[u] {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

func TestSplitJoinDoesNotPanicOnWiderBag(t *testing.T) {
	require := require.New(t)
	g := newPath(t, 1, 2, 3, 4, 5, 6, 7)
	require.NoError(g.AddEdge(1, 7, instance.Unconstrained))

	err := treewidth.Solve(context.Background(), g, decomposition.EliminationDecomposer{}, treewidth.MaxMemoryInBytes)
	require.NoError(err)
	sort.Ints(g.DS)
	require.True(dominatesAll(g, g.DS, []int{1, 2, 3, 4, 5, 6, 7}))
}
