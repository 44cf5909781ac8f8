package branching_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshunter/dshunter/branching"
	"github.com/dshunter/dshunter/instance"
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

func TestSolverOnP5(t *testing.T) {
	require := require.New(t)
	g := newPath(t, 1, 2, 3, 4, 5)

	ds := branching.NewSolver().Solve(g)
	require.Len(ds, 2)
	require.True(dominatesAll(g, ds, []int{1, 2, 3, 4, 5}))
}

func TestSolverOnTriangle(t *testing.T) {
	require := require.New(t)
	g := instance.New()
	for _, v := range []int{1, 2, 3} {
		g.AddNodeAt(v, false)
	}
	require.NoError(g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(g.AddEdge(1, 3, instance.Unconstrained))
	require.NoError(g.AddEdge(2, 3, instance.Unconstrained))

	ds := branching.NewSolver().Solve(g)
	require.Len(ds, 1)
}

func TestSolverOnStar(t *testing.T) {
	require := require.New(t)
	g := instance.New()
	for _, v := range []int{1, 2, 3, 4, 5} {
		g.AddNodeAt(v, false)
	}
	for _, leaf := range []int{2, 3, 4, 5} {
		require.NoError(g.AddEdge(1, leaf, instance.Unconstrained))
	}

	ds := branching.NewSolver().Solve(g)
	require.Equal([]int{1}, ds)
}

func TestSolverOnCycle(t *testing.T) {
	require := require.New(t)
	// C6: minimum dominating set has size 2.
	g := newPath(t, 1, 2, 3, 4, 5, 6)
	require.NoError(g.AddEdge(6, 1, instance.Unconstrained))

	ds := branching.NewSolver().Solve(g)
	sort.Ints(ds)
	require.Len(ds, 2)
	require.True(dominatesAll(g, ds, []int{1, 2, 3, 4, 5, 6}))
}

func TestSolverDoesNotMutateInput(t *testing.T) {
	require := require.New(t)
	g := newPath(t, 1, 2, 3)
	before := g.NodeCount()

	branching.NewSolver().Solve(g)

	require.Equal(before, g.NodeCount())
	require.Empty(g.DS)
}
