package decomposition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshunter/dshunter/decomposition"
	"github.com/dshunter/dshunter/instance"
)

func triangleInstance(t *testing.T) *instance.Instance {
	t.Helper()
	g := instance.New()
	for _, v := range []int{1, 2, 3} {
		g.AddNodeAt(v, false)
	}
	require.NoError(t, g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(t, g.AddEdge(1, 3, instance.Unconstrained))
	require.NoError(t, g.AddEdge(2, 3, instance.Unconstrained))
	return g
}

func TestEliminationDecomposerOnTriangle(t *testing.T) {
	require := require.New(t)
	g := triangleInstance(t)

	td, ok := decomposition.EliminationDecomposer{}.Decompose(context.Background(), g)
	require.True(ok)
	require.Equal(3, td.Size())
	require.Equal(2, td.Width, "a triangle is itself a single bag of width 2")

	for i, bag := range td.Bag {
		require.Len(bag, 3-i, "each bag is the eliminated vertex plus its remaining neighbours")
	}
}

func TestEliminationDecomposerRespectsCancellation(t *testing.T) {
	require := require.New(t)
	g := triangleInstance(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := decomposition.EliminationDecomposer{}.Decompose(ctx, g)
	require.False(ok)
}

func TestEliminationDecomposerOnPath(t *testing.T) {
	require := require.New(t)
	g := instance.New()
	for _, v := range []int{1, 2, 3, 4} {
		g.AddNodeAt(v, false)
	}
	require.NoError(g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(g.AddEdge(2, 3, instance.Unconstrained))
	require.NoError(g.AddEdge(3, 4, instance.Unconstrained))

	td, ok := decomposition.EliminationDecomposer{}.Decompose(context.Background(), g)
	require.True(ok)
	require.Equal(1, td.Width, "a path decomposes at width 1 under min-degree elimination")
}
