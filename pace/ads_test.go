package pace_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/pace"
)

func TestParseADSReadsPartiallyReducedInstance(t *testing.T) {
	// Vertex 7 already committed; 1..3 remain, with (1,2) forced and vertex
	// 3 a non-original (extra) gadget vertex.
	src := "p ads 3 2 1\n7\n1 0 0 0\n2 1 0 0\n3 0 1 1\n1 2 1\n1 3 0\n"
	g, err := pace.ParseADS(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, []int{7}, g.DS)

	require.False(t, g.IsDominated(1))
	require.True(t, g.IsDominated(2))
	require.False(t, g.IsExtra(1))
	require.True(t, g.IsExtra(3))

	status, err := g.EdgeStatus(1, 2)
	require.NoError(t, err)
	require.Equal(t, instance.Forced, status)

	status, err = g.EdgeStatus(1, 3)
	require.NoError(t, err)
	require.Equal(t, instance.Unconstrained, status)
}

func TestParseADSWithNoCommittedVertices(t *testing.T) {
	src := "p ads 2 1 0\n\n1 0 0 0\n2 0 0 0\n1 2 0\n"
	g, err := pace.ParseADS(strings.NewReader(src))
	require.NoError(t, err)
	require.Empty(t, g.DS)
	require.Equal(t, 2, g.NodeCount())
}

func TestParseADSRejectsCommittedCountMismatch(t *testing.T) {
	src := "p ads 1 0 2\n1\n1 0 0 0\n"
	_, err := pace.ParseADS(strings.NewReader(src))
	require.Error(t, err)
	require.True(t, errors.Is(err, pace.ErrParse))
}

func TestParseADSRejectsEdgeReferencingUnknownVertex(t *testing.T) {
	src := "p ads 1 1 0\n\n1 0 0 0\n1 2 0\n"
	_, err := pace.ParseADS(strings.NewReader(src))
	require.Error(t, err)
	require.True(t, errors.Is(err, pace.ErrParse))
}

func TestWriteADSThenParseRoundTrips(t *testing.T) {
	g := instance.New()
	g.AddNodeAt(1, false)
	g.AddNodeAt(2, false)
	g.AddNodeAt(3, false)
	require.NoError(t, g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(t, g.AddEdge(2, 3, instance.Unconstrained))
	require.NoError(t, g.AddEdge(1, 3, instance.Unconstrained))
	require.NoError(t, g.ForceEdge(1, 2))
	g.DS = []int{9}

	var buf bytes.Buffer
	require.NoError(t, pace.WriteADS(&buf, g))

	g2, err := pace.ParseADS(&buf)
	require.NoError(t, err)

	require.Equal(t, g.NodeCount(), g2.NodeCount())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	require.Equal(t, g.DS, g2.DS)
	require.Equal(t, g.Nodes, g2.Nodes)

	for _, v := range g.Nodes {
		require.Equal(t, g.IsDominated(v), g2.IsDominated(v), "vertex %d", v)
		require.Equal(t, g.IsDisregarded(v), g2.IsDisregarded(v), "vertex %d", v)
		require.Equal(t, g.IsExtra(v), g2.IsExtra(v), "vertex %d", v)

		s1, err := g.EdgeStatus(1, 2)
		require.NoError(t, err)
		s2, err := g2.EdgeStatus(1, 2)
		require.NoError(t, err)
		require.Equal(t, s1, s2)
	}
}
