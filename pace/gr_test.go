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

func TestParseGRReadsPath(t *testing.T) {
	src := "c a comment line\np ds 5 4\n1 2\n2 3\n3 4\n4 5\n"
	g, err := pace.ParseGR(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
	for _, v := range g.Nodes {
		require.False(t, g.IsDominated(v))
		require.False(t, g.IsDisregarded(v))
		require.False(t, g.IsExtra(v))
	}
	require.Equal(t, 0, g.ForcedEdgeCount())
}

func TestParseGRRejectsEdgeCountMismatch(t *testing.T) {
	src := "p ds 3 2\n1 2\n"
	_, err := pace.ParseGR(strings.NewReader(src))
	require.Error(t, err)
	require.True(t, errors.Is(err, pace.ErrParse))
}

func TestParseGRRejectsOutOfRangeVertex(t *testing.T) {
	src := "p ds 3 1\n1 9\n"
	_, err := pace.ParseGR(strings.NewReader(src))
	require.Error(t, err)
	require.True(t, errors.Is(err, pace.ErrParse))
}

func TestParseGRRejectsMissingHeader(t *testing.T) {
	_, err := pace.ParseGR(strings.NewReader("c nothing but comments\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, pace.ErrParse))
}

func TestWriteSolutionFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pace.WriteSolution(&buf, []int{4, 1, 3}))
	require.Equal(t, "3\n1\n3\n4\n", buf.String())
}

func TestParseGRStarEdgesAreUnconstrained(t *testing.T) {
	src := "p ds 5 4\n1 2\n1 3\n1 4\n1 5\n"
	g, err := pace.ParseGR(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.HasEdge(1, 2))
	require.Equal(t, instance.Unconstrained, must(g.EdgeStatus(1, 2)))
}

func must(s instance.EdgeStatus, err error) instance.EdgeStatus {
	if err != nil {
		panic(err)
	}
	return s
}
