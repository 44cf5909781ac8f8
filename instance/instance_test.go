package instance_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dshunter/dshunter/instance"
)

type InstanceSuite struct {
	suite.Suite
	g *instance.Instance
}

func (s *InstanceSuite) SetupTest() {
	s.g = instance.New()
}

func (s *InstanceSuite) TestAddNodeAndHasNode() {
	require := require.New(s.T())
	require.False(s.g.HasNode(1))

	v := s.g.AddNode()
	require.True(s.g.HasNode(v))
	require.Equal(1, s.g.NodeCount())
	require.True(s.g.IsExtra(v), "AddNode creates gadget vertices by default")
}

func (s *InstanceSuite) TestAddNodeAtRegularVertex() {
	require := require.New(s.T())
	s.g.AddNodeAt(1, false)
	s.g.AddNodeAt(2, false)
	require.True(s.g.HasNode(1))
	require.True(s.g.HasNode(2))
	require.False(s.g.IsExtra(1))
}

func (s *InstanceSuite) TestAddEdgeAndDeg() {
	require := require.New(s.T())
	s.g.AddNodeAt(1, false)
	s.g.AddNodeAt(2, false)
	require.NoError(s.g.AddEdge(1, 2, instance.Unconstrained))

	require.Equal(1, s.g.Deg(1))
	require.Equal(1, s.g.Deg(2))
	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1))

	status, err := s.g.EdgeStatus(1, 2)
	require.NoError(err)
	require.Equal(instance.Unconstrained, status)
}

func (s *InstanceSuite) TestEdgeStatusMissingEdge() {
	require := require.New(s.T())
	s.g.AddNodeAt(1, false)
	s.g.AddNodeAt(2, false)
	_, err := s.g.EdgeStatus(1, 2)
	require.ErrorIs(err, instance.ErrEdgeNotFound)
}

func (s *InstanceSuite) TestForceEdgeDominatesEndpointsAndCommonNeighbours() {
	require := require.New(s.T())
	// Triangle 1-2-3: forcing (1,2) should dominate 1, 2 and 3 (3 sees both).
	for _, v := range []int{1, 2, 3} {
		s.g.AddNodeAt(v, false)
	}
	require.NoError(s.g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(s.g.AddEdge(1, 3, instance.Unconstrained))
	require.NoError(s.g.AddEdge(2, 3, instance.Unconstrained))

	require.NoError(s.g.ForceEdge(1, 2))

	require.True(s.g.IsDominated(1))
	require.True(s.g.IsDominated(2))
	require.True(s.g.IsDominated(3))
	status, err := s.g.EdgeStatus(1, 2)
	require.NoError(err)
	require.Equal(instance.Forced, status)
}

func (s *InstanceSuite) TestForceEdgeTwiceIsInvariantViolation() {
	require := require.New(s.T())
	s.g.AddNodeAt(1, false)
	s.g.AddNodeAt(2, false)
	require.NoError(s.g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(s.g.ForceEdge(1, 2))
	require.ErrorIs(s.g.ForceEdge(1, 2), instance.ErrInvariant)
}

func (s *InstanceSuite) TestTakeDominatesNeighboursAndRemovesVertex() {
	require := require.New(s.T())
	// Star centered at 1 with leaves 2,3,4.
	for _, v := range []int{1, 2, 3, 4} {
		s.g.AddNodeAt(v, false)
	}
	for _, leaf := range []int{2, 3, 4} {
		require.NoError(s.g.AddEdge(1, leaf, instance.Unconstrained))
	}

	s.g.Take(1)

	require.False(s.g.HasNode(1))
	require.Equal([]int{1}, s.g.DS)
	for _, leaf := range []int{2, 3, 4} {
		require.True(s.g.IsDominated(leaf))
	}
}

func (s *InstanceSuite) TestTakeExtraVertexExpandsToNeighbours() {
	require := require.New(s.T())
	a, b := 1, 2
	s.g.AddNodeAt(a, false)
	s.g.AddNodeAt(b, false)
	require.NoError(s.g.AddEdge(a, b, instance.Unconstrained))

	gadget := s.g.AddNode()
	require.NoError(s.g.AddEdge(gadget, a, instance.Unconstrained))
	require.NoError(s.g.AddEdge(gadget, b, instance.Unconstrained))

	s.g.Take(gadget)

	require.Contains(s.g.DS, a)
	require.Contains(s.g.DS, b)
	require.False(s.g.IsTaken(gadget), "extra vertices are never themselves taken")
}

func (s *InstanceSuite) TestSplitIntoComponents() {
	require := require.New(s.T())
	for _, v := range []int{1, 2, 3, 4} {
		s.g.AddNodeAt(v, false)
	}
	require.NoError(s.g.AddEdge(1, 2, instance.Unconstrained))
	require.NoError(s.g.AddEdge(3, 4, instance.Unconstrained))

	comps := s.g.Split()
	require.Len(comps, 2)
}

func (s *InstanceSuite) TestIsSolvableFalseOnceDominatorsExhausted() {
	require := require.New(s.T())
	s.g.AddNodeAt(1, false)
	require.True(s.g.IsSolvable())

	s.g.MarkDisregarded(1)
	require.False(s.g.IsSolvable(), "undominated vertex with no remaining dominators is unsolvable")
}

func (s *InstanceSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	s.g.AddNodeAt(1, false)
	s.g.AddNodeAt(2, false)
	require.NoError(s.g.AddEdge(1, 2, instance.Unconstrained))

	cp := s.g.Clone()
	cp.Take(1)

	require.True(s.g.HasNode(1), "mutating the clone must not affect the original")
	require.False(cp.HasNode(1))
}

func TestInstanceSuite(t *testing.T) {
	suite.Run(t, new(InstanceSuite))
}
