package rrules_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/rrules"
)

type RulesSuite struct {
	suite.Suite
	g *instance.Instance
}

func (s *RulesSuite) SetupTest() {
	s.g = instance.New()
}

func (s *RulesSuite) addPath(vertices ...int) {
	for _, v := range vertices {
		s.g.AddNodeAt(v, false)
	}
}

func (s *RulesSuite) addEdge(u, v int) {
	s.Require().NoError(s.g.AddEdge(u, v, instance.Unconstrained))
}

func (s *RulesSuite) TestForceEdgeRuleFoldsTriangleApex() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(2, 3)

	require.True(rrules.ForceEdgeRule.Apply(s.g))
	require.False(s.g.HasNode(1))
	status, err := s.g.EdgeStatus(2, 3)
	require.NoError(err)
	require.Equal(instance.Forced, status)
}

func (s *RulesSuite) TestDisregardRuleOnSymmetricTriangle() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(2, 3)

	require.True(rrules.DisregardRule.Apply(s.g))
	count := 0
	for _, v := range []int{1, 2, 3} {
		if s.g.IsDisregarded(v) {
			count++
		}
	}
	require.Equal(1, count, "exactly one vertex of a symmetric triangle is disregarded per application")
}

func (s *RulesSuite) TestDominatedNeighbourhoodMarkingRule() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.g.MarkDominated(2)
	s.g.MarkDominated(3)

	require.True(rrules.DominatedNeighbourhoodMarkingRule.Apply(s.g))
	require.True(s.g.IsDisregarded(1))
}

func (s *RulesSuite) TestRemoveDisregardedRule() {
	require := require.New(s.T())
	s.addPath(1)
	s.g.MarkDisregarded(1)
	s.g.MarkDominated(1)

	require.True(rrules.RemoveDisregardedRule.Apply(s.g))
	require.False(s.g.HasNode(1))
}

func (s *RulesSuite) TestSingleDominatorRuleTakesIsolatedVertex() {
	require := require.New(s.T())
	s.addPath(1)

	require.True(rrules.SingleDominatorRule.Apply(s.g))
	require.False(s.g.HasNode(1))
	require.Equal([]int{1}, s.g.DS)
}

func (s *RulesSuite) TestDisregardedNeighbourhoodRuleTakesSurroundedVertex() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.g.MarkDisregarded(2)
	s.g.MarkDisregarded(3)

	require.True(rrules.DisregardedNeighbourhoodRule.Apply(s.g))
	require.Contains(s.g.DS, 1)
}

func (s *RulesSuite) TestDominatedNeighbourhoodTakingRule() {
	require := require.New(s.T())
	// u disregarded, its only neighbour v is dominated with degree <= 2.
	s.addPath(1, 2)
	s.addEdge(1, 2)
	s.g.MarkDisregarded(1)
	s.g.MarkDominated(2)

	require.True(rrules.DominatedNeighbourhoodTakingRule.Apply(s.g))
	require.False(s.g.HasNode(1))
	require.Contains(s.g.DS, 2)
}

func (s *RulesSuite) TestSameDominatorsRuleOnSymmetricTriangle() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(2, 3)

	require.True(rrules.SameDominatorsRule.Apply(s.g))
	require.True(s.g.IsDominated(1))
	require.True(s.g.IsDominated(2))
	require.False(s.g.IsDominated(3))
}

func (s *RulesSuite) TestAlberSimpleRule1RemovesDominatedEdge() {
	require := require.New(s.T())
	s.addPath(1, 2)
	s.addEdge(1, 2)
	s.g.MarkDominated(1)
	s.g.MarkDominated(2)

	require.True(rrules.AlberSimpleRule1.Apply(s.g))
	require.False(s.g.HasEdge(1, 2))
}

func (s *RulesSuite) TestAlberSimpleRule2RemovesDominatedLeafAndTakesForcedNeighbour() {
	require := require.New(s.T())
	s.addPath(1, 2)
	s.addEdge(1, 2)
	require.NoError(s.g.ForceEdge(1, 2))

	require.True(rrules.AlberSimpleRule2.Apply(s.g))
	require.False(s.g.HasNode(1))
	require.False(s.g.HasNode(2))
	require.Contains(s.g.DS, 2)
}

func (s *RulesSuite) TestAlberSimpleRule3RemovesDominatedDegree2Vertex() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(2, 3)
	s.g.MarkDominated(1)

	require.True(rrules.AlberSimpleRule3.Apply(s.g))
	require.False(s.g.HasNode(1))
	require.True(s.g.HasNode(2))
	require.True(s.g.HasNode(3))
	require.True(s.g.HasEdge(2, 3))
}

func (s *RulesSuite) TestAlberSimpleRule4RemovesDominatedDegree3VertexWithMidpoint() {
	require := require.New(s.T())
	s.addPath(1, 2, 3, 4)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(1, 4)
	s.addEdge(2, 3)
	s.addEdge(2, 4)
	s.g.MarkDominated(1)

	require.True(rrules.AlberSimpleRule4.Apply(s.g))
	require.False(s.g.HasNode(1))
	require.True(s.g.HasEdge(2, 3))
	require.True(s.g.HasEdge(2, 4))
}

func (s *RulesSuite) TestAlberMainRule1TakesCenterOfIsolatedStar() {
	require := require.New(s.T())
	s.addPath(1, 2, 3, 4)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(1, 4)

	require.True(rrules.AlberMainRule1.Apply(s.g))
	require.Equal([]int{1}, s.g.DS)
	require.Equal(0, s.g.NodeCount())
}

func (s *RulesSuite) TestAlberMainRule2OnPlainPathDoesNotPanic() {
	require := require.New(s.T())
	s.addPath(1, 2, 3, 4, 5)
	s.addEdge(1, 2)
	s.addEdge(2, 3)
	s.addEdge(3, 4)
	s.addEdge(4, 5)

	require.NotPanics(func() {
		rrules.AlberMainRule2.Apply(s.g)
	})
}

func (s *RulesSuite) TestContractRuleFoldsTriangle() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.addEdge(2, 3)

	require.True(rrules.ContractRule.Apply(s.g))
	require.Len(s.g.DS, 1)
	require.Equal(0, s.g.NodeCount())
}

func (s *RulesSuite) TestContractRuleFoldsGadgetPathWhenEndpointsDiffer() {
	require := require.New(s.T())
	// path 1-2-3-4: u=2, v=3 both degree-2/unconstrained, endpoints 1 and 4 differ.
	s.addPath(1, 2, 3, 4)
	s.addEdge(1, 2)
	s.addEdge(2, 3)
	s.addEdge(3, 4)

	require.True(rrules.ContractRule.Apply(s.g))
	require.False(s.g.HasNode(2))
	require.False(s.g.HasNode(3))
	require.True(s.g.HasNode(1))
	require.True(s.g.HasNode(4))
	require.Equal(4, s.g.NodeCount(), "u and v are each replaced by a gadget vertex, so the count is unchanged")
}

func (s *RulesSuite) TestHittingSetRuleRecordsConstraintAndRemovesVertex() {
	require := require.New(s.T())
	s.addPath(1, 2, 3)
	s.addEdge(1, 2)
	s.addEdge(1, 3)
	s.g.MarkDominated(2)
	s.g.MarkDominated(3)

	require.True(rrules.HittingSetRule.Apply(s.g))
	require.False(s.g.HasNode(1))
	require.Len(s.g.SetsToHit, 1)
	require.ElementsMatch([]int{2, 3}, s.g.SetsToHit[0])
}

func (s *RulesSuite) TestDefaultRulesOrderAndComposition() {
	require := require.New(s.T())
	all := rrules.DefaultRules()
	require.Len(all, 12)
	require.Equal("ForceEdgeRule", all[0].Name)
	require.Equal("SameDominatorsRule", all[5].Name)
	require.Equal("AlberMainRule2", all[len(all)-1].Name)
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}
