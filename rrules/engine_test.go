package rrules_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/rrules"
)

type EngineSuite struct {
	suite.Suite
}

func (s *EngineSuite) TestReduceStopsWhenNothingFires() {
	require := require.New(s.T())
	g := instance.New()
	g.AddNodeAt(1, false)

	calls := 0
	noop := &rrules.Rule{
		Name:             "noop",
		Apply:            func(*instance.Instance) bool { calls++; return false },
		ComplexityDense:  1,
		ComplexitySparse: 1,
	}

	rrules.Reduce(g, []*rrules.Rule{noop}, 1)
	require.Equal(1, calls)
	require.Equal(1, noop.Applications())
	require.Equal(0, noop.Successes())
}

func (s *EngineSuite) TestReduceRestartsFromFirstRuleOnSuccess() {
	require := require.New(s.T())
	g := instance.New()
	g.AddNodeAt(1, false)

	fired := false
	onceRule := &rrules.Rule{
		Name: "once",
		Apply: func(*instance.Instance) bool {
			if fired {
				return false
			}
			fired = true
			return true
		},
		ComplexityDense:  1,
		ComplexitySparse: 1,
	}

	rrules.Reduce(g, []*rrules.Rule{onceRule}, 1)
	require.Equal(2, onceRule.Applications(), "one successful pass, one confirming empty pass")
	require.Equal(1, onceRule.Successes())
}

func (s *EngineSuite) TestReduceSkipsRulesAboveComplexityBudget() {
	require := require.New(s.T())
	g := instance.New()
	g.AddNodeAt(1, false)

	expensive := &rrules.Rule{
		Name:             "expensive",
		Apply:            func(*instance.Instance) bool { s.Fail("should not run"); return false },
		ComplexityDense:  4,
		ComplexitySparse: 2,
	}

	rrules.Reduce(g, []*rrules.Rule{expensive}, 1)
	require.Equal(0, expensive.Applications())
}

func (s *EngineSuite) TestReduceZeroComplexitySkipsEverything() {
	require := require.New(s.T())
	g := instance.New()
	g.AddNodeAt(1, false)

	cheapest := &rrules.Rule{
		Name:             "cheapest",
		Apply:            func(*instance.Instance) bool { s.Fail("should not run"); return false },
		ComplexityDense:  1,
		ComplexitySparse: 1,
	}

	rrules.Reduce(g, []*rrules.Rule{cheapest}, 0)
	require.Equal(0, cheapest.Applications())
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
