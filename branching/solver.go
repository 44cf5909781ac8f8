package branching

import (
	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/rrules"
)

// maxRuleComplexity bounds the reduction pre-pass run at every branching
// node: only cheap rules are worth re-running on every recursive call.
const maxRuleComplexity = 3

// Solver is the branch-and-bound fallback: presolve with a cheap reduction
// pass, bound with GreedyDominatingSet/MaximalScatteredSet, and otherwise
// pick a vertex and recurse on "take it" versus, if it has FORCED edges,
// "take all of its FORCED neighbours together", or otherwise one branch per
// neighbour, "take that neighbour instead".
type Solver struct {
	Rules []*rrules.Rule
}

// NewSolver returns a Solver using rrules.DefaultRules.
func NewSolver() *Solver {
	return &Solver{Rules: rrules.DefaultRules()}
}

// Solve runs branch-and-bound starting from g, returning the smallest
// dominating set found. g itself is not mutated (every recursive step
// clones before taking).
func (s *Solver) Solve(g *instance.Instance) []int {
	var best []int
	s.solve(g.Clone(), &best)
	return best
}

func (s *Solver) solve(g *instance.Instance, best *[]int) {
	rrules.Reduce(g, s.Rules, maxRuleComplexity)

	if len(*best) > 0 && len(g.DS)+len(MaximalScatteredSet(g, 3)) >= len(*best) {
		return
	}

	v := selectNode(g)
	if v == -1 {
		*best = append([]int(nil), g.DS...)
		return
	}

	s.branch(g, v, best)
}

func (s *Solver) branch(g *instance.Instance, v int, best *[]int) {
	// Taking v itself, unless it's a leaf: taking its single neighbour
	// instead is always at least as good, so that branch alone covers it.
	if g.Deg(v) != 1 {
		clone := g.Clone()
		clone.Take(v)
		s.solve(clone, best)
	}

	var toTake []int
	for _, e := range g.Adj(v) {
		if e.Status == instance.Forced {
			toTake = append(toTake, e.To)
		}
	}

	if len(toTake) == 0 {
		// v is not in the dominating set, so one of its neighbours must be.
		for _, e := range g.Adj(v) {
			clone := g.Clone()
			clone.Take(e.To)
			s.solve(clone, best)
		}
		return
	}

	// v has forced edges and is not taken, so every forced neighbour must be.
	clone := g.Clone()
	for _, u := range toTake {
		clone.Take(u)
	}
	s.solve(clone, best)
}

func selectNode(g *instance.Instance) int {
	if v := maxForcedDegreeNode(g); v != -1 {
		return v
	}
	return maxUndominatedDegreeNode(g)
}

func maxForcedDegreeNode(g *instance.Instance) int {
	best, bestDeg := -1, 0
	for _, v := range g.Nodes {
		if d := g.ForcedDeg(v); d > bestDeg {
			best, bestDeg = v, d
		}
	}
	return best
}

func maxUndominatedDegreeNode(g *instance.Instance) int {
	best, bestDeg := -1, 0
	for _, v := range g.Nodes {
		if d := undominatedDegree(g, v); d > bestDeg {
			best, bestDeg = v, d
		}
	}
	return best
}

func undominatedDegree(g *instance.Instance, v int) int {
	d := 0
	if !g.IsDominated(v) {
		d = 1
	}
	for _, e := range g.Adj(v) {
		if !g.IsDominated(e.To) {
			d++
		}
	}
	return d
}
