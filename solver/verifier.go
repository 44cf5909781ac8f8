package solver

import (
	"fmt"

	"github.com/dshunter/dshunter/instance"
)

// Verify checks that solution is a valid dominating set of g: every vertex
// of g is dominated by solution, every FORCED edge has a taken endpoint,
// and solution contains no DISREGARDED vertex or duplicate. It never
// mutates g. Ported from verify_solution, which throws on failure; this
// returns a wrapped ErrVerificationFailed instead.
func Verify(g *instance.Instance, solution []int) error {
	dominated := make(map[int]bool, g.NodeCount())
	for _, u := range g.Nodes {
		if g.IsDominated(u) {
			dominated[u] = true
		}
	}

	taken := make(map[int]bool, len(solution))
	for _, u := range solution {
		if g.IsDisregarded(u) {
			return fmt.Errorf("%w: solution contains disregarded vertex %d", ErrVerificationFailed, u)
		}
		if taken[u] {
			return fmt.Errorf("%w: solution contains duplicate vertex %d", ErrVerificationFailed, u)
		}
		taken[u] = true
		for _, v := range g.NeighboursClosed(u) {
			dominated[v] = true
		}
	}

	for _, u := range g.Nodes {
		if !dominated[u] {
			return fmt.Errorf("%w: solution doesn't dominate vertex %d", ErrVerificationFailed, u)
		}
		for _, e := range g.Adj(u) {
			if e.Status == instance.Forced && !taken[u] && !taken[e.To] {
				return fmt.Errorf("%w: forced edge (%d, %d) is unsatisfied", ErrVerificationFailed, u, e.To)
			}
		}
	}

	return nil
}
