package rrules

import "github.com/dshunter/dshunter/instance"

// SameDominatorsRule marks u DOMINATED whenever some w within distance two
// has dominators(w) ⊆ dominators(u): whichever vertex eventually dominates w
// is guaranteed to also dominate u, so u needs no separate commitment.
//
// ~O(|G|^3) dense, O(|G|^2) sparse.
var SameDominatorsRule = &Rule{
	Name:             "SameDominatorsRule",
	Apply:            sameDominatorsRule,
	ComplexityDense:  3,
	ComplexitySparse: 2,
}

func applySameDominatorsRule(g *instance.Instance, u, w int) bool {
	if u != w && !g.IsDominated(u) && !g.IsDominated(w) &&
		containsAll(g.Dominators(u), g.Dominators(w)) {
		g.MarkDominated(u)
		return true
	}
	return false
}

func sameDominatorsRule(g *instance.Instance) bool {
	reduced := false
	for _, u := range g.Nodes {
		for _, v := range g.NeighboursOpen(u) {
			for _, w := range g.NeighboursClosed(v) {
				if applySameDominatorsRule(g, u, w) {
					reduced = true
				}
			}
		}
	}
	return reduced
}
