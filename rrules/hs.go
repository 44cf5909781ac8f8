package rrules

import "github.com/dshunter/dshunter/instance"

// HittingSetRule peels off an undominated vertex whose entire open
// neighbourhood is already dominated, recording that neighbourhood as a
// hitting-set constraint (at least one of those vertices must still be
// taken to dominate v) before removing v. It is not part of DefaultRules:
// the resulting SetsToHit constraints need a dedicated hitting-set solve
// that the rest of this package does not provide, so callers that want
// this rule must consume SetsToHit themselves.
//
// ~O(|G|) for any graph.
var HittingSetRule = &Rule{
	Name:             "HittingSetRule",
	Apply:            hittingSetRule,
	ComplexityDense:  1,
	ComplexitySparse: 1,
}

func hittingSetRule(g *instance.Instance) bool {
	reduced := false
	for _, v := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(v) || g.IsDominated(v) || !allNeighboursAreDominated(g, v) {
			continue
		}
		g.SetsToHit = append(g.SetsToHit, g.NeighboursOpen(v))
		g.RemoveNode(v)
		reduced = true
	}
	return reduced
}
