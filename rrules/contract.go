package rrules

import "github.com/dshunter/dshunter/instance"

// ContractRule looks for a degree-2, non-FORCED vertex u sitting between
// some vertex x and a second degree-2, non-FORCED vertex v, where v in turn
// sits between u and some y. When x and y are the same vertex (u, v
// form a 2-path folded back onto x), taking x is always optimal: it
// dominates both u and v, so both can be dropped.
//
// The x != y case folds u and v out of the path x-u-v-y in two steps, each
// via Instance.Contract: the first replaces u with a gadget adjacent to x
// and v, the second replaces v with a gadget adjacent to the first gadget
// and y. The reference calls a general Instance::contract(a, b) merge
// primitive here that it declares and calls but never defines in any
// surviving source file; chaining two Contract folds is the grounded
// stand-in this port uses instead, reusing the same gadget machinery
// ForceEdgeRule's forced-triangle case would have needed.
//
// ~O(|G|) for any graph.
var ContractRule = &Rule{
	Name:             "ContractRule",
	Apply:            contractRule,
	ComplexityDense:  1,
	ComplexitySparse: 1,
}

func tryContract(g *instance.Instance, u int) bool {
	if g.Deg(u) != 2 || g.ForcedDeg(u) != 0 {
		return false
	}
	open := g.NeighboursOpen(u)
	x, v := open[0], open[1]
	if g.Deg(v) != 2 || g.ForcedDeg(v) != 0 {
		x, v = v, x
	}
	if g.Deg(v) != 2 || g.ForcedDeg(v) != 0 {
		return false
	}

	vOpen := g.NeighboursOpen(v)
	y := vOpen[0]
	if y == u {
		y = vOpen[1]
	}

	if g.IsDisregarded(u) || g.IsDisregarded(v) || g.IsDisregarded(x) || g.IsDisregarded(y) {
		return false
	}
	if g.IsDominated(u) || g.IsDominated(v) || g.IsDominated(x) || g.IsDominated(y) {
		return false
	}

	if x == y {
		g.Take(x)
		if g.HasNode(u) {
			g.RemoveNode(u)
		}
		if g.HasNode(v) {
			g.RemoveNode(v)
		}
		return true
	}

	gadget := g.Contract(x, u, v)
	g.Contract(gadget, v, y)

	return true
}

func contractRule(g *instance.Instance) bool {
	reduced := false
	for _, u := range append([]int(nil), g.Nodes...) {
		if g.HasNode(u) && tryContract(g, u) {
			reduced = true
		}
	}
	return reduced
}
