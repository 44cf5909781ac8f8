package rrules

import (
	"container/list"

	"github.com/dshunter/dshunter/instance"
)

// AlberMainRule1 looks, for each undisregarded vertex u, at the partition of
// N(u) into exit vertices (those that can "see" outside N[u], directly or
// via a FORCED edge), guard vertices (non-exit neighbours of an exit
// vertex), and prison vertices (everything else in N(u)). If the prison is
// non-empty and contains an undominated vertex, taking u is always at least
// as good as any alternative, so u is taken and the prison/guard vertices —
// now fully accounted for — are removed.
//
// Source: DOI 10.1007/s10479-006-0045-4, p. 4 (extended for FORCED edges).
// ~O(|V|^3) dense, O(|V|) sparse.
var AlberMainRule1 = &Rule{
	Name:             "AlberMainRule1",
	Apply:            alberMainRule1,
	ComplexityDense:  3,
	ComplexitySparse: 1,
}

func hasUndominatedNode(g *instance.Instance, nodes []int) bool {
	for _, v := range nodes {
		if !g.IsDominated(v) {
			return true
		}
	}
	return false
}

// isExit1 reports whether u is an exit vertex with respect to v: it reaches
// outside N[v], or does so via a FORCED edge (which must be honoured
// regardless of where it leads).
func isExit1(g *instance.Instance, u, v int) bool {
	for _, e := range g.Adj(u) {
		if e.To != v && (!g.HasEdge(v, e.To) || e.Status == instance.Forced) {
			return true
		}
	}
	return false
}

func exitNeighbourhood1(g *instance.Instance, u int) []int {
	var exit []int
	for _, v := range g.NeighboursOpen(u) {
		if isExit1(g, v, u) {
			exit = append(exit, v)
		}
	}
	return exit
}

func alberMainRule1(g *instance.Instance) bool {
	reduced := false
	for _, u := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(u) || g.IsDisregarded(u) {
			continue
		}

		nExit := exitNeighbourhood1(g, u)
		var nGuard []int
		for _, v := range remove(g.NeighboursOpen(u), nExit) {
			if len(intersect(g.NeighboursOpen(v), nExit)) > 0 {
				nGuard = append(nGuard, v)
			}
		}
		nPrison := remove(remove(g.NeighboursOpen(u), nExit), nGuard)

		if len(nPrison) > 0 && hasUndominatedNode(g, nPrison) {
			g.Take(u)
			g.RemoveNodes(nPrison)
			g.RemoveNodes(nGuard)
			reduced = true
		}
	}
	return reduced
}

// AlberMainRule2 extends AlberMainRule1 to a pair of vertices v, w within
// distance 3 of each other, partitioning N[v] ∪ N[w] into exit/guard/prison
// sets the same way. If the prison contains an undominated vertex that
// cannot be dominated by a single guard or prison vertex, one of four
// sub-cases fires depending on whether v alone, w alone, both, or neither
// can dominate the prison — see applyCase1_1/1_2/1_3/applyCase2.
//
// Source: DOI 10.1007/s10479-006-0045-4, p. 4 (extended for FORCED edges).
// ~O(|V|^4) dense, O(|V|^2) sparse.
var AlberMainRule2 = &Rule{
	Name:             "AlberMainRule2",
	Apply:            alberMainRule2,
	ComplexityDense:  4,
	ComplexitySparse: 2,
}

func isExit2(g *instance.Instance, u, v, w int) bool {
	for _, e := range g.Adj(u) {
		x := e.To
		if x != v && x != w && ((!g.HasEdge(x, v) && !g.HasEdge(x, w)) || e.Status == instance.Forced) {
			return true
		}
	}
	return false
}

func populateExitNodes(g *instance.Instance, nVWWithout []int, v, w int) []int {
	var exit []int
	for _, u := range nVWWithout {
		if isExit2(g, u, v, w) {
			exit = append(exit, u)
		}
	}
	return exit
}

func populateGuardNodes(g *instance.Instance, nVWWithout, nExit []int) []int {
	var guard []int
	for _, u := range remove(nVWWithout, nExit) {
		if len(intersect(g.NeighboursOpen(u), nExit)) > 0 {
			guard = append(guard, u)
		}
	}
	return guard
}

func redNeighbours(g *instance.Instance, v int) []int {
	var res []int
	for _, e := range g.Adj(v) {
		if e.Status == instance.Forced {
			res = append(res, e.To)
		}
	}
	return res
}

func filterDominatedNodes(g *instance.Instance, nPrison []int) []int {
	var res []int
	for _, u := range nPrison {
		if !g.IsDominated(u) {
			res = append(res, u)
		}
	}
	return res
}

func canBeDominatedBySingleNode(g *instance.Instance, nPrisonIntersectB, nGuard, nPrison []int) bool {
	if len(nPrisonIntersectB) == 0 {
		return true
	}
	canFrom := func(nodes []int) bool {
		for _, x := range nodes {
			if containsAll(g.NeighboursClosed(x), nPrisonIntersectB) {
				return true
			}
		}
		return false
	}
	return canFrom(nGuard) || canFrom(nPrison)
}

func applyCase1_1(g *instance.Instance, v, w int, nPrison, nGuard, nVWithout, nWWithout []int) bool {
	if !g.HasEdge(v, w) {
		if len(nPrison)+len(intersect(intersect(nGuard, nVWithout), nWWithout)) <= 3 {
			return false
		}
		z1, z2, z3 := g.AddNode(), g.AddNode(), g.AddNode()
		_ = g.AddEdge(v, z1, instance.Unconstrained)
		_ = g.AddEdge(v, z2, instance.Unconstrained)
		_ = g.AddEdge(v, z3, instance.Unconstrained)
		_ = g.AddEdge(w, z1, instance.Unconstrained)
		_ = g.AddEdge(w, z2, instance.Unconstrained)
		_ = g.AddEdge(w, z3, instance.Unconstrained)

		g.RemoveNodes(nPrison)
		g.RemoveNodes(intersect(intersect(nGuard, nVWithout), nWWithout))
		return true
	}

	if status, _ := g.EdgeStatus(v, w); status == instance.Unconstrained {
		_ = g.ForceEdge(v, w)
	}
	g.RemoveNodes(nPrison)
	g.RemoveNodes(intersect(intersect(nGuard, nVWithout), nWWithout))
	return true
}

func applyCase1_2(g *instance.Instance, v int, nPrison, nVWithout, nGuard []int) bool {
	g.Take(v)
	g.RemoveNodes(nPrison)
	g.RemoveNodes(intersect(nVWithout, nGuard))
	return true
}

func applyCase1_3(g *instance.Instance, w int, nPrison, nWWithout, nGuard []int) bool {
	g.Take(w)
	if g.HasNode(w) {
		g.RemoveNode(w)
	}
	g.RemoveNodes(nPrison)
	g.RemoveNodes(intersect(nWWithout, nGuard))
	return true
}

func applyCase2(g *instance.Instance, v, w int, nVWWithout, nPrison, nGuard []int) bool {
	for _, u := range nVWWithout {
		g.MarkDominated(u)
	}
	g.Take(v)
	g.Take(w)
	g.RemoveNodes(nPrison)
	g.RemoveNodes(nGuard)
	return true
}

func applyAlberMainRule2(g *instance.Instance, v, w int) bool {
	nVWithout := g.NeighboursOpen(v)
	nWWithout := g.NeighboursOpen(w)
	nVWWithout := unite(nVWithout, nWWithout)

	nExit := populateExitNodes(g, nVWWithout, v, w)

	// The only FORCED edges out of an exit vertex must land on v or w.
	for _, from := range nExit {
		for _, e := range g.Adj(from) {
			if e.Status == instance.Forced && e.To != v && e.To != w {
				return false
			}
		}
	}

	nGuard := populateGuardNodes(g, nVWWithout, nExit)
	nPrison := remove(remove(nVWWithout, nExit), nGuard)

	nPrisonIntersectB := filterDominatedNodes(g, nPrison)
	if len(nPrisonIntersectB) == 0 {
		return false
	}

	redV := len(redNeighbours(g, v))
	redW := len(redNeighbours(g, w))

	if canBeDominatedBySingleNode(g, nPrisonIntersectB, nGuard, nPrison) {
		return false
	}

	canByV := containsAll(nVWithout, nPrisonIntersectB)
	canByW := containsAll(nWWithout, nPrisonIntersectB)

	switch {
	case canByV && canByW && redV == 0 && redW == 0:
		return applyCase1_1(g, v, w, nPrison, nGuard, nVWithout, nWWithout)
	case canByV && redW == 0:
		return applyCase1_2(g, v, nPrison, nVWithout, nGuard)
	case canByW && redV == 0:
		return applyCase1_3(g, w, nPrison, nWWithout, nGuard)
	case !canByV && !canByW:
		return applyCase2(g, v, w, nVWWithout, nPrison, nGuard)
	}
	return false
}

func alberMainRule2(g *instance.Instance) bool {
	const bfsInf = 1 << 30
	distance := map[int]int{}
	zeroDist := bfsInf - 4

	for _, v := range g.Nodes {
		if g.IsDisregarded(v) {
			continue
		}
		q := list.New()
		distance[v] = zeroDist
		q.PushBack(v)
		for q.Len() > 0 {
			front := q.Front()
			q.Remove(front)
			w := front.Value.(int)

			if distance[w] > zeroDist && !g.IsDisregarded(w) && applyAlberMainRule2(g, v, w) {
				return true
			}
			if distance[w] < zeroDist+3 {
				for _, e := range g.Adj(w) {
					x := e.To
					if d, ok := distance[x]; !ok || d > distance[w]+1 {
						distance[x] = distance[w] + 1
						q.PushBack(x)
					}
				}
			}
		}
		zeroDist -= 4
	}

	return false
}
