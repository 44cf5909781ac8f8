package rrules

import "github.com/dshunter/dshunter/instance"

// AlberSimpleRule1 removes an UNCONSTRAINED edge between two already
// DOMINATED vertices: the edge can no longer contribute anything (neither
// endpoint still needs a dominator through it).
//
// Source: DOI 10.1007/s10479-006-0045-4, p. 6 (extended for FORCED edges).
// ~O(|G|^2) dense, O(|G|) sparse.
var AlberSimpleRule1 = &Rule{
	Name:             "AlberSimpleRule1 (dominated edge removal)",
	Apply:            alberSimpleRule1,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func alberSimpleRule1(g *instance.Instance) bool {
	type pair struct{ v, w int }
	var toRemove []pair
	for _, v := range g.Nodes {
		for _, e := range g.Adj(v) {
			w := e.To
			if v > w || e.Status == instance.Forced {
				continue
			}
			if g.IsDominated(v) && g.IsDominated(w) {
				toRemove = append(toRemove, pair{v, w})
			}
		}
	}
	for _, p := range toRemove {
		g.RemoveEdge(p.v, p.w)
	}
	return len(toRemove) > 0
}

// AlberSimpleRule2 removes a DOMINATED vertex of degree at most 1. If it had
// a FORCED edge, the neighbour must be taken — it's always at least as good
// as taking v and the constraint demands one of them.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var AlberSimpleRule2 = &Rule{
	Name:             "AlberSimpleRule2 (dominated leaf removal)",
	Apply:            alberSimpleRule2,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func alberSimpleRule2(g *instance.Instance) bool {
	var toRemove, toTake []int
	for _, v := range g.Nodes {
		if g.IsDominated(v) && g.Deg(v) <= 1 {
			toRemove = append(toRemove, v)
			if g.Deg(v) == 1 {
				e := g.Adj(v)[0]
				w := e.To
				if e.Status == instance.Forced && !(g.Deg(w) == 1 && g.IsDominated(w) && v > w) {
					toTake = append(toTake, w)
				}
			}
		}
	}

	for _, v := range toTake {
		if !g.IsTaken(v) {
			g.Take(v)
		}
	}
	for _, v := range toRemove {
		if g.HasNode(v) {
			g.RemoveNode(v)
		}
	}

	return len(toRemove) > 0 || len(toTake) > 0
}

// AlberSimpleRule3 removes a DOMINATED degree-2 vertex v when both its
// neighbours are undominated and share either a direct edge or a common
// non-disregarded neighbour: v contributes nothing a direct neighbour pair
// wouldn't already cover. If exactly one of v's edges is FORCED, that
// neighbour is taken first.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var AlberSimpleRule3 = &Rule{
	Name:             "AlberSimpleRule3 (dominated degree 2 vertex removal)",
	Apply:            alberSimpleRule3,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func haveCommonNonDisregardedNeighbour(g *instance.Instance, u, v1, v2 int) bool {
	for _, w := range g.NeighboursOpen(v1) {
		if w == u || g.IsDisregarded(w) {
			continue
		}
		if g.HasEdge(w, v2) {
			return true
		}
	}
	return false
}

func alberSimpleRule3(g *instance.Instance) bool {
	reduced := false
	for _, v := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(v) || !g.IsDominated(v) || g.Deg(v) != 2 {
			continue
		}
		adj := g.Adj(v)
		u1, s1 := adj[0].To, adj[0].Status
		u2, s2 := adj[1].To, adj[1].Status

		if s1 == instance.Forced && s2 == instance.Forced {
			// Might be optimal to take v instead of both neighbours.
			continue
		}

		shouldRemove := !g.IsDominated(u1) && !g.IsDominated(u2) &&
			(g.HasEdge(u1, u2) || haveCommonNonDisregardedNeighbour(g, v, u1, u2))

		if shouldRemove {
			if s1 == instance.Forced {
				g.Take(u1)
			}
			if s2 == instance.Forced {
				g.Take(u2)
			}
			g.RemoveNode(v)
			reduced = true
		}
	}
	return reduced
}

// AlberSimpleRule4 removes a DOMINATED degree-3 vertex v when one of its
// neighbours is adjacent to the other two (a "midpoint"): taking that
// midpoint dominates everything v would, so v is redundant. At most one of
// v's three edges may be FORCED, and it must lead to the midpoint.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var AlberSimpleRule4 = &Rule{
	Name:             "AlberSimpleRule4 (dominated degree 3 vertex removal)",
	Apply:            alberSimpleRule4,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func tryMidpoint(g *instance.Instance, forcedByEdge bool, u, v, w int) bool {
	if !g.IsDisregarded(u) && g.HasEdge(u, v) && g.HasEdge(u, w) {
		if forcedByEdge {
			g.Take(u)
		}
		return true
	}
	return false
}

func alberSimpleRule4(g *instance.Instance) bool {
	reduced := false
	for _, v := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(v) || !g.IsDominated(v) || g.Deg(v) != 3 {
			continue
		}
		adj := g.Adj(v)
		u1, s1 := adj[0].To, adj[0].Status
		u2, s2 := adj[1].To, adj[1].Status
		u3, s3 := adj[2].To, adj[2].Status

		nForced := statusBit(s1) + statusBit(s2) + statusBit(s3)
		possiblyValid := !g.IsDominated(u1) && !g.IsDominated(u2) && !g.IsDominated(u3) && nForced <= 1

		if possiblyValid {
			if tryMidpoint(g, s1 == instance.Forced, u1, u2, u3) ||
				tryMidpoint(g, s2 == instance.Forced, u2, u1, u3) ||
				tryMidpoint(g, s3 == instance.Forced, u3, u1, u2) {
				g.RemoveNode(v)
				reduced = true
			}
		}
	}
	return reduced
}

func statusBit(s instance.EdgeStatus) int {
	if s == instance.Forced {
		return 1
	}
	return 0
}
