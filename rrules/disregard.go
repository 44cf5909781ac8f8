package rrules

import "github.com/dshunter/dshunter/instance"

// DisregardRule excludes u from ever being taken when a neighbour v exists
// whose closed neighbourhood is a superset of u's: taking v instead of u is
// always at least as good, since v dominates everything u would plus
// possibly more, and v also dominates u directly. The check is skipped if u
// has a FORCED edge elsewhere, since then u might still need to be the one
// taken to satisfy that constraint.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var DisregardRule = &Rule{
	Name:             "DisregardRule",
	Apply:            disregardRule,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func hasRedEdge(g *instance.Instance, u, excluded int) bool {
	for _, e := range g.Adj(u) {
		if e.To != excluded && e.Status == instance.Forced {
			return true
		}
	}
	return false
}

func disregardRule(g *instance.Instance) bool {
	for _, u := range g.Nodes {
		for _, e := range g.Adj(u) {
			v := e.To
			if !g.IsDisregarded(v) && !g.IsTaken(u) && !g.IsDisregarded(u) &&
				containsAll(g.NeighboursClosed(v), g.NeighboursClosed(u)) &&
				!hasRedEdge(g, u, v) {
				g.MarkDisregarded(u)
				return true
			}
		}
	}
	return false
}

// DominatedNeighbourhoodMarkingRule disregards u once every neighbour of u
// is already dominated and at least one of them could still be taken: u
// itself never needs to be taken, because whichever still-available
// neighbour ends up in the dominating set would dominate u for free. This
// does not apply if u has two or more FORCED edges (both ends would need
// resolving), nor if its one FORCED edge leads to an already-disregarded
// vertex.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var DominatedNeighbourhoodMarkingRule = &Rule{
	Name:             "DominatedNeighbourhoodMarkingRule",
	Apply:            dominatedNeighbourhoodMarkingRule,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func allNeighboursAreDominated(g *instance.Instance, u int) bool {
	for _, v := range g.NeighboursOpen(u) {
		if !g.IsDominated(v) {
			return false
		}
	}
	return true
}

func atLeastOneNeighbourCanBeTaken(g *instance.Instance, u int) bool {
	for _, v := range g.NeighboursOpen(u) {
		if !g.IsDisregarded(v) {
			return true
		}
	}
	return false
}

func otherEndCanBeTaken(g *instance.Instance, u int) bool {
	for _, e := range g.Adj(u) {
		if e.Status == instance.Forced {
			return !g.IsDisregarded(e.To)
		}
	}
	panic(instance.ErrInvariant)
}

func dominatedNeighbourhoodMarkingRule(g *instance.Instance) bool {
	reduced := false
	for _, u := range g.Nodes {
		if g.IsDisregarded(u) || !allNeighboursAreDominated(g, u) || !atLeastOneNeighbourCanBeTaken(g, u) {
			continue
		}
		if g.ForcedDeg(u) == 0 || (g.ForcedDeg(u) == 1 && otherEndCanBeTaken(g, u)) {
			g.MarkDisregarded(u)
			reduced = true
		}
	}
	return reduced
}

// RemoveDisregardedRule removes every vertex that is both DISREGARDED and
// DOMINATED: it can never be taken and never needs to be dominated again,
// so it carries no further information. Any FORCED edge it still has forces
// its other endpoint to be taken before the vertex is dropped.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var RemoveDisregardedRule = &Rule{
	Name:             "RemoveDisregardedRule",
	Apply:            removeDisregardedRule,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func removeDisregardedRule(g *instance.Instance) bool {
	var toRemove []int
	for _, u := range g.Nodes {
		if g.IsDisregarded(u) && g.IsDominated(u) {
			toRemove = append(toRemove, u)
		}
	}

	for _, u := range toRemove {
		for _, e := range append([]instance.Endpoint(nil), g.Adj(u)...) {
			if e.Status == instance.Forced {
				g.Take(e.To)
			}
		}
		g.RemoveNode(u)
	}

	return len(toRemove) > 0
}

// SingleDominatorRule takes v's sole remaining dominator whenever v is
// undominated and exactly one candidate dominator is left (possibly v
// itself, for an isolated vertex): there is no other choice that keeps the
// instance solvable.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var SingleDominatorRule = &Rule{
	Name:             "SingleDominatorRule",
	Apply:            singleDominatorRule,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func singleDominatorRule(g *instance.Instance) bool {
	reduced := false
	for _, v := range append([]int(nil), g.Nodes...) {
		if g.HasNode(v) && !g.IsDominated(v) && len(g.Dominators(v)) == 1 {
			g.Take(g.Dominators(v)[0])
			reduced = true
		}
	}
	return reduced
}

// DisregardedNeighbourhoodRule takes every undominated, non-disregarded
// vertex all of whose neighbours are DISREGARDED: none of its neighbours
// will ever be taken, so it must dominate itself.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var DisregardedNeighbourhoodRule = &Rule{
	Name:             "DisregardedNeighbourhoodRule",
	Apply:            disregardedNeighbourhoodRule,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func allNeighboursAreDisregarded(g *instance.Instance, u int) bool {
	for _, v := range g.NeighboursOpen(u) {
		if !g.IsDisregarded(v) {
			return false
		}
	}
	return true
}

func disregardedNeighbourhoodRule(g *instance.Instance) bool {
	var toTake []int
	for _, u := range g.Nodes {
		if !g.IsDominated(u) && !g.IsDisregarded(u) && allNeighboursAreDisregarded(g, u) {
			toTake = append(toTake, u)
		}
	}
	for _, u := range toTake {
		g.Take(u)
	}
	return len(toTake) > 0
}

// DominatedNeighbourhoodTakingRule removes a DISREGARDED vertex u all of
// whose neighbours are already DOMINATED with degree at most 2, taking one
// still-takeable neighbour in its place: u itself contributes nothing (it
// can never be taken), and every neighbour is already excused from needing
// domination, so the only useful move left is committing one neighbour.
//
// ~O(|G|^2) dense, O(|G|) sparse.
var DominatedNeighbourhoodTakingRule = &Rule{
	Name:             "DominatedNeighbourhoodTakingRule",
	Apply:            dominatedNeighbourhoodTakingRule,
	ComplexityDense:  2,
	ComplexitySparse: 1,
}

func allNeighboursAreAtMostDegree2Dominated(g *instance.Instance, u int) bool {
	for _, v := range g.NeighboursOpen(u) {
		if !g.IsDominated(v) || g.Deg(v) > 2 {
			return false
		}
	}
	return true
}

func neighbourToTake(g *instance.Instance, u int) int {
	for _, v := range g.NeighboursOpen(u) {
		if !g.IsDisregarded(v) {
			return v
		}
	}
	return -1
}

func dominatedNeighbourhoodTakingRule(g *instance.Instance) bool {
	reduced := false
	for _, u := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(u) || !g.IsDisregarded(u) || !allNeighboursAreAtMostDegree2Dominated(g, u) {
			continue
		}
		if v := neighbourToTake(g, u); v != -1 {
			g.RemoveNode(u)
			g.Take(v)
			reduced = true
		}
	}
	return reduced
}
