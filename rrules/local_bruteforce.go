package rrules

import "github.com/dshunter/dshunter/instance"

// LocalBruteforceRule brute-forces the optimal partial assignment of a small
// vertex subset V (at most 10 vertices after filtering already-disregarded
// ones) against both extreme assignments of its boundary — the "hard" case
// where the boundary contributes nothing, and the "easy" case where it's
// taken outright — and commits whatever choice both extremes agree on.
//
// V ranges over the expanding closed neighbourhood of every vertex (1, 2,
// 3, and 4 hops out): this is the bounded-radius half of the reference
// implementation. The reference additionally brute-forces every subset of
// every bag of a flow-cutter tree decomposition; that path depends on an
// external PACE heuristic binary (flow_cutter_pace17) that is out of scope
// for this port, so only the expanding-neighbourhood subsets are tried here.
//
// ~O(|G|) vertex selections, each O(2^|A|) for |A| ≤ 10.
var LocalBruteforceRule = &Rule{
	Name:             "localBruteforceRule",
	Apply:            localBruteforceRule,
	ComplexityDense:  1,
	ComplexitySparse: 1,
}

// peg partitions N(V)\V into prison (P), exit (E), and guard (G): exit
// vertices see outside N[V], guard vertices neighbour an exit vertex, and
// prison vertices are everything else.
func peg(g *instance.Instance, v []int) (p, e, guard []int) {
	var nClosed []int
	for _, u := range v {
		nClosed = unite(nClosed, g.NeighboursClosed(u))
	}
	nOpen := remove(nClosed, v)

	isExit := func(u int) bool {
		for _, w := range g.NeighboursOpen(u) {
			if !containsAll(nClosed, []int{w}) {
				return true
			}
		}
		return false
	}

	for _, u := range nOpen {
		if isExit(u) {
			e = append(e, u)
		}
	}
	for _, u := range remove(nOpen, e) {
		if len(intersect(g.NeighboursOpen(u), e)) == 0 {
			p = append(p, u)
		} else {
			guard = append(guard, u)
		}
	}
	return p, e, guard
}

type statusVec struct {
	dominated map[int]bool
	taken     map[int]bool
}

func hardCase(g *instance.Instance, n []int) statusVec {
	sv := statusVec{dominated: map[int]bool{}, taken: map[int]bool{}}
	for _, v := range n {
		sv.dominated[v] = g.IsDominated(v)
	}
	return sv
}

func easyCase(g *instance.Instance, n, e []int) statusVec {
	sv := hardCase(g, n)
	for _, u := range e {
		if !g.IsDisregarded(u) {
			sv.taken[u] = true
			for _, v := range g.NeighboursClosed(u) {
				sv.dominated[v] = true
			}
		} else {
			canBeDominated := false
			for _, v := range remove(g.NeighboursOpen(u), n) {
				if !g.IsDisregarded(v) {
					canBeDominated = true
					break
				}
			}
			if canBeDominated {
				sv.dominated[u] = true
			}
		}
	}
	return sv
}

func isCompatible(g *instance.Instance, a []int, m int) bool {
	for i, u := range a {
		if m>>uint(i)&1 == 1 && g.IsDisregarded(u) {
			return false
		}
		if m>>uint(i)&1 == 0 {
			for _, e := range g.Adj(u) {
				if e.Status == instance.Forced && g.IsDisregarded(e.To) {
					return false
				}
			}
		}
	}
	return true
}

// solveMask returns the number of vertices taken in a if n ends up fully
// dominated under mask mTake layered on top of the given baseline statuses,
// or -1 if that assignment is infeasible.
func solveMask(g *instance.Instance, a, n []int, mTake int, base statusVec) int {
	if !isCompatible(g, a, mTake) {
		return -1
	}
	dominated := make(map[int]bool, len(base.dominated))
	for k, v := range base.dominated {
		dominated[k] = v
	}
	taken := make(map[int]bool, len(base.taken))
	for k, v := range base.taken {
		taken[k] = v
	}

	dsSize := 0
	for i, u := range a {
		if mTake>>uint(i)&1 == 1 {
			dsSize++
			taken[u] = true
			if g.IsDisregarded(u) {
				return -1
			}
			for _, v := range g.NeighboursClosed(u) {
				dominated[v] = true
			}
		}
	}

	nSet := map[int]bool{}
	for _, v := range n {
		nSet[v] = true
	}
	for _, u := range n {
		if !dominated[u] {
			return -1
		}
		for _, e := range g.Adj(u) {
			if e.Status == instance.Forced && nSet[e.To] && !taken[u] && !taken[e.To] {
				return -1
			}
		}
	}

	return dsSize
}

func trim(g *instance.Instance, a []int, x, y int) bool {
	did := false
	for i, u := range a {
		if y>>uint(i)&1 != 1 {
			continue
		}
		if x>>uint(i)&1 == 1 && g.HasNode(u) {
			g.Take(u)
			did = true
		} else if g.HasNode(u) && !g.IsDisregarded(u) {
			g.MarkDisregarded(u)
			did = true
			for _, e := range append([]instance.Endpoint(nil), g.Adj(u)...) {
				if e.Status == instance.Forced {
					g.Take(e.To)
				}
			}
		}
	}
	return did
}

func maximize(x *int, y int) {
	if y >= 0 && y > *x {
		*x = y
	}
}

func minimize(x *int, y int) {
	if y < *x {
		*x = y
	}
}

// trimSubset tries to commit a sound partial assignment for the vertex
// subset v, given its prison/exit/guard partition.
func trimSubset(g *instance.Instance, v []int) bool {
	if len(v) == 0 || len(v) > 10 {
		return false
	}
	for _, u := range v {
		if !g.HasNode(u) {
			return false
		}
	}

	p, e, guard := peg(g, v)
	aTemp := unite(p, unite(guard, v))
	n := unite(aTemp, e)
	var a []int
	for _, u := range aTemp {
		if !g.IsDisregarded(u) {
			a = append(a, u)
		}
	}
	if len(a) > 10 {
		return false
	}

	dHard := hardCase(g, n)
	dEasy := easyCase(g, n, e)

	sz := 1 << len(a)
	resultsHard := make([]int, sz)
	resultsEasy := make([]int, sz)
	for i := 0; i < sz; i++ {
		resultsHard[i] = solveMask(g, a, n, i, dHard)
		resultsEasy[i] = solveMask(g, a, n, i, dEasy)
	}

	apply := func(x, y int) bool {
		miEasy, mxEasy := 1<<30, -(1 << 30)
		miHard, mxHard := 1<<30, -(1 << 30)
		for m := 0; m < sz; m++ {
			if m&y == x {
				maximize(&mxHard, resultsHard[m])
				maximize(&mxEasy, resultsEasy[m])
			} else {
				minimize(&miHard, resultsHard[m])
				minimize(&miEasy, resultsEasy[m])
			}
		}

		if mxEasy <= miEasy && mxHard <= miHard && mxHard >= 0 && y > 0 {
			return trim(g, a, x, y)
		}
		return false
	}

	for y := 1; y < sz; y++ {
		if apply(0, y) {
			return true
		}
		if apply(y, y) {
			return true
		}
	}
	return false
}

func expandBall(g *instance.Instance, v []int) []int {
	res := v
	for _, u := range v {
		res = unite(res, g.NeighboursClosed(u))
	}
	return res
}

func localBruteforceRule(g *instance.Instance) bool {
	reduced := false
	for _, u := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(u) {
			continue
		}
		one := []int{u}
		two := expandBall(g, one)
		three := expandBall(g, two)
		four := expandBall(g, three)
		if trimSubset(g, four) {
			reduced = true
		}
	}
	return reduced
}
