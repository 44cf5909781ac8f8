package vc

import "github.com/dshunter/dshunter/instance"

// Solve computes a minimum vertex cover of g's active graph and appends its
// vertices directly to g.DS, the same way treewidth.Solve fills in DS without
// going through Instance.Take. Every active edge must already be FORCED;
// Solve never mutates g otherwise and returns ErrNotForcedOnly if that
// precondition doesn't hold.
func Solve(g *instance.Instance) error {
	if g.EdgeCount() != g.ForcedEdgeCount() {
		return ErrNotForcedOnly
	}

	ids := append([]int(nil), g.Nodes...)
	index := make(map[int]int, len(ids))
	for i, v := range ids {
		index[v] = i
	}

	n := len(ids)
	adj := make([][]int, n)
	for i, v := range ids {
		for _, e := range g.Adj(v) {
			adj[i] = append(adj[i], index[e.To])
		}
	}

	e := &engine{n: n, adj: adj}
	e.solve()

	for i, in := range e.bestCover {
		if in {
			g.DS = append(g.DS, ids[i])
		}
	}

	return nil
}

// engine runs a deterministic branch-and-bound search for a minimum vertex
// cover: at each step it picks the remaining vertex of highest degree and
// branches on "take it" versus "take all of its neighbours instead" (the
// same two-way split branching.Solver.branch makes when every edge at v is
// FORCED), pruned by a maximal-matching lower bound.
type engine struct {
	n   int
	adj [][]int

	removed []bool
	cover   []bool
	size    int

	bestCover []bool
	bestSize  int
}

func (e *engine) solve() {
	e.removed = make([]bool, e.n)
	e.cover = make([]bool, e.n)
	e.bestCover = make([]bool, e.n)
	e.bestSize = e.n + 1

	// Seed the incumbent with a cheap greedy cover so the search has an
	// upper bound to prune against from the very first node.
	e.seedGreedy()

	e.branch()
}

// remainingDeg counts v's edges to other still-present vertices.
func (e *engine) remainingDeg(v int) int {
	d := 0
	for _, w := range e.adj[v] {
		if !e.removed[w] {
			d++
		}
	}
	return d
}

// maxDegreeVertex returns the present vertex with the largest remaining
// degree, or -1 if every present vertex is isolated (no edges left to cover).
func (e *engine) maxDegreeVertex() int {
	best, bestDeg := -1, 0
	for v := 0; v < e.n; v++ {
		if e.removed[v] {
			continue
		}
		if d := e.remainingDeg(v); d > bestDeg {
			best, bestDeg = v, d
		}
	}
	return best
}

// seedGreedy builds an initial cover by repeatedly taking the highest-degree
// vertex until no edges remain, giving branch() a non-trivial starting bound.
func (e *engine) seedGreedy() {
	removed := make([]bool, e.n)
	size := 0
	for {
		best, bestDeg := -1, 0
		for v := 0; v < e.n; v++ {
			if removed[v] {
				continue
			}
			d := 0
			for _, w := range e.adj[v] {
				if !removed[w] {
					d++
				}
			}
			if d > bestDeg {
				best, bestDeg = v, d
			}
		}
		if best == -1 {
			break
		}
		removed[best] = true
		size++
	}
	e.bestSize = size
	copy(e.bestCover, removed)
}

// matchingLowerBound returns the size of a greedy maximal matching among the
// edges still present: each matched edge needs at least one endpoint in any
// cover, and matched edges are vertex-disjoint, so the matching size is an
// admissible lower bound on the additional cover vertices still needed.
func (e *engine) matchingLowerBound() int {
	matched := make([]bool, e.n)
	count := 0
	for v := 0; v < e.n; v++ {
		if e.removed[v] || matched[v] {
			continue
		}
		for _, w := range e.adj[v] {
			if !e.removed[w] && !matched[w] {
				matched[v] = true
				matched[w] = true
				count++
				break
			}
		}
	}
	return count
}

func (e *engine) branch() {
	if e.size+e.matchingLowerBound() >= e.bestSize {
		return
	}

	v := e.maxDegreeVertex()
	if v == -1 {
		// No edges left: the current cover is feasible and, by the prune
		// check above, strictly better than the incumbent.
		e.bestSize = e.size
		copy(e.bestCover, e.cover)
		return
	}

	neighbours := make([]int, 0, 4)
	for _, w := range e.adj[v] {
		if !e.removed[w] {
			neighbours = append(neighbours, w)
		}
	}

	// Branch 1: v joins the cover.
	e.take(v)
	e.branch()
	e.untake(v)

	// Branch 2: v stays out, so every neighbour must join instead.
	for _, w := range neighbours {
		e.take(w)
	}
	e.branch()
	for _, w := range neighbours {
		e.untake(w)
	}
}

func (e *engine) take(v int) {
	e.removed[v] = true
	e.cover[v] = true
	e.size++
}

func (e *engine) untake(v int) {
	e.removed[v] = false
	e.cover[v] = false
	e.size--
}
