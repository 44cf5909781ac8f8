package solver

import "github.com/dshunter/dshunter/instance"

// bruteforce tries every subset of g's active, non-DISREGARDED vertices and
// returns the smallest one that is a valid dominating set, honouring
// already-TAKEN/DOMINATED state and FORCED edges. Exponential; meant for
// small instances and cross-checking, exactly as in the reference.
func bruteforce(g *instance.Instance) []int {
	var candidates []int
	for _, v := range g.Nodes {
		if !g.IsDisregarded(v) {
			candidates = append(candidates, v)
		}
	}
	n := len(candidates)

	var best []int
	for mask := 0; mask < (1 << n); mask++ {
		dominated := make(map[int]bool, g.NodeCount())
		taken := make(map[int]bool, g.NodeCount())
		for _, v := range g.Nodes {
			dominated[v] = g.IsDominated(v)
			taken[v] = g.IsTaken(v)
		}

		var ds []int
		for i, v := range candidates {
			if mask>>i&1 == 1 {
				ds = append(ds, v)
				taken[v] = true
				dominated[v] = true
				for _, u := range g.NeighboursOpen(v) {
					dominated[u] = true
				}
			}
		}

		if isDominatingSet(g, dominated, taken) && (best == nil || len(ds) < len(best)) {
			best = ds
		}
	}

	return append([]int(nil), best...)
}

func isDominatingSet(g *instance.Instance, dominated, taken map[int]bool) bool {
	for _, v := range g.Nodes {
		if !dominated[v] {
			return false
		}
		for _, e := range g.Adj(v) {
			if e.Status == instance.Forced && !taken[v] && !taken[e.To] {
				return false
			}
		}
	}
	return true
}
