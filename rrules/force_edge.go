package rrules

import "github.com/dshunter/dshunter/instance"

// ForceEdgeRule handles a degree-2 vertex v whose two neighbours are
// themselves adjacent, forming a triangle. In any optimal solution it is
// always at least as good to take one of v's neighbours instead of v
// itself, since a neighbour dominates everything v would plus more; the four
// sub-cases below cover which neighbour (if any) is already forced to be
// taken (the fourth, both neighbours already forced, has no sound reduction
// available and is a no-op).
//
// ~O(|V|) for any graph (each vertex is inspected once).
var ForceEdgeRule = &Rule{
	Name:             "ForceEdgeRule",
	Apply:            forceEdgeRule,
	ComplexityDense:  1,
	ComplexitySparse: 1,
}

func forceEdgeRule(g *instance.Instance) bool {
	reduced := false
	for _, v := range append([]int(nil), g.Nodes...) {
		if !g.HasNode(v) || g.Deg(v) != 2 || g.IsDominated(v) {
			continue
		}
		adj := g.Adj(v)
		e1, e2 := adj[0], adj[1]

		if g.IsDisregarded(e1.To) && g.IsDisregarded(e2.To) {
			continue
		}

		if g.HasEdge(e1.To, e2.To) {
			switch {
			case e1.Status == instance.Unconstrained && e2.Status == instance.Unconstrained:
				g.RemoveNode(v)
				if status, _ := g.EdgeStatus(e1.To, e2.To); status != instance.Forced {
					_ = g.ForceEdge(e1.To, e2.To)
				}
				reduced = true
			case e1.Status == instance.Forced && e2.Status == instance.Unconstrained && !g.IsDisregarded(e1.To):
				// Taking e1.To is always at least as good as taking v, and the
				// forced edge means one of them must be taken.
				g.Take(e1.To)
				reduced = true
			case e1.Status == instance.Unconstrained && e2.Status == instance.Forced && !g.IsDisregarded(e2.To):
				g.Take(e2.To)
				reduced = true
				// The remaining case — both edges already FORCED — would need v
				// itself routed through Instance.Contract, but Contract requires an
				// UNCONSTRAINED path (it removes the middle vertex outright); v here
				// still carries two FORCED edges, so there is nothing sound to fold
				// without first resolving those constraints some other way. Left
				// unreduced.
			}
		} else if g.IsDominated(e1.To) && g.IsDominated(e2.To) {
			g.RemoveNode(v)
			_ = g.AddEdge(e1.To, e2.To, instance.Forced)
			reduced = true
		}
	}

	return reduced
}
