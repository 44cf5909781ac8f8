package decomposition

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/dshunter/dshunter/instance"
)

// Decomposer finds a tree decomposition of g's active graph, ideally of low
// width. It reports false if it gives up (e.g. the context is cancelled)
// rather than returning a decomposition that might not exist within budget.
type Decomposer interface {
	Decompose(ctx context.Context, g *instance.Instance) (*TreeDecomposition, bool)
}

// EliminationDecomposer builds a tree decomposition via a deterministic
// min-degree greedy elimination ordering: repeatedly pick an active vertex
// of smallest current degree, make its remaining neighbourhood a clique
// (fill-in), and remove it. The resulting per-vertex bags (itself plus its
// remaining neighbours at the moment of elimination) form the decomposition;
// width is one less than the largest bag.
//
// This is the bundled, dependency-free stand-in for the reference's
// FlowCutter/process-driven decomposers, which shell out to an external
// heuristic binary. It trades decomposition quality for having no external
// runtime dependency at all.
//
// Assumes inst's active graph is connected (solver.Solve splits into
// components before decomposing each one); a disconnected graph produces a
// forest of bags rather than the single tree RootedTreeDecomposition expects.
type EliminationDecomposer struct{}

func (EliminationDecomposer) Decompose(ctx context.Context, inst *instance.Instance) (*TreeDecomposition, bool) {
	g := simple.NewUndirectedGraph()
	for _, v := range inst.Nodes {
		g.AddNode(simple.Node(v))
	}
	for _, v := range inst.Nodes {
		for _, u := range inst.NeighboursOpen(v) {
			if u > v {
				g.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(u)})
			}
		}
	}

	n := g.Nodes().Len()
	order := make([]int64, 0, n)
	bags := make([][]int64, 0, n)

	for g.Nodes().Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, false
		default:
		}

		v := minDegreeNode(g)
		neighbours := neighboursOf(g, v)

		bag := append([]int64{v}, neighbours...)
		sort.Slice(bag, func(i, j int) bool { return bag[i] < bag[j] })
		bags = append(bags, bag)
		order = append(order, v)

		for i := 0; i < len(neighbours); i++ {
			for j := i + 1; j < len(neighbours); j++ {
				if !g.HasEdgeBetween(neighbours[i], neighbours[j]) {
					g.SetEdge(simple.Edge{F: simple.Node(neighbours[i]), T: simple.Node(neighbours[j])})
				}
			}
		}
		g.RemoveNode(v)
	}

	return buildTreeDecomposition(order, bags), true
}

// minDegreeNode returns the active node of smallest degree, breaking ties by
// smallest id so the ordering is reproducible regardless of the graph
// library's internal (map-backed, unordered) node iteration.
func minDegreeNode(g *simple.UndirectedGraph) int64 {
	nodes := graph.NodesOf(g.Nodes())
	best := nodes[0].ID()
	bestDeg := g.From(best).Len()
	for _, n := range nodes[1:] {
		d := g.From(n.ID()).Len()
		if d < bestDeg || (d == bestDeg && n.ID() < best) {
			best, bestDeg = n.ID(), d
		}
	}
	return best
}

func neighboursOf(g *simple.UndirectedGraph, v int64) []int64 {
	nodes := graph.NodesOf(g.From(v))
	out := make([]int64, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// buildTreeDecomposition turns an elimination order and its per-step bags
// into a TreeDecomposition: node i is parented by whichever bag eliminates
// the first (in elimination order) remaining neighbour of step i's vertex,
// the standard elimination-game construction that preserves the running
// intersection property.
func buildTreeDecomposition(order []int64, bags [][]int64) *TreeDecomposition {
	n := len(order)
	position := make(map[int64]int, n)
	for i, v := range order {
		position[v] = i
	}

	width := 0
	td := NewTreeDecomposition(n)
	for i, bag := range bags {
		if len(bag)-1 > width {
			width = len(bag) - 1
		}
		td.Bag[i] = make([]int, len(bag))
		for j, v := range bag {
			td.Bag[i][j] = int(v)
		}

		v := order[i]
		parent := -1
		for _, u := range bag {
			if u == v {
				continue
			}
			if p := position[u]; parent == -1 || p < parent {
				parent = p
			}
		}
		if parent != -1 {
			td.AddEdge(i, parent)
		}
	}
	td.Width = width

	return td
}
