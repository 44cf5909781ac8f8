package instance

import (
	"sort"

	"github.com/dshunter/dshunter/internal/sortedset"
)

// Instance is a mutable undirected graph representing a (partially reduced)
// dominating-set instance. Vertex ids are assigned incrementally starting at
// 1; id 0 is a permanently inactive dummy slot that keeps the arena
// 1-indexed, matching the .gr/.ads file formats this package round-trips.
//
// Instance has value semantics in the sense that every mutator works on the
// receiver in place; callers that need to branch (solver, treewidth DP,
// branching search) must call Clone to get an independent copy before trying
// a tentative mutation.
type Instance struct {
	// Nodes lists active vertex ids, ascending.
	Nodes []int

	// DS accumulates vertex ids committed to the dominating set by Take, in
	// the order they were taken.
	DS []int

	// SetsToHit holds hitting-set side constraints collected by rrules/hs;
	// Instance only stores them, it never interprets them.
	SetsToHit [][]int

	all []node
}

// New returns an empty Instance.
func New() *Instance {
	return &Instance{all: make([]node, 1)}
}

// NodeCount returns the number of active vertices.
func (g *Instance) NodeCount() int { return len(g.Nodes) }

// DisregardedNodeCount returns the number of active vertices currently
// DISREGARDED.
func (g *Instance) DisregardedNodeCount() int {
	cnt := 0
	for _, v := range g.Nodes {
		if g.IsDisregarded(v) {
			cnt++
		}
	}
	return cnt
}

// EdgeCount returns the number of edges. Complexity O(n).
func (g *Instance) EdgeCount() int {
	sum := 0
	for _, v := range g.Nodes {
		sum += g.Deg(v)
	}
	return sum / 2
}

// ForcedEdgeCount returns the number of FORCED edges. Complexity O(n).
func (g *Instance) ForcedEdgeCount() int {
	sum := 0
	for _, v := range g.Nodes {
		sum += g.ForcedDeg(v)
	}
	return sum / 2
}

// HasNode reports whether v names an active vertex.
func (g *Instance) HasNode(v int) bool {
	return v >= 0 && v < len(g.all) && len(g.all[v].nClosed) > 0
}

// Deg returns the degree of v.
func (g *Instance) Deg(v int) int { return len(g.all[v].adj) }

// ForcedDeg returns the number of FORCED edges incident to v.
func (g *Instance) ForcedDeg(v int) int {
	res := 0
	for _, e := range g.all[v].adj {
		if e.Status == Forced {
			res++
		}
	}
	return res
}

// IsDominated reports whether v is currently DOMINATED.
func (g *Instance) IsDominated(v int) bool { return g.all[v].domination == Dominated }

// IsTaken reports whether v is currently TAKEN.
func (g *Instance) IsTaken(v int) bool { return g.all[v].membership == Taken }

// IsDisregarded reports whether v is currently DISREGARDED.
func (g *Instance) IsDisregarded(v int) bool { return g.all[v].membership == Disregarded }

// IsExtra reports whether v is a synthetic gadget vertex: Take expands it
// into taking its current open neighbourhood instead of taking v itself.
func (g *Instance) IsExtra(v int) bool { return g.all[v].isExtra }

// NeighboursOpen returns v's open neighbourhood, sorted ascending. The
// returned slice aliases internal state and must not be mutated by callers.
func (g *Instance) NeighboursOpen(v int) []int { return g.all[v].nOpen }

// NeighboursClosed returns v's closed neighbourhood (N(v) ∪ {v}), sorted
// ascending. The returned slice aliases internal state and must not be
// mutated by callers.
func (g *Instance) NeighboursClosed(v int) []int { return g.all[v].nClosed }

// NeighbourhoodExcluding is an alias for NeighboursOpen, matching the
// accessor name some rule call sites read more naturally with.
func (g *Instance) NeighbourhoodExcluding(v int) []int { return g.NeighboursOpen(v) }

// NeighbourhoodIncluding is an alias for NeighboursClosed, matching the
// accessor name some rule call sites read more naturally with.
func (g *Instance) NeighbourhoodIncluding(v int) []int { return g.NeighboursClosed(v) }

// Dominators returns the set of vertices that could still dominate v: empty
// once v is DOMINATED. The returned slice aliases internal state and must
// not be mutated by callers.
func (g *Instance) Dominators(v int) []int { return g.all[v].dominators }

// Dominatees returns the set of vertices v could still dominate if taken:
// empty once v is DISREGARDED. The returned slice aliases internal state and
// must not be mutated by callers.
func (g *Instance) Dominatees(v int) []int { return g.all[v].dominatees }

// Adj returns v's adjacency list (neighbour id plus edge status), sorted
// ascending by neighbour id. The returned slice aliases internal state and
// must not be mutated by callers.
func (g *Instance) Adj(v int) []Endpoint { return g.all[v].adj }

// EdgeStatus returns the status of edge (u, v).
func (g *Instance) EdgeStatus(u, v int) (EdgeStatus, error) {
	i := endpointIndex(g.all[u].adj, v)
	if i < 0 {
		return Unconstrained, ErrEdgeNotFound
	}
	return g.all[u].adj[i].Status, nil
}

// HasEdge reports whether edge (u, v) is present. Complexity O(deg(u)).
func (g *Instance) HasEdge(u, v int) bool { return sortedset.Contains(g.all[u].nOpen, v) }

// IsSolvable reports whether every undominated vertex still has at least one
// candidate dominator. It returns false once a reduction or branch has
// stripped a vertex down to an impossible state (undominated, no
// dominators), which can only happen after an unsound transformation. No
// reduction rule or solver in this module calls it.
func (g *Instance) IsSolvable() bool {
	for _, v := range g.Nodes {
		if !g.IsDominated(v) && len(g.all[v].dominators) == 0 {
			return false
		}
	}
	return true
}

// MarkDominated excuses v from needing a dominator: domination status
// becomes DOMINATED and v is removed from every remaining dominator's
// dominatee set.
func (g *Instance) MarkDominated(v int) {
	n := &g.all[v]
	n.domination = Dominated
	for _, u := range n.dominators {
		g.all[u].dominatees = sortedset.Remove(g.all[u].dominatees, v)
	}
	n.dominators = nil
}

// MarkTaken commits v to the dominating set without touching the graph
// shape: it dominates v and every current dominatee of v, then flips v's
// membership to TAKEN. Callers that also want v's neighbourhood collapsed
// should use Take instead.
func (g *Instance) MarkTaken(v int) {
	if g.IsTaken(v) {
		panic(ErrInvariant)
	}
	g.MarkDominated(v)
	for _, u := range append([]int(nil), g.all[v].dominatees...) {
		g.MarkDominated(u)
	}
	g.all[v].membership = Taken
}

// MarkDisregarded excludes v from ever being taken: membership becomes
// DISREGARDED and v is removed from every remaining dominatee's dominator
// set.
func (g *Instance) MarkDisregarded(v int) {
	if g.IsDisregarded(v) {
		panic(ErrInvariant)
	}
	n := &g.all[v]
	n.membership = Disregarded
	for _, u := range n.dominatees {
		g.all[u].dominators = sortedset.Remove(g.all[u].dominators, v)
	}
	n.dominatees = nil
}

// Ignore drops v from the graph entirely: every FORCED edge incident to v
// forces its other endpoint to be taken (since the constraint that edge
// encoded must still be honoured), then v's arena slot is cleared. Unlike
// RemoveNode, Ignore tolerates FORCED edges on a not-yet-taken v.
func (g *Instance) Ignore(v int) {
	if !g.HasNode(v) {
		return
	}

	var toTake []int
	for _, e := range append([]Endpoint(nil), g.all[v].adj...) {
		if e.Status == Forced && !g.IsTaken(v) {
			toTake = append(toTake, e.To)
		}
		g.removeDirectedEdge(e.To, v)
	}

	g.all[v] = node{}
	g.Nodes = sortedset.Remove(g.Nodes, v)
	for _, u := range toTake {
		g.Take(u)
	}
}

// ForceEdge upgrades edge (u, v) to FORCED: at least one endpoint must be
// taken in any feasible solution, so both endpoints are excused from needing
// a dominator, and so is every vertex that sees both endpoints (whichever of
// u, v ends up taken will dominate it).
func (g *Instance) ForceEdge(u, v int) error {
	status, err := g.EdgeStatus(u, v)
	if err != nil {
		return err
	}
	if status == Forced {
		return ErrInvariant
	}
	g.setEdgeStatus(u, v, Forced)
	g.MarkDominated(u)
	g.MarkDominated(v)

	for _, w := range sortedset.Intersect(g.all[u].dominatees, g.all[v].dominatees) {
		g.MarkDominated(w)
	}
	return nil
}

// AddNode creates a fresh extra (gadget) vertex and returns its id. Extra
// vertices can never be taken directly: Take expands them into taking their
// current open neighbourhood. Reduction rules use AddNode to introduce the
// synthetic vertices their branching gadgets need; regular graph vertices
// come from parsing a .gr/.ads file instead.
func (g *Instance) AddNode() int {
	v := len(g.all)
	g.Nodes = append(g.Nodes, v)
	g.all = append(g.all, newNode(v, true))
	return v
}

// AddNodeAt ensures vertex id v exists, growing the arena as needed, and
// (re)initialises it as an active vertex. It is meant for parsers (.ads
// files reference vertex ids that are not necessarily contiguous from 1)
// rather than general-purpose use.
func (g *Instance) AddNodeAt(v int, isExtra bool) {
	for len(g.all) <= v {
		g.all = append(g.all, newNode(len(g.all), false))
	}
	g.all[v] = newNode(v, isExtra)
	g.Nodes = sortedset.Insert(g.Nodes, v)
}

// SetStatus is a raw setter for the .ads parser: it installs v's domination
// and membership status directly, bypassing the usual
// MarkDominated/MarkDisregarded bookkeeping, then — matching what those
// calls would have done — clears v's dominators/dominatees if the installed
// status makes them moot. It must only be used while building an Instance
// from serialized state, never once normal operations have begun.
func (g *Instance) SetStatus(v int, domination DominationStatus, membership MembershipStatus) {
	n := &g.all[v]
	n.domination = domination
	n.membership = membership
	if membership == Disregarded || domination == Dominated {
		n.dominators = nil
		n.dominatees = nil
	}
}

// RemoveNode deletes v from the graph. Every incident edge must already be
// UNCONSTRAINED, or v must already be TAKEN (Take calls this internally
// after handling FORCED edges via domination, not removal).
func (g *Instance) RemoveNode(v int) {
	if !g.HasNode(v) {
		return
	}
	for _, e := range g.all[v].adj {
		if e.Status == Forced && !g.IsTaken(v) {
			panic(ErrInvariant)
		}
		g.removeDirectedEdge(e.To, v)
	}
	g.all[v] = node{}
	g.Nodes = sortedset.Remove(g.Nodes, v)
}

// RemoveNodes deletes every vertex in l from the graph.
func (g *Instance) RemoveNodes(l []int) {
	for _, v := range l {
		g.RemoveNode(v)
	}
}

// AddEdge adds an edge (u, v) with the given status, wiring both directed
// adjacency entries and, if status is Forced, immediately applying
// ForceEdge's consequences.
func (g *Instance) AddEdge(u, v int, status EdgeStatus) error {
	g.addDirectedEdge(u, v)
	g.addDirectedEdge(v, u)
	if status == Forced {
		return g.ForceEdge(u, v)
	}
	return nil
}

// RemoveEdge deletes edge (u, v). It must not be FORCED.
func (g *Instance) RemoveEdge(u, v int) {
	g.removeDirectedEdge(u, v)
	g.removeDirectedEdge(v, u)
}

// Take commits v to the dominating set and collapses its neighbourhood. If v
// is an extra (gadget) vertex, taking it is forbidden directly: Take instead
// takes every vertex currently in v's open neighbourhood (the gadget's whole
// purpose is to force exactly that).
func (g *Instance) Take(v int) {
	if g.IsTaken(v) {
		panic(ErrInvariant)
	}
	if g.IsDisregarded(v) {
		panic(ErrInvariant)
	}

	if g.all[v].isExtra {
		for _, u := range append([]int(nil), g.all[v].nOpen...) {
			g.Take(u)
		}
		return
	}

	g.all[v].membership = Taken
	g.DS = append(g.DS, v)
	for _, u := range append([]int(nil), g.all[v].dominatees...) {
		g.MarkDominated(u)
	}
	g.RemoveNode(v)
}

// Contract rewires the degree-2, non-FORCED path x–y–z (y's open
// neighbourhood must be exactly {x, z}): y is replaced by a fresh extra
// (gadget) vertex adjacent to x and z. The replacement has the
// same shape as the path it replaces, but Take on a gadget vertex expands
// into taking its whole open neighbourhood rather than itself, so taking the
// gadget now commits to taking both x and z together — the two can no
// longer be resolved independently of one another the way they could while
// y stood between them. Callers are responsible for checking the structural
// preconditions (degree, FORCED-freeness) before calling. Contract returns
// the id of the new gadget vertex so a caller can fold it into a further
// Contract call of its own (chaining folds a longer path down one hop at a
// time).
func (g *Instance) Contract(x, y, z int) int {
	gadget := g.AddNode()
	g.RemoveNode(y)
	_ = g.AddEdge(gadget, x, Unconstrained)
	_ = g.AddEdge(gadget, z, Unconstrained)

	return gadget
}

// Split partitions the active vertices into connected components via BFS.
func (g *Instance) Split() [][]int {
	component := make([]int, len(g.all))
	for i := range component {
		component[i] = -1
	}
	components := 0

	for _, v := range g.Nodes {
		if component[v] >= 0 {
			continue
		}
		component[v] = components
		queue := []int{v}
		for len(queue) > 0 {
			w := queue[0]
			queue = queue[1:]
			for _, u := range g.all[w].nOpen {
				if component[u] < 0 {
					component[u] = components
					queue = append(queue, u)
				}
			}
		}
		components++
	}

	result := make([][]int, components)
	for _, v := range g.Nodes {
		c := component[v]
		result[c] = append(result[c], v)
	}
	return result
}

// Clone returns a deep copy of g: mutating the copy never affects g and vice
// versa. Branching solvers and the treewidth DP rely on Clone to explore
// tentative assignments without disturbing the caller's instance.
func (g *Instance) Clone() *Instance {
	cp := &Instance{
		Nodes: append([]int(nil), g.Nodes...),
		DS:    append([]int(nil), g.DS...),
		all:   make([]node, len(g.all)),
	}
	if g.SetsToHit != nil {
		cp.SetsToHit = make([][]int, len(g.SetsToHit))
		for i, s := range g.SetsToHit {
			cp.SetsToHit[i] = append([]int(nil), s...)
		}
	}
	for i, n := range g.all {
		cp.all[i] = node{
			adj:        append([]Endpoint(nil), n.adj...),
			nOpen:      append([]int(nil), n.nOpen...),
			nClosed:    append([]int(nil), n.nClosed...),
			dominators: append([]int(nil), n.dominators...),
			dominatees: append([]int(nil), n.dominatees...),
			domination: n.domination,
			membership: n.membership,
			isExtra:    n.isExtra,
		}
	}
	return cp
}

// AddEdgeRaw appends a directed adjacency entry for (u -> v) without
// maintaining sorted order or touching dominator/dominatee sets incrementally
// by insertion point; it assumes u and v are fresh vertices being wired up
// by a parser. Call SortAdjacency once all edges are added.
func (g *Instance) AddEdgeRaw(u, v int, status EdgeStatus) {
	g.addRawDirected(u, v, status)
	g.addRawDirected(v, u, status)
}

func (g *Instance) addRawDirected(u, v int, status EdgeStatus) {
	n := &g.all[u]
	n.adj = append(n.adj, Endpoint{To: v, Status: status})
	n.nOpen = append(n.nOpen, v)
	n.nClosed = append(n.nClosed, v)
	if !g.IsDominated(u) && !g.IsDisregarded(v) {
		n.dominators = append(n.dominators, v)
	}
	if !g.IsDisregarded(u) && !g.IsDominated(v) {
		n.dominatees = append(n.dominatees, v)
	}
}

// SortAdjacency sorts every cached neighbour set ascending. Parsers that
// built the graph with AddEdgeRaw must call this exactly once before the
// Instance is used for anything else.
func (g *Instance) SortAdjacency() {
	for i := range g.all {
		n := &g.all[i]
		sortEndpoints(n.adj)
		sortInts(n.nOpen)
		sortInts(n.nClosed)
		sortInts(n.dominators)
		sortInts(n.dominatees)
	}
}

func (g *Instance) addDirectedEdge(u, v int) {
	n := &g.all[u]
	n.adj = insertEndpoint(n.adj, Endpoint{To: v, Status: Unconstrained})
	n.nOpen = sortedset.Insert(n.nOpen, v)
	n.nClosed = sortedset.Insert(n.nClosed, v)
	if !g.IsDominated(u) && !g.IsDisregarded(v) {
		n.dominators = sortedset.Insert(n.dominators, v)
	}
	if !g.IsDisregarded(u) && !g.IsDominated(v) {
		n.dominatees = sortedset.Insert(n.dominatees, v)
	}
}

func (g *Instance) removeDirectedEdge(u, v int) {
	n := &g.all[u]
	n.adj = removeEndpoint(n.adj, v)
	n.nOpen = sortedset.Remove(n.nOpen, v)
	n.nClosed = sortedset.Remove(n.nClosed, v)
	n.dominators = sortedset.Remove(n.dominators, v)
	n.dominatees = sortedset.Remove(n.dominatees, v)
}

func (g *Instance) setEdgeStatus(u, v int, status EdgeStatus) {
	iu := endpointIndex(g.all[u].adj, v)
	iv := endpointIndex(g.all[v].adj, u)
	if iu < 0 || iv < 0 {
		panic(ErrEdgeNotFound)
	}
	g.all[u].adj[iu].Status = status
	g.all[v].adj[iv].Status = status
}

func insertEndpoint(adj []Endpoint, e Endpoint) []Endpoint {
	i := endpointIndex(adj, e.To)
	if i >= 0 {
		return adj
	}
	i = sort.Search(len(adj), func(k int) bool { return adj[k].To >= e.To })
	adj = append(adj, Endpoint{})
	copy(adj[i+1:], adj[i:])
	adj[i] = e
	return adj
}

func removeEndpoint(adj []Endpoint, to int) []Endpoint {
	i := endpointIndex(adj, to)
	if i < 0 {
		return adj
	}
	return append(adj[:i], adj[i+1:]...)
}

func sortEndpoints(adj []Endpoint) {
	sort.Slice(adj, func(i, j int) bool { return adj[i].To < adj[j].To })
}

func sortInts(a []int) {
	sort.Ints(a)
}

func endpointIndex(adj []Endpoint, to int) int {
	lo, hi := 0, len(adj)
	for lo < hi {
		mid := (lo + hi) / 2
		if adj[mid].To < to {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(adj) && adj[lo].To == to {
		return lo
	}
	return -1
}
