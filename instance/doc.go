// Package instance defines the annotated graph data model that the
// dominating-set reduction engine and solvers operate on: Instance, the
// per-vertex domination/membership status, and per-edge FORCED constraints.
//
// An Instance is a mutable undirected graph whose vertices carry two
// orthogonal status flags (domination and membership) used by reduction
// rules to commit vertices to, or exclude them from, the dominating set
// while preserving the optimum of the residual instance. Vertex identity is
// a stable integer id: removed vertices leave their arena slot cleared
// rather than compacted, so ids assigned before a removal remain meaningful
// in caller-held slices (e.g. a decided-set accumulator) for the lifetime of
// the Instance.
//
// All cached neighbour sets (adjacency, open/closed neighbourhoods,
// dominators, dominatees) are kept sorted ascending; internal/sortedset
// provides the O(|A|+|B|) merge primitives most reduction rules are built
// from.
//
// Methods that can legitimately fail on caller-supplied ids (an edge that
// does not exist) return an error. Methods that only fail when a reduction
// rule has already broken Instance's own invariants (taking an
// already-taken vertex, disregarding an already-disregarded one) panic with
// ErrInvariant: there is no reasonable way to recover from a rule bug
// mid-reduction. ForceEdge is the exception: forcing an already-FORCED edge
// returns ErrInvariant as an error instead of panicking.
package instance
