package instance

import "errors"

// Sentinel errors for Instance operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("instance: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("instance: edge not found")

	// ErrInvariant indicates misuse of the Instance contract: removing a
	// FORCED edge without taking an endpoint, taking an already-TAKEN or
	// DISREGARDED vertex, forcing an edge twice, or disregarding an
	// already-disregarded vertex. Fatal: it indicates a reduction-rule bug,
	// never a data issue, so callers should not attempt to recover from it.
	ErrInvariant = errors.New("instance: invariant violated")
)

// DominationStatus records whether a vertex still requires a dominator.
type DominationStatus uint8

const (
	// Undominated means the vertex has not yet been covered by a taken
	// neighbour, and has not been excused by a reduction rule.
	Undominated DominationStatus = iota
	// Dominated means the vertex no longer requires domination, either
	// because a taken neighbour already covers it or a reduction rule
	// excused it.
	Dominated
)

// String implements fmt.Stringer.
func (s DominationStatus) String() string {
	if s == Dominated {
		return "DOMINATED"
	}
	return "UNDOMINATED"
}

// MembershipStatus records a vertex's relationship to the dominating set
// under construction.
type MembershipStatus uint8

const (
	// Undecided means neither rules nor the solver have committed this
	// vertex's membership yet.
	Undecided MembershipStatus = iota
	// Disregarded means this vertex must never be taken into the
	// dominating set, though it still participates in the graph for
	// domination purposes.
	Disregarded
	// Taken means the vertex is committed to the dominating set.
	Taken
)

// String implements fmt.Stringer.
func (s MembershipStatus) String() string {
	switch s {
	case Disregarded:
		return "DISREGARDED"
	case Taken:
		return "TAKEN"
	default:
		return "UNDECIDED"
	}
}

// EdgeStatus records whether an edge merely exists or additionally demands
// that at least one endpoint be taken.
type EdgeStatus uint8

const (
	// Unconstrained is a plain graph edge.
	Unconstrained EdgeStatus = iota
	// Forced asserts that at least one endpoint must be TAKEN in any
	// feasible dominating set.
	Forced
)

// String implements fmt.Stringer.
func (s EdgeStatus) String() string {
	if s == Forced {
		return "FORCED"
	}
	return "UNCONSTRAINED"
}

// Endpoint is one side of an adjacency-list entry: the neighbour id and the
// status of the edge leading to it.
type Endpoint struct {
	To     int
	Status EdgeStatus
}

// node holds all mutable per-vertex state. The zero value represents an
// inactive (removed or never-created) slot: nClosed is empty, which is what
// Instance.HasNode tests.
type node struct {
	// adj, nOpen, nClosed, dominators, dominatees are kept sorted
	// ascending and mutually consistent (Instance invariant 1).
	adj        []Endpoint
	nOpen      []int
	nClosed    []int
	dominators []int
	dominatees []int

	domination DominationStatus
	membership MembershipStatus

	// isExtra marks a synthetic vertex introduced by a reduction rule as a
	// branching gadget. Taking it expands to taking all its current
	// neighbours (Instance.Take handles the expansion).
	isExtra bool
}

// newNode builds the node state for a freshly created vertex v. dominators
// and dominatees start as {v}: an isolated, undecided vertex can always
// dominate itself by being taken, so SingleDominatorRule can fire on a
// degree-0 undominated vertex and correctly force it into the set. As
// neighbours are wired in, their ids are added to these sets too; as soon
// as v is marked DOMINATED or DISREGARDED the corresponding set is cleared
// entirely (see MarkDominated / MarkDisregarded).
func newNode(v int, isExtra bool) node {
	return node{
		nClosed:    []int{v},
		dominators: []int{v},
		dominatees: []int{v},
		domination: Undominated,
		membership: Undecided,
		isExtra:    isExtra,
	}
}
