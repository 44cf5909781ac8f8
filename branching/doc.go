// Package branching provides the branch-and-bound fallback used when an
// instance's treewidth exceeds what the treewidth package can handle: a
// greedy upper bound, a scattered-set lower bound, and a branching solver
// that picks a vertex and recurses on "take it" / "take a neighbour of it
// instead".
package branching
