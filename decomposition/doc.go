// Package decomposition builds tree decompositions of an Instance's active
// graph and normalizes them into nice tree decompositions, the shape the
// treewidth package's dynamic program runs over.
//
// A Decomposer finds some tree decomposition (ideally of low width); Nicify
// then rewrites it, bag by bag, into the canonical sequence of
// Leaf/IntroduceVertex/IntroduceEdge/Forget/Join steps that a DP over a nice
// tree decomposition expects.
package decomposition
