// Package treewidth runs the dominating-set dynamic program over a nice
// tree decomposition: a bottom-up pass (getC) computes, for every bag node
// and every ternary colouring of its bag, the minimum number of real
// (non-gadget) vertices needed to dominate everything below that node
// consistent with that colouring; a top-down pass (recoverDS) walks the
// optimal choices back down to recover the actual set.
//
// Ported from Cygan et al., Parameterized Algorithms §7.3.2
// (10.1007/978-3-319-21275-3), extended to handle FORCED edges.
package treewidth
