// Package vc solves Minimum Vertex Cover on a graph whose every edge is
// FORCED: once reduction has forced every remaining edge, the residual
// dominating-set instance collapses to "pick a minimum vertex cover", since
// every undominated adjacent pair must have at least one endpoint taken.
//
// The reference delegates this step to an external maximum-independent-set
// library (KaMIS) not present in this port's grounding corpus, so this
// package is a from-scratch branch-and-bound solver in the same
// engine-struct, deterministic-branching, admissible-lower-bound style the
// tsp package's exact search uses.
package vc
