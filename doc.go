// Package dshunter is the root of an exact Minimum Dominating Set solver for
// undirected graphs given in PACE's .gr (or annotated .ads) format.
//
// The solver pipeline is a cascade of packages, each owning one stage:
//
//	instance/      — the annotated graph data model
//	rrules/        — the reduction rule engine and library
//	decomposition/ — nice tree decomposition construction
//	treewidth/     — exact DP over a tree decomposition
//	branching/     — branch-and-bound fallback above the treewidth ceiling
//	solver/        — orchestrator wiring the above plus a result verifier
//	pace/          — .gr/.ads/solution file I/O
//	dsconfig/      — YAML/JSON/TOML configuration loading
//	dslog/         — structured logging
//	cmd/dshunter/  — the CLI entry point
//
// See cmd/dshunter for the solve/verify/convert subcommands.
package dshunter
