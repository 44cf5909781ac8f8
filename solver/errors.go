package solver

import "errors"

var (
	// ErrInvalidSolverType is returned when Config.SolverType names no
	// known back end.
	ErrInvalidSolverType = errors.New("solver: invalid solver type")

	// ErrInvalidPresolverType is returned when Config.PresolverType names
	// no known presolve level.
	ErrInvalidPresolverType = errors.New("solver: invalid presolver type")

	// ErrUnconstrainedEdges is returned by ReduceToVertexCover when the
	// instance still has an UNCONSTRAINED edge after presolve.
	ErrUnconstrainedEdges = errors.New("solver: instance contains unconstrained edges, making VC reduction inapplicable")

	// ErrVerificationFailed wraps a verifier.Verify failure surfaced by
	// Solve after a back end runs.
	ErrVerificationFailed = errors.New("solver: solution failed verification")
)
