package treewidth

import "errors"

// ErrUnsolvableByBackend is returned when the treewidth backend cannot
// handle the instance: no decomposition was found, its width exceeds
// MaxHandledTreewidth, or the DP table would exceed the memory budget. The
// caller (solver) is expected to fall back to branching when it sees this.
var ErrUnsolvableByBackend = errors.New("treewidth: instance not solvable by this backend")
