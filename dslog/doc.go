// Package dslog provides a minimal structured logger for the solver
// pipeline's milestone lines (presolve start/end, node/edge counts before
// and after, which back end ran). It is adapted from
// junjiewwang-perf-analysis's pkg/utils.Logger: a hand-rolled interface over
// the standard log package rather than a third-party logging library, kept
// deliberately small since nothing downstream needs log levels beyond
// Debug/Info/Warn/Error or structured fields beyond key/value pairs.
package dslog
