// Package pace reads and writes the two on-disk instance formats: the
// PACE DIMACS-like .gr format (plain input graphs) and the .ads format
// (annotated snapshots of partially reduced instances, used to serialize
// intermediate state between runs). It also writes the PACE solution
// format consumed by the challenge's verifier.
package pace
