package solver

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshunter/dshunter/rrules"
)

// Type selects which back end Solve dispatches to.
type Type int

const (
	// Default delegates to vc if every edge is FORCED, otherwise tries
	// TreewidthDP and falls back to Branching on failure.
	Default Type = iota
	Branching
	TreewidthDP
	Bruteforce
	ReduceToVertexCover
)

func (t Type) String() string {
	switch t {
	case Default:
		return "Default"
	case Branching:
		return "Branching"
	case TreewidthDP:
		return "TreewidthDP"
	case Bruteforce:
		return "Bruteforce"
	case ReduceToVertexCover:
		return "ReduceToVertexCover"
	default:
		return "Unknown"
	}
}

// ParseType maps a config-file/CLI string onto a Type, accepting both the
// PascalCase spelling used by String() and a snake_case equivalent (e.g.
// "reduce_to_vertex_cover"), case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "")) {
	case "default":
		return Default, nil
	case "branching":
		return Branching, nil
	case "treewidthdp":
		return TreewidthDP, nil
	case "bruteforce":
		return Bruteforce, nil
	case "reducetovertexcover":
		return ReduceToVertexCover, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSolverType, s)
	}
}

// PresolverType selects how aggressively Solve reduces before dispatching
// to a back end.
type PresolverType int

const (
	// PresolveFull runs every reduction rule regardless of complexity.
	PresolveFull PresolverType = iota
	// PresolveCheap only runs rules with ComplexityDense <= 2.
	PresolveCheap
	// PresolveNone skips presolve entirely.
	PresolveNone
)

func (pt PresolverType) String() string {
	switch pt {
	case PresolveFull:
		return "Full"
	case PresolveCheap:
		return "Cheap"
	case PresolveNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ParsePresolverType maps a config-file/CLI string onto a PresolverType,
// case-insensitively.
func ParsePresolverType(s string) (PresolverType, error) {
	switch strings.ToLower(s) {
	case "full":
		return PresolveFull, nil
	case "cheap":
		return PresolveCheap, nil
	case "none":
		return PresolveNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPresolverType, s)
	}
}

// presolveComplexity maps a PresolverType to the maxComplexity argument
// rrules.Reduce expects.
func (pt PresolverType) presolveComplexity() (int, error) {
	switch pt {
	case PresolveFull:
		return 999, nil
	case PresolveCheap:
		return 2, nil
	case PresolveNone:
		return 0, nil
	default:
		return 0, ErrInvalidPresolverType
	}
}

// Config holds everything Solve needs beyond the instance itself. The
// numeric defaults (NewConfig) are taken verbatim from the reference's
// SolverConfig constructor.
type Config struct {
	ReductionRules []*rrules.Rule
	SolverType     Type
	PresolverType  PresolverType

	DecompositionTimeBudget time.Duration
	RandomSeed              int
	GoodEnoughTreewidth     int
	MaxTreewidth            int
	MaxMemoryInBytes        uint64
	MaxBagBranchDepth       int

	// MaxBranchingReductionsComplexity is carried for configuration
	// completeness but not read: branching.Solver bounds the reduction
	// pre-pass it re-runs at every recursive node with its own fixed
	// ceiling of 3.
	MaxBranchingReductionsComplexity int
}

// NewConfig returns a Config with the reference's default numeric
// constants: a 300s decomposition budget, good-enough treewidth 14, max
// treewidth 18, a 14GiB DP memory ceiling, and max bag branch depth 7.
func NewConfig() Config {
	return Config{
		ReductionRules:                   rrules.DefaultRules(),
		SolverType:                       Default,
		PresolverType:                    PresolveFull,
		DecompositionTimeBudget:          300 * time.Second,
		RandomSeed:                       0,
		GoodEnoughTreewidth:              14,
		MaxTreewidth:                     18,
		MaxMemoryInBytes:                 uint64(14) << 30,
		MaxBagBranchDepth:                7,
		MaxBranchingReductionsComplexity: 0,
	}
}
