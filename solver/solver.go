package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/dshunter/dshunter/branching"
	"github.com/dshunter/dshunter/decomposition"
	"github.com/dshunter/dshunter/dslog"
	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/rrules"
	"github.com/dshunter/dshunter/treewidth"
	"github.com/dshunter/dshunter/vc"
)

// Solver is the top-level orchestrator: presolve, split into connected
// components, dispatch each component to the configured back end, then
// verify the concatenated result against the original (pre-presolve)
// instance.
type Solver struct {
	Cfg    Config
	Logger dslog.Logger
}

// New returns a Solver with cfg and a no-op Logger.
func New(cfg Config) *Solver {
	return &Solver{Cfg: cfg, Logger: dslog.NewNop()}
}

// Solve runs the full pipeline on g and returns the minimum (or
// back-end-appropriate) dominating set, sorted ascending. g is mutated in
// place by presolve (the back ends run on per-component copies); callers
// that need the untouched input should Clone it first.
func (s *Solver) Solve(ctx context.Context, g *instance.Instance) ([]int, error) {
	logger := s.Logger
	if logger == nil {
		logger = dslog.NewNop()
	}

	initial := g.Clone()
	nOld, mOld := g.NodeCount(), g.EdgeCount()

	complexity, err := s.Cfg.PresolverType.presolveComplexity()
	if err != nil {
		return nil, err
	}

	logger.Info("starting presolve")
	rrules.Reduce(g, s.Cfg.ReductionRules, complexity)
	logger.Info("presolve done",
		dslog.F("n_old", nOld), dslog.F("n_new", g.NodeCount()),
		dslog.F("m_old", mOld), dslog.F("m_new", g.EdgeCount()),
		dslog.F("disregarded", g.DisregardedNodeCount()),
		dslog.F("forced_edges", g.ForcedEdgeCount()))

	if g.NodeCount() == 0 {
		sort.Ints(g.DS)
		if err := Verify(initial, g.DS); err != nil {
			return nil, err
		}
		return g.DS, nil
	}

	ds := append([]int(nil), g.DS...)
	for _, comp := range g.Split() {
		sub := extractComponent(g, comp)
		partial, err := s.solveConnected(ctx, sub)
		if err != nil {
			return nil, err
		}
		ds = append(ds, partial...)
	}
	sort.Ints(ds)

	if err := Verify(initial, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// solveConnected dispatches a single connected component to the configured
// back end, mirroring Solver::solve's switch over SolverType in the
// reference (the Default case's "forced edges equal edge count -> vc, else
// treewidth, falling back to branching" chain included).
func (s *Solver) solveConnected(ctx context.Context, g *instance.Instance) ([]int, error) {
	logger := s.Logger
	if logger == nil {
		logger = dslog.NewNop()
	}

	switch s.Cfg.SolverType {
	case Default:
		if g.ForcedEdgeCount() == g.EdgeCount() {
			logger.Info("running vc solver")
			if err := vc.Solve(g); err != nil {
				return nil, err
			}
			return g.DS, nil
		}

		logger.Info("running treewidth solver")
		if err := treewidth.Solve(ctx, g, decomposition.EliminationDecomposer{}, s.Cfg.MaxMemoryInBytes); err == nil {
			return g.DS, nil
		}

		logger.Info("treewidth solver failed, falling back to branching solver")
		g.DS = branching.NewSolver().Solve(g)
		return g.DS, nil

	case TreewidthDP:
		logger.Info("running treewidth solver")
		if err := treewidth.Solve(ctx, g, decomposition.EliminationDecomposer{}, s.Cfg.MaxMemoryInBytes); err != nil {
			return nil, fmt.Errorf("treewidth dp failed (treewidth might be too big?): %w", err)
		}
		return g.DS, nil

	case Bruteforce:
		logger.Info("running bruteforce solver")
		g.DS = append(g.DS, bruteforce(g)...)
		return g.DS, nil

	case Branching:
		logger.Info("running branching solver")
		g.DS = branching.NewSolver().Solve(g)
		return g.DS, nil

	case ReduceToVertexCover:
		logger.Info("running vc solver")
		if g.ForcedEdgeCount() != g.EdgeCount() {
			return nil, ErrUnconstrainedEdges
		}
		if err := vc.Solve(g); err != nil {
			return nil, err
		}
		return g.DS, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidSolverType, s.Cfg.SolverType)
	}
}

// extractComponent builds a standalone Instance containing exactly the
// vertices in comp and the edges between them, preserving vertex ids,
// domination/membership status and edge status from g. g itself is not
// mutated. This is how Instance.Split's contract actually gets exercised:
// the reference declares a private Solver::solveConnected that is never
// called from Solver::solve, so this wiring realizes what that signature
// implies rather than porting a dead method.
func extractComponent(g *instance.Instance, comp []int) *instance.Instance {
	sub := instance.New()
	inComp := make(map[int]bool, len(comp))
	for _, v := range comp {
		inComp[v] = true
	}

	for _, v := range comp {
		sub.AddNodeAt(v, g.IsExtra(v))
		domination := instance.Undominated
		if g.IsDominated(v) {
			domination = instance.Dominated
		}
		// Take removes a vertex from g.Nodes, so an active comp member is
		// never Taken; only Undecided/Disregarded are possible here.
		membership := instance.Undecided
		if g.IsDisregarded(v) {
			membership = instance.Disregarded
		}
		sub.SetStatus(v, domination, membership)
	}

	for _, v := range comp {
		for _, e := range g.Adj(v) {
			if v < e.To && inComp[e.To] {
				sub.AddEdgeRaw(v, e.To, e.Status)
			}
		}
	}
	sub.SortAdjacency()

	return sub
}
