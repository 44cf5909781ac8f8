package dsconfig_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshunter/dshunter/dsconfig"
	"github.com/dshunter/dshunter/dslog"
	"github.com/dshunter/dshunter/solver"
)

func TestLoadFromReaderAppliesDefaults(t *testing.T) {
	cfg, err := dsconfig.LoadFromReader("yaml", []byte("{}"))
	require.NoError(t, err)

	sc, err := cfg.ToSolverConfig()
	require.NoError(t, err)

	want := solver.NewConfig()
	require.Equal(t, want.SolverType, sc.SolverType)
	require.Equal(t, want.PresolverType, sc.PresolverType)
	require.Equal(t, want.DecompositionTimeBudget, sc.DecompositionTimeBudget)
	require.Equal(t, want.GoodEnoughTreewidth, sc.GoodEnoughTreewidth)
	require.Equal(t, want.MaxTreewidth, sc.MaxTreewidth)
	require.Equal(t, want.MaxMemoryInBytes, sc.MaxMemoryInBytes)
	require.Equal(t, want.MaxBagBranchDepth, sc.MaxBagBranchDepth)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, dslog.LevelInfo, level)
}

func TestLoadFromReaderOverridesFields(t *testing.T) {
	yaml := []byte(`
solver_type: branching
presolver_type: cheap
decomposition_time_budget: 45s
max_treewidth: 12
log:
  level: debug
`)
	cfg, err := dsconfig.LoadFromReader("yaml", yaml)
	require.NoError(t, err)

	sc, err := cfg.ToSolverConfig()
	require.NoError(t, err)

	require.Equal(t, solver.Branching, sc.SolverType)
	require.Equal(t, solver.PresolveCheap, sc.PresolverType)
	require.Equal(t, 45*time.Second, sc.DecompositionTimeBudget)
	require.Equal(t, 12, sc.MaxTreewidth)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, dslog.LevelDebug, level)
}

func TestToSolverConfigRejectsUnknownSolverType(t *testing.T) {
	cfg, err := dsconfig.LoadFromReader("yaml", []byte("solver_type: quantum\n"))
	require.NoError(t, err)

	_, err = cfg.ToSolverConfig()
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrInvalidSolverType)
}

func TestToSolverConfigRejectsUnknownPresolverType(t *testing.T) {
	cfg, err := dsconfig.LoadFromReader("yaml", []byte("presolver_type: extreme\n"))
	require.NoError(t, err)

	_, err = cfg.ToSolverConfig()
	require.Error(t, err)
	require.ErrorIs(t, err, solver.ErrInvalidPresolverType)
}
