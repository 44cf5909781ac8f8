package dsconfig

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/dshunter/dshunter/dslog"
	"github.com/dshunter/dshunter/solver"
)

// Config is the on-disk/environment representation of solver.Config: plain
// strings and durations, translated into solver's typed enums by
// ToSolverConfig. Field names mirror spec.md's EXTERNAL INTERFACES
// configuration record.
type Config struct {
	SolverType    string `mapstructure:"solver_type"`
	PresolverType string `mapstructure:"presolver_type"`

	DecompositionTimeBudget time.Duration `mapstructure:"decomposition_time_budget"`
	// DecomposerPath names an external decomposer executable. No bundled
	// exec-based decomposer ships (decomposition.EliminationDecomposer is
	// in-process); this field is a named extension point only, per
	// spec.md's FlowCutter/process-driven-decomposer Non-goal.
	DecomposerPath string `mapstructure:"decomposer_path"`

	RandomSeed                        int    `mapstructure:"random_seed"`
	GoodEnoughTreewidth               int    `mapstructure:"good_enough_treewidth"`
	MaxTreewidth                      int    `mapstructure:"max_treewidth"`
	MaxMemoryInBytes                  uint64 `mapstructure:"max_memory_in_bytes"`
	MaxBagBranchDepth                 int    `mapstructure:"max_bag_branch_depth"`
	MaxBranchingReductionsComplexity  int    `mapstructure:"max_branching_reductions_complexity"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the dslog.Logger the CLI wires into solver.Solver.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// defaults mirrors solver.NewConfig()'s numeric defaults so a config file
// that omits a field still produces the reference's own values.
func setDefaults(v *viper.Viper) {
	def := solver.NewConfig()

	v.SetDefault("solver_type", def.SolverType.String())
	v.SetDefault("presolver_type", def.PresolverType.String())
	v.SetDefault("decomposition_time_budget", def.DecompositionTimeBudget)
	v.SetDefault("decomposer_path", "")
	v.SetDefault("random_seed", def.RandomSeed)
	v.SetDefault("good_enough_treewidth", def.GoodEnoughTreewidth)
	v.SetDefault("max_treewidth", def.MaxTreewidth)
	v.SetDefault("max_memory_in_bytes", def.MaxMemoryInBytes)
	v.SetDefault("max_bag_branch_depth", def.MaxBagBranchDepth)
	v.SetDefault("max_branching_reductions_complexity", def.MaxBranchingReductionsComplexity)
	v.SetDefault("log.level", "info")
}

// Load reads configuration from configPath (yaml/json/toml, inferred from
// the extension), falling back to ./dshunter.yaml, ./configs/dshunter.yaml
// and /etc/dshunter if configPath is empty. A missing file is not an
// error: defaults apply. Environment variables (DSHUNTER_*) override file
// values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dshunter")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/dshunter")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Use defaults.
		} else if os.IsNotExist(err) {
			// Use defaults.
		} else {
			return nil, fmt.Errorf("dsconfig: read config file: %w", err)
		}
	}

	v.SetEnvPrefix("dshunter")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("dsconfig: unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration of the given type ("yaml", "json",
// "toml", ...) from content, bypassing the filesystem. Meant for tests.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("dsconfig: read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("dsconfig: unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ToSolverConfig translates c into a solver.Config, resolving the string
// enum fields and starting from solver.NewConfig()'s ReductionRules (a
// config file has no representation for the ordered rule library, which
// stays overridable only from Go, as spec.md's configuration record notes).
func (c *Config) ToSolverConfig() (solver.Config, error) {
	cfg := solver.NewConfig()

	st, err := solver.ParseType(c.SolverType)
	if err != nil {
		return solver.Config{}, err
	}
	pt, err := solver.ParsePresolverType(c.PresolverType)
	if err != nil {
		return solver.Config{}, err
	}

	cfg.SolverType = st
	cfg.PresolverType = pt
	cfg.DecompositionTimeBudget = c.DecompositionTimeBudget
	cfg.RandomSeed = c.RandomSeed
	cfg.GoodEnoughTreewidth = c.GoodEnoughTreewidth
	cfg.MaxTreewidth = c.MaxTreewidth
	cfg.MaxMemoryInBytes = c.MaxMemoryInBytes
	cfg.MaxBagBranchDepth = c.MaxBagBranchDepth
	cfg.MaxBranchingReductionsComplexity = c.MaxBranchingReductionsComplexity

	return cfg, nil
}

// LogLevel resolves c.Log.Level into a dslog.Level.
func (c *Config) LogLevel() (dslog.Level, error) {
	return dslog.ParseLevel(c.Log.Level)
}
