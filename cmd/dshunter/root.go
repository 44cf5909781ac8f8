package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshunter/dshunter/dsconfig"
	"github.com/dshunter/dshunter/dslog"
)

var (
	// Global flags.
	cfgPath string
	verbose bool

	// Resolved once in PersistentPreRunE.
	cfg    *dsconfig.Config
	logger dslog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dshunter",
	Short: "Exact Minimum Dominating Set solver for PACE-style instances",
	Long: `dshunter solves the Minimum Dominating Set problem exactly on
undirected graphs given in the PACE DIMACS-like .gr format (or the
annotated .ads format for partially reduced snapshots).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := dsconfig.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded

		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = dslog.LevelDebug
		}
		logger = dslog.NewDefaultLogger(level, os.Stderr)
		return nil
	},
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a dsconfig file (yaml/json/toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
