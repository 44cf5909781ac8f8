package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshunter/dshunter/dslog"
	"github.com/dshunter/dshunter/pace"
	"github.com/dshunter/dshunter/solver"
)

var (
	solveInput  string
	solveOutput string
	solveFormat string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute a minimum dominating set for an instance",
	Example: `  dshunter solve -i instance.gr
  dshunter solve -i snapshot.ads -o solution.txt`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "input .gr or .ads file (required)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "-", "output solution file (\"-\" for stdout)")
	solveCmd.Flags().StringVar(&solveFormat, "format", "", "override format detection: gr or ads")
	solveCmd.MarkFlagRequired("input")
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readInstance(solveInput, solveFormat)
	if err != nil {
		return err
	}

	solverCfg, err := cfg.ToSolverConfig()
	if err != nil {
		return err
	}

	s := solver.New(solverCfg)
	s.Logger = logger

	logger.Info("solving", dslog.F("nodes", g.NodeCount()), dslog.F("edges", g.EdgeCount()))

	ds, err := s.Solve(context.Background(), g)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	out, err := openOutput(solveOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	return pace.WriteSolution(out, ds)
}
