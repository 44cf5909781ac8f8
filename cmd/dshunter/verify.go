package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshunter/dshunter/solver"
)

var (
	verifyInput    string
	verifySolution string
	verifyFormat   string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a solution file against an instance",
	Example: `  dshunter verify -i instance.gr -s solution.txt`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyInput, "input", "i", "", "original .gr or .ads file (required)")
	verifyCmd.Flags().StringVarP(&verifySolution, "solution", "s", "", "solution file, PACE output format (required)")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "", "override format detection: gr or ads")
	verifyCmd.MarkFlagRequired("input")
	verifyCmd.MarkFlagRequired("solution")
}

func runVerify(cmd *cobra.Command, args []string) error {
	g, err := readInstance(verifyInput, verifyFormat)
	if err != nil {
		return err
	}

	ds, err := readSolution(verifySolution)
	if err != nil {
		return err
	}

	if err := solver.Verify(g, ds); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "INVALID: %v\n", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "VALID")
	return nil
}

// readSolution parses the PACE solution-output convention written by
// pace.WriteSolution: a first line with the set's size, then one vertex id
// per line.
func readSolution(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%s: empty solution file", path)
	}
	size, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("%s: bad size line %q", path, scanner.Text())
	}

	ds := make([]int, 0, size)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%s: bad vertex id %q", path, line)
		}
		ds = append(ds, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(ds) != size {
		return nil, fmt.Errorf("%s: header declared %d vertices, found %d", path, size, len(ds))
	}
	return ds, nil
}
