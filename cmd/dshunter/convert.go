package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/pace"
)

var (
	convertInput  string
	convertOutput string
	convertFrom   string
	convertTo     string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between the .gr and .ads instance formats",
	Example: `  dshunter convert -i instance.gr -o instance.ads --to ads
  dshunter convert -i snapshot.ads -o plain.gr --to gr`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "-", "output file (\"-\" for stdout)")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "override input format detection: gr or ads")
	convertCmd.Flags().StringVar(&convertTo, "to", "ads", "output format: gr or ads")
	convertCmd.MarkFlagRequired("input")
}

func runConvert(cmd *cobra.Command, args []string) error {
	g, err := readInstance(convertInput, convertFrom)
	if err != nil {
		return err
	}

	out, err := openOutput(convertOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	switch resolveFormat("", convertTo) {
	case "ads":
		return pace.WriteADS(out, g)
	case "gr":
		return writeGR(out, g)
	default:
		return fmt.Errorf("--to must be gr or ads, got %q", convertTo)
	}
}

// writeGR renders g in the plain .gr format. Only a graph with no
// committed/disregarded vertices and no FORCED edges round-trips into .gr:
// that format has no field for annotated state, per the .ads/.gr format
// split described in spec.md §6.
func writeGR(w io.Writer, g *instance.Instance) error {
	if len(g.DS) > 0 || g.DisregardedNodeCount() > 0 || g.ForcedEdgeCount() > 0 {
		return fmt.Errorf("cannot convert: instance carries annotated state (committed/disregarded vertices or forced edges) with no representation in .gr")
	}

	if _, err := fmt.Fprintf(w, "p ds %d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return err
	}
	for _, u := range g.Nodes {
		for _, e := range g.Adj(u) {
			if u < e.To {
				if _, err := fmt.Fprintf(w, "%d %d\n", u, e.To); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
