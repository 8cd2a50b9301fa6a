// Command pathfinder loads a network description and prints, for every
// ordered node pair drawn from the declaration order, every route tying
// the minimum total weight.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathways/allpaths"
	"github.com/katalvlaran/pathways/graphio"
	"github.com/katalvlaran/pathways/report"
)

var (
	maxPaths        int
	showUnreachable bool
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder <network-file>",
	Short: "Enumerate every minimum-weight route between node pairs",
	Long: `pathfinder loads a network description (plain text or YAML) and, for
every ordered node pair drawn from the declaration order, prints every
route tying the minimum total weight — not just one shortest path.

Plain-text input (node count header, then one connection per line):

  3
  Gotham-Metropolis,1
  Metropolis-Smallville,1
  Gotham-Smallville,3

YAML input (set "directed: true" to suppress mirror edges):

  nodes: [Gotham, Metropolis, Smallville]
  edges:
    - {from: Gotham, to: Metropolis, weight: 1}
    - {from: Metropolis, to: Smallville, weight: 1}
    - {from: Gotham, to: Smallville, weight: 3}

Examples:
  pathfinder network.txt
  pathfinder --max-paths 100 network.yaml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := graphio.LoadFile(args[0])
		if err != nil {
			return err
		}

		r := report.NewRenderer(cmd.OutOrStdout(), m.Graph, m.Name)
		r.ShowUnreachable = showUnreachable

		opts := []allpaths.Option{
			allpaths.WithContext(cmd.Context()),
			allpaths.WithOnResult(r.Hook()),
		}
		if maxPaths > 0 {
			opts = append(opts, allpaths.WithMaxPaths(maxPaths))
		}

		_, err = allpaths.All(m.Graph, m.Order(), opts...)

		return err
	},
}

func init() {
	rootCmd.Flags().IntVar(&maxPaths, "max-paths", 0, "cap tied routes per pair (0 = unlimited)")
	rootCmd.Flags().BoolVar(&showUnreachable, "show-unreachable", false, "print a block for pairs without a route")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
