package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitpath/bfs"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/loader"
)

func newValidateCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Load a network and report its size and connectivity",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if network == "" {
				return errNoNetwork
			}
			g, err := loader.LoadFile(network)
			if err != nil {
				return err
			}

			comps, err := components(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stations: %d\n", g.StationCount())
			fmt.Fprintf(out, "links: %d\n", g.LinkCount())
			fmt.Fprintf(out, "components: %d\n", comps)

			return g.Validate()
		},
	}
	cmd.Flags().StringVarP(&network, "network", "n", "", "network file (YAML or JSON)")

	return cmd
}

// components counts connected components with repeated BFS sweeps.
func components(g *core.Graph) (int, error) {
	seen := make(map[string]bool, g.StationCount())
	count := 0
	for _, id := range g.StationIDs() {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(g, id)
		if err != nil {
			return 0, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		count++
	}

	return count, nil
}
