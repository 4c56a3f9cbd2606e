package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitpath/loader"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "diff <old-network> <new-network>",
		Short:        "List stations and links that changed between two network files",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			after, err := loader.LoadFile(args[1])
			if err != nil {
				return err
			}

			changes, err := loader.Diff(before, after)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(changes) == 0 {
				fmt.Fprintln(out, "no changes")
				return nil
			}
			for _, c := range changes {
				fmt.Fprintf(out, "%s %s: %v -> %v\n", c.Type, strings.Join(c.Path, "."), c.From, c.To)
			}

			return nil
		},
	}
}
