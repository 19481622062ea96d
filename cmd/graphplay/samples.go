package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/builder"
)

func newSamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the sample gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, s := range builder.Samples() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-12s %d nodes\n", i, s.Name, len(s.Adj))
			}

			return nil
		},
	}
}

func newTopologiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topologies",
		Short: "List the forms accepted by --gen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range builder.Topologies() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}

			return nil
		},
	}
}
