package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/algorithms"
	"github.com/katalvlaran/graphplay/logger"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/replay"
	"github.com/katalvlaran/graphplay/workspace"
)

func newTraceCommand(g *globals) *cobra.Command {
	var algo, start string
	cmd := &cobra.Command{
		Use:   "trace [FILE]",
		Short: "Print the step log of an algorithm run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *g.cfg
			cfg.Replay.Delay = 0

			w := workspace.New(&cfg, &render.Builder{},
				workspace.WithLogger(logger.Logger(cmd.Context())),
				workspace.WithStepLog(replay.WriterLog{W: cmd.OutOrStdout()}),
			)
			defer w.Close()
			if err := g.load(cmd, args, w); err != nil {
				return err
			}

			return w.Replay(cmd.Context(), algo, start)
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", algorithms.BFS, "algorithm name")
	cmd.Flags().StringVar(&start, "start", "0", "label of the start node")

	return cmd
}
