package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/logger"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/workspace"
)

func newLayoutCommand(g *globals) *cobra.Command {
	var out string
	var sweeps int
	cmd := &cobra.Command{
		Use:   "layout [FILE]",
		Short: "Run the force layout to completion and write the final frame as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *g.cfg
			cfg.Layout.Pace = 0
			if cmd.Flags().Changed("sweeps") {
				cfg.Layout.Sweeps = sweeps
			}

			rec := &render.Recorder{Keep: 1}
			w := workspace.New(&cfg, rec, workspace.WithLogger(logger.Logger(cmd.Context())))
			defer w.Close()
			if err := g.load(cmd, args, w); err != nil {
				return err
			}
			if err := w.Settle(cmd.Context()); err != nil {
				return err
			}
			frame, ok := rec.Last()
			if !ok {
				return fmt.Errorf("layout: nothing was drawn")
			}

			return writeSVG(cmd.OutOrStdout(), out, frame, cfg.SVGOptions())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "SVG output file, - for stdout")
	cmd.Flags().IntVar(&sweeps, "sweeps", 0, "number of sweeps (overrides config)")

	return cmd
}

func writeSVG(stdout io.Writer, path string, f render.Frame, opts render.SVGOptions) error {
	if path == "-" {
		return render.EncodeSVG(stdout, f, opts)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	if err := render.EncodeSVG(file, f, opts); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
