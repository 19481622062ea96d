package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphplay/algorithms"
	"github.com/katalvlaran/graphplay/logger"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/replay"
	"github.com/katalvlaran/graphplay/workspace"
)

// gate forwards drawing calls to out only while open, so the frames of a
// settling layout can be skipped.
type gate struct {
	out  render.Renderer
	open atomic.Bool
}

func (g *gate) ClearScene() {
	if g.open.Load() {
		g.out.ClearScene()
	}
}

func (g *gate) PlaceNode(id int, x, y, radius float64, label, fill string) {
	if g.open.Load() {
		g.out.PlaceNode(id, x, y, radius, label, fill)
	}
}

func (g *gate) PlaceEdge(from, to int, stroke string, width float64, directed bool, label string) {
	if g.open.Load() {
		g.out.PlaceEdge(from, to, stroke, width, directed, label)
	}
}

func (g *gate) Flush() error {
	if !g.open.Load() {
		return nil
	}

	return render.Flush(g.out)
}

func newPlayCommand(g *globals) *cobra.Command {
	var algo, start, frames string
	var layoutFrames bool
	cmd := &cobra.Command{
		Use:   "play [FILE]",
		Short: "Lay out the graph, then replay an algorithm writing one SVG per frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames == "" {
				return fmt.Errorf("play: --frames DIR is required")
			}
			cfg := *g.cfg
			cfg.Layout.Pace = 0
			cfg.Replay.Delay = 0

			svg, err := render.NewSVGDir(frames, cfg.SVGOptions())
			if err != nil {
				return err
			}
			out := &gate{out: svg}
			out.open.Store(layoutFrames)

			log := logger.Logger(cmd.Context())
			w := workspace.New(&cfg, out,
				workspace.WithLogger(log),
				workspace.WithStepLog(replay.WriterLog{W: cmd.OutOrStdout()}),
			)
			defer w.Close()
			if err := g.load(cmd, args, w); err != nil {
				return err
			}
			if err := w.Settle(cmd.Context()); err != nil {
				return err
			}
			out.open.Store(true)
			err = w.Replay(cmd.Context(), algo, start)
			out.open.Store(false)
			if err != nil {
				return err
			}
			log.WithField("frames", svg.Frames()).Info("frames written")

			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", algorithms.BFS, "algorithm name")
	cmd.Flags().StringVar(&start, "start", "0", "label of the start node")
	cmd.Flags().StringVar(&frames, "frames", "", "directory receiving frame-NNNNN.svg files")
	cmd.Flags().BoolVar(&layoutFrames, "layout-frames", false, "also write the frames of the layout run")

	return cmd
}
