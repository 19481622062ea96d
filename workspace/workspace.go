package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphplay/algorithms"
	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/parse"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/replay"
	"github.com/katalvlaran/graphplay/scene"
	"github.com/katalvlaran/graphplay/trace"
)

// ErrEmptyInput is returned when parsed input holds no nodes; the current
// graph is kept.
var ErrEmptyInput = errors.New("workspace: input is empty")

// Option customizes a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger handed to the simulator and the driver.
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.log = l
		}
	}
}

// WithStepLog adds a sink receiving every step line next to the in-memory
// log.
func WithStepLog(l replay.StepLog) Option {
	return func(w *Workspace) {
		if l != nil {
			w.extra = append(w.extra, l)
		}
	}
}

// Workspace is one graph with its layout and replay lanes.
type Workspace struct {
	cfg   *config.Config
	log   logrus.FieldLogger
	extra []replay.StepLog

	graph *core.Graph
	scene *scene.Scene
	sim   *layout.Simulator
	drv   *replay.Driver
	steps *replay.MemoryLog
	tee   replay.Tee
}

// New returns an empty workspace drawing onto out. A nil cfg means
// config.Default().
func New(cfg *config.Config, out render.Renderer, opts ...Option) *Workspace {
	if cfg == nil {
		cfg = config.Default()
	}
	w := &Workspace{
		cfg:   cfg,
		log:   logrus.StandardLogger(),
		graph: core.NewGraph(),
		steps: &replay.MemoryLog{},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.tee = append(replay.Tee{w.steps}, w.extra...)

	lc := cfg.LayoutConfig()
	pos := lc.NewPositions()
	w.scene = scene.New(w.graph, pos, out,
		scene.WithStyle(cfg.Style()),
		scene.WithDirected(cfg.Canvas.Directed),
	)
	w.sim = layout.NewSimulator(lc, pos, w.scene, layout.WithLogger(w.log))
	w.drv = replay.NewDriver(w.scene,
		replay.WithDelay(cfg.Replay.Delay),
		replay.WithColors(cfg.ColorScheme()),
		replay.WithStepLog(w.tee),
		replay.WithLabeler(w.scene.LabelOf),
		replay.WithLogger(w.log),
	)

	return w
}

// Scene returns the drawing engine.
func (w *Workspace) Scene() *scene.Scene { return w.scene }

// Simulator returns the layout simulator.
func (w *Workspace) Simulator() *layout.Simulator { return w.sim }

// Driver returns the replay driver.
func (w *Workspace) Driver() *replay.Driver { return w.drv }

// Steps returns the in-memory step log.
func (w *Workspace) Steps() *replay.MemoryLog { return w.steps }

// LoadText parses edge-list text and loads it.
func (w *Workspace) LoadText(text string) error {
	return w.LoadInput(parse.Text(text))
}

// LoadInput replaces the graph with in. Replays are stopped and the step
// log cleared first; the layout lane is stopped too and must be restarted
// with Animate or Settle.
func (w *Workspace) LoadInput(in parse.Input) error {
	if in.Empty() {
		return ErrEmptyInput
	}
	if err := w.quiesce(); err != nil {
		return err
	}
	if err := w.scene.Load(in.Edges, in.Isolated); err != nil {
		return err
	}
	w.log.WithField("nodes", w.graph.NodeCount()).Debug("graph loaded")

	return w.scene.Redraw()
}

// LoadSample loads gallery entry i of builder.Samples.
func (w *Workspace) LoadSample(i int) error {
	g, err := builder.BuildGraph(nil, builder.Sample(i))
	if err != nil {
		return err
	}

	return w.LoadGraph(g)
}

// Generate replaces the graph with the one r describes.
func (w *Workspace) Generate(r builder.Recipe) error {
	g, err := r.Build()
	if err != nil {
		return err
	}
	w.log.WithField("topology", r.Topology).Debug("graph generated")

	return w.LoadGraph(g)
}

// LoadGraph copies g in, labelling nodes by their ids.
func (w *Workspace) LoadGraph(g *core.Graph) error {
	if g.NodeCount() == 0 {
		return ErrEmptyInput
	}
	if err := w.quiesce(); err != nil {
		return err
	}
	if err := w.scene.LoadGraph(g); err != nil {
		return err
	}

	return w.scene.Redraw()
}

// quiesce stops both lanes, waits for their loops and clears the step log.
func (w *Workspace) quiesce() error {
	w.sim.Stop()
	err := w.drv.Stop()
	w.sim.Wait()
	w.drv.Wait()
	w.tee.Clear()
	if err != nil {
		return fmt.Errorf("workspace: stop replay: %w", err)
	}

	return nil
}

// Animate starts or resumes the layout in the background.
func (w *Workspace) Animate(ctx context.Context) error {
	return w.sim.Start(ctx, w.graph)
}

// Settle runs the layout to completion on the calling goroutine.
func (w *Workspace) Settle(ctx context.Context) error {
	return w.sim.Run(ctx, w.graph)
}

// StopLayout freezes the nodes where they are.
func (w *Workspace) StopLayout() { w.sim.Stop() }

// Trace generates the trace of algorithm from the node labelled start.
func (w *Workspace) Trace(algorithm, start string) (trace.Trace, error) {
	gen, err := algorithms.Lookup(algorithm)
	if err != nil {
		return nil, err
	}
	id, err := w.scene.ResolveLabel(start)
	if err != nil {
		return nil, err
	}

	return gen(w.graph, id)
}

// Play starts a background replay of algorithm from start, superseding
// any running one.
func (w *Workspace) Play(ctx context.Context, algorithm, start string) error {
	tr, err := w.Trace(algorithm, start)
	if err != nil {
		return err
	}

	return w.drv.Start(ctx, tr)
}

// Replay replays algorithm from start on the calling goroutine.
func (w *Workspace) Replay(ctx context.Context, algorithm, start string) error {
	tr, err := w.Trace(algorithm, start)
	if err != nil {
		return err
	}

	return w.drv.Play(ctx, tr)
}

// StopReplay supersedes the running replay and resets the visuals.
func (w *Workspace) StopReplay() error { return w.drv.Stop() }

// SetSpeed maps a speed slider value onto the replay delay.
func (w *Workspace) SetSpeed(v int) { w.drv.SetSpeed(v) }

// SetDirected toggles arrows.
func (w *Workspace) SetDirected(directed bool) error { return w.scene.SetDirected(directed) }

// ClearSteps empties the step log.
func (w *Workspace) ClearSteps() { w.tee.Clear() }

// Close stops both lanes and waits for their loops.
func (w *Workspace) Close() {
	w.sim.Stop()
	_ = w.drv.Stop()
	w.sim.Wait()
	w.drv.Wait()
}
