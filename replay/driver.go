package replay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphplay/lane"
	"github.com/katalvlaran/graphplay/trace"
)

// Driver replays a trace onto a Canvas, one paced step at a time.
//
// Every Play or Start issues a token of the replay lane; a later call, or
// Stop, supersedes it and the old loop returns at its next step without
// touching the canvas again.
type Driver struct {
	canvas Canvas
	colors ColorScheme
	steps  StepLog
	name   func(int) string
	src    *lane.Source
	log    logrus.FieldLogger

	delay atomic.Int64 // nanoseconds
	last  atomic.Pointer[lane.Token]
	wg    sync.WaitGroup

	mu  sync.Mutex
	err error
}

// NewDriver returns a driver painting on canvas with the default palette
// and a one-second delay.
func NewDriver(canvas Canvas, opts ...Option) *Driver {
	d := &Driver{
		canvas: canvas,
		colors: DefaultColorScheme(),
		steps:  nopLog{},
		src:    lane.NewSource(LaneName),
		log:    logrus.StandardLogger(),
	}
	d.delay.Store(int64(DefaultDelay))
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Delay returns the current pause after each step.
func (d *Driver) Delay() time.Duration { return time.Duration(d.delay.Load()) }

// SetDelay changes the pause, effective from the next step of a running
// replay. Negative values count as zero.
func (d *Driver) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	d.delay.Store(int64(delay))
}

// SetSpeed maps a speed slider value v to a delay of SpeedBase-v ms,
// never below MinDelay.
func (d *Driver) SetSpeed(v int) {
	delay := time.Duration(SpeedBase-v) * time.Millisecond
	if delay < MinDelay {
		delay = MinDelay
	}
	d.SetDelay(delay)
}

// Play replays steps on the calling goroutine. It returns nil when every
// step was shown or the replay was superseded, and the context error when
// ctx ended it.
func (d *Driver) Play(ctx context.Context, steps trace.Trace) error {
	if d.canvas == nil {
		return ErrNilCanvas
	}

	return d.play(ctx, d.issue(), steps)
}

// Start replays steps in the background. The error of a failed background
// replay is available from Err after Wait.
func (d *Driver) Start(ctx context.Context, steps trace.Trace) error {
	if d.canvas == nil {
		return ErrNilCanvas
	}
	tok := d.issue()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := d.play(ctx, tok, steps)
		d.mu.Lock()
		if d.last.Load() == tok {
			d.err = err
		}
		d.mu.Unlock()
	}()

	return nil
}

// Stop supersedes the running replay and returns the canvas to its
// defaults. A superseded loop already past its check may still apply one
// step; call Wait before Stop's reset if that matters.
func (d *Driver) Stop() error {
	d.src.Stop()
	if d.canvas == nil {
		return nil
	}
	d.canvas.ResetDefaults()

	return d.canvas.Redraw()
}

// Wait blocks until every replay started with Start has returned.
func (d *Driver) Wait() { d.wg.Wait() }

// Err returns the result of the most recently started background replay
// once it has finished. Results of older runs are discarded.
func (d *Driver) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.err
}

// Live reports whether the most recent replay has not been superseded.
// It is false before the first Play or Start and after Stop.
func (d *Driver) Live() bool { return d.last.Load().Live() }

// issue takes a new replay token and remembers it as the latest run.
func (d *Driver) issue() *lane.Token {
	tok := d.src.Issue()
	d.last.Store(tok)

	return tok
}

func (d *Driver) play(ctx context.Context, tok *lane.Token, steps trace.Trace) error {
	log := d.log.WithFields(logrus.Fields{
		"lane":       tok.Lane(),
		"generation": tok.Generation(),
		"run":        uuid.NewString(),
	})
	log.WithField("steps", len(steps)).Debug("replay started")

	if !tok.Live() {
		return nil
	}
	if c, ok := d.steps.(Clearer); ok {
		c.Clear()
	}
	d.canvas.ResetDefaults()
	if err := d.canvas.Redraw(); err != nil {
		return fmt.Errorf("replay: redraw: %w", err)
	}

	tree := make(map[[2]int]bool)
	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			log.WithField("step", i).Debug("replay cancelled")
			return err
		}
		if !tok.Live() {
			log.WithField("step", i).Debug("replay superseded")
			return nil
		}

		d.apply(st, tree)
		d.steps.Log(d.line(st))
		if err := d.canvas.Redraw(); err != nil {
			return fmt.Errorf("replay: redraw: %w", err)
		}
		tok.Sleep(ctx, d.Delay())
	}
	log.Debug("replay finished")

	return nil
}

// apply paints the visual intent of st. A pair once classified as a tree
// edge keeps the tree width for the rest of the replay.
func (d *Driver) apply(st trace.Step, tree map[[2]int]bool) {
	cs := d.colors
	switch st.Kind {
	case trace.CurrentNode:
		d.canvas.SetNodeFill(st.Node, cs.CurrentNode)
	case trace.UnvisitedNeighbor:
		d.canvas.SetNodeFill(st.Node, cs.UnvisitedNeighbor)
	case trace.CurrentNodeFinished:
		d.canvas.SetNodeFill(st.Node, cs.CurrentNodeFinished)
	case trace.EdgeTraversal, trace.EdgeClassification:
		key := [2]int{st.Node, st.Target}
		color := cs.EdgeTraversal
		if st.Kind == trace.EdgeClassification {
			color = cs.EdgeClassification
			if st.TreeEdge {
				tree[key] = true
			}
		}
		width := cs.EdgeWidth
		if tree[key] {
			width = cs.TreeEdgeWidth
		}
		d.canvas.SetEdgeStroke(st.Node, st.Target, color, width)
	}
}

func (d *Driver) line(st trace.Step) string {
	s := st.Format(d.name)
	if snap := st.State.String(); snap != "" {
		s += "  [" + snap + "]"
	}

	return s
}
