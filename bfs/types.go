// Package bfs provides tunable options and error definitions
// for the breadth-first step trace over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphplay/trace"
)

// Sentinel errors for BFS tracing.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Trace is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize tracing.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnStep is called for every emitted step, in trace order.
	OnStep func(trace.Step)

	// MaxDepth, if > 0, stops discovering nodes beyond this depth.
	// The edge is still traversed and classified (non-tree).
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnStep hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnStep:   func(trace.Step) {},
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback invoked for each emitted step.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxDepth stops discovery at the given depth (inclusive).
//
//	d > 0: nodes deeper than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
