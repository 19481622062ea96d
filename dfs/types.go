// Package dfs defines types and options for the depth-first step trace,
// including cancellation, a step hook, depth limiting and full-graph
// (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphplay/trace"
)

// Node colors during traversal.
const (
	White = iota // White: the node has not been discovered yet.
	Gray         // Gray: the node is on the explicit stack (being explored).
	Black        // Black: the node and all its descendants are finished.
)

// Sentinel errors for DFS tracing.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Trace.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS tracing.
// Use with Trace(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS tracing.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnStep, if non-nil, is invoked for every emitted step.
	OnStep func(trace.Step)

	// MaxDepth, if > 0, stops discovery beyond the given depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FullTraversal, if true, restarts from every undiscovered node in
	// ascending id order after the start tree finishes (forest traversal).
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No step hook
//   - No depth limit (MaxDepth = 0)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		OnStep:        nil,
		MaxDepth:      0,
		FullTraversal: false,
	}
}

// WithContext returns an Option that sets the Context for tracing.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs fn as the per-step hook.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *DFSOptions) {
		o.OnStep = fn
	}
}

// WithMaxDepth returns an Option that limits discovery depth to limit
// (inclusive). Zero means no limit; a negative limit makes Trace fail with
// ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}
