// Package bfs produces the breadth-first step trace of a core.Graph.
//
// BFS explores nodes in increasing hop distance from a start node over the
// directed adjacency, emitting one trace.Step per observable action.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/trace"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     map[int][]int
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	out     trace.Trace
}

// Trace runs breadth-first search on g from start and returns its steps.
//
// For each dequeued node: CURRENT_NODE; then per outgoing neighbor in
// adjacency order: EDGE_TRAVERSAL, UNVISITED_NEIGHBOR (first discovery only),
// EDGE_CLASSIFICATION (tree iff discovered here); finally
// CURRENT_NODE_FINISHED. Every step carries a queue/visited snapshot.
//
// Returns ErrGraphNil, ErrOptionViolation, trace.ErrNodeNotFound (wrapped)
// or the context error; no partial trace is returned on error.
// Complexity: O(V + E) steps, O(V) per snapshot.
func Trace(g *core.Graph, start int, opts ...Option) (trace.Trace, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", trace.ErrNodeNotFound, start)
	}

	adj := g.AdjList()
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, len(adj)),
		visited: make(map[int]bool, len(adj)),
		out:     make(trace.Trace, 0, 4*len(adj)),
	}

	// Seed queue with start node
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.out, nil
}

// Generator adapts Trace to trace.Generator with the given options.
func Generator(opts ...Option) trace.Generator {
	return func(g *core.Graph, start int) (trace.Trace, error) {
		return Trace(g, start, opts...)
	}
}

// enqueue marks id visited and appends it to the queue.
func (w *walker) enqueue(id, depth int) {
	w.visited[id] = true
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.emit(trace.Step{Kind: trace.CurrentNode, Node: item.id})
		w.exploreNeighbors(item)
		w.emit(trace.Step{Kind: trace.CurrentNodeFinished, Node: item.id})
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// exploreNeighbors traverses and classifies every outgoing edge of item.
func (w *walker) exploreNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	for _, nbr := range w.adj[item.id] {
		w.emit(trace.Step{Kind: trace.EdgeTraversal, Node: item.id, Target: nbr})

		tree := false
		withinDepth := w.opts.MaxDepth == 0 || nextDepth <= w.opts.MaxDepth
		if !w.visited[nbr] && withinDepth {
			w.enqueue(nbr, nextDepth)
			w.emit(trace.Step{Kind: trace.UnvisitedNeighbor, Node: nbr})
			tree = true
		}

		w.emit(trace.Step{Kind: trace.EdgeClassification, Node: item.id, Target: nbr, TreeEdge: tree})
	}
}

// emit attaches the current snapshot, runs the hook and records s.
func (w *walker) emit(s trace.Step) {
	q := make([]int, len(w.queue))
	for i, it := range w.queue {
		q[i] = it.id
	}
	s.State = &trace.Snapshot{Queue: q, Visited: trace.VisitedSnapshot(w.visited)}
	w.opts.OnStep(s)
	w.out = append(w.out, s)
}
