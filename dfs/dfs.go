// Package dfs produces the depth-first step trace of a core.Graph.
//
// Recursion happens only along tree edges, exactly as a recursive DFS would
// do it, but the call stack is an explicit slice of frames: depth is bounded
// by memory, not by the goroutine stack, and the Snapshot.Stack attached to
// every step is the frame slice itself.
//
// Complexity:
//
//   - Steps:  ≤ 2V + 3E
//   - Memory: O(V) frames plus O(V) per snapshot.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - trace.ErrNodeNotFound     if start is missing (wrapped).
//   - context.Canceled          if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/trace"
)

// frame is one level of the explicit recursion stack.
type frame struct {
	id    int
	depth int
	next  int // index of the next neighbor to traverse
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj   map[int][]int
	opts  DFSOptions
	color map[int]int
	stack []frame
	out   trace.Trace
}

// Trace performs depth-first search on g from start and returns its steps.
//
// Per node u: CURRENT_NODE u on entry; per edge u→v in adjacency order:
// EDGE_TRAVERSAL, UNVISITED_NEIGHBOR v (if v is undiscovered),
// EDGE_CLASSIFICATION (tree iff v was undiscovered) and, for a tree edge, the
// whole subtree of v; finally CURRENT_NODE_FINISHED u.
func Trace(g *core.Graph, start int, opts ...Option) (trace.Trace, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Verify start
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", trace.ErrNodeNotFound, start)
	}

	adj := g.AdjList()
	w := &dfsWalker{
		adj:   adj,
		opts:  dopts,
		color: make(map[int]int, len(adj)),
		stack: make([]frame, 0, len(adj)),
		out:   make(trace.Trace, 0, 4*len(adj)),
	}

	// 4. Traverse: single tree, then optionally the rest of the forest
	if err := w.traverse(start); err != nil {
		return nil, err
	}
	if dopts.FullTraversal {
		for _, id := range g.Nodes() {
			if w.color[id] != White {
				continue
			}
			if err := w.traverse(id); err != nil {
				return nil, err
			}
		}
	}

	return w.out, nil
}

// Generator adapts Trace to trace.Generator with the given options.
func Generator(opts ...Option) trace.Generator {
	return func(g *core.Graph, start int) (trace.Trace, error) {
		return Trace(g, start, opts...)
	}
}

// traverse explores the tree rooted at root until its frame is popped.
func (w *dfsWalker) traverse(root int) error {
	w.enter(root, 0)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		nbrs := w.adj[top.id]

		// 2. All neighbors done: finish and pop
		if top.next >= len(nbrs) {
			w.color[top.id] = Black
			w.emit(trace.Step{Kind: trace.CurrentNodeFinished, Node: top.id})
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 3. Traverse the next edge
		from, depth := top.id, top.depth
		nbr := nbrs[top.next]
		top.next++
		w.emit(trace.Step{Kind: trace.EdgeTraversal, Node: from, Target: nbr})

		tree := w.color[nbr] == White && w.withinDepth(depth+1)
		if tree {
			w.emit(trace.Step{Kind: trace.UnvisitedNeighbor, Node: nbr})
		}
		w.emit(trace.Step{Kind: trace.EdgeClassification, Node: from, Target: nbr, TreeEdge: tree})

		// 4. Recurse along tree edges only
		if tree {
			w.enter(nbr, depth+1)
		}
	}

	return nil
}

// enter pushes a frame for id, marks it Gray and emits CURRENT_NODE.
func (w *dfsWalker) enter(id, depth int) {
	w.color[id] = Gray
	w.stack = append(w.stack, frame{id: id, depth: depth})
	w.emit(trace.Step{Kind: trace.CurrentNode, Node: id})
}

func (w *dfsWalker) withinDepth(d int) bool {
	return w.opts.MaxDepth == 0 || d <= w.opts.MaxDepth
}

// emit attaches the stack/visited snapshot, runs the hook and records s.
func (w *dfsWalker) emit(s trace.Step) {
	st := make([]int, len(w.stack))
	for i, f := range w.stack {
		st[i] = f.id
	}
	visited := make(map[int]bool, len(w.color))
	for id, c := range w.color {
		visited[id] = c != White
	}
	s.State = &trace.Snapshot{Stack: st, Visited: trace.VisitedSnapshot(visited)}
	if w.opts.OnStep != nil {
		w.opts.OnStep(s)
	}
	w.out = append(w.out, s)
}
