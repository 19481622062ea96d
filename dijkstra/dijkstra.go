// Package dijkstra produces the step trace of Dijkstra's shortest-path
// algorithm over the multi-edge-collapsed adjacency of a core.Graph.
//
// Selection is the classic priority-free O(V²) scan: each round picks the
// unvisited node with the minimum finite tentative distance, scanning ids in
// ascending order so ties go to the lowest id.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/trace"
)

// Trace computes shortest distances from start over g and returns its steps.
//
// Emission order:
//  1. Any negative edge weight: a single INVALID_GRAPH step, nothing else.
//  2. One PREPARING_GRAPH step for the multi-edge collapse.
//  3. Per selected node v:
//     - unless v is start: EDGE_CLASSIFICATION for every traversed edge into v,
//     the predecessor edge first (tree) then the others (non-tree);
//     - CURRENT_NODE v;
//     - EDGE_TRAVERSAL for each outgoing edge to an unvisited node, relaxing it;
//     - CURRENT_NODE_FINISHED v.
//  4. Stop once no unvisited node has a finite distance.
//
// Every step except INVALID_GRAPH carries Dist (finite entries) and Visited.
//
// Complexity:
//
//   - Time:  O(V² + E) plus snapshots
//   - Space: O(V + E)
func Trace(g *core.Graph, start int, opts ...Option) (trace.Trace, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", trace.ErrNodeNotFound, start)
	}

	// 3) Pre-scan all edges for negative weights.
	for _, e := range g.EdgeList() {
		if e.Weight < 0 {
			s := trace.Step{Kind: trace.InvalidGraph, Node: start, Reason: NegativeWeightReason}
			if cfg.OnStep != nil {
				cfg.OnStep(s)
			}
			return trace.Trace{s}, nil
		}
	}

	// 4) Prepare runner.
	nodes := g.Nodes()
	r := &runner{
		options: cfg,
		start:   start,
		nodes:   nodes,
		adj:     g.CollapsedAdjList(),
		dist:    make(map[int]int64, len(nodes)),
		prev:    make(map[int]int, len(nodes)),
		visited: make(map[int]bool, len(nodes)),
		inbound: make(map[int][]inEdge, len(nodes)),
		out:     make(trace.Trace, 0, 4*len(nodes)),
	}
	r.init()
	r.emit(trace.Step{Kind: trace.PreparingGraph, Node: start, Reason: CollapseReason})

	// 5) Main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.out, nil
}

// Generator adapts Trace to trace.Generator with the given options.
func Generator(opts ...Option) trace.Generator {
	return func(g *core.Graph, start int) (trace.Trace, error) {
		return Trace(g, start, opts...)
	}
}

// inEdge is an edge traversed into a node before that node was selected.
type inEdge struct {
	from   int
	weight int64
}

// runner holds the mutable state for a single trace.
type runner struct {
	options Options
	start   int
	nodes   []int                   // ascending
	adj     map[int][]core.Neighbor // collapsed
	dist    map[int]int64           // math.MaxInt64 == unreached
	prev    map[int]int
	visited map[int]bool
	inbound map[int][]inEdge
	out     trace.Trace
}

// init sets dist[v] = +∞ for every node and dist[start] = 0.
func (r *runner) init() {
	for _, v := range r.nodes {
		r.dist[v] = math.MaxInt64
	}
	r.dist[r.start] = 0
}

// process repeatedly selects, classifies, relaxes and finishes nodes.
func (r *runner) process() error {
	for {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		u, ok := r.selectMin()
		if !ok {
			return nil
		}
		if u != r.start {
			r.classifyInbound(u)
		}
		r.emit(trace.Step{Kind: trace.CurrentNode, Node: u})
		r.relax(u)
		r.visited[u] = true
		r.emit(trace.Step{Kind: trace.CurrentNodeFinished, Node: u})
	}
}

// selectMin scans nodes ascending and returns the unvisited node with the
// smallest finite distance within MaxDistance. Strict < keeps the lowest id on ties.
func (r *runner) selectMin() (int, bool) {
	best, found := 0, false
	bestDist := int64(math.MaxInt64)
	for _, v := range r.nodes {
		if r.visited[v] {
			continue
		}
		d := r.dist[v]
		if d == math.MaxInt64 || d > r.options.MaxDistance {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = v, d, true
		}
	}

	return best, found
}

// classifyInbound emits the tree edge prev[v]→v, then every other edge
// traversed into v, in traversal order.
func (r *runner) classifyInbound(v int) {
	p := r.prev[v]
	tree := false
	for _, in := range r.inbound[v] {
		if in.from == p && !tree {
			tree = true
			r.emit(trace.Step{Kind: trace.EdgeClassification, Node: p, Target: v, Weight: in.weight, TreeEdge: true})
		}
	}
	for _, in := range r.inbound[v] {
		if in.from == p {
			continue
		}
		r.emit(trace.Step{Kind: trace.EdgeClassification, Node: in.from, Target: v, Weight: in.weight})
	}
}

// relax traverses every collapsed edge u→v towards an unvisited node and
// improves dist[v] when the path through u is strictly shorter.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, nb := range r.adj[u] {
		v, w := nb.To, nb.Weight
		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		r.inbound[v] = append(r.inbound[v], inEdge{from: u, weight: w})

		// Saturating add: du + w cannot overflow past MaxInt64 into negatives.
		nd := int64(math.MaxInt64)
		if w < math.MaxInt64-du {
			nd = du + w
		}
		if nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
		}
		r.emit(trace.Step{Kind: trace.EdgeTraversal, Node: u, Target: v, Weight: w})
	}
}

// emit attaches the dist/visited snapshot, runs the hook and records s.
func (r *runner) emit(s trace.Step) {
	dist := make(map[int]int64, len(r.dist))
	for v, d := range r.dist {
		if d != math.MaxInt64 {
			dist[v] = d
		}
	}
	s.State = &trace.Snapshot{Dist: dist, Visited: trace.VisitedSnapshot(r.visited)}
	if r.options.OnStep != nil {
		r.options.OnStep(s)
	}
	r.out = append(r.out, s)
}

// Distances returns the final finite distances recorded in tr, or nil for
// an empty or invalid trace.
func Distances(tr trace.Trace) map[int]int64 {
	if len(tr) == 0 || tr[len(tr)-1].State == nil {
		return nil
	}

	return tr[len(tr)-1].State.Dist
}

// Predecessors rebuilds the shortest-path tree from the tree classifications.
func Predecessors(tr trace.Trace) map[int]int {
	out := make(map[int]int)
	for _, e := range tr.TreeEdges() {
		out[e[1]] = e[0]
	}

	return out
}
