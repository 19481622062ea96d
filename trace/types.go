// Package trace defines the replayable step vocabulary shared by every
// traversal generator.
//
// A Trace is the complete, ordered sequence of Steps one algorithm run
// produced. Steps describe what the algorithm did (current node, edge
// traversed, edge classified, ...) and never how it should be drawn; the
// replay driver maps each Kind to a visual intent.
//
// Errors:
//
//	ErrNodeNotFound - the start node is not part of the graph.
package trace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphplay/core"
)

// ErrNodeNotFound is returned by every generator when the start node is absent.
var ErrNodeNotFound = errors.New("trace: start node not found")

// Kind is the closed set of step kinds.
type Kind int

const (
	// CurrentNode marks Node as the node being processed.
	CurrentNode Kind = iota
	// EdgeTraversal marks the edge Node→Target as being looked at.
	EdgeTraversal
	// UnvisitedNeighbor marks Node as newly discovered.
	UnvisitedNeighbor
	// EdgeClassification settles Node→Target as tree (TreeEdge) or non-tree.
	EdgeClassification
	// CurrentNodeFinished marks Node as fully processed.
	CurrentNodeFinished
	// PreparingGraph announces a preprocessing transformation (Reason).
	PreparingGraph
	// InvalidGraph is the single step of a trace the algorithm refuses to run on.
	InvalidGraph
)

var kindNames = [...]string{
	CurrentNode:         "CURRENT_NODE",
	EdgeTraversal:       "EDGE_TRAVERSAL",
	UnvisitedNeighbor:   "UNVISITED_NEIGHBOR",
	EdgeClassification:  "EDGE_CLASSIFICATION",
	CurrentNodeFinished: "CURRENT_NODE_FINISHED",
	PreparingGraph:      "PREPARING_GRAPH",
	InvalidGraph:        "INVALID_GRAPH",
}

// String returns the upper-case step name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// IsEdge reports whether steps of kind k refer to the edge Node→Target.
func (k Kind) IsEdge() bool {
	return k == EdgeTraversal || k == EdgeClassification
}

// Snapshot is the algorithm state attached to a step for logging.
// Unused fields stay nil.
type Snapshot struct {
	Queue   []int         // BFS frontier, head first
	Stack   []int         // DFS recursion path, root first
	Visited []int         // ascending
	Dist    map[int]int64 // Dijkstra finite tentative distances
}

// Step is one immutable trace event.
type Step struct {
	Kind   Kind
	Node   int
	Target int   // edge steps only
	Weight int64 // Dijkstra edge steps only
	// TreeEdge is meaningful for EdgeClassification only.
	TreeEdge bool
	// Reason explains PreparingGraph and InvalidGraph steps.
	Reason string
	State  *Snapshot
}

// String renders a one-line description used by step logs.
func (s Step) String() string {
	return s.Format(nil)
}

// Format is String with node ids rendered by name; a nil name prints ids.
func (s Step) Format(name func(int) string) string {
	if name == nil {
		name = strconv.Itoa
	}
	var b strings.Builder
	b.WriteString(s.Kind.String())
	switch {
	case s.Kind.IsEdge():
		fmt.Fprintf(&b, " %s→%s", name(s.Node), name(s.Target))
		if s.Kind == EdgeClassification {
			if s.TreeEdge {
				b.WriteString(" tree")
			} else {
				b.WriteString(" non-tree")
			}
		}
	case s.Kind == PreparingGraph || s.Kind == InvalidGraph:
		if s.Reason != "" {
			fmt.Fprintf(&b, ": %s", s.Reason)
		}
	default:
		fmt.Fprintf(&b, " %s", name(s.Node))
	}

	return b.String()
}

// String renders the populated snapshot fields.
func (sn *Snapshot) String() string {
	if sn == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	if sn.Queue != nil {
		parts = append(parts, fmt.Sprintf("queue=%v", sn.Queue))
	}
	if sn.Stack != nil {
		parts = append(parts, fmt.Sprintf("stack=%v", sn.Stack))
	}
	if sn.Visited != nil {
		parts = append(parts, fmt.Sprintf("visited=%v", sn.Visited))
	}
	if sn.Dist != nil {
		parts = append(parts, fmt.Sprintf("dist=%v", sn.Dist))
	}

	return strings.Join(parts, " ")
}

// Trace is the fully materialized output of one generator run.
type Trace []Step

// Generator produces the trace of one algorithm from start over g.
// Implementations must be pure and deterministic.
type Generator func(g *core.Graph, start int) (Trace, error)
