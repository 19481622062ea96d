// Package core defines the Graph, Edge and Neighbor types used by every
// trace generator and by the layout simulator.
//
// A Graph is a directed multigraph over non-negative integer node ids with
// int64 edge weights. Parallel edges between the same ordered pair are kept
// distinct; self-loops are silently dropped on insertion (their endpoint is
// still registered as a node).
//
// This file declares the sentinel errors, Edge, Neighbor, Graph and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidArgument - a node id is negative or a bulk input is malformed.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a negative node id or a malformed bulk input
	// (e.g. a non-square adjacency matrix).
	ErrInvalidArgument = errors.New("core: invalid argument")
)

// Edge is one directed (From → To) connection with an integer Weight.
//
// Edges are values: the graph never hands out pointers into its own storage,
// so callers may keep and modify returned Edges freely.
type Edge struct {
	// From is the source node id.
	From int

	// To is the destination node id.
	To int

	// Weight is the cost of the edge. Negative weights are stored as-is;
	// shortest-path tracing rejects them later.
	Weight int64
}

// Neighbor is one entry of a weighted adjacency list.
type Neighbor struct {
	To     int
	Weight int64
}

// Graph is the in-memory multigraph.
//
// mu guards both the node set and the edge sequence: every bulk loader swaps
// the two together, so a single lock keeps readers from observing a node set
// and an edge list that belong to different loads.
type Graph struct {
	mu sync.RWMutex

	// Storage
	nodes map[int]struct{} // node id set
	edges []Edge           // insertion-ordered, multi-edges kept
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[int]struct{}),
		edges: make([]Edge, 0),
	}
}

// validID reports whether id can name a node.
func validID(id int) bool { return id >= 0 }
