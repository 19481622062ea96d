package trace

import "sort"

// Nodes returns the Node of every step of kind k, in trace order.
func (t Trace) Nodes(k Kind) []int {
	out := make([]int, 0)
	for _, s := range t {
		if s.Kind == k {
			out = append(out, s.Node)
		}
	}

	return out
}

// Count returns how many steps have kind k.
func (t Trace) Count(k Kind) int {
	n := 0
	for _, s := range t {
		if s.Kind == k {
			n++
		}
	}

	return n
}

// TreeEdges returns [from, to] for every EdgeClassification flagged as tree.
func (t Trace) TreeEdges() [][2]int {
	out := make([][2]int, 0)
	for _, s := range t {
		if s.Kind == EdgeClassification && s.TreeEdge {
			out = append(out, [2]int{s.Node, s.Target})
		}
	}

	return out
}

// Invalid reports whether t is the one-step trace of a refused graph, and why.
func (t Trace) Invalid() (string, bool) {
	if len(t) == 1 && t[0].Kind == InvalidGraph {
		return t[0].Reason, true
	}

	return "", false
}

// sortedKeys returns the keys of a visited set ascending.
func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id, ok := range set {
		if ok {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// VisitedSnapshot copies a visited set into the ascending form used by Snapshot.
func VisitedSnapshot(set map[int]bool) []int { return sortedKeys(set) }

// CopyInts returns an independent copy of s that is never nil.
func CopyInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
