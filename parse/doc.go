// Package parse turns the edge-list text of the graph input box into rows
// ready for scene.Load.
//
// Each non-empty line is split on single spaces, empty words are dropped and
// anything past the third word is ignored:
//
//	a        isolated node "a"
//	a b      edge a→b, weight 0
//	a b 7    edge a→b, weight 7
//
// A line that contains only spaces is invalid and, as in the interactive
// editor, empties the whole result rather than yielding a partial graph.
package parse
