// Package replay animates a materialized trace.Trace on a Canvas.
//
// For each step the Driver checks its lane token, paints the step's visual
// intent, writes a line to the step log, redraws and pauses:
//
//	CURRENT_NODE          node fill  lightBlue
//	UNVISITED_NEIGHBOR    node fill  yellow
//	CURRENT_NODE_FINISHED node fill  lightGreen
//	EDGE_TRAVERSAL        edge color cyan
//	EDGE_CLASSIFICATION   edge color black, width 4 when it is a tree edge
//	PREPARING_GRAPH / INVALID_GRAPH  logged only
//
// The pause is adjustable while a replay runs (SetDelay, SetSpeed). Starting
// another replay, or Stop, supersedes the running one through the replay
// lane; nothing is interrupted forcibly.
package replay
