// Package algorithms is the name registry of trace generators.
//
// It maps the user-facing algorithm names to trace.Generator values:
//
//   - "bfs"      – bfs.Trace
//   - "dfs"      – dfs.Trace
//   - "dijkstra" – dijkstra.Trace
//
// Front ends (CLI, websocket server) resolve the selected name with Lookup
// and never import the generator packages directly. Register lets callers
// add variants, e.g. a forest-wide DFS under "dfs-forest".
package algorithms
