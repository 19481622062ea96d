// Package graphplay is a playground for watching graph algorithms work:
// it turns a small graph into step-by-step traces of BFS, DFS and Dijkstra,
// lays the graph out with a force simulation and replays the traces on it.
//
// 🚀 What is inside?
//
//	• Core: a thread-safe directed multigraph over integer node ids
//	• Traces: BFS, DFS and Dijkstra as immutable, replayable step lists
//	• Layout: a spring/repulsion simulator that moves one node at a time
//	• Replay: a paced driver painting each step onto a scene
//	• Lanes: generation tokens so only the newest animation keeps drawing
//	• Outputs: SVG frames, a JSON frame stream over websockets, a CLI
//
// Under the hood, everything is organized in subpackages:
//
//	core/        Graph, Edge, Neighbor and the adjacency readers/writers
//	trace/       Kind, Step, Snapshot, Trace and the Generator type
//	bfs/ dfs/ dijkstra/  trace generators
//	algorithms/  name → Generator registry
//	lane/        Source and Token (supersession)
//	layout/      Positions and the force-directed Simulator
//	render/      Renderer, Frame, SVG and Recorder sinks
//	scene/       label table, styles and Redraw
//	replay/      Driver, ColorScheme and step logs
//	builder/     topology constructors and the sample gallery
//	parse/       edge-list text reader
//	config/      YAML settings
//	logger/      logrus setup and context plumbing
//	workspace/   one graph with its layout and replay lanes
//	server/      websocket sessions for the browser
//	cmd/graphplay  the command-line tool
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.ReadAdjacencyList(map[int][]int{0: {1, 2}, 1: {0, 2}, 2: {0, 1}})
//	steps, _ := bfs.Trace(g, 0)
//	for _, st := range steps {
//		fmt.Println(st)
//	}
package graphplay
