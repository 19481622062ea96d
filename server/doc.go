// Package server exposes workspaces to a browser over HTTP and websockets.
//
// Routes:
//
//	GET /api/ws          websocket; one Workspace per connection
//	GET /api/samples     sample gallery names
//	GET /api/algorithms  registered algorithm names
//	GET /api/topologies  generator forms accepted by "generate"
//	GET /healthz         liveness
//
// Over the websocket the client sends commands and the server pushes
// frames, step lines and errors, all as JSON objects with a "type" field:
//
//	→ {"type":"load","text":"A B 3\nB C"}
//	→ {"type":"sample","index":8}
//	→ {"type":"generate","topology":"cycle:6+star:4","weights":"1..9","seed":7}
//	→ {"type":"play","algorithm":"bfs","start":"A"}
//	→ {"type":"stop_replay"} {"type":"stop_layout"} {"type":"continue_layout"}
//	→ {"type":"speed","value":1500} {"type":"directed","directed":true}
//	→ {"type":"clear_steps"}
//	← {"type":"hello","session":"<uuid>"}
//	← {"type":"frame","frame":{...}}
//	← {"type":"step","line":"CURRENT_NODE A"} {"type":"clear_steps"}
//	← {"type":"error","error":"..."}
//
// Frames are coalesced: a slow client receives the latest complete frame,
// never a backlog.
package server
