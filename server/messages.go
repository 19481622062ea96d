package server

import "github.com/katalvlaran/graphplay/render"

// Message types.
const (
	TypeHello          = "hello"
	TypeFrame          = "frame"
	TypeStep           = "step"
	TypeError          = "error"
	TypeLoad           = "load"
	TypeSample         = "sample"
	TypeGenerate       = "generate"
	TypePlay           = "play"
	TypeStopReplay     = "stop_replay"
	TypeStopLayout     = "stop_layout"
	TypeContinueLayout = "continue_layout"
	TypeSpeed          = "speed"
	TypeDirected       = "directed"
	TypeClearSteps     = "clear_steps"
)

// Command is a client → server message.
type Command struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	Index     int    `json:"index,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Start     string `json:"start,omitempty"`
	Value     int    `json:"value,omitempty"`
	Directed  bool   `json:"directed,omitempty"`
	Topology  string `json:"topology,omitempty"`
	Weights   string `json:"weights,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
}

// Event is a server → client message.
type Event struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	Frame   *render.Frame `json:"frame,omitempty"`
	Line    string        `json:"line,omitempty"`
	Error   string        `json:"error,omitempty"`
}
