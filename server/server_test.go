package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/server"
)

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.Layout.Sweeps = 2
	cfg.Layout.Pace = 0
	cfg.Replay.Delay = 0

	return cfg
}

func startServer(t *testing.T) (*server.Server, *httptest.Server) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	s := server.New(fastConfig(), logger)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Close()
		ts.Close()
	})

	return s, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// next reads events until one of type typ arrives.
func next(t *testing.T, conn *websocket.Conn, typ string) server.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var ev server.Event
		require.NoError(t, conn.ReadJSON(&ev))
		if ev.Type == typ {
			return ev
		}
	}
}

func TestWS_HelloLoadAndFrame(t *testing.T) {
	s, ts := startServer(t)
	conn := dial(t, ts)

	hello := next(t, conn, server.TypeHello)
	assert.NotEmpty(t, hello.Session)
	assert.Eventually(t, func() bool { return s.Sessions() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypeLoad, Text: "A B 5\nB C"}))
	for {
		ev := next(t, conn, server.TypeFrame)
		require.NotNil(t, ev.Frame)
		if len(ev.Frame.Nodes) == 3 {
			assert.Len(t, ev.Frame.Edges, 2)
			break
		}
	}
}

func TestWS_PlayStreamsSteps(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)
	next(t, conn, server.TypeHello)

	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypeSample, Index: 1}))
	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypePlay, Algorithm: "bfs", Start: "0"}))

	ev := next(t, conn, server.TypeStep)
	assert.True(t, strings.HasPrefix(ev.Line, "CURRENT_NODE 0"), ev.Line)
}

func TestWS_Generate(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)
	next(t, conn, server.TypeHello)

	require.NoError(t, conn.WriteJSON(server.Command{
		Type:     server.TypeGenerate,
		Topology: "cycle:4+path:2",
		Weights:  "3",
	}))
	for {
		ev := next(t, conn, server.TypeFrame)
		require.NotNil(t, ev.Frame)
		if len(ev.Frame.Nodes) == 6 {
			for _, e := range ev.Frame.Edges {
				assert.Equal(t, "3", e.Label)
			}
			break
		}
	}

	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypeGenerate, Topology: "blob:3"}))
	ev := next(t, conn, server.TypeError)
	assert.Contains(t, ev.Error, "unknown topology")
}

func TestWS_Errors(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)
	next(t, conn, server.TypeHello)

	require.NoError(t, conn.WriteJSON(server.Command{Type: "teleport"}))
	ev := next(t, conn, server.TypeError)
	assert.Contains(t, ev.Error, "unknown command")

	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypeSample, Index: 99}))
	ev = next(t, conn, server.TypeError)
	assert.Contains(t, ev.Error, "unknown sample")

	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypeSample, Index: 1}))
	require.NoError(t, conn.WriteJSON(server.Command{Type: server.TypePlay, Algorithm: "bfs", Start: "nowhere"}))
	ev = next(t, conn, server.TypeError)
	assert.Contains(t, ev.Error, "nowhere")
}

func TestWS_CloseReleasesSession(t *testing.T) {
	s, ts := startServer(t)
	conn := dial(t, ts)
	next(t, conn, server.TypeHello)
	require.Eventually(t, func() bool { return s.Sessions() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return s.Sessions() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHTTP_Lists(t *testing.T) {
	_, ts := startServer(t)

	resp, err := http.Get(ts.URL + "/api/algorithms")
	require.NoError(t, err)
	defer resp.Body.Close()
	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, []string{"bfs", "dfs", "dijkstra"}, names)

	resp2, err := http.Get(ts.URL + "/api/samples")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var samples []map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&samples))
	require.Len(t, samples, 12)
	assert.Equal(t, "triangle", samples[1]["name"])

	resp4, err := http.Get(ts.URL + "/api/topologies")
	require.NoError(t, err)
	defer resp4.Body.Close()
	var forms []string
	require.NoError(t, json.NewDecoder(resp4.Body).Decode(&forms))
	assert.Contains(t, forms, "wheel:N")

	resp3, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp3.StatusCode)
}
