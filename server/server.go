package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphplay/algorithms"
	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/workspace"
)

// ErrUnknownCommand is reported to the client for an unrecognized type.
var ErrUnknownCommand = errors.New("server: unknown command")

const (
	writeWait   = 10 * time.Second
	outboxSize  = 64
	readLimit   = 1 << 20
	readTimeout = 10 * time.Second
)

// Server hosts one workspace per websocket connection.
type Server struct {
	cfg      *config.Config
	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*session
	wg       sync.WaitGroup
}

// New returns a server building its workspaces from cfg.
func New(cfg *config.Config, log logrus.FieldLogger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Server{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // local tool
			},
		},
		sessions: make(map[string]*session),
	}
}

// Handler returns the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ws", s.handleWS)
	mux.HandleFunc("/api/samples", s.handleSamples)
	mux.HandleFunc("/api/algorithms", s.handleAlgorithms)
	mux.HandleFunc("/api/topologies", s.handleTopologies)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down and closes every session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", srv.Addr).Info("server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// Close ends every open session and waits for them.
func (s *Server) Close() {
	s.mu.Lock()
	for _, sess := range s.sessions {
		sess.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// Sessions reports the number of open sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	samples := builder.Samples()
	list := make([]map[string]any, len(samples))
	for i, sm := range samples {
		list[i] = map[string]any{"index": i, "name": sm.Name, "nodes": len(sm.Adj)}
	}
	writeJSON(w, list)
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, algorithms.Names())
}

func (s *Server) handleTopologies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, builder.Topologies())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	sess := s.open(conn)
	defer s.release(sess)

	go sess.writeLoop()
	sess.readLoop()
}

func (s *Server) open(conn *websocket.Conn) *session {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()
	log := s.log.WithField("session", id)

	sess := &session{
		id:     id,
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
		sink:   newFrameSink(),
		out:    make(chan Event, outboxSize),
		log:    log,
	}
	sess.ws = workspace.New(s.cfg, sess.sink,
		workspace.WithLogger(log),
		workspace.WithStepLog(stepSink{send: sess.send}),
	)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	s.wg.Add(1)

	log.Info("session opened")
	sess.send(Event{Type: TypeHello, Session: id})

	return sess
}

func (s *Server) release(sess *session) {
	sess.cancel()
	sess.ws.Close()
	sess.conn.Close()

	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	s.wg.Done()
	sess.log.Info("session closed")
}
