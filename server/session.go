package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/workspace"
)

// session is one websocket connection and its workspace.
type session struct {
	id     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	sink   *frameSink
	ws     *workspace.Workspace
	out    chan Event
	log    logrus.FieldLogger
}

// send queues ev for the writer; it gives up once the session ends.
func (s *session) send(ev Event) {
	select {
	case s.out <- ev:
	case <-s.ctx.Done():
	}
}

// writeLoop is the only goroutine writing to conn.
func (s *session) writeLoop() {
	defer s.cancel()
	for {
		select {
		case <-s.ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case ev := <-s.out:
			if err := s.write(ev); err != nil {
				return
			}
		case <-s.sink.kick:
			if f := s.sink.take(); f != nil {
				if err := s.write(Event{Type: TypeFrame, Frame: f}); err != nil {
					return
				}
			}
		}
	}
}

func (s *session) write(ev Event) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(ev); err != nil {
		s.log.WithError(err).Debug("write failed")
		return err
	}

	return nil
}

// readLoop handles commands until the client goes away or the session ends.
func (s *session) readLoop() {
	s.conn.SetReadLimit(readLimit)
	go func() {
		<-s.ctx.Done()
		_ = s.conn.SetReadDeadline(time.Now())
	}()

	for {
		var cmd Command
		if err := s.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.WithError(err).Debug("read failed")
			}
			return
		}
		if err := s.handle(cmd); err != nil {
			s.log.WithError(err).WithField("command", cmd.Type).Debug("command failed")
			s.send(Event{Type: TypeError, Error: err.Error()})
		}
	}
}

func (s *session) handle(cmd Command) error {
	switch cmd.Type {
	case TypeLoad:
		if err := s.ws.LoadText(cmd.Text); err != nil {
			return err
		}
		return s.ws.Animate(s.ctx)
	case TypeSample:
		if err := s.ws.LoadSample(cmd.Index); err != nil {
			return err
		}
		return s.ws.Animate(s.ctx)
	case TypeGenerate:
		err := s.ws.Generate(builder.Recipe{
			Topology: cmd.Topology,
			Weights:  cmd.Weights,
			Seed:     cmd.Seed,
			Directed: cmd.Directed,
		})
		if err != nil {
			return err
		}
		return s.ws.Animate(s.ctx)
	case TypePlay:
		return s.ws.Play(s.ctx, cmd.Algorithm, cmd.Start)
	case TypeStopReplay:
		return s.ws.StopReplay()
	case TypeStopLayout:
		s.ws.StopLayout()
	case TypeContinueLayout:
		return s.ws.Animate(s.ctx)
	case TypeSpeed:
		s.ws.SetSpeed(cmd.Value)
	case TypeDirected:
		return s.ws.SetDirected(cmd.Directed)
	case TypeClearSteps:
		s.ws.ClearSteps()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}

	return nil
}
