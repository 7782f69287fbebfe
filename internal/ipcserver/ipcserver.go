// Package ipcserver implements the control-protocol listener (C7): a
// local Unix socket accepting one connection at a time, each framed
// into 5-byte control messages and pushed onto the event queue as a
// single batch.
package ipcserver

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/1broseidon/yaxwm/internal/eventqueue"
	"github.com/1broseidon/yaxwm/internal/wire"
)

// Server listens on a Unix socket and pushes decoded control frames
// onto a queue.
type Server struct {
	path     string
	listener net.Listener
	queue    *eventqueue.Queue
	log      *slog.Logger
}

// New removes any stale socket at path and binds a fresh listener.
func New(path string, queue *eventqueue.Queue, log *slog.Logger) (*Server, error) {
	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("ipcserver: remove stale socket %s: %w", path, err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("ipcserver: listen on %s: %w", path, err)
	}

	return &Server{path: path, listener: listener, queue: queue, log: log}, nil
}

// Serve accepts connections sequentially until the listener is closed.
// A bind/accept failure is session-fatal for the listener only: it
// logs and returns, leaving the rest of the engine running without
// IPC (spec error class 2).
func (s *Server) Serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.log.Error("ipc listener stopped accepting", "err", err)
			return
		}
		s.handle(conn)
	}
}

// handle reads one connection to EOF, chunks it into control frames,
// and pushes the whole batch as one Extend so a multi-frame message
// from yaxctl lands atomically.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	data, err := io.ReadAll(conn)
	if err != nil {
		s.log.Error("ipc read failed", "err", err)
		return
	}

	sequences := wire.ChunkFrames(data)
	if len(sequences) == 0 {
		return
	}

	events := make([]eventqueue.Event, len(sequences))
	for i, seq := range sequences {
		events[i] = seq
	}
	s.queue.Extend(events)
}

// Close stops accepting new connections and removes the socket file.
func (s *Server) Close() error {
	err := s.listener.Close()
	os.RemoveAll(s.path)
	return err
}
