package live

import (
	"bufio"
	"errors"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Server is the raw TCP side of the live feed, for tooling that tails
// catalog events without a WebSocket client (see catalog-cli "live tail").
type Server struct {
	Addr string
	Hub  *Hub
	Log  *zap.SugaredLogger

	mu sync.Mutex
	ln net.Listener
}

func NewServer(addr string, hub *Hub, log *zap.SugaredLogger) *Server {
	return &Server{Addr: addr, Hub: hub, Log: log}
}

func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	s.Log.Infow("live feed listening", "transport", "tcp", "addr", s.Addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Log.Warnw("live feed accept failed", "err", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		s.Hub.Add(conn)
		s.Hub.Welcome(conn)
		s.Log.Infow("live feed client connected", "transport", "tcp", "remote", conn.RemoteAddr().String())

		go func(c net.Conn) {
			defer func() {
				s.Hub.Remove(c)
				s.Log.Infow("live feed client disconnected", "transport", "tcp", "remote", c.RemoteAddr().String())
			}()

			// keep the connection alive; consume and ignore client lines
			sc := bufio.NewScanner(c)
			for sc.Scan() {
			}
		}(conn)
	}
}

// ListenAddr returns the bound address once Run is listening, or "".
// Useful when Addr was ":0".
func (s *Server) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Close stops the accept loop; established client connections are dropped
// as the hub notices write failures.
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	return ln.Close()
}
