// Package httpapi exposes scatterbrain's engine over HTTP/JSON plus an SSE
// change stream, thin-translating every spec.md §6 operation onto a route
// the way the original's src/api/server.rs does, structured as an
// http.ServeMux the way internal/server/server.go structures TaskWing's
// JSON API.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
)

// Server wraps the engine facade and a standard library HTTP server.
type Server struct {
	eng    *engine.Engine
	addr   string
	log    *slog.Logger
	server *http.Server
}

// New builds a Server listening on addr (e.g. ":8080") and routes every
// request to eng.
func New(eng *engine.Engine, addr string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{eng: eng, addr: addr, log: log}

	mux := http.NewServeMux()
	s.routes(mux)

	s.server = &http.Server{
		Addr:    addr,
		Handler: corsMiddleware(mux),
	}
	return s
}

// Start runs the server in a goroutine, reporting on wg and pushing any
// non-shutdown error to errChan, mirroring internal/server.Server's
// lifecycle shape.
func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.log.Info("http api listening", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http api server error: %w", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the server's root http.Handler (routes plus CORS
// middleware), for embedding in an httptest.Server or other listener the
// caller already owns.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
