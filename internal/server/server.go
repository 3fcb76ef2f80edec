// Package server exposes the filedepot HTTP API.
//
// Handlers stay thin: they parse and authenticate the request, call into
// the auth manager or the file workflow, and translate the outcome to a
// status code and JSON body. All authorization decisions live below this
// layer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/internal/ratelimiter"
	"github.com/depotlabs/filedepot/pkg/auth"
	"github.com/depotlabs/filedepot/pkg/files"
	"github.com/depotlabs/filedepot/pkg/store/record"
	"github.com/depotlabs/filedepot/pkg/store/session"
)

// Options are the HTTP-level settings of the server.
type Options struct {
	// Port is the TCP port to listen on.
	Port int

	// RateLimit is the sustained request rate per second. Zero disables
	// limiting.
	RateLimit uint

	// RateBurst is the burst capacity above the sustained rate.
	RateBurst uint
}

// Deps carries the collaborators the HTTP layer needs. Everything is
// constructed once at startup and injected; the server owns none of it.
type Deps struct {
	Records  record.Store
	Sessions session.Cache
	Auth     *auth.Manager
	Files    *files.Workflow
}

// Server is the filedepot HTTP server.
type Server struct {
	httpServer *http.Server
	limiter    *ratelimiter.RateLimiter
	deps       Deps
}

// New creates a server listening on the configured port.
func New(opts Options, deps Deps) *Server {
	s := &Server{
		limiter: ratelimiter.New(opts.RateLimit, opts.RateBurst),
		deps:    deps,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Serve runs the HTTP server until it is shut down. It returns nil after a
// clean Shutdown.
func (s *Server) Serve() error {
	logger.Info("HTTP server listening on %s", s.httpServer.Addr)

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server, waiting for in-flight requests up
// to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
