// Package server provides the HTTP API server: routing, middleware
// (request IDs, rate limiting, CORS, cache headers), structured error
// responses, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	pferrors "github.com/plateforge/plateforge/pkg/errors"
)

type contextKey string

const contextKeyRequestID contextKey = "request-id"

// RequestIDHeader carries the request ID on responses.
const RequestIDHeader = "X-Request-Id"

// Server is the HTTP API server. Create one with New.
type Server struct {
	name    string
	version string
	cfg     *Config

	handlers map[string]http.HandlerFunc
	limiter  *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported on the default route.
func WithName(name string) Option {
	return func(s *Server) { s.name = name }
}

// WithVersion sets the version reported on the default route.
func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithHandler registers API handlers by route. Registered routes get
// the full middleware chain.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for route, h := range handlers {
			s.handlers[route] = h
		}
	}
}

// New creates a Server with the provided options.
func New(opts ...Option) *Server {
	s := &Server{
		name:     "plateforge-api",
		version:  "dev",
		cfg:      DefaultConfig(),
		handlers: make(map[string]http.HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.limiter = rate.NewLimiter(s.cfg.RateLimit, s.cfg.RateLimitBurst)
	return s
}

// Run starts the server and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful, bounded by ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", addr))
		s.setReady(true)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.setReady(false)
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

// withMiddleware wraps an API handler with request IDs, rate limiting,
// and cache headers.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))

		if !s.limiter.Allow() {
			WriteError(w, r, http.StatusTooManyRequests,
				pferrors.ErrCodeRateLimitExceeded, "rate limit exceeded", true, nil)
			return
		}

		if r.Method == http.MethodGet && s.cfg.CacheMaxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.cfg.CacheMaxAge))
		}

		start := time.Now()
		next(w, r)
		slog.Debug("request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
