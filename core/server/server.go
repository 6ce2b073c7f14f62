package server

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server hosts a pipeline on a single listener and drains in-flight requests
// on Stop. Construct with New, serve with Start or Run; a Server serves at
// most once at a time, and a stopped Server can be started again.
type Server struct {
	addr string

	mu    sync.Mutex
	inner *http.Server // non-nil while serving

	log            *slog.Logger
	tlsConfig      *tls.Config
	drainTimeout   time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration
	maxHeaderBytes int
}

// New creates a server for addr. Without options it logs nowhere and uses the
// package defaults for every timeout.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:           addr,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		drainTimeout:   DefaultShutdownTimeout,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		idleTimeout:    DefaultIdleTimeout,
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves handler on the configured address until ctx is canceled or
// serving fails. Cancellation returns ctx.Err() without draining; pair with
// Stop for a graceful exit, or use Run which does both. Request contexts
// inherit ctx through BaseContext, so host cancellation reaches in-flight
// pipelines.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.inner != nil {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	srv := &http.Server{
		Addr:           s.addr,
		Handler:        handler,
		TLSConfig:      s.tlsConfig,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		BaseContext:    func(net.Listener) context.Context { return ctx },
	}
	s.inner = srv
	s.mu.Unlock()

	s.log.InfoContext(ctx, "listening", "addr", s.addr, "tls", srv.TLSConfig != nil)

	failed := make(chan error, 1)
	go func() {
		var err error
		if srv.TLSConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		s.mu.Lock()
		s.inner = nil
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains in-flight requests within the drain timeout. Stopping a server
// that is not serving is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.inner
	s.inner = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	if err := srv.Shutdown(drainCtx); err != nil {
		s.log.Error("drain aborted", "addr", s.addr, "error", err)
		return err
	}
	s.log.Info("server drained", "addr", s.addr)
	return nil
}

// Run adapts the server to errgroup.Group: the returned function serves
// until ctx is canceled, then drains and reports nil so sibling goroutines
// shut down cleanly. Startup failures come back as-is.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		serveErr := make(chan error, 1)
		go func() { serveErr <- s.Start(ctx, handler) }()

		select {
		case <-ctx.Done():
			if err := s.Stop(); err != nil {
				s.log.Error("drain after cancellation failed", "addr", s.addr, "error", err)
			}
			<-serveErr
			return nil
		case err := <-serveErr:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Run serves handler on addr with default settings until ctx is canceled.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Start(ctx, handler)
}
