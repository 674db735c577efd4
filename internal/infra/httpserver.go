package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer owns the coordination API's listener: an http.Server with the
// configured timeouts plus the graceful-stop hook main relies on.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer builds the API server on the configured port. Read and
// write timeouts come from Config; the header timeout is fixed since no
// endpoint streams.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}

	return &HTTPServer{server: srv}
}

// Start serves requests and blocks until the listener closes.
func (s *HTTPServer) Start() error {
	if s.server == nil {
		return nil
	}
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests before stopping the listener.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
