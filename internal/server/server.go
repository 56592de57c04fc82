package server

import (
	"context"
	"net/http"
	"time"

	"github.com/agbru/fieldbench/internal/logging"
)

// Server hosts the /metrics endpoint on a dedicated listener.
type Server struct {
	httpServer *http.Server
	metrics    *Metrics
	logger     logging.Logger
}

// New creates a metrics server bound to addr (e.g. ":9090").
func New(addr string, metrics *Metrics, logger logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", metrics.WritePrometheus)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Metrics returns the metric set served by this server.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Start begins serving in a background goroutine. It returns immediately;
// listener errors other than graceful shutdown are logged.
func (s *Server) Start() {
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("metrics server stopped", logging.Err(err))
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
