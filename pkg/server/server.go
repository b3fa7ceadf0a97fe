package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nautilus-labs/price-oracle-go/pkg/oracle"
)

/*
Server exposes the oracle over HTTP.

  GET /health      - liveness probe, {"status":"ok"}
  GET /price       - fetch, quantize, timestamp, and sign the current
                     quote; returns {price, timestamp_ms, signature}
  GET /public-key  - the 33-byte compressed secp256k1 public key, hex

Callers verify a /price response by rebuilding the 17-byte intent
envelope from (price, timestamp_ms), hashing with SHA-256, and checking
the compact signature against /public-key. The server holds no mutable
state: every request computes its own timestamp and signature against
the immutable signing key, so concurrent requests need no coordination.
*/

// Server handles HTTP requests for the oracle
type Server struct {
	service    *oracle.Service
	logger     *zap.Logger
	httpServer *http.Server
}

// NewServer creates a new server instance
func NewServer(service *oracle.Service, logger *zap.Logger, port int) *Server {
	s := &Server{
		service: service,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/price", s.handleSignedPrice)
	mux.HandleFunc("/public-key", s.handlePublicKey)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.withRequestLogging(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting oracle server", zap.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping oracle server")
	return s.httpServer.Shutdown(ctx)
}

// withRequestLogging tags each request with a correlation ID and logs
// its outcome.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Debug("Handled request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
