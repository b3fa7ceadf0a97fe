package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/nautilus-labs/price-oracle-go/pkg/oracle"
	"github.com/nautilus-labs/price-oracle-go/pkg/types"
)

// handleHealth handles the /health liveness endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok"})
}

// handleSignedPrice handles the /price endpoint: fetches the current
// quote and returns it signed.
func (s *Server) handleSignedPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quote, err := s.service.SignedQuote(r.Context())
	if err != nil {
		// A quote the encoder rejects or a signing failure is an
		// internal fault; an unreachable upstream is not.
		status := http.StatusServiceUnavailable
		if errors.Is(err, oracle.ErrPriceOutOfRange) {
			status = http.StatusInternalServerError
		}

		s.logger.Error("Failed to produce signed price", zap.Error(err))
		s.writeJSON(w, status, types.ErrorResponse{
			Error:   "Failed to fetch or sign price",
			Message: err.Error(),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, quote)
}

// handlePublicKey handles the /public-key endpoint
func (s *Server) handlePublicKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeJSON(w, http.StatusOK, types.PublicKeyResponse{
		PublicKey: s.service.PublicKeyHex(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}
