// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine
// orchestration, output serialization. The API NEVER performs cost
// logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buildcost/adapters/storage"
	"buildcost/core/catalog"
	"buildcost/core/estimate"
	"buildcost/core/types"
	"buildcost/internal/errors"
	"buildcost/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	catalog  *catalog.Catalog
	rateCard types.RateCard
	store    storage.Store
}

// NewServer creates an API server over a catalog/rate-card snapshot.
// The snapshot is fixed for the server's lifetime; every request is a
// pure function of it.
func NewServer(version string, cat *catalog.Catalog, rc types.RateCard) *Server {
	return NewServerWithStore(version, cat, rc, nil)
}

// NewServerWithStore additionally persists estimates carrying a
// project id
func NewServerWithStore(version string, cat *catalog.Catalog, rc types.RateCard, store storage.Store) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		catalog:  cat,
		rateCard: rc,
		store:    store,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /modules", s.handleModules)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	requestID := uuid.NewString()
	inputHash := computeInputHash(&req)

	// Execute engine (NO COST LOGIC HERE)
	result, err := estimate.Calculate(req.Spec(), s.catalog, s.rateCard)
	if err != nil {
		if errors.IsType(err, errors.TypeCycle) {
			s.writeError(w, string(errors.TypeCycle), err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.writeError(w, "ENGINE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	metadata := &ResponseMetadata{
		RequestID:     requestID,
		InputHash:     inputHash,
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}

	if s.store != nil && req.ProjectID != "" {
		record := &storage.StoredEstimate{
			ProjectID: req.ProjectID,
			Spec:      req.Spec(),
			Result:    result,
		}
		if err := s.store.Save(r.Context(), record); err != nil {
			// Persistence is best-effort; the estimate itself stands
			logging.Warn("failed to persist estimate",
				zap.String("request_id", requestID), zap.Error(err))
		} else {
			metadata.StoredID = record.ID
		}
	}

	s.writeJSON(w, EstimateResponse{Estimate: result, Metadata: metadata}, http.StatusOK)
}

// handleModules handles GET /modules
func (s *Server) handleModules(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, ModulesResponse{Modules: s.catalog.Entries()}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

// computeInputHash hashes the canonical request JSON. Field order in
// the struct is fixed, so identical requests hash identically.
func computeInputHash(req *EstimateRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Server) writeJSON(w http.ResponseWriter, body interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}
