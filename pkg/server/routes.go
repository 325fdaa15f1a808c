package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/snark87/quantum-simulator/pkg/auth"
	"github.com/snark87/quantum-simulator/pkg/models"
	"github.com/snark87/quantum-simulator/pkg/simulation"
)

// maxBodyBytes bounds the size of a simulate request body
const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON body")

// registerRoutes sets up all API routes
func (s *Server) registerRoutes() {
	s.router.HandleFunc("/health", s.healthCheckHandler).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Authenticate(s.settings.AuthToken, s.log))

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/login", s.notImplementedHandler).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", s.notImplementedHandler).Methods(http.MethodPost)

	circuits := api.PathPrefix("/circuits").Subrouter()
	circuits.HandleFunc("", s.notImplementedHandler).Methods(http.MethodGet, http.MethodPost)
	circuits.HandleFunc("/{id}", s.notImplementedHandler).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)

	api.HandleFunc("/simulate", s.simulateHandler).Methods(http.MethodPost)

	export := api.PathPrefix("/export").Subrouter()
	export.HandleFunc("/qasm", s.notImplementedHandler).Methods(http.MethodPost)
}

// healthCheckHandler confirms the API is available
func (s *Server) healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	s.respondWithJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// simulateHandler runs one simulation with the requested configuration
func (s *Server) simulateHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeSimulateRequest(r)
	if err != nil {
		s.respondWithJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	log := s.log.WithPrefix("simulation")
	if p := auth.PrincipalFromContext(r.Context()); p != nil {
		log = log.WithField("principal", p.ID)
	}

	sim := simulation.New(cfg, log)
	result := sim.Run()

	s.respondWithJSON(w, http.StatusOK, models.SimulateResponse{
		Status:  result.Status,
		Message: result.Message,
		Config:  *sim.Config(),
	})
}

// decodeSimulateRequest reads an optional SimulateRequest. Fields absent from
// the body keep their default values.
func decodeSimulateRequest(r *http.Request) (*simulation.Config, error) {
	req := models.SimulateRequest{Config: simulation.DefaultConfig()}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
	} else if dec.More() {
		return nil, errTrailingData
	}

	// An explicit "config": null clears the pointer
	if req.Config == nil {
		req.Config = simulation.DefaultConfig()
	}
	return req.Config, nil
}

// notImplementedHandler responds with 501 for endpoints not yet available
func (s *Server) notImplementedHandler(w http.ResponseWriter, _ *http.Request) {
	s.respondWithJSON(w, http.StatusNotImplemented, models.ErrorResponse{
		Error:   "Not implemented yet",
		Message: "This endpoint is planned but not yet available",
	})
}

// respondWithJSON sends a JSON response with the specified status code
func (s *Server) respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithField("status_code", statusCode).Errorf("Failed to encode JSON response: %v", err)
	}
}
