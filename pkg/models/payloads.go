package models

import "github.com/snark87/quantum-simulator/pkg/simulation"

// SimulateRequest is the body of POST /api/v1/simulate.
// A missing config, or missing fields within it, fall back to the defaults.
type SimulateRequest struct {
	Config *simulation.Config `json:"config,omitempty"`
}

// SimulateResponse is returned by a successful simulate call
type SimulateResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Config  simulation.Config `json:"config"`
}

// Result returns the simulation result carried by the response
func (r SimulateResponse) Result() simulation.Result {
	return simulation.Result{Status: r.Status, Message: r.Message}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is returned by every failing endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
