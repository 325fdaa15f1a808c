package simulation

import "fmt"

// Fixed values of a completed run
const (
	StatusSuccess    = "success"
	MessageCompleted = "Simulation completed"
)

// Result is the payload returned by a simulation run
type Result struct {
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// Map returns the result as a two-key mapping
func (r Result) Map() map[string]string {
	return map[string]string{
		"status":  r.Status,
		"message": r.Message,
	}
}

func (r Result) String() string {
	return fmt.Sprintf("{status: %s, message: %s}", r.Status, r.Message)
}
