package simulation

import "fmt"

// Default values applied by DefaultConfig
const (
	DefaultName       = "default-simulation"
	DefaultIterations = 100
	DefaultDebugMode  = false
)

// Config holds the parameters of a simulation run.
//
// Config performs no validation of its own: any name and any iteration count,
// including negative ones, are accepted as given.
type Config struct {
	Name       string `yaml:"name" json:"name" mapstructure:"name"`
	Iterations int    `yaml:"iterations" json:"iterations" mapstructure:"iterations"`
	DebugMode  bool   `yaml:"debug_mode" json:"debug_mode" mapstructure:"debug_mode"`
}

// DefaultConfig returns a configuration with every field set to its default
func DefaultConfig() *Config {
	return &Config{
		Name:       DefaultName,
		Iterations: DefaultIterations,
		DebugMode:  DefaultDebugMode,
	}
}

// String returns a human-readable representation of the configuration.
// The debug flag is intentionally left out.
func (c *Config) String() string {
	return fmt.Sprintf("SimulationConfig(name=%s, iterations=%d)", c.Name, c.Iterations)
}
