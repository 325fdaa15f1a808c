package simulation

import (
	"github.com/snark87/quantum-simulator/pkg/logger"
)

// Package metadata
const (
	PackageName = "quantum_simulator"
	Version     = "0.1.0"
)

// Simulation runs a configured simulation. Run currently performs no
// computation and always reports success.
type Simulation struct {
	config *Config
	log    logger.Logger
}

// New creates a simulation. A nil cfg is replaced by DefaultConfig and a nil
// log by the process default logger.
func New(cfg *Config, log logger.Logger) *Simulation {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}

	s := &Simulation{config: cfg, log: log}

	s.log.Infof("Simulation initialized with config: %s", cfg)
	if cfg.DebugMode {
		s.log.Debugf("Debug mode enabled for %s", cfg.Name)
	}

	return s
}

// Config returns the simulation's configuration
func (s *Simulation) Config() *Config {
	return s.config
}

// Run executes the simulation. It never fails and returns an equal Result on
// every call.
func (s *Simulation) Run() Result {
	s.log.Info("Running simulation...")
	return Result{
		Status:  StatusSuccess,
		Message: MessageCompleted,
	}
}

// Main runs a simulation with the default configuration and logs its result
func Main(log logger.Logger) Result {
	if log == nil {
		log = logger.Default()
	}

	sim := New(nil, log)
	result := sim.Run()
	log.Infof("Simulation result: %s", result)
	return result
}
