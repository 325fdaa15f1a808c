package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/snark87/quantum-simulator/pkg/simulation"
)

// Environment variables read by MergeWithEnvironment
const (
	EnvSimulationName       = "SIMULATION_NAME"
	EnvSimulationIterations = "SIMULATION_ITERATIONS"
	EnvSimulationDebugMode  = "SIMULATION_DEBUG_MODE"
)

// LoadSimulationConfig loads a simulation configuration from a YAML file.
// Fields missing from the file keep their default values.
func LoadSimulationConfig(path string) (*simulation.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := simulation.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadSimulationConfigOrDefault loads the config at path, falling back to
// base when path is empty. Environment overrides are always applied. A nil
// base uses the defaults.
func LoadSimulationConfigOrDefault(path string, base *simulation.Config) (*simulation.Config, error) {
	var cfg *simulation.Config

	if path != "" {
		loaded, err := LoadSimulationConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if base != nil {
		copied := *base
		cfg = &copied
	} else {
		cfg = simulation.DefaultConfig()
	}

	if err := MergeWithEnvironment(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveSimulationConfig saves a simulation configuration to a YAML file
func SaveSimulationConfig(cfg *simulation.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// MergeWithEnvironment applies SIMULATION_* environment overrides to cfg.
// A variable set to the empty string counts as unset, as with QSIM_* settings.
func MergeWithEnvironment(cfg *simulation.Config) error {
	if name := os.Getenv(EnvSimulationName); name != "" {
		cfg.Name = name
	}

	if iterations := os.Getenv(EnvSimulationIterations); iterations != "" {
		n, err := strconv.Atoi(iterations)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSimulationIterations, err)
		}
		cfg.Iterations = n
	}

	if debug := os.Getenv(EnvSimulationDebugMode); debug != "" {
		b, err := strconv.ParseBool(debug)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSimulationDebugMode, err)
		}
		cfg.DebugMode = b
	}

	return nil
}

// MergeWithCLIOverrides applies parameter overrides, such as those collected
// from command-line flags or prompts, to cfg
func MergeWithCLIOverrides(cfg *simulation.Config, overrides map[string]interface{}) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := simulation.ApplyParameters(cfg, overrides); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}
	return nil
}
