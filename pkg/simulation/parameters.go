package simulation

import (
	"fmt"
	"strconv"
)

// Parameter types understood by ApplyParameters and the interactive prompts
const (
	TypeInteger = "integer"
	TypeString  = "string"
	TypeBoolean = "boolean"
)

// Parameter names, matching the yaml keys of Config
const (
	ParamName       = "name"
	ParamIterations = "iterations"
	ParamDebugMode  = "debug_mode"
)

// Parameter defines a configurable parameter of a simulation
type Parameter struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"` // integer, string, boolean
	Description string      `yaml:"description"`
	Default     interface{} `yaml:"default"`
	Required    bool        `yaml:"required"`
	Min         interface{} `yaml:"min,omitempty"`
	Max         interface{} `yaml:"max,omitempty"`
}

// Parameters describes the fields of Config, with defaults taken from base.
// A nil base uses DefaultConfig.
func Parameters(base *Config) []Parameter {
	if base == nil {
		base = DefaultConfig()
	}
	return []Parameter{
		{
			Name:        ParamName,
			Type:        TypeString,
			Description: "Simulation name",
			Default:     base.Name,
			Required:    true,
		},
		{
			Name:        ParamIterations,
			Type:        TypeInteger,
			Description: "Number of iterations",
			Default:     base.Iterations,
			Min:         0,
		},
		{
			Name:        ParamDebugMode,
			Type:        TypeBoolean,
			Description: "Enable debug mode",
			Default:     base.DebugMode,
		},
	}
}

// ApplyParameters copies the known keys of params into cfg. Unknown keys are
// ignored; a known key holding a value of the wrong type is an error and
// leaves cfg untouched.
func ApplyParameters(cfg *Config, params map[string]interface{}) error {
	next := *cfg

	if v, ok := params[ParamName]; ok {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", ParamName)
		}
		next.Name = s
	}

	if v, ok := params[ParamIterations]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", ParamIterations, err)
		}
		next.Iterations = n
	}

	if v, ok := params[ParamDebugMode]; ok {
		switch val := v.(type) {
		case bool:
			next.DebugMode = val
		case string:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("%s must be a boolean: %w", ParamDebugMode, err)
			}
			next.DebugMode = b
		default:
			return fmt.Errorf("%s must be a boolean", ParamDebugMode)
		}
	}

	*cfg = next
	return nil
}

func toInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != float64(int(val)) {
			return 0, fmt.Errorf("%v is not a whole number", val)
		}
		return int(val), nil
	case string:
		return strconv.Atoi(val)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
