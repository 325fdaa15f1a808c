package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/snark87/quantum-simulator/pkg/simulation"
)

// ErrNotInteractive is returned when prompts are requested without a terminal
var ErrNotInteractive = errors.New("interactive mode requires a terminal")

// IsInteractive reports whether standard input is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptForConfig asks for every simulation parameter, offering the values
// of base as defaults, and returns the resulting configuration
func PromptForConfig(base *simulation.Config) (*simulation.Config, error) {
	if !IsInteractive() {
		return nil, ErrNotInteractive
	}
	if base == nil {
		base = simulation.DefaultConfig()
	}

	params, err := PromptForParameters(simulation.Parameters(base))
	if err != nil {
		return nil, err
	}

	cfg := *base
	if err := simulation.ApplyParameters(&cfg, params); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PromptForParameters prompts the user for simulation parameters
func PromptForParameters(params []simulation.Parameter) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	for _, param := range params {
		value, err := promptForParameter(param)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", param.Name, err)
		}
		result[param.Name] = value
	}

	return result, nil
}

// promptForParameter prompts for a single parameter
func promptForParameter(param simulation.Parameter) (interface{}, error) {
	switch param.Type {
	case simulation.TypeInteger:
		return promptInteger(param)
	case simulation.TypeString:
		return promptString(param)
	case simulation.TypeBoolean:
		return promptBoolean(param)
	default:
		return nil, fmt.Errorf("unsupported parameter type: %s", param.Type)
	}
}

func promptInteger(param simulation.Parameter) (int, error) {
	defaultStr := ""
	if param.Default != nil {
		defaultStr = fmt.Sprintf("%v", param.Default)
	}

	prompt := &survey.Input{
		Message: param.Description,
		Default: defaultStr,
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(IntegerValidator(param))); err != nil {
		return 0, err
	}

	return strconv.Atoi(result)
}

func promptString(param simulation.Parameter) (string, error) {
	defaultStr := ""
	if param.Default != nil {
		defaultStr = fmt.Sprintf("%v", param.Default)
	}

	prompt := &survey.Input{
		Message: param.Description,
		Default: defaultStr,
	}

	var opts []survey.AskOpt
	if param.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	var result string
	if err := survey.AskOne(prompt, &result, opts...); err != nil {
		return "", err
	}

	return result, nil
}

func promptBoolean(param simulation.Parameter) (bool, error) {
	defaultBool, _ := param.Default.(bool)

	prompt := &survey.Confirm{
		Message: param.Description,
		Default: defaultBool,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}

	return result, nil
}

// IntegerValidator checks that an answer parses as an integer within the
// parameter's Min/Max bounds
func IntegerValidator(param simulation.Parameter) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected text input, got %T", val)
		}

		value, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("invalid integer: %s", str)
		}

		if minRange, ok := param.Min.(int); ok && value < minRange {
			return fmt.Errorf("value must be at least %d", minRange)
		}
		if maxRange, ok := param.Max.(int); ok && value > maxRange {
			return fmt.Errorf("value must be at most %d", maxRange)
		}
		return nil
	}
}
