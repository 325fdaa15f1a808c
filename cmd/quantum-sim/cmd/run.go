package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/snark87/quantum-simulator/pkg/config"
	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/simulation"
	"github.com/snark87/quantum-simulator/pkg/utils"
)

// Output formats accepted by --output
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long: `Run a simulation once with parameters taken, in increasing priority, from
the defaults, the settings file, a parameters file, SIMULATION_* environment
variables, command-line flags and interactive prompts.`,
	Args: cobra.NoArgs,
	RunE: runSimulation,
}

func init() {
	addSimulationFlags(runCmd)
}

// addSimulationFlags registers the flags shared by run and remote run
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "simulation name")
	cmd.Flags().Int("iterations", 0, "number of iterations")
	cmd.Flags().Bool("debug", false, "enable debug mode")
	cmd.Flags().StringP("params", "p", "", "parameters file (YAML)")
	cmd.Flags().BoolP("interactive", "i", false, "prompt for parameters")
	cmd.Flags().StringP("output", "o", outputText, "result format (text, json, yaml)")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := checkOutputFormat(format); err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, baseSimulationConfig())
	if err != nil {
		return err
	}

	if cfg.DebugMode {
		logger.SetLevel(logger.DebugLevel)
	}

	logger.LogSection(fmt.Sprintf("%s Starting %s", logger.IconRocket, cfg.Name))
	logger.LogKeyValues(map[string]interface{}{
		simulation.ParamName:       cfg.Name,
		simulation.ParamIterations: cfg.Iterations,
		simulation.ParamDebugMode:  cfg.DebugMode,
	})

	sim := simulation.New(cfg, logger.Default())
	result := sim.Run()

	logger.Success("Simulation completed successfully")
	return printResult(cmd.OutOrStdout(), format, result)
}

// baseSimulationConfig returns the simulation section of the loaded settings
func baseSimulationConfig() *simulation.Config {
	if settings == nil {
		return simulation.DefaultConfig()
	}
	cfg := settings.Simulation
	return &cfg
}

// resolveConfig layers the parameters file, environment, changed flags and
// prompts over base
func resolveConfig(cmd *cobra.Command, base *simulation.Config) (*simulation.Config, error) {
	paramsFile, _ := cmd.Flags().GetString("params")

	cfg, err := config.LoadSimulationConfigOrDefault(paramsFile, base)
	if err != nil {
		return nil, fmt.Errorf("failed to load parameters: %w", err)
	}

	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("name") {
		overrides[simulation.ParamName], _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("iterations") {
		overrides[simulation.ParamIterations], _ = cmd.Flags().GetInt("iterations")
	}
	if cmd.Flags().Changed("debug") {
		overrides[simulation.ParamDebugMode], _ = cmd.Flags().GetBool("debug")
	}
	if err := config.MergeWithCLIOverrides(cfg, overrides); err != nil {
		return nil, err
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		cfg, err = utils.PromptForConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to get parameters: %w", err)
		}
	}

	return cfg, nil
}

func checkOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}

// printResult writes the result in the requested format
func printResult(w io.Writer, format string, result simulation.Result) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	case outputText:
		_, err := fmt.Fprintf(w, "status: %s\nmessage: %s\n", result.Status, result.Message)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", strings.TrimSpace(format))
	}
}
