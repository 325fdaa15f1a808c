package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snark87/quantum-simulator/pkg/config"
	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/simulation"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a parameters file with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  writeDefaultParams,
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func showConfig(cmd *cobra.Command, _ []string) error {
	table := logger.NewTable("KEY", "VALUE")
	for _, row := range settingsRows(settings) {
		table.AddRow(row[0], row[1])
	}
	table.Fprint(cmd.OutOrStdout())
	return nil
}

// settingsRows flattens settings into key/value pairs, masking the auth token
func settingsRows(s *config.Settings) [][2]string {
	token := ""
	if s.Server.AuthToken != "" {
		token = "********"
	}

	return [][2]string{
		{"log_level", s.LogLevel},
		{"no_color", fmt.Sprint(s.NoColor)},
		{"server.port", s.Server.Port},
		{"server.auth_token", token},
		{"server.allowed_origins", strings.Join(s.Server.AllowedOrigins, ",")},
		{"server.read_timeout", s.Server.ReadTimeout.String()},
		{"server.write_timeout", s.Server.WriteTimeout.String()},
		{"server.idle_timeout", s.Server.IdleTimeout.String()},
		{"server.shutdown_timeout", s.Server.ShutdownTimeout.String()},
		{"simulation.name", s.Simulation.Name},
		{"simulation.iterations", fmt.Sprint(s.Simulation.Iterations)},
		{"simulation.debug_mode", fmt.Sprint(s.Simulation.DebugMode)},
	}
}

func writeDefaultParams(cmd *cobra.Command, args []string) error {
	path := "simulation.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSimulationConfig(simulation.DefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to write parameters file: %w", err)
	}

	logger.Successf("Wrote default parameters to %s", path)
	return nil
}
