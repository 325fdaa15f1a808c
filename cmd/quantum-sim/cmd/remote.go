package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snark87/quantum-simulator/pkg/auth"
	"github.com/snark87/quantum-simulator/pkg/client"
	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/models"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Talk to a running simulation service",
}

var remoteHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the service is up",
	Args:  cobra.NoArgs,
	RunE:  remoteHealth,
}

var remoteRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation on the service",
	Args:  cobra.NoArgs,
	RunE:  remoteRun,
}

func init() {
	remoteCmd.PersistentFlags().String("url", "http://localhost:8080", "simulation service URL")
	remoteCmd.PersistentFlags().String("token", "", "API token (default $"+auth.EnvAPIToken+")")
	remoteCmd.PersistentFlags().Bool("ask-token", false, "prompt for the API token")
	remoteCmd.PersistentFlags().Duration("timeout", 0, "request timeout (default 30s)")

	addSimulationFlags(remoteRunCmd)

	remoteCmd.AddCommand(remoteHealthCmd)
	remoteCmd.AddCommand(remoteRunCmd)
}

// newRemoteClient builds a client from the remote flags
func newRemoteClient(cmd *cobra.Command) (*client.Simulator, error) {
	token, _ := cmd.Flags().GetString("token")
	token = auth.ResolveToken(token)

	if ask, _ := cmd.Flags().GetBool("ask-token"); ask {
		prompted, err := auth.PromptToken(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		token = prompted
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")

	c, err := client.NewClient(client.Config{
		BaseURL: vp.GetString("remote.url"),
		Token:   token,
		Timeout: timeout,
		Logger:  logger.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func remoteHealth(cmd *cobra.Command, _ []string) error {
	c, err := newRemoteClient(cmd)
	if err != nil {
		return err
	}

	var health *models.HealthResponse
	err = logger.WithSpinner("Checking service health", func() error {
		var err error
		health, err = c.Health(cmdContext(cmd))
		return err
	})
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", health.Status)
	return err
}

func remoteRun(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := checkOutputFormat(format); err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, baseSimulationConfig())
	if err != nil {
		return err
	}

	c, err := newRemoteClient(cmd)
	if err != nil {
		return err
	}

	logger.Progressf("Submitting %s", cfg)

	var resp *models.SimulateResponse
	err = logger.WithSpinner("Running remote simulation", func() error {
		var err error
		resp, err = c.Simulate(cmdContext(cmd), cfg)
		return err
	})
	if err != nil {
		return fmt.Errorf("remote simulation failed: %w", err)
	}

	return printResult(cmd.OutOrStdout(), format, resp.Result())
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
