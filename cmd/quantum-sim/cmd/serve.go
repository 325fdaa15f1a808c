package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/snark87/quantum-simulator/pkg/logger"
	"github.com/snark87/quantum-simulator/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve simulations over HTTP",
	Long: `Start the simulation HTTP service. The port comes from --port,
QSIM_SERVER_PORT, PORT or the settings file, in that order.`,
	Args: cobra.NoArgs,
	RunE: serve,
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on")
}

func serve(cmd *cobra.Command, _ []string) error {
	srv := server.New(settings.Server, logger.Default().WithPrefix("server"))

	logger.Networkf("Listening on %s", srv.Addr())
	if settings.Server.AuthToken == "" {
		logger.Warn("No auth token configured, /api/v1 is open")
	}

	errCh := srv.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return err
		}
		return nil
	case <-sigChan:
		logger.Warn("Received interrupt signal, stopping server...")
	case <-cmd.Context().Done():
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}
