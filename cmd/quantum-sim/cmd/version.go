package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snark87/quantum-simulator/pkg/simulation"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the package name and version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", simulation.PackageName, simulation.Version)
		return err
	},
}
