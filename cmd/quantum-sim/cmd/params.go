package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/snark87/quantum-simulator/pkg/simulation"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List simulation parameters",
	Long:  `List the parameters a simulation accepts, with their effective defaults`,
	Args:  cobra.NoArgs,
	RunE:  listParameters,
}

func listParameters(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tDEFAULT\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t----\t-------\t-----------")

	for _, p := range simulation.Parameters(baseSimulationConfig()) {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", p.Name, p.Type, p.Default, p.Description)
	}

	return w.Flush()
}
