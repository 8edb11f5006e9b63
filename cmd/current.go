package cmd

import (
	"fmt"

	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	GctxCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the active configuration",
	Long: `Prints the name of the active gcloud configuration.

The name is printed exactly as gcloud stored it, followed by a newline, so
the output can be used in scripts.

Examples:
  # Print the active configuration
  gctx current

  # Same as above
  gctx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCurrent(cmd)
	},
}

func runCurrent(cmd *cobra.Command) error {
	Logger.Infof("Starting current command")

	result, err := workflows.Current(cmd.Context(), workflows.CurrentOptions{})
	if err != nil {
		return err
	}

	Logger.Debugf("Active pointer: %q", result.Name)
	fmt.Fprintln(cmd.OutOrStdout(), result.Name)
	return nil
}
