package cmd

import (
	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	GctxCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a configuration",
	Long: `Deletes a gcloud configuration.

The active configuration cannot be deleted; activate another one first.

Examples:
  # Delete a configuration
  gctx delete old-project`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeConfigurationNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command")
		Logger.Debugf("Configuration argument: %s", args[0])

		spinner, cleanup := startSpinner(cmd, "Deleting configuration...")
		defer cleanup()

		result, err := workflows.Delete(cmd.Context(), workflows.DeleteOptions{Name: args[0]})
		if err != nil {
			return err
		}

		spinner.FinalMSG = successMessage("Successfully deleted configuration %s", ui.Name(result.Name))
		return nil
	},
}
