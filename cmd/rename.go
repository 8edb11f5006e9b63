package cmd

import (
	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

var renameForce bool

func init() {
	renameCmd.Flags().BoolVarP(&renameForce, "force", "f", false, "overwrite an existing configuration with the new name")
	GctxCmd.AddCommand(renameCmd)
}

// resetRenameState resets the rename command's global state for testing.
func resetRenameState() {
	renameForce = false
}

var renameCmd = &cobra.Command{
	Use:     "rename <old-name> <new-name>",
	Aliases: []string{"mv"},
	Short:   "Rename a configuration",
	Long: `Renames a gcloud configuration.

Renaming the active configuration keeps it active under its new name.

Examples:
  # Rename a configuration
  gctx rename dev development`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeConfigurationNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rename command")
		Logger.Debugf("Arguments: old=%s, new=%s, force=%t", args[0], args[1], renameForce)

		spinner, cleanup := startSpinner(cmd, "Renaming configuration...")
		defer cleanup()

		result, err := workflows.Rename(cmd.Context(), workflows.RenameOptions{
			OldName: args[0],
			NewName: args[1],
			Force:   renameForce,
		})
		if result != nil {
			spinner.FinalMSG = successMessage("Successfully renamed configuration %s to %s", ui.Name(result.OldName), ui.Name(result.NewName))
		}
		if err != nil {
			if result != nil && result.StalePointer {
				Logger.Errorf("The active configuration still points at '%s'; run 'gctx activate %s' to fix it", result.OldName, result.NewName)
			}
			return err
		}

		if result.Active {
			spinner.FinalMSG += "\n" + nowActiveMessage(result.NewName)
		}
		return nil
	},
}
