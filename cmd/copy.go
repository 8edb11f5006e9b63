package cmd

import (
	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	copyActivate bool
	copyForce    bool
)

func init() {
	copyCmd.Flags().BoolVar(&copyActivate, "activate", false, "activate the copy")
	copyCmd.Flags().BoolVarP(&copyForce, "force", "f", false, "overwrite an existing destination")
	GctxCmd.AddCommand(copyCmd)
}

// resetCopyState resets the copy command's global state for testing.
func resetCopyState() {
	copyActivate = false
	copyForce = false
}

var copyCmd = &cobra.Command{
	Use:     "copy <source> <destination>",
	Aliases: []string{"cp"},
	Short:   "Copy a configuration",
	Long: `Copies a gcloud configuration to a new name.

The file is copied as-is, so settings gctx does not manage are kept.

Examples:
  # Copy a configuration
  gctx copy dev staging

  # Copy and activate the copy
  gctx copy dev staging --activate`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeConfigurationNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting copy command")
		Logger.Debugf("Arguments: source=%s, destination=%s, activate=%t, force=%t", args[0], args[1], copyActivate, copyForce)

		spinner, cleanup := startSpinner(cmd, "Copying configuration...")
		defer cleanup()

		result, err := workflows.Copy(cmd.Context(), workflows.CopyOptions{
			Source:      args[0],
			Destination: args[1],
			Force:       copyForce,
			Activate:    copyActivate,
		})
		if result != nil {
			spinner.FinalMSG = successMessage("Successfully copied configuration %s to %s", ui.Name(result.Source), ui.Name(result.Destination))
		}
		if err != nil {
			if result != nil {
				Logger.Errorf("Configuration '%s' was copied but could not be activated", result.Destination)
			}
			return err
		}

		if result.Activated {
			spinner.FinalMSG += "\n" + nowActiveMessage(result.Destination)
		}
		return nil
	},
}
