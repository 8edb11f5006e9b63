package cmd

import (
	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	createProject  string
	createAccount  string
	createZone     string
	createRegion   string
	createActivate bool
	createForce    bool
)

func init() {
	createCmd.Flags().StringVarP(&createProject, "project", "p", "", "project ID (core/project)")
	createCmd.Flags().StringVarP(&createAccount, "account", "a", "", "account email (core/account)")
	createCmd.Flags().StringVarP(&createZone, "zone", "z", "", "default zone, e.g. europe-west1-d (compute/zone)")
	createCmd.Flags().StringVarP(&createRegion, "region", "r", "", "default region, e.g. europe-west1 (compute/region)")
	createCmd.Flags().BoolVar(&createActivate, "activate", false, "activate the configuration once created")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "overwrite an existing configuration")
	_ = createCmd.MarkFlagRequired("project")
	_ = createCmd.MarkFlagRequired("account")
	_ = createCmd.MarkFlagRequired("zone")
	GctxCmd.AddCommand(createCmd)
}

// resetCreateState resets the create command's global state for testing.
func resetCreateState() {
	createProject = ""
	createAccount = ""
	createZone = ""
	createRegion = ""
	createActivate = false
	createForce = false
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a configuration",
	Long: `Creates a gcloud configuration with the given project, account and zone.

The zone and region are validated before anything is written. An existing
configuration with the same name is only replaced when --force is given.

Examples:
  # Create a configuration
  gctx create dev --project dev-project --account me@example.com --zone europe-west1-d

  # Create and activate a configuration with a default region
  gctx create dev -p dev-project -a me@example.com -z europe-west1-d -r europe-west1 --activate

  # Replace an existing configuration
  gctx create dev -p other-project -a me@example.com -z us-central1-a --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting create command")
		Logger.Debugf("Flags: project=%s, account=%s, zone=%s, region=%s, activate=%t, force=%t",
			createProject, createAccount, createZone, createRegion, createActivate, createForce)

		spinner, cleanup := startSpinner(cmd, "Creating configuration...")
		defer cleanup()

		opts := workflows.CreateOptions{
			Name:     args[0],
			Project:  &createProject,
			Account:  &createAccount,
			Zone:     &createZone,
			Force:    createForce,
			Activate: createActivate,
		}
		if cmd.Flags().Changed("region") {
			opts.Region = &createRegion
		}

		result, err := workflows.Create(cmd.Context(), opts)
		if result != nil {
			// The file exists even when activation failed.
			spinner.FinalMSG = successMessage("Successfully created configuration %s", ui.Name(result.Name))
		}
		if err != nil {
			if result != nil {
				Logger.Errorf("Configuration '%s' was created but could not be activated", result.Name)
			}
			return err
		}

		if result.Activated {
			spinner.FinalMSG += "\n" + nowActiveMessage(result.Name)
		}
		return nil
	},
}
