package cmd

import (
	"github.com/PolarWolf314/gctx/internal/properties"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

var describeOutput string

func init() {
	describeCmd.Flags().StringVarP(&describeOutput, "output", "o", string(properties.FormatINI), "output format (ini, json, yaml or toml)")
	GctxCmd.AddCommand(describeCmd)
}

// resetDescribeState resets the describe command's global state for testing.
func resetDescribeState() {
	describeOutput = string(properties.FormatINI)
}

var describeCmd = &cobra.Command{
	Use:   "describe [name]",
	Short: "Show the settings of a configuration",
	Long: `Shows the project, account, zone and region of a configuration.

Without a name the active configuration is described. Other settings in the
file are not shown.

Examples:
  # Describe the active configuration
  gctx describe

  # Describe a configuration as YAML
  gctx describe dev --output yaml`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeConfigurationNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting describe command")
		Logger.Debugf("Flags: output=%s", describeOutput)

		format, err := properties.ParseFormat(describeOutput)
		if err != nil {
			return err
		}

		opts := workflows.DescribeOptions{}
		if len(args) == 1 {
			opts.Name = args[0]
		}

		result, err := workflows.Describe(cmd.Context(), opts)
		if err != nil {
			return err
		}
		Logger.Infof("Describing configuration '%s'", result.Name)

		return properties.Write(cmd.OutOrStdout(), result.Properties, format)
	},
}
