package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/spf13/cobra"
)

var listOutput string

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format (text or json)")
	GctxCmd.AddCommand(listCmd)
}

// resetListState resets the list command's global state for testing.
func resetListState() {
	listOutput = "text"
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all configurations",
	Long: `Lists every gcloud configuration in name order.

The active configuration is marked with '*'. Use --output json for a
machine-readable listing that includes each configuration's file path.

Examples:
  # List configurations
  gctx list

  # List configurations as JSON
  gctx list --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		Logger.Debugf("Flags: output=%s", listOutput)

		if listOutput != "text" && listOutput != "json" {
			return fmt.Errorf("unsupported output format %q, expected one of text, json", listOutput)
		}

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{})
		if err != nil {
			return err
		}
		Logger.Infof("Found %d configurations", len(result.Configurations))

		if listOutput == "json" {
			return outputListJSON(cmd, result)
		}
		return outputListText(cmd, result)
	},
}

func outputListJSON(cmd *cobra.Command, result *workflows.ListResult) error {
	configurations := result.Configurations
	if configurations == nil {
		configurations = []workflows.ListEntry{}
	}

	output, err := json.MarshalIndent(configurations, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal configurations to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

func outputListText(cmd *cobra.Command, result *workflows.ListResult) error {
	out := cmd.OutOrStdout()
	for _, entry := range result.Configurations {
		name := entry.Name
		if entry.Active {
			name = ui.Active.Sprint(name)
		}
		fmt.Fprintln(out, ui.ListPrefix(entry.Active)+name)
	}

	if result.Active != "" && !result.ActiveExists() {
		Logger.Warnf("The active configuration '%s' does not exist", result.Active)
	}
	return nil
}
