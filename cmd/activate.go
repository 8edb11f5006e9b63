package cmd

import (
	"errors"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/gctx/internal/errors"
	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/utils"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// stdinIsTerminal and selectConfiguration are replaced in tests.
var (
	stdinIsTerminal     = utils.IsTerminal
	selectConfiguration = promptConfiguration
)

func init() {
	GctxCmd.AddCommand(activateCmd)
}

var activateCmd = &cobra.Command{
	Use:   "activate [name]",
	Short: "Activate a configuration",
	Long: `Makes the named configuration the active gcloud configuration.

Without a name, and when run from a terminal, an interactive list of
configurations is shown to pick from.

Examples:
  # Activate a configuration
  gctx activate my-project

  # Pick a configuration interactively
  gctx activate`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeConfigurationNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runActivate(cmd, args[0])
		}

		if !stdinIsTerminal() {
			return kerrors.ErrNoConfigurationSpecified
		}

		list, err := workflows.List(cmd.Context(), workflows.ListOptions{})
		if err != nil {
			return err
		}

		name, err := selectConfiguration(list)
		if err != nil {
			return err
		}
		return runActivate(cmd, name)
	},
}

func runActivate(cmd *cobra.Command, name string) error {
	Logger.Infof("Starting activate command")
	Logger.Debugf("Configuration argument: %s", name)

	spinner, cleanup := startSpinner(cmd, "Activating configuration...")
	defer cleanup()

	result, err := workflows.Activate(cmd.Context(), workflows.ActivateOptions{Name: name})
	if err != nil {
		return err
	}
	Logger.Infof("Active configuration changed from '%s' to '%s'", result.Previous, result.Name)

	spinner.FinalMSG = successMessage("Successfully activated %s", ui.Name(result.Name))
	return nil
}

// promptConfiguration asks the user to pick a configuration, starting on the
// active one.
func promptConfiguration(list *workflows.ListResult) (string, error) {
	names := list.Names()

	const size = 10
	cursor := 0
	for i, entry := range list.Configurations {
		if entry.Active {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:  "Select a configuration",
		Items:  names,
		Size:   size,
		Stdout: bellSkipper{},
		Searcher: func(input string, index int) bool {
			return strings.Contains(names[index], strings.ToLower(input))
		},
	}

	_, name, err := prompt.RunCursorAt(cursor, max(0, cursor-size+1))
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return "", kerrors.ErrNoConfigurationSelected
	}
	if err != nil {
		return "", Logger.ErrorfAndReturn("Failed to read selection: %w", err)
	}
	return name, nil
}

// bellSkipper draws the prompt on stderr and drops the bell readline rings
// on every keystroke.
type bellSkipper struct{}

func (bellSkipper) Write(b []byte) (int, error) {
	const charBell = 7
	if len(b) == 1 && b[0] == charBell {
		return 0, nil
	}
	return os.Stderr.Write(b)
}

func (bellSkipper) Close() error {
	return nil
}
