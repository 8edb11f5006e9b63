package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/gctx/internal/configs"
	kerrors "github.com/PolarWolf314/gctx/internal/errors"
	"github.com/PolarWolf314/gctx/internal/ui"
	"github.com/PolarWolf314/gctx/internal/utils"
	"github.com/PolarWolf314/gctx/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// stderrIsTerminal is replaced in tests.
var stderrIsTerminal = utils.IsStderrTerminal

// startSpinner shows a spinner on stderr with the given message. It stays
// hidden in verbose or debug mode and when stderr is not a terminal.
//
// The returned cleanup stops the spinner and prints s.FinalMSG, if set, to
// the command's output followed by a newline.
func startSpinner(cmd *cobra.Command, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	visible := !verbose && !debug && stderrIsTerminal()
	if visible {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := s.FinalMSG
		// Clear FinalMSG so s.Stop() doesn't print it to stderr.
		s.FinalMSG = ""

		if visible {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprintln(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}

func successMessage(format string, args ...any) string {
	return ui.Success.Sprint("✓") + " " + fmt.Sprintf(format, args...)
}

func nowActiveMessage(name string) string {
	return ui.Info.Sprint("→") + " Configuration " + ui.Name(name) + " is now active"
}

// completeConfigurationNames completes the first positional argument with
// configuration names.
func completeConfigurationNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := workflows.List(ctx, workflows.ListOptions{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return result.Names(), cobra.ShellCompDirectiveNoFileComp
}

// Hint suggests how to recover from err, or returns "" when there is
// nothing useful to add.
func Hint(err error) string {
	var hint string
	switch {
	case errors.Is(err, kerrors.ErrDeleteActiveConfiguration):
		hint = "Activate another configuration first with " + ui.Code.Sprint("gctx activate <name>")
	case errors.Is(err, kerrors.ErrNoConfigurationSpecified):
		hint = "Name the configuration to activate, e.g. " + ui.Code.Sprint("gctx activate <name>")
	case errors.Is(err, kerrors.ErrConfigurationStoreNotFound), errors.Is(err, kerrors.ErrNoConfigurationsFound):
		hint = "Run " + ui.Code.Sprint("gcloud init") + " or point " + ui.Code.Sprint(configs.EnvConfigRoot) + " at an existing gcloud directory"
	default:
		return ""
	}
	return ui.Info.Sprint("→") + " " + hint
}
