package cmd

import (
	logger "github.com/PolarWolf314/gctx/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time with -ldflags "-X github.com/PolarWolf314/gctx/cmd.Version=...".
var Version = "dev"

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// GctxCmd is the root gctx command.
	GctxCmd = &cobra.Command{
		Use:   "gctx [name]",
		Short: "Switch between gcloud configurations",
		Long: `gctx lists, switches and manages gcloud CLI configurations.

It works directly on the gcloud configuration directory, so it is much faster
than 'gcloud config configurations'. The directory is taken from
CLOUDSDK_CONFIG when set, and otherwise from the default gcloud location.

With no arguments gctx prints the active configuration. With a single name it
activates that configuration.

Examples:
  # Show the active configuration
  gctx

  # Activate a configuration
  gctx my-project

  # List all configurations
  gctx list

  # Create a configuration and make it active
  gctx create dev --project dev-project --account me@example.com --zone europe-west1-d --activate`,
		Version:           Version,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeConfigurationNames,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runCurrent(cmd)
			}
			return runActivate(cmd, args[0])
		},
	}
)

func init() {
	GctxCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	GctxCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

// GetGctxCmd returns the GctxCmd for testing.
func GetGctxCmd() *cobra.Command {
	return GctxCmd
}

// ResetGctxState resets all command global variables to their default values for testing.
func ResetGctxState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetListState()
	resetCreateState()
	resetCopyState()
	resetRenameState()
	resetDescribeState()
	resetCobraFlagState(GctxCmd)
}

// resetCobraFlagState restores every flag to its default, including the
// help and version flags cobra adds, and clears Changed so required flags
// are checked again on the next run.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
