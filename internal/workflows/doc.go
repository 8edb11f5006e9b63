// Package workflows provides high-level orchestration for gctx commands.
//
// Each workflow opens the configuration store, performs one user-facing
// operation and reports what happened, independent of CLI concerns like
// flag parsing, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Locating and opening the store
//   - Validating names and settings before anything touches disk
//   - Performing the operation and any follow-up activation
//
// # Available Workflows
//
//   - List: all configurations, sorted, with the active one flagged
//   - Current: the active configuration name
//   - Activate: make a configuration active
//   - Create: write a new configuration from project/account/zone/region
//   - Copy: duplicate a configuration byte for byte
//   - Rename: rename a configuration, following it with the active pointer
//   - Delete: remove an inactive configuration
//   - Describe: decode the recognized settings of a configuration
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.Delete(ctx, opts)
//	if errors.Is(err, kerrors.ErrDeleteActiveConfiguration) {
//	    // Suggest activating another configuration first
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// A cancelled context stops the workflow before the store is opened.
package workflows
