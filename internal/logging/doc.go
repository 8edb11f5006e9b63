// Package logger provides leveled logging for gctx commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed with a colored level tag and always goes to
// stderr, leaving stdout for command output such as `gctx current`, which
// is often embedded in shell prompts.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows info and debug messages
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown
//	Logger.Errorf()         // Always shown
//	Logger.ErrorfAndReturn() // Shown with --debug, returns the message as an error
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Opening store at %s", location)
//
// The root command creates the logger in its PersistentPreRun.
package logger
