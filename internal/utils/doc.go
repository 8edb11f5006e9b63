// Package utils provides shared utility functions for gctx.
//
// # Terminal Utilities
//
// Functions for terminal detection, used to decide whether interactive
// prompts and spinners can be shown:
//   - IsTerminal: checks if stdin is a terminal
//   - IsStderrTerminal: checks if stderr is a terminal
//   - IsTerminalFile: checks an arbitrary file
package utils
