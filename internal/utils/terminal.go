package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return IsTerminalFile(os.Stdin)
}

// IsStderrTerminal returns true if stderr is a terminal. Spinners and
// prompts draw on stderr so stdout stays clean for piping.
func IsStderrTerminal() bool {
	return IsTerminalFile(os.Stderr)
}

// IsTerminalFile returns true if f refers to a terminal.
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
