// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize their text when the terminal supports it. When
// NO_COLOR is set or stdout is not a terminal, plain text is produced
// instead, with backticks around commands so they still stand out:
//
//	ui.Code.Sprint("gctx activate foo")   // `gctx activate foo`
//	ui.Success.Sprint("✓")                // ✓
//	ui.Name("foo")                        // 'foo'
//
// Listings use ListPrefix so the active configuration is marked with "* "
// and every other one is indented by two spaces.
package ui
