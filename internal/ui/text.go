package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI output.
type Formatter struct {
	color *color.Color

	// open and close surround the text when colors are off.
	open, close string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.open + text + f.close
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// ListPrefix is the marker printed before a configuration in a listing.
func ListPrefix(active bool) string {
	if active {
		return "* "
	}
	return "  "
}

// Name renders a configuration name in single quotes.
func Name(name string) string {
	return "'" + Active.Sprint(name) + "'"
}

var (
	// Code formats runnable commands: yellow, or `backticks` without color.
	Code = Formatter{color: color.New(color.FgYellow), open: "`", close: "`"}

	// Success formats success indicators.
	Success = Formatter{color: color.New(color.FgGreen)}

	// Error formats error indicators.
	Error = Formatter{color: color.New(color.FgRed)}

	// Info formats hints and follow-up notes.
	Info = Formatter{color: color.New(color.FgCyan)}

	// Active formats configuration names, bold green so the active one
	// stands out in listings.
	Active = Formatter{color: color.New(color.FgGreen, color.Bold)}
)
