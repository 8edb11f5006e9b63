package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool

	// Out receives every log line. Nil means os.Stderr.
	Out io.Writer
}

func (l Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.out(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.out(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(l.out(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.out(), color.RedString("[error] ")+msg+"\n", args...)
}

// ErrorfAndReturn logs msg at debug level and returns it as an error. The
// caller prints returned errors, so the message is not repeated by default.
// A %w verb in msg keeps the cause available to errors.Is.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	if l.Debug {
		fmt.Fprintln(l.out(), color.RedString("[error] ")+err.Error())
	}
	return err
}
