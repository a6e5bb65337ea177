// Package logging provides colored, leveled log output for the sysupdate CLI.
//
// Every function writes one prefixed, color-coded line to the configured
// output (stderr by default, keeping stdout free for command results). Debug
// output is suppressed unless verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	verbose bool
	out     io.Writer = os.Stderr
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	debugPrefix   = color.New(color.FgMagenta).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects all log output to w. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// Info prints an informational message in blue.
func Info(msg string) {
	fmt.Fprintln(out, infoPrefix("[INFO]")+" "+msg)
}

// Success prints a success message in green.
func Success(msg string) {
	fmt.Fprintln(out, successPrefix("[SUCCESS]")+" "+msg)
}

// Warn prints a warning in yellow.
func Warn(msg string) {
	fmt.Fprintln(out, warnPrefix("[WARN]")+" "+msg)
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(out, errorPrefix("[ERROR]")+" "+msg)
}

// Debug prints a message only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(out, debugPrefix("[DEBUG]")+" "+msg)
}

// Debugf formats according to a format specifier and passes the result to Debug.
func Debugf(format string, args ...any) {
	if !verbose {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}
