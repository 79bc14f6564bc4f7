package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	// Status colors
	Pending  = color.New(color.FgYellow, color.Bold)
	UpToDate = color.New(color.FgGreen)
	Unknown  = color.New(color.FgRed)

	// Message colors
	Error = color.New(color.FgRed)
	Dim   = color.New(color.Faint)
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorizeLabels colors a label-form status message line by line.
// Lines of the form "Label: n" get a highlighted count; any other line is
// colored as a whole. Without color support the message is returned unchanged.
func ColorizeLabels(msg, upToDate string) string {
	if color.NoColor {
		return msg
	}

	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		switch {
		case line == upToDate:
			lines[i] = UpToDate.Sprint(line)
		case strings.Contains(line, ": "):
			label, count, _ := strings.Cut(line, ": ")
			lines[i] = label + ": " + Pending.Sprint(count)
		default:
			lines[i] = Unknown.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}

// PrintStatus writes the status message followed by a newline
func PrintStatus(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
