package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	RuleWidth = 40
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Output destination
	Out io.Writer = os.Stdout
)

// Banner prints a bold title followed by a rule of '=' characters.
func Banner(title string) {
	fmt.Fprintln(Out, Bold(title))
	fmt.Fprintln(Out, strings.Repeat("=", RuleWidth))
	BlankLine()
}

// Line prints a plain message.
func Line(format string, args ...interface{}) {
	fmt.Fprintln(Out, fmt.Sprintf(format, args...))
}

// Info prints an informational message in cyan.
func Info(format string, args ...interface{}) {
	fmt.Fprintln(Out, Cyan(fmt.Sprintf(format, args...)))
}

// Success prints a success message in green.
func Success(format string, args ...interface{}) {
	fmt.Fprintln(Out, Green(fmt.Sprintf(format, args...)))
}

// Fail prints an error message in red.
func Fail(format string, args ...interface{}) {
	fmt.Fprintln(Out, Red(fmt.Sprintf(format, args...)))
}

// Warn prints a warning message in yellow.
func Warn(format string, args ...interface{}) {
	fmt.Fprintln(Out, Yellow(fmt.Sprintf(format, args...)))
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	fmt.Fprintln(Out, Dim(fmt.Sprintf(format, args...)))
}

// BlankLine prints an empty line.
func BlankLine() {
	fmt.Fprintln(Out, "")
}
