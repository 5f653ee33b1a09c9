// Package output provides terminal output formatting utilities for the relmate CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintSuccess prints a colored success message for a completed step.
// Uses a green checkmark and cyan for the message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintDetail prints a secondary, dimmed detail line beneath a step.
func PrintDetail(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "  %s\n", dim(message))
}

// PrintNotice prints an informational message that is not a failure,
// such as "nothing to commit". Uses a yellow marker.
func PrintNotice(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("•"), message)
}
