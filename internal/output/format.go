// Package output provides terminal output formatting utilities for the
// nextver CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// IsTTY reports whether stderr is attached to a terminal. Spinners and
// progress output are suppressed when it is not.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// PrintVersionSummary prints the previous and next version with styling.
// Uses dim for the previous version and bold green for the next one.
func PrintVersionSummary(out io.Writer, previous, next string, bumped bool) {
	dim := color.New(color.Faint).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Fprintf(out, "%s %s\n", dim("Previous:"), dim(previous))
	if bumped {
		fmt.Fprintf(out, "%s     %s\n", dim("Next:"), green(next))
		return
	}
	fmt.Fprintf(out, "%s     %s %s\n", dim("Next:"), next, dim("(no release-worthy commits)"))
}

// PrintCommitCount prints how many commits were classified since the
// previous release.
func PrintCommitCount(out io.Writer, n int, sinceTag string) {
	dim := color.New(color.Faint).SprintFunc()
	if sinceTag == "" {
		fmt.Fprintf(out, "%s\n", dim(fmt.Sprintf("%d commits since the first commit", n)))
		return
	}
	fmt.Fprintf(out, "%s\n", dim(fmt.Sprintf("%d commits since %s", n, sinceTag)))
}
