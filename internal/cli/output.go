package cli

import (
	"fmt"
	"io"
)

// printOK prints a success line.
func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

// printWarn prints a warning line.
func printWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ⚠  %s\n", msg)
}
