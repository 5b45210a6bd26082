// Package printer holds the console output helpers shared by the CLI.
package printer

import (
	"fmt"
	"os"
)

// PrintSuccess prints a success message with kubectl-style formatting
func PrintSuccess(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "✓ %s\n", message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "Warning: %s\n", message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", message)
}

// PrintStep prints a numbered pipeline step header.
func PrintStep(n, total int, message string) {
	_, _ = fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", n, total, message)
}
