// Package cli provides the command-line interface for logproc.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ccollicutt/logproc/internal/cli/commands"
)

// Execute runs the root command against os.Args and returns the exit code.
func Execute() int {
	return ExecuteArgs(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the root command with the given arguments and writers.
// It returns 1 when the run had to stop (no file, unreadable or empty log,
// bad config) and 0 otherwise.
func ExecuteArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := commands.NewRootCommand()

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
