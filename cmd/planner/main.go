// Command planner is the cobra-based CLI wrapper around pkg/planner,
// implementing the exit-code contract below for scripted callers:
//
//	0 optimal, 1 feasible with gap, 2 time limit without solution,
//	3 infeasible, 4 invalid input, 5 solver unavailable.
package main

import (
	"fmt"
	"os"
)

// exitCode is set by whichever subcommand ran, so main can exit with the
// right code even on a "successful" cobra invocation (a feasible-
// with-gap solve is not a cobra error, but it is exit code 1).
var exitCode int

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == 0 {
			exitCode = exitCodeForError(err)
		}
		os.Exit(exitCode)
	}
	os.Exit(exitCode)
}
