package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "remex",
	Short: "remex: remote process tracing and syscall injection",
	Long:  `A ptrace-based toolkit for attaching to a running process, reading or writing its registers and memory, and forcing it to execute arbitrary system calls.`,
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
