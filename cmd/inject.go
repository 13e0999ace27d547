package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"remex/pkg/inject"
	"remex/pkg/tracer"
)

var injectCmd = &cobra.Command{
	Use:   "inject <pid> <fd>",
	Short: "Write standard input into an open file descriptor of a running process",
	Args:  cobra.ExactArgs(2),
	Run:   runInject,
}

func init() {
	RootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) {
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid pid %q: %v\n", args[0], err)
		os.Exit(1)
	}
	fd, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fd %q: %v\n", args[1], err)
		os.Exit(1)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading stdin: %v\n", err)
		os.Exit(1)
	}

	log := tracer.NewStreamLogger(os.Stderr)
	if err := inject.WriteFD(pid, fd, data, log); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// A RemoteSyscallError unwraps straight to its errno; a TracingError
		// (e.g. a failed attach or detach) unwraps to the OS error it
		// wrapped. Either way, surface the underlying OS error code rather
		// than a made-up constant.
		var errno syscall.Errno
		if errors.As(err, &errno) {
			os.Exit(int(errno))
		}
		os.Exit(2)
	}
}
