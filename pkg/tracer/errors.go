package tracer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TracingError is returned when a ptrace or wait request against pid
// fails. It carries the pid and the underlying OS error.
type TracingError struct {
	PID int
	Err error
}

func (e *TracingError) Error() string {
	return fmt.Sprintf("tracing process %d: %v", e.PID, e.Err)
}

func (e *TracingError) Unwrap() error { return e.Err }

func newTracingError(pid int, op string, err error) *TracingError {
	return &TracingError{PID: pid, Err: fmt.Errorf("%s: %w", op, err)}
}

// ProcessTerminatedError is returned when the tracee exited or was
// killed while the engine was waiting for it to stop.
type ProcessTerminatedError struct {
	PID    int
	Clean  bool // true if the process called exit(), false if killed by a signal
	Status int  // exit status if Clean, otherwise the terminating signal
}

func (e *ProcessTerminatedError) Error() string {
	if e.Clean {
		return fmt.Sprintf("process %d exited with status %d", e.PID, e.Status)
	}
	return fmt.Sprintf("process %d was killed by signal %d (%s)", e.PID, e.Status, Strsignal(unix.Signal(e.Status)))
}

// UnexpectedSignalError is returned when the tracee stopped on a signal
// the engine did not expect at this program point.
type UnexpectedSignalError struct {
	PID    int
	Signal unix.Signal
}

func (e *UnexpectedSignalError) Error() string {
	return fmt.Sprintf("process %d received unexpected signal %d (%s)", e.PID, int(e.Signal), Strsignal(e.Signal))
}

// RemoteSyscallError is returned when a syscall injected into a tracee
// returned a negative value, mapped to its errno.
type RemoteSyscallError struct {
	PID     int
	Syscall uint64
	Errno   unix.Errno
}

func (e *RemoteSyscallError) Error() string {
	return fmt.Sprintf("remote syscall %d in process %d failed: %v", e.Syscall, e.PID, e.Errno)
}

func (e *RemoteSyscallError) Unwrap() error { return e.Errno }
