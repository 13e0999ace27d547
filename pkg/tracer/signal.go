// Package tracer implements a ptrace-based remote-execution engine: it
// attaches to a running process, drives it through the kernel's ptrace
// state machine, and can synthesize arbitrary system calls or run a
// local function inside a forked, traced child.
package tracer

import (
	"golang.org/x/sys/unix"
)

// Named signal numbers for the Linux x86/x86-64 signal set. These mirror
// the original fdinject project's signal.hpp constant table.
const (
	SIGHUP    = unix.SIGHUP
	SIGINT    = unix.SIGINT
	SIGQUIT   = unix.SIGQUIT
	SIGILL    = unix.SIGILL
	SIGTRAP   = unix.SIGTRAP
	SIGABRT   = unix.SIGABRT
	SIGIOT    = SIGABRT
	SIGBUS    = unix.SIGBUS
	SIGFPE    = unix.SIGFPE
	SIGKILL   = unix.SIGKILL
	SIGUSR1   = unix.SIGUSR1
	SIGSEGV   = unix.SIGSEGV
	SIGUSR2   = unix.SIGUSR2
	SIGPIPE   = unix.SIGPIPE
	SIGALRM   = unix.SIGALRM
	SIGTERM   = unix.SIGTERM
	SIGSTKFLT = unix.SIGSTKFLT
	SIGCHLD   = unix.SIGCHLD
	SIGCONT   = unix.SIGCONT
	SIGSTOP   = unix.SIGSTOP
	SIGTSTP   = unix.SIGTSTP
	SIGTTIN   = unix.SIGTTIN
	SIGTTOU   = unix.SIGTTOU
	SIGURG    = unix.SIGURG
	SIGXCPU   = unix.SIGXCPU
	SIGXFSZ   = unix.SIGXFSZ
	SIGVTALRM = unix.SIGVTALRM
	SIGPROF   = unix.SIGPROF
	SIGWINCH  = unix.SIGWINCH
	SIGIO     = unix.SIGIO
	SIGPOLL   = SIGIO
	SIGPWR    = unix.SIGPWR
	SIGSYS    = unix.SIGSYS
	SIGUNUSED = SIGSYS

	// syscallStopBit marks a SIGTRAP stop delivered by PTRACE_O_TRACESYSGOOD
	// as a syscall-entry or syscall-exit stop rather than an ordinary trap.
	syscallStopBit = 0x80
)

// Raise sends a signal to the calling process.
func Raise(signal unix.Signal) error {
	return unix.Kill(unix.Getpid(), signal)
}

// Kill sends a signal to pid.
func Kill(pid int, signal unix.Signal) error {
	return unix.Kill(pid, signal)
}

// Strsignal renders a signal number as a human-readable string.
func Strsignal(signal unix.Signal) string {
	if signal == 0 {
		return "signal 0"
	}
	return signal.String()
}
