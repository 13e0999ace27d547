package tracer

import "golang.org/x/sys/unix"

// ProcessState reports whether a pid still refers to a live process,
// without disturbing its ptrace-stop state.
type ProcessState struct {
	PID int
}

// NewProcessState wraps pid for liveness probing.
func NewProcessState(pid int) *ProcessState {
	return &ProcessState{PID: pid}
}

// Alive reports whether the process still exists, by sending it the
// null signal. This does not require the caller to be the process's
// tracer or parent, nor to have permission to signal it: an EPERM reply
// also counts as alive, since it means the process exists. It is safe to
// call at any point in a tracee's lifecycle, including while stopped.
func (p *ProcessState) Alive() bool {
	err := unix.Kill(p.PID, 0)
	return err == nil || err == unix.EPERM
}
