package tracer

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// WaitForTrap blocks until the tracee enters a ptrace-stop.
//
//   - If the tracee exited or was killed, it returns a
//     *ProcessTerminatedError carrying the clean/killed flag and the
//     exit status or terminating signal.
//   - If the tracee stopped with SIGTRAP or SIGSTOP delivered, it
//     returns nil.
//   - If the tracee stopped with any other signal, it returns a
//     *UnexpectedSignalError.
//   - A "continued" notification is consumed and waited on again.
func (t *Tracee) WaitForTrap() error {
	for {
		var ws syscall.WaitStatus
		_, err := syscall.Wait4(t.PID, &ws, 0, nil)
		if err != nil {
			return newTracingError(t.PID, "wait4", err)
		}

		switch {
		case ws.Exited():
			return &ProcessTerminatedError{PID: t.PID, Clean: true, Status: ws.ExitStatus()}
		case ws.Signaled():
			return &ProcessTerminatedError{PID: t.PID, Clean: false, Status: int(ws.Signal())}
		case ws.Stopped():
			sig := ws.StopSignal()
			if sig == syscall.SIGTRAP || sig == syscall.SIGSTOP {
				return nil
			}
			return &UnexpectedSignalError{PID: t.PID, Signal: unix.Signal(sig)}
		case ws.Continued():
			continue
		default:
			continue
		}
	}
}

// WaitForTrapAt blocks until the tracee traps with its instruction
// pointer, decremented by one (to account for the int3 that just
// executed), equal to address. SIGTRAP or SIGSTOP stops at any other
// address are resumed and waited past, so the caller can ride past
// breakpoints it does not care about elsewhere in the tracee. A stop on
// any other signal returns an *UnexpectedSignalError, as in WaitForTrap.
func (t *Tracee) WaitForTrapAt(address uintptr) error {
	for {
		if err := t.WaitForTrap(); err != nil {
			return err
		}
		regs, err := t.GetRegisters()
		if err != nil {
			return err
		}
		if uintptr(regs.IP)-1 == address {
			return nil
		}
		if err := t.Resume(0); err != nil {
			return err
		}
	}
}

// WaitForSyscall blocks until the tracee's next ptrace-stop and reports
// whether it was a real syscall-entry or syscall-exit stop (SIGTRAP
// with the syscall-good bit set). On any other benign signal it returns
// false without error, so the caller can choose to re-step; a
// termination still returns an error.
func (t *Tracee) WaitForSyscall() (bool, error) {
	var ws syscall.WaitStatus
	_, err := syscall.Wait4(t.PID, &ws, 0, nil)
	if err != nil {
		return false, newTracingError(t.PID, "wait4", err)
	}

	switch {
	case ws.Exited():
		return false, &ProcessTerminatedError{PID: t.PID, Clean: true, Status: ws.ExitStatus()}
	case ws.Signaled():
		return false, &ProcessTerminatedError{PID: t.PID, Clean: false, Status: int(ws.Signal())}
	case ws.Stopped():
		sig := ws.StopSignal()
		return sig == syscall.SIGTRAP|syscallStopBit, nil
	default:
		return false, nil
	}
}
