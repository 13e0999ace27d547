package tracer

import "golang.org/x/sys/unix"

// maxErrno is the largest magnitude a kernel syscall return value can
// take when it represents -errno, per the Linux syscall ABI convention
// (negative values in [-4095, -1] are errors).
const maxErrno = 4095

// Syscall forces the tracee to execute an arbitrary system call on the
// controller's behalf and returns its result.
//
// It snapshots the tracee's registers and the code word at its current
// instruction pointer, loads nr and args into the ABI-defined registers,
// overwrites the low two bytes of the code word at the instruction
// pointer with this architecture's syscall instruction, steps through
// syscall entry and exit, reads the return value, and then restores
// the original code word and the original register file (including the
// original instruction pointer) so the tracee is left with no
// observable evidence of the injection beyond the syscall's own
// kernel-visible side effects.
func (t *Tracee) Syscall(nr uint64, args [6]uint64) (int64, error) {
	origRegs, err := t.GetRegisters()
	if err != nil {
		return 0, err
	}

	origWord, err := t.ReadWord(uintptr(origRegs.IP))
	if err != nil {
		return 0, err
	}

	newRegs := origRegs
	setSyscallArgs(&newRegs, nr, args)
	if err := t.SetRegisters(newRegs); err != nil {
		return 0, err
	}

	patchedWord := (origWord &^ 0xFFFF) | syscallOpcodeWord
	if err := t.WriteWord(uintptr(origRegs.IP), patchedWord); err != nil {
		return 0, err
	}

	if err := t.stepThroughSyscallStop(); err != nil {
		return 0, err
	}
	if err := t.stepThroughSyscallStop(); err != nil {
		return 0, err
	}

	resultRegs, err := t.GetRegisters()
	if err != nil {
		return 0, err
	}

	if err := t.WriteWord(uintptr(origRegs.IP), origWord); err != nil {
		return 0, err
	}
	if err := t.SetRegisters(origRegs); err != nil {
		return 0, err
	}

	return int64(resultRegs.AX), nil
}

// stepThroughSyscallStop drives PTRACE_SYSCALL until a genuine
// syscall-entry or syscall-exit stop is observed, re-stepping past any
// benign non-syscall stop along the way.
func (t *Tracee) stepThroughSyscallStop() error {
	for {
		if err := t.StepSyscall(); err != nil {
			return err
		}
		ok, err := t.WaitForSyscall()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
}

// SyscallChecked behaves like Syscall, but treats a return value in the
// range [-4095, -1] as a failed remote syscall and returns a
// *RemoteSyscallError instead of the raw negative value.
func (t *Tracee) SyscallChecked(nr uint64, args [6]uint64) (int64, error) {
	ret, err := t.Syscall(nr, args)
	if err != nil {
		return 0, err
	}
	if ret < 0 && ret >= -maxErrno {
		return 0, &RemoteSyscallError{PID: t.PID, Syscall: nr, Errno: unix.Errno(-ret)}
	}
	return ret, nil
}
