package tracer

import (
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

const wordSize = unsafe.Sizeof(uintptr(0))

// Tracee is a process under ptrace control, identified by its OS pid.
// The pid is owned by the caller; Tracee holds it by value. All methods
// are synchronous: they either return with the tracee in a well-defined
// stopped state or return an error.
type Tracee struct {
	PID int
}

// New wraps an existing pid as a Tracee. It does not attach; call
// Attach first.
func New(pid int) *Tracee {
	return &Tracee{PID: pid}
}

// Fork spawns a child process with a copy of the caller's address space
// and text, by issuing the raw fork(2) syscall directly rather than
// exec'ing a new image. This is required by SandboxedCall, which needs
// the child to be able to call a function pointer that lives in the
// controller's own text segment.
//
// The calling goroutine must have called runtime.LockOSThread; Fork
// does not do so itself because the lock must remain held by the
// caller across the subsequent trace-me/breakpoint dance.
func Fork() (pid int, err error) {
	r1, _, errno := unix.RawSyscall(unix.SYS_FORK, 0, 0, 0)
	if errno != 0 {
		return 0, &TracingError{PID: -1, Err: errno}
	}
	return int(r1), nil
}

// TraceMe marks the calling process as traceable by its parent. Called
// by a forked child before it hands control to the parent.
func TraceMe() error {
	_, _, errno := unix.RawSyscall(unix.SYS_PTRACE, uintptr(unix.PTRACE_TRACEME), 0, 0)
	if errno != 0 {
		return &TracingError{PID: -1, Err: errno}
	}
	return nil
}

// exitChild terminates the calling process immediately via the raw
// exit_group(2) syscall, bypassing any Go runtime teardown. It is used
// only by the forked child side of SandboxedCall, where the rest of the
// runtime (other Ms, the GC) does not exist in this process and must
// not be invoked.
func exitChild(status int) {
	unix.RawSyscall(unix.SYS_EXIT_GROUP, uintptr(status), 0, 0)
}

// Attach seizes an existing process with PTRACE_O_TRACESYSGOOD set, so
// that syscall-entry/exit stops are distinguishable from other SIGTRAPs
// (see WaitForSyscall).
func (t *Tracee) Attach() error {
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, uintptr(unix.PTRACE_SEIZE), uintptr(t.PID), 0, uintptr(unix.PTRACE_O_TRACESYSGOOD), 0, 0)
	if errno != 0 {
		return newTracingError(t.PID, "seize", errno)
	}
	return nil
}

// Detach releases the tracee and lets it continue unsupervised.
func (t *Tracee) Detach() error {
	if err := syscall.PtraceDetach(t.PID); err != nil {
		return newTracingError(t.PID, "detach", err)
	}
	return nil
}

// Interrupt forces a ptrace-stop on a seized tracee.
func (t *Tracee) Interrupt() error {
	if err := unix.PtraceInterrupt(t.PID); err != nil {
		return newTracingError(t.PID, "interrupt", err)
	}
	return nil
}

// Resume continues a stopped tracee until its next stop. signal, if
// nonzero, is delivered to the tracee as it resumes.
func (t *Tracee) Resume(signal int) error {
	if err := syscall.PtraceCont(t.PID, signal); err != nil {
		return newTracingError(t.PID, "cont", err)
	}
	return nil
}

// Step advances the tracee exactly one instruction, then stops it.
func (t *Tracee) Step() error {
	if err := syscall.PtraceSingleStep(t.PID); err != nil {
		return newTracingError(t.PID, "singlestep", err)
	}
	return nil
}

// StepSyscall runs the tracee until its next syscall-entry or
// syscall-exit stop.
func (t *Tracee) StepSyscall() error {
	if err := syscall.PtraceSyscall(t.PID, 0); err != nil {
		return newTracingError(t.PID, "syscall-step", err)
	}
	return nil
}

// GetRegisters copies the tracee's full register file into an
// architecture-neutral record.
func (t *Tracee) GetRegisters() (Registers, error) {
	var regs syscall.PtraceRegs
	if err := syscall.PtraceGetRegs(t.PID, &regs); err != nil {
		return Registers{}, newTracingError(t.PID, "getregs", err)
	}
	return toRegisters(&regs), nil
}

// SetRegisters writes regs into the tracee's register file.
func (t *Tracee) SetRegisters(regs Registers) error {
	impl := fromRegisters(regs)
	if err := syscall.PtraceSetRegs(t.PID, &impl); err != nil {
		return newTracingError(t.PID, "setregs", err)
	}
	return nil
}

// ReadWord returns the machine word at addr in the tracee's memory.
func (t *Tracee) ReadWord(addr uintptr) (uintptr, error) {
	var buf [8]byte
	word := buf[:wordSize]
	if _, err := syscall.PtracePeekData(t.PID, addr, word); err != nil {
		return 0, newTracingError(t.PID, "peekdata", err)
	}
	return uintptr(byteOrder.Uint64(pad8(word))), nil
}

// WriteWord writes a full machine word at addr in the tracee's memory.
func (t *Tracee) WriteWord(addr uintptr, value uintptr) error {
	var buf [8]byte
	byteOrder.PutUint64(buf[:], uint64(value))
	if _, err := syscall.PtracePokeData(t.PID, addr, buf[:wordSize]); err != nil {
		return newTracingError(t.PID, "pokedata", err)
	}
	return nil
}

// MemcpyTo copies the len(src) bytes of src into the tracee starting at
// dst, by issuing word-sized writes and, for a trailing partial word,
// a read-modify-write that preserves the surrounding bytes. A zero
// length source is a no-op.
func (t *Tracee) MemcpyTo(dst uintptr, src []byte) error {
	n := len(src)
	i := 0
	for ; i+int(wordSize) <= n; i += int(wordSize) {
		word := byteOrder.Uint64(pad8(src[i : i+int(wordSize)]))
		if err := t.WriteWord(dst+uintptr(i), uintptr(word)); err != nil {
			return err
		}
	}
	if i < n {
		existing, err := t.ReadWord(dst + uintptr(i))
		if err != nil {
			return err
		}
		var buf [8]byte
		byteOrder.PutUint64(buf[:], uint64(existing))
		copy(buf[:], src[i:])
		if err := t.WriteWord(dst+uintptr(i), uintptr(byteOrder.Uint64(buf[:]))); err != nil {
			return err
		}
	}
	return nil
}

// MemcpyFrom copies n bytes from the tracee starting at src into the
// returned slice. A zero length is a no-op and returns an empty slice.
func (t *Tracee) MemcpyFrom(src uintptr, n int) ([]byte, error) {
	dst := make([]byte, n)
	i := 0
	for ; i+int(wordSize) <= n; i += int(wordSize) {
		word, err := t.ReadWord(src + uintptr(i))
		if err != nil {
			return nil, err
		}
		var buf [8]byte
		byteOrder.PutUint64(buf[:], uint64(word))
		copy(dst[i:i+int(wordSize)], buf[:])
	}
	if i < n {
		word, err := t.ReadWord(src + uintptr(i))
		if err != nil {
			return nil, err
		}
		var buf [8]byte
		byteOrder.PutUint64(buf[:], uint64(word))
		copy(dst[i:], buf[:n-i])
	}
	return dst, nil
}

// SwapReturnAddress overwrites the word at the top of the tracee's
// stack — its current return address — with address, and returns the
// value that was there before. It must be called before the tracee's
// current function has pushed anything of its own onto the stack.
func (t *Tracee) SwapReturnAddress(address uintptr) (uintptr, error) {
	regs, err := t.GetRegisters()
	if err != nil {
		return 0, err
	}
	old, err := t.ReadWord(uintptr(regs.SP))
	if err != nil {
		return 0, err
	}
	if err := t.WriteWord(uintptr(regs.SP), address); err != nil {
		return 0, err
	}
	return old, nil
}

// LockOSThread locks the calling goroutine to its current OS thread.
// ptrace is per-thread: every call against a given tracee from the
// controller must originate from the same thread that attached to it.
// Callers should call this once before Attach/Fork and keep it locked
// for the Tracee's lifetime.
func LockOSThread() {
	runtime.LockOSThread()
}

func pad8(b []byte) []byte {
	if len(b) == 8 {
		return b
	}
	var buf [8]byte
	copy(buf[:], b)
	return buf[:]
}
