package tracer

import (
	"fmt"
	"reflect"
)

// CallResult is produced by SandboxedCall: the child's pid, the
// register snapshot taken the moment the breakpoint fired at function
// entry, and the register snapshot taken when the child trapped on the
// trap anchor at return.
//
// There is no channel for f to marshal a result back to the parent
// beyond these two snapshots. The documented contract is: the result of
// f, if any, is whatever ends up in RegsEnd's accumulator register (the
// i386/x86-64 C ABI return-value register), or in memory f was given
// the address of before it ran. No shared-mapping marshalling channel
// is provided; this is a deliberate choice, not an oversight — see
// DESIGN.md.
type CallResult struct {
	PID       int
	RegsStart Registers
	RegsEnd   Registers
}

// SandboxedCall runs f inside a forked child under ptrace control and
// returns the register state at the moment f was entered and the
// moment it returned.
//
// Because the Go runtime assumes multiple live OS threads (for garbage
// collection, the scheduler, sysmon), forking duplicates only the
// calling thread: f must not do anything that depends on the rest of
// the runtime being present — no goroutine creation, no allocation that
// can trigger a GC, no growing its own stack. This mirrors the original
// fork-based primitive's own precondition that the callee behave as if
// running in a single-threaded process. Any arguments f needs should be
// bound into it as a closure; because SandboxedCall takes a Go func
// value rather than a raw C function pointer, this happens naturally
// and there is no separate ABI-register marshalling step for the
// caller to perform.
//
// The calling goroutine must already have called LockOSThread; it keeps
// that thread locked across the fork so that every ptrace request
// against the child originates from the same thread that forked it.
func SandboxedCall(f func()) (*CallResult, error) {
	entry := reflect.ValueOf(f).Pointer()

	pid, err := Fork()
	if err != nil {
		return nil, err
	}

	if pid == 0 {
		runSandboxedChild(f)
		// runSandboxedChild always terminates the child via exitChild and
		// never returns; nothing reaches this point.
		exitChild(1)
	}

	child := New(pid)

	if err := child.WaitForTrap(); err != nil {
		return nil, err
	}

	bp, err := ArmBreakpoint(child, uintptr(entry))
	if err != nil {
		return nil, err
	}
	if err := child.Resume(0); err != nil {
		return nil, err
	}

	if err := child.WaitForTrapAt(uintptr(entry)); err != nil {
		return nil, err
	}
	if err := bp.Restore(); err != nil {
		return nil, err
	}

	regsStart, err := child.GetRegisters()
	if err != nil {
		return nil, err
	}

	anchor := TrapAnchor()
	if anchor == 0 {
		return nil, fmt.Errorf("sandboxed call: trap anchor not initialized")
	}
	if _, err := child.SwapReturnAddress(anchor); err != nil {
		return nil, err
	}

	if err := child.Resume(0); err != nil {
		return nil, err
	}
	if err := child.WaitForTrapAt(anchor); err != nil {
		return nil, err
	}

	regsEnd, err := child.GetRegisters()
	if err != nil {
		return nil, err
	}

	return &CallResult{PID: pid, RegsStart: regsStart, RegsEnd: regsEnd}, nil
}

// runSandboxedChild is the child side of SandboxedCall: ask to be
// traced, hand control to the parent with a SIGTRAP, then invoke f once
// resumed. If f returns normally the parent is expected to have already
// redirected the child's return to the trap anchor, so this point is
// never reached in practice; exit defensively if it is.
func runSandboxedChild(f func()) {
	if err := TraceMe(); err != nil {
		exitChild(1)
	}
	if err := Raise(SIGTRAP); err != nil {
		exitChild(1)
	}
	f()
	exitChild(0)
}
