package tracer

import (
	"runtime"
	"syscall"
	"testing"
)

func TestSandboxedCallReachesAnchor(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	anchor := TrapAnchor()
	if anchor == 0 {
		t.Fatal("trap anchor not initialized")
	}

	result, err := SandboxedCall(func() {})
	if err != nil {
		t.Skipf("sandboxed call unavailable in this environment: %v", err)
	}
	defer func() {
		syscall.Kill(result.PID, syscall.SIGKILL)
		var ws syscall.WaitStatus
		syscall.Wait4(result.PID, &ws, 0, nil)
	}()

	if result.PID <= 0 {
		t.Fatalf("unexpected child pid %d", result.PID)
	}
	if uintptr(result.RegsEnd.IP) != anchor+1 {
		t.Fatalf("child trapped at %#x, want the trap anchor %#x", result.RegsEnd.IP, anchor+1)
	}
	if result.RegsStart.IP == 0 {
		t.Fatal("entry register snapshot is empty")
	}
}

func TestTrapAnchorStable(t *testing.T) {
	first := TrapAnchor()
	second := TrapAnchor()
	if first != second {
		t.Fatalf("trap anchor changed across calls: %#x then %#x", first, second)
	}
	if first == 0 {
		t.Fatal("trap anchor is zero")
	}
}
