package tracer

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestSyscallInjectionGetpidRoundTrip(t *testing.T) {
	tr, cmd := startTracee(t)
	defer stopTracee(t, tr, cmd)

	before, err := tr.GetRegisters()
	if err != nil {
		t.Fatalf("getregisters before injection: %v", err)
	}
	beforeWord, err := tr.ReadWord(uintptr(before.IP))
	if err != nil {
		t.Fatalf("readword before injection: %v", err)
	}

	ret, err := tr.Syscall(uint64(unix.SYS_GETPID), [6]uint64{})
	if err != nil {
		t.Fatalf("injected getpid: %v", err)
	}
	if int(ret) != cmd.Process.Pid {
		t.Fatalf("injected getpid returned %d, want %d", ret, cmd.Process.Pid)
	}

	after, err := tr.GetRegisters()
	if err != nil {
		t.Fatalf("getregisters after injection: %v", err)
	}
	afterWord, err := tr.ReadWord(uintptr(after.IP))
	if err != nil {
		t.Fatalf("readword after injection: %v", err)
	}

	if after.IP != before.IP {
		t.Fatalf("IP not restored: got %#x, want %#x", after.IP, before.IP)
	}
	if after.AX != before.AX {
		t.Fatalf("AX not restored: got %#x, want %#x", after.AX, before.AX)
	}
	if afterWord != beforeWord {
		t.Fatalf("code word not restored: got %#x, want %#x", afterWord, beforeWord)
	}
}

func TestSyscallCheckedMapsErrno(t *testing.T) {
	tr, cmd := startTracee(t)
	defer stopTracee(t, tr, cmd)

	// close(-1) always fails with EBADF, giving a deterministic negative
	// return without touching any real resource.
	_, err := tr.SyscallChecked(uint64(unix.SYS_CLOSE), [6]uint64{^uint64(0)})
	if err == nil {
		t.Fatal("expected an error closing an invalid fd")
	}
	remoteErr, ok := err.(*RemoteSyscallError)
	if !ok {
		t.Fatalf("expected *RemoteSyscallError, got %T: %v", err, err)
	}
	if remoteErr.Errno != unix.EBADF {
		t.Fatalf("errno = %v, want EBADF", remoteErr.Errno)
	}
}
