package tracer

import (
	"os/exec"
	"runtime"
	"testing"
)

// startTracee launches a long-lived, otherwise idle child process and
// seizes it, locking the calling goroutine to its OS thread for the
// duration (ptrace requests against one tracee must all come from the
// same thread). It returns the attached Tracee and the *exec.Cmd
// backing it; callers should defer stopTracee, which detaches, kills and
// reaps the child and unlocks the thread.
func startTracee(t *testing.T) (*Tracee, *exec.Cmd) {
	t.Helper()

	runtime.LockOSThread()

	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		runtime.UnlockOSThread()
		t.Skipf("could not start helper process: %v", err)
	}

	tr := New(cmd.Process.Pid)
	if err := tr.Attach(); err != nil {
		cmd.Process.Kill()
		runtime.UnlockOSThread()
		t.Skipf("ptrace attach unavailable in this environment: %v", err)
	}
	if err := tr.Interrupt(); err != nil {
		cmd.Process.Kill()
		runtime.UnlockOSThread()
		t.Fatalf("interrupt: %v", err)
	}
	if err := tr.WaitForTrap(); err != nil {
		cmd.Process.Kill()
		runtime.UnlockOSThread()
		t.Fatalf("wait for initial stop: %v", err)
	}

	return tr, cmd
}

func stopTracee(t *testing.T, tr *Tracee, cmd *exec.Cmd) {
	t.Helper()
	_ = tr.Detach()
	_ = cmd.Process.Kill()
	_ = cmd.Wait()
	runtime.UnlockOSThread()
}
