package inject

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"
)

func TestWriteFDDeliversBytesToTargetPipe(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()

	cmd := exec.Command("sleep", "30")
	cmd.ExtraFiles = []*os.File{w}
	if err := cmd.Start(); err != nil {
		t.Skipf("could not start helper process: %v", err)
	}
	defer cmd.Process.Kill()
	w.Close()

	// The pipe's write end lands at fd 3 in the child: stdin, stdout,
	// and stderr occupy 0-2, and ExtraFiles are appended after them.
	const targetFD = 3

	want := []byte("hello from the controller")
	if err := WriteFD(cmd.Process.Pid, targetFD, want, nil); err != nil {
		t.Skipf("remote write unavailable in this environment: %v", err)
	}

	r.SetReadDeadline(time.Now().Add(5 * time.Second))
	got := make([]byte, len(want))
	if _, err := io.ReadFull(r, got); err != nil {
		t.Fatalf("reading back injected bytes: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteFDRejectsDeadTarget(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cmd := exec.Command("true")
	if err := cmd.Start(); err != nil {
		t.Skipf("could not start helper process: %v", err)
	}
	cmd.Wait()

	if err := WriteFD(cmd.Process.Pid, 1, []byte("x"), nil); err == nil {
		t.Fatal("expected an error injecting into an already-exited process")
	}
}
