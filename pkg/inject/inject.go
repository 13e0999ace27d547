// Package inject implements the remote-write demonstration built on
// top of pkg/tracer: it pushes an arbitrary byte buffer into one of a
// running process's open file descriptors without that process's
// cooperation, by remotely driving mmap, write, and munmap inside it.
package inject

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"remex/pkg/tracer"
)

// WriteFD attaches to pid, stops it, and writes data into the open
// file descriptor fd inside it. On success the tracee is detached and
// left running before WriteFD returns. A failure after the attach
// returns without detaching; a failed write unmaps the remote buffer
// first.
func WriteFD(pid int, fd int, data []byte, log tracer.Logger) error {
	if log == nil {
		log = tracer.NopLogger{}
	}

	// ptrace binds the tracer relationship to the calling OS thread; every
	// request in this sequence must originate from the same thread that
	// attached, so the whole sequence runs locked to one thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	t := tracer.New(pid)

	log.Log("attaching to pid %d", pid)
	if err := t.Attach(); err != nil {
		return fmt.Errorf("inject: attach: %w", err)
	}

	log.Log("stopping pid %d", pid)
	if err := tracer.Kill(pid, unix.SIGSTOP); err != nil {
		return fmt.Errorf("inject: stop: %w", err)
	}
	if err := t.WaitForTrap(); err != nil {
		return fmt.Errorf("inject: wait for stop: %w", err)
	}

	length := uintptr(len(data))

	log.Log("mapping %d bytes in target", length)
	mapAddr, err := t.SyscallChecked(tracer.SyscallMmap, [6]uint64{
		0,
		uint64(length),
		unix.PROT_READ | unix.PROT_WRITE,
		unix.MAP_PRIVATE | unix.MAP_ANONYMOUS,
		0, // fd, ignored by the kernel for an anonymous mapping
		0,
	})
	if err != nil {
		return fmt.Errorf("inject: mmap: %w", err)
	}
	addr := uintptr(mapAddr)

	log.Log("copying buffer to remote address %#x", addr)
	if err := t.MemcpyTo(addr, data); err != nil {
		return fmt.Errorf("inject: copy buffer: %w", err)
	}

	var written uintptr
	for written < length {
		remaining := length - written
		ret, err := t.Syscall(tracer.SyscallWrite, [6]uint64{
			uint64(fd),
			uint64(addr + written),
			uint64(remaining),
			0, 0, 0,
		})
		if err != nil {
			_, _ = t.Syscall(tracer.SyscallMunmap, [6]uint64{uint64(addr), uint64(length), 0, 0, 0, 0})
			return fmt.Errorf("inject: write: %w", err)
		}
		if ret < 0 {
			errno := unix.Errno(-ret)
			if errno == unix.EAGAIN || errno == unix.EWOULDBLOCK {
				continue
			}
			_, _ = t.Syscall(tracer.SyscallMunmap, [6]uint64{uint64(addr), uint64(length), 0, 0, 0, 0})
			return fmt.Errorf("inject: write: %w", &tracer.RemoteSyscallError{PID: pid, Syscall: tracer.SyscallWrite, Errno: errno})
		}
		written += uintptr(ret)
		log.Log("wrote %d/%d bytes", written, length)
	}

	log.Log("unmapping remote buffer")
	if _, err := t.SyscallChecked(tracer.SyscallMunmap, [6]uint64{uint64(addr), uint64(length), 0, 0, 0, 0}); err != nil {
		return fmt.Errorf("inject: munmap: %w", err)
	}

	log.Log("detaching from pid %d", pid)
	if err := t.Detach(); err != nil {
		return fmt.Errorf("inject: detach: %w", err)
	}

	return nil
}
