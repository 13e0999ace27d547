//go:build amd64

package tracer

import "golang.org/x/sys/unix"

// mmapSyscallNr and mmapOffsetUnit let callers that need to inject an
// mmap remotely do so without caring whether the target architecture
// wants a byte offset (amd64) or a page-shifted one (386's mmap2, see
// syscall_386.go).
const (
	mmapSyscallNr   = unix.SYS_MMAP
	mmapOffsetUnit  = 1
	munmapSyscallNr = unix.SYS_MUNMAP
	writeSyscallNr  = unix.SYS_WRITE
)

// syscallOpcodeWord is the x86-64 `syscall` instruction (bytes 0F 05)
// packed as a little-endian 16-bit value, ready to be ORed into the
// low two bytes of a machine word read from the tracee.
const syscallOpcodeWord = 0x050f

// setSyscallArgs loads the syscall number and the six ABI-defined
// argument registers for x86-64: di, si, dx, r10, r8, r9.
func setSyscallArgs(regs *Registers, nr uint64, args [6]uint64) {
	regs.AX = nr
	regs.DI = args[0]
	regs.SI = args[1]
	regs.DX = args[2]
	regs.R10 = args[3]
	regs.R8 = args[4]
	regs.R9 = args[5]
}
