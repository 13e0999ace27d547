//go:build 386

package tracer

import "golang.org/x/sys/unix"

// mmapSyscallNr is mmap2, not the legacy mmap: mmap2 takes its six
// arguments directly in registers (like amd64's mmap), where legacy
// mmap expects a pointer to an argument struct. mmapOffsetUnit is the
// page size mmap2's offset argument is scaled by.
const (
	mmapSyscallNr   = unix.SYS_MMAP2
	mmapOffsetUnit  = 4096
	munmapSyscallNr = unix.SYS_MUNMAP
	writeSyscallNr  = unix.SYS_WRITE
)

// syscallOpcodeWord is the i386 `int $0x80` instruction (bytes CD 80)
// packed as a little-endian 16-bit value, ready to be ORed into the
// low two bytes of a machine word read from the tracee.
const syscallOpcodeWord = 0x80cd

// setSyscallArgs loads the syscall number and the six ABI-defined
// argument registers for i386: bx, cx, dx, si, di, bp.
func setSyscallArgs(regs *Registers, nr uint64, args [6]uint64) {
	regs.AX = nr
	regs.BX = args[0]
	regs.CX = args[1]
	regs.DX = args[2]
	regs.SI = args[3]
	regs.DI = args[4]
	regs.BP = args[5]
}
