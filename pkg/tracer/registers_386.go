//go:build 386

package tracer

import "syscall"

// toRegisters converts the kernel's i386 register layout to the
// architecture-neutral record.
func toRegisters(regs *syscall.PtraceRegs) Registers {
	return Registers{
		AX: uint64(uint32(regs.Eax)), BX: uint64(uint32(regs.Ebx)),
		CX: uint64(uint32(regs.Ecx)), DX: uint64(uint32(regs.Edx)),
		SI: uint64(uint32(regs.Esi)), DI: uint64(uint32(regs.Edi)),
		SP: uint64(uint32(regs.Esp)), BP: uint64(uint32(regs.Ebp)), IP: uint64(uint32(regs.Eip)),
		OrigAX: uint64(uint32(regs.Orig_eax)),
		Flags:  uint64(uint32(regs.Eflags)),
		DS:     uint64(uint32(regs.Xds)), ES: uint64(uint32(regs.Xes)),
		FS: uint64(uint32(regs.Xfs)), GS: uint64(uint32(regs.Xgs)),
		CS: uint64(uint32(regs.Xcs)), SS: uint64(uint32(regs.Xss)),
	}
}

// fromRegisters converts the architecture-neutral record back to the
// kernel's i386 register layout.
func fromRegisters(regs Registers) syscall.PtraceRegs {
	return syscall.PtraceRegs{
		Eax: int32(regs.AX), Ebx: int32(regs.BX), Ecx: int32(regs.CX), Edx: int32(regs.DX),
		Esi: int32(regs.SI), Edi: int32(regs.DI),
		Esp: int32(regs.SP), Ebp: int32(regs.BP), Eip: int32(regs.IP),
		Orig_eax: int32(regs.OrigAX),
		Eflags:   int32(regs.Flags),
		Xds:      int32(regs.DS), Xes: int32(regs.ES),
		Xfs: int32(regs.FS), Xgs: int32(regs.GS),
		Xcs: int32(regs.CS), Xss: int32(regs.SS),
	}
}
