//go:build amd64

package tracer

import "syscall"

// toRegisters converts the kernel's x86-64 register layout to the
// architecture-neutral record.
func toRegisters(regs *syscall.PtraceRegs) Registers {
	return Registers{
		AX: regs.Rax, BX: regs.Rbx, CX: regs.Rcx, DX: regs.Rdx,
		SI: regs.Rsi, DI: regs.Rdi,
		SP: regs.Rsp, BP: regs.Rbp, IP: regs.Rip,
		OrigAX: regs.Orig_rax,
		Flags:  regs.Eflags,
		DS:     regs.Ds, ES: regs.Es, FS: regs.Fs, GS: regs.Gs,
		CS: regs.Cs, SS: regs.Ss,
		R8: regs.R8, R9: regs.R9, R10: regs.R10, R11: regs.R11,
		R12: regs.R12, R13: regs.R13, R14: regs.R14, R15: regs.R15,
		FSBase: regs.Fs_base, GSBase: regs.Gs_base,
	}
}

// fromRegisters converts the architecture-neutral record back to the
// kernel's x86-64 register layout.
func fromRegisters(regs Registers) syscall.PtraceRegs {
	return syscall.PtraceRegs{
		Rax: regs.AX, Rbx: regs.BX, Rcx: regs.CX, Rdx: regs.DX,
		Rsi: regs.SI, Rdi: regs.DI,
		Rsp: regs.SP, Rbp: regs.BP, Rip: regs.IP,
		Orig_rax: regs.OrigAX,
		Eflags:   regs.Flags,
		Ds:       regs.DS, Es: regs.ES, Fs: regs.FS, Gs: regs.GS,
		Cs: regs.CS, Ss: regs.SS,
		R8: regs.R8, R9: regs.R9, R10: regs.R10, R11: regs.R11,
		R12: regs.R12, R13: regs.R13, R14: regs.R14, R15: regs.R15,
		Fs_base: regs.FSBase, Gs_base: regs.GSBase,
	}
}
