package tracer

// trapOpcode is the int3 single-byte software breakpoint instruction,
// identical on i386 and x86-64.
const trapOpcode = 0xCC

// Breakpoint is a software breakpoint planted in a tracee's code. It is
// produced by Arm and consumed by Restore; between the two, the byte at
// Address in the tracee's memory is 0xCC and OriginalWord holds the
// pre-patch value of the machine word at Address.
//
// The engine does not itself synchronize concurrent breakpoints at the
// same address; callers are responsible for serializing arm/restore
// pairs against a given tracee.
type Breakpoint struct {
	Tracee       *Tracee
	Address      uintptr
	OriginalWord uintptr
}

// ArmBreakpoint reads the machine word at address, clears its lowest
// byte, ORs in 0xCC, and writes the result back.
func ArmBreakpoint(t *Tracee, address uintptr) (*Breakpoint, error) {
	original, err := t.ReadWord(address)
	if err != nil {
		return nil, err
	}
	patched := (original &^ 0xFF) | trapOpcode
	if err := t.WriteWord(address, patched); err != nil {
		return nil, err
	}
	return &Breakpoint{Tracee: t, Address: address, OriginalWord: original}, nil
}

// Restore writes the original word back and rewinds the tracee's
// instruction pointer by one, so the tracee re-executes the restored
// instruction on its next resume.
func (b *Breakpoint) Restore() error {
	if err := b.Tracee.WriteWord(b.Address, b.OriginalWord); err != nil {
		return err
	}
	regs, err := b.Tracee.GetRegisters()
	if err != nil {
		return err
	}
	regs.IP--
	return b.Tracee.SetRegisters(regs)
}
