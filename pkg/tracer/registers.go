package tracer

// Registers is an architecture-neutral record of the general-purpose
// registers of a traced process. It is a plain value type: two copies
// compare by field, with no hidden identity.
//
// On i386, R8-R15, FSBase and GSBase are always zero; only x86-64
// populates them. Every field is a machine word of the traced process's
// architecture, widened to uint64 so a single type can represent both.
type Registers struct {
	AX, BX, CX, DX uint64
	SI, DI         uint64
	SP, BP, IP     uint64
	OrigAX         uint64
	Flags          uint64
	DS, ES, FS, GS uint64
	CS, SS         uint64

	// x86-64 only.
	R8, R9, R10, R11, R12, R13, R14, R15 uint64
	FSBase, GSBase                       uint64
}
