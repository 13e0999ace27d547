package tracer

import (
	"syscall"
	"testing"
)

func TestRegistersRoundTrip(t *testing.T) {
	want := Registers{
		AX: 1, BX: 2, CX: 3, DX: 4,
		SI: 5, DI: 6,
		SP: 7, BP: 8, IP: 9,
		OrigAX: 10,
		Flags:  0x246,
		DS:     11, ES: 12, FS: 13, GS: 14,
		CS: 15, SS: 16,
	}

	var impl syscall.PtraceRegs
	impl = fromRegisters(want)
	got := toRegisters(&impl)

	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestRegistersZeroValue(t *testing.T) {
	var regs Registers
	impl := fromRegisters(regs)
	back := toRegisters(&impl)
	if back != regs {
		t.Fatalf("zero value did not round trip: got %+v", back)
	}
}
