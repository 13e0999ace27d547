package tracer

import "testing"

func TestBreakpointArmAndRestore(t *testing.T) {
	tr, cmd := startTracee(t)
	defer stopTracee(t, tr, cmd)

	regs, err := tr.GetRegisters()
	if err != nil {
		t.Fatalf("getregisters: %v", err)
	}
	addr := uintptr(regs.IP)

	original, err := tr.ReadWord(addr)
	if err != nil {
		t.Fatalf("readword: %v", err)
	}

	bp, err := ArmBreakpoint(tr, addr)
	if err != nil {
		t.Fatalf("arm: %v", err)
	}
	if bp.OriginalWord != original {
		t.Fatalf("breakpoint captured %#x, want %#x", bp.OriginalWord, original)
	}

	patched, err := tr.ReadWord(addr)
	if err != nil {
		t.Fatalf("readword after arm: %v", err)
	}
	if patched&0xFF != trapOpcode {
		t.Fatalf("low byte at %#x = %#x, want %#x", addr, patched&0xFF, trapOpcode)
	}
	if patched&^0xFF != original&^0xFF {
		t.Fatalf("arm touched more than the low byte: got %#x, want %#x", patched&^0xFF, original&^0xFF)
	}

	if err := tr.Resume(0); err != nil {
		t.Fatalf("resume into breakpoint: %v", err)
	}
	if err := tr.WaitForTrap(); err != nil {
		t.Fatalf("wait for breakpoint trap: %v", err)
	}

	hit, err := tr.GetRegisters()
	if err != nil {
		t.Fatalf("getregisters at trap: %v", err)
	}
	if uintptr(hit.IP) != addr+1 {
		t.Fatalf("trapped at IP %#x, want %#x", hit.IP, addr+1)
	}

	if err := bp.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}

	restored, err := tr.ReadWord(addr)
	if err != nil {
		t.Fatalf("readword after restore: %v", err)
	}
	if restored != original {
		t.Fatalf("restore left %#x, want original %#x", restored, original)
	}

	after, err := tr.GetRegisters()
	if err != nil {
		t.Fatalf("getregisters after restore: %v", err)
	}
	if after.IP != regs.IP {
		t.Fatalf("restore rewound IP to %#x, want %#x", after.IP, regs.IP)
	}
}
