package tracer

import "sync"

// trapAnchorInit is implemented in architecture-specific assembly. It
// executes a short call/int3/pop sequence: the call skips over the
// int3 byte, so int3 is never actually executed, but the address it
// would have trapped at — pushed onto the stack as the call's return
// address — is popped and returned. The int3 byte remains in this
// process's text for the lifetime of the process; it is the anchor
// SandboxedCall redirects a forked child's return address to.
func trapAnchorInit() uintptr

var (
	trapAnchorOnce sync.Once
	trapAnchorAddr uintptr
)

// TrapAnchor returns the address of a fixed int3 instruction embedded
// in this process's own text segment. It is computed once, the first
// time it is needed, and is stable across every subsequent call.
func TrapAnchor() uintptr {
	trapAnchorOnce.Do(func() {
		trapAnchorAddr = trapAnchorInit()
	})
	return trapAnchorAddr
}
