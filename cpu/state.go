package cpu

// execState is everything a micro-op can read or modify while executing
// one instruction. It is kept as a single plain value so that a DMA
// hijack can snapshot and restore it with a bit-for-bit struct copy; no
// pointers back into the CPU live inside it, so the active micro-op
// sequence is always re-derived from opcode and E rather than carried by
// reference (see CPU.Snapshot / CPU.Restore).
type execState struct {
	Regs Registers
	E    bool // emulation-mode flag; logically separate from P

	opcode    uint8
	funcIndex uint8

	operand uint16 // scratch operand
	address uint16 // scratch effective address
	pointer uint16 // scratch indirect pointer
	bank    uint8  // scratch bank for long addressing

	pcDelta uint16 // deferred PC adjustment, applied at the next Phi1
	sDelta  int16  // deferred S adjustment, applied at the next Phi1

	boundaryCrossed bool
	pushB           bool // push the B/Break bit with status during BRK/PHP
	allowPCWrite    bool // false during RESET's fake fetch cycles
	takeJump        bool

	cause interruptCause // active interrupt cause for the in-flight BRK-shaped sequence
}

// Snapshot returns a value copy of the CPU's full execution state,
// suitable for later restoring via Restore. Used by DMA/HDMA hijacking:
// the host snapshots state at the start of the first read cycle it
// interrupts, advances the master clock for the DMA transfer, and
// restores afterward so the interrupted instruction resumes bit-exactly.
func (c *CPU) Snapshot() State {
	return State{s: c.state}
}

// Restore installs a previously captured Snapshot.
func (c *CPU) Restore(snap State) {
	c.state = snap.s
}

// State is an opaque, copyable snapshot of CPU execution state.
type State struct {
	s execState
}

func (c *CPU) updateDeferred() {
	if c.state.allowPCWrite {
		c.state.Regs.PC += c.state.pcDelta
	}
	c.state.pcDelta = 0
	c.state.Regs.S = uint16(int32(c.state.Regs.S) + int32(c.state.sDelta))
	c.state.sDelta = 0
}
