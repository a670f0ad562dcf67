// Package cpu implements the Ricoh 5A22's 65C816-derived core: the
// register file, the emulation/native instruction set, interrupt and
// RESET sequencing, and a cycle-by-cycle bus trace suitable for
// hardware-validated single-step verification.
package cpu

import "github.com/sfc-emu/ricoh5a22/bus"

// Bus is the subset of Bus A the core needs. Kept as an interface so
// tests can swap in a bare-bones fake without pulling in the bus
// package's speed-table machinery.
type Bus interface {
	Read(addr uint16, bank uint8) (value uint8, speed uint8)
	Write(addr uint16, bank uint8, val uint8) (speed uint8)
	ReadBank0(addr uint16) (value uint8, speed uint8)
	WriteBank0(addr uint16, val uint8) (speed uint8)
	SpeedAt(addr uint16, bank uint8) uint8
	DataBus() uint8
	SetDataBus(v uint8)
}

var _ Bus = (*bus.BusA)(nil)

// CPU is one 5A22 core: registers, the interrupt/RDY controller, the
// running clock, and a reference to Bus A.
type CPU struct {
	bus      Bus
	state    execState
	irqc     InterruptController
	clock    Clock
	observer CycleObserver
}

// New builds a CPU wired to the given bus. The core starts in
// emulation mode with RESET asserted; the first Step performs the
// RESET sequence.
func New(b Bus) *CPU {
	c := &CPU{bus: b}
	c.state.E = true
	c.state.allowPCWrite = true
	c.AssertReset()
	return c
}

// SetObserver installs (or clears, with nil) the cycle-trace observer.
func (c *CPU) SetObserver(obs CycleObserver) { c.observer = obs }

// Clock exposes the running cycle/master-clock counters.
func (c *CPU) Clock() *Clock { return &c.clock }

// Registers returns a copy of the live register file.
func (c *CPU) Registers() Registers { return c.state.Regs }

// SetRegisters overwrites the live register file. Used by the
// verification harness to seed an initial state.
func (c *CPU) SetRegisters(r Registers) { c.state.Regs = r }

// Emulation reports whether the core is in 6502-emulation mode.
func (c *CPU) Emulation() bool { return c.state.E }

// SetEmulation forces the E flag outside of XCE, again for harness seeding.
func (c *CPU) SetEmulation(e bool) {
	c.state.E = e
	if e {
		c.state.Regs.S = 0x0100 | (c.state.Regs.S & 0x00FF)
		c.state.Regs.P |= FlagM | FlagX
		c.clampIndexHighBytes()
	}
}

// Step runs exactly one instruction (or one interrupt-entry sequence,
// or one RESET sequence) to completion, emitting one CycleEvent per
// bus/internal cycle through the installed observer. This fuses the
// Phi1/Phi2 half-cycle model into a single call per the allowance that
// the two phases may be combined when nothing outside the core needs
// to observe mid-instruction state.
func (c *CPU) Step() {
	c.sampleNMI()
	c.latchPendingInterrupts()

	if c.irqc.rdyLow {
		// RDY only pauses read cycles; the opcode fetch that would
		// start either the next instruction or an interrupt entry is
		// always a read, so the whole Step stalls here. IRQ/NMI
		// sampling above still ran, per the controller's contract.
		c.internalCycle()
		return
	}

	if cause := c.pendingCause(); cause != causeNone {
		c.enterInterrupt(cause)
		return
	}

	opcode := c.fetchOperandByte()
	c.state.opcode = opcode
	c.execute(opcode)
	c.updateDeferred()
}
