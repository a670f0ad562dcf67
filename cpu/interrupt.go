package cpu

// InterruptController tracks the CPU's view of NMI, IRQ, RESET, and RDY.
// NMI is edge-triggered, IRQ is level-triggered and sampled only while
// P.I is clear, and RESET forces the next opcode fetch to materialize as
// a BRK with all stack writes turned into aborted (read) cycles.
type InterruptController struct {
	nmiLine     bool
	lastNMILine bool
	nmiDetected bool
	handleNMI   bool

	irqLine   bool
	handleIRQ bool

	abortPending bool

	isReset bool

	rdyLow bool
}

// SetNMILine sets the live NMI input level. Edge detection happens on the
// next sampling point (Phi2), per the real rising-edge latch.
func (c *CPU) SetNMILine(asserted bool) {
	c.irqc.nmiLine = asserted
}

// SetIRQLine sets the live, level-sensitive IRQ input.
func (c *CPU) SetIRQLine(asserted bool) {
	c.irqc.irqLine = asserted
}

// SetRDY pauses (true) or releases (false) the CPU on read cycles. Write
// cycles always complete even while RDY is held low, matching hardware.
func (c *CPU) SetRDY(low bool) {
	c.irqc.rdyLow = low
}

// AssertReset requests a CPU reset: the next opcode fetch becomes a BRK
// whose pushes are aborted (turned into reads) and whose vector is the
// RESET vector.
func (c *CPU) AssertReset() {
	c.irqc.isReset = true
}

// AssertAbort requests an ABORT entry at the next instruction boundary.
// ABORT is raised by Bus A accessors/mappers (not a CPU pin a program
// can mask) so it is latched rather than level- or edge-sampled like
// IRQ/NMI; it ranks below RESET but above NMI, matching the real
// part's priority encoder.
func (c *CPU) AssertAbort() {
	c.irqc.abortPending = true
}

// sampleNMI latches a rising edge on the NMI line. Called once per Phi2.
func (c *CPU) sampleNMI() {
	if c.irqc.nmiLine && !c.irqc.lastNMILine {
		c.irqc.nmiDetected = true
	}
	c.irqc.lastNMILine = c.irqc.nmiLine
}

// latchPendingInterrupts promotes edge/level detections into "handle"
// flags at an instruction boundary (the Phi1 that concludes an
// instruction), per the ordering guarantee that interrupt edges visible
// at Phi2 become pending no earlier than the next Phi1.
func (c *CPU) latchPendingInterrupts() {
	if c.irqc.nmiDetected {
		c.irqc.handleNMI = true
		c.irqc.nmiDetected = false
	}
	if c.irqc.irqLine && c.state.Regs.P&FlagI == 0 {
		c.irqc.handleIRQ = true
	}
}

// pendingCause resolves the highest-priority pending interrupt cause,
// honoring RESET > ABORT > NMI > IRQ. Software BRK/COP are not modeled
// here: they are selected directly by the BRK/COP opcode handlers.
func (c *CPU) pendingCause() interruptCause {
	switch {
	case c.irqc.isReset:
		return causeReset
	case c.irqc.abortPending:
		return causeAbort
	case c.irqc.handleNMI:
		return causeNMI
	case c.irqc.handleIRQ:
		return causeIRQ
	default:
		return causeNone
	}
}

// clearCause drops the pending flag for a cause once its vector has been
// sampled, except RESET, which enterInterrupt clears itself once the
// RESET vector has been loaded.
func (c *CPU) clearCause(cause interruptCause) {
	switch cause {
	case causeAbort:
		c.irqc.abortPending = false
	case causeNMI:
		c.irqc.handleNMI = false
	case causeIRQ:
		c.irqc.handleIRQ = false
	}
}
