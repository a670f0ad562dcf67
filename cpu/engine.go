package cpu

import "log"

// enterInterrupt runs a BRK-shaped entry sequence for RESET, NMI, or
// IRQ: two bytes that would be the operand of a software BRK are
// instead dummy-fetched (RESET) or skipped (hardware interrupts), P
// and PC/PBR are pushed (RESET's pushes are aborted into reads), and
// PC is loaded from the cause's vector.
func (c *CPU) enterInterrupt(cause interruptCause) {
	reset := cause == causeReset
	vector, pushB := selectVector(cause, c.state.E)

	if cause == causeAbort {
		// ABORT is a fault raised by the bus, not a routine vector
		// entry; log it the way a bus/address fault is logged elsewhere.
		log.Printf("[5a22] abort at PC=%02x:%04x", c.state.Regs.PBR, c.state.Regs.PC)
	}

	switch {
	case reset:
		// Two dummy opcode-fetch-shaped reads, matching the real
		// part's forced-BRK fetch before the bus turns around.
		c.state.allowPCWrite = false
		c.readData(c.state.Regs.PBR, c.state.Regs.PC)
		c.readData(c.state.Regs.PBR, c.state.Regs.PC)
	case cause == causeBRK || cause == causeCOP:
		// The opcode byte and the signature byte were already
		// fetched as real reads by opBRK/opCOP before this call.
	default:
		// NMI/IRQ never ran an opcode fetch; burn the two cycles the
		// hardware spends attempting one before the vector read.
		c.internalCycle()
		c.internalCycle()
	}

	if reset {
		// RESET forces emulation mode: 3 aborted pushes, same as any
		// other emulation-mode entry (no PBR push).
		c.SetEmulation(true)
		c.pushAborted(hiByte(c.state.Regs.PC))
		c.pushAborted(lowByte(c.state.Regs.PC))
		c.pushAborted(c.state.Regs.P)
	} else if c.state.E {
		c.push8(hiByte(c.state.Regs.PC))
		c.push8(lowByte(c.state.Regs.PC))
		c.push8(c.statusForPush(!pushB))
	} else {
		c.push8(c.state.Regs.PBR)
		c.push8(hiByte(c.state.Regs.PC))
		c.push8(lowByte(c.state.Regs.PC))
		c.push8(c.state.Regs.P) // native mode has no B bit to fold in
	}

	c.state.Regs.P |= FlagI
	c.state.Regs.P &^= FlagD
	c.state.Regs.PBR = 0
	c.state.Regs.PC = c.read16Bank0(vector)

	if reset {
		c.irqc.isReset = false
		c.state.allowPCWrite = true
	} else {
		c.clearCause(cause)
	}
}

// statusForPush folds in the B flag per hardware/software BRK
// distinction; hardware interrupts always push B clear.
func (c *CPU) statusForPush(hardware bool) uint8 {
	p := c.state.Regs.P
	if hardware {
		p &^= FlagX // B/Break bit shares position 0x10 with X; cleared for hw IRQ/NMI
	} else {
		p |= FlagX
	}
	return p
}

func lowByte(v uint16) uint8 { return uint8(v) }

// push8/pull8/push16/pull16 move one or two bytes across the stack,
// honoring the emulation-mode stack-page pin (S always 0x01xx).
func (c *CPU) push8(v uint8) {
	addr := c.state.Regs.S
	c.writeBank0(addr, v)
	c.state.Regs.S--
	if c.state.E {
		c.state.Regs.S = 0x0100 | (c.state.Regs.S & 0x00FF)
	}
}

func (c *CPU) pushAborted(v uint8) {
	addr := c.state.Regs.S
	c.readBank0(addr) // aborted push: read-only, per RESET's forced sequence
	c.state.Regs.S--
	if c.state.E {
		c.state.Regs.S = 0x0100 | (c.state.Regs.S & 0x00FF)
	}
}

func (c *CPU) pull8() uint8 {
	c.state.Regs.S++
	if c.state.E {
		c.state.Regs.S = 0x0100 | (c.state.Regs.S & 0x00FF)
	}
	return c.readBank0(c.state.Regs.S)
}

func (c *CPU) push16(v uint16) {
	c.push8(hiByte(v))
	c.push8(lowByte(v))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// loadOperand dereferences whatever resolveAddress left behind,
// honoring the instruction's operating width.
func (c *CPU) loadOperand(kind valueKind, wide bool) uint16 {
	if kind == valAccumulator {
		return c.state.Regs.A
	}
	lo := c.readData(c.state.bank, c.state.address)
	if !wide {
		return uint16(lo)
	}
	hi := c.readData(c.state.bank, c.state.address+1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) storeOperand(kind valueKind, wide bool, v uint16) {
	if kind == valAccumulator {
		if wide {
			c.state.Regs.A = v
		} else {
			c.state.Regs.SetAL(uint8(v))
		}
		return
	}
	c.writeData(c.state.bank, c.state.address, uint8(v))
	if wide {
		c.writeData(c.state.bank, c.state.address+1, uint8(v>>8))
	}
}

// readOp resolves mode, loads the operand at the accumulator's width,
// and hands it to fn, which is responsible for flags.
func (c *CPU) readOp(mode AddrMode, fn func(uint16)) {
	kind := c.resolveAddress(mode)
	if mode == ModeImmediateM {
		fn(c.state.operand)
		return
	}
	wide := !c.accumWidthIs8()
	if c.payBoundaryReadCycle(mode) {
		c.internalCycle()
	}
	fn(c.loadOperand(kind, wide))
}

// readOpX is readOp for instructions sized by the index-register width
// (CPX/CPY/LDX/LDY).
func (c *CPU) readOpX(mode AddrMode, fn func(uint16)) {
	kind := c.resolveAddress(mode)
	if mode == ModeImmediateX {
		fn(c.state.operand)
		return
	}
	wide := !c.indexWidthIs8()
	if c.payBoundaryReadCycle(mode) {
		c.internalCycle()
	}
	fn(c.loadOperand(kind, wide))
}

func (c *CPU) payBoundaryReadCycle(mode AddrMode) bool {
	if !c.state.boundaryCrossed {
		return false
	}
	switch mode {
	case ModeAbsoluteX, ModeAbsoluteY, ModeDirectPageIndirectY:
		return c.indexWidthIs8()
	}
	return false
}

func (c *CPU) writeOp(mode AddrMode, value func() uint16) {
	kind := c.resolveAddress(mode)
	wide := !c.accumWidthIs8()
	c.storeOperand(kind, wide, value())
}

func (c *CPU) rmwOp(mode AddrMode, fn func(uint16) uint16) {
	kind := c.resolveAddress(mode)
	wide := !c.accumWidthIs8()
	v := c.loadOperand(kind, wide)
	if kind == valMemory {
		// RMW always re-drives the operand address once before the
		// write, an idle bus cycle on real hardware.
		if wide {
			c.internalCycle()
		} else {
			c.internalCycle()
		}
	}
	result := fn(v)
	c.storeOperand(kind, wide, result)
}
