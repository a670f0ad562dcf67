package cpu

// AddrMode identifies one of the 65C816's addressing modes. It drives
// both the micro-op prefix spliced ahead of an opcode's semantic step
// and, for informational/debugging purposes, the instruction table's
// static metadata.
type AddrMode uint8

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediateM // immediate, width tracks the M flag (8-bit ops and A)
	ModeImmediateX // immediate, width tracks the X flag (X/Y ops)
	ModeImmediate8 // always a single 8-bit immediate byte (REP/SEP/COP/WDM)
	ModeDirectPage
	ModeDirectPageX
	ModeDirectPageY
	ModeDirectPageIndirect
	ModeDirectPageIndirectLong
	ModeDirectPageIndirectX
	ModeDirectPageIndirectY
	ModeDirectPageIndirectLongY
	ModeStackRelative
	ModeStackRelativeIndirectY
	ModeAbsolute
	ModeAbsoluteLong
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsoluteLongX
	ModeAbsoluteIndirect     // JMP (addr)
	ModeAbsoluteIndirectLong // JML [addr]
	ModeAbsoluteIndirectX    // JMP (addr,X) / JSR (addr,X)
	ModeRelative8
	ModeRelativeLong
	ModeBlockMove
	ModeStackPEA
	ModeStackPEI
	ModeStackPER
)

// valueKind tells the opcode-category suffix (read/write/RMW) where the
// operand lives once the addressing-mode prefix has run.
type valueKind uint8

const (
	valAccumulator valueKind = iota
	valMemory
)

// directPageExtraCycle reports whether D.l != 0, which costs the
// addressing mode one extra internal cycle to fold into the base.
func (c *CPU) directPageExtraCycle() bool {
	return c.state.Regs.DL() != 0
}

// internalCycle appends a bus-inactive cycle costed at the speed of the
// current PBR:PC page.
func (c *CPU) internalCycle() {
	speed := c.bus.SpeedAt(c.state.Regs.PC, c.state.Regs.PBR)
	c.clock.Advance(speed)
	c.emit(CycleEvent{Tag: CycleInternal})
}

// fetchOperandByte reads the next byte at PC:PBR and advances PC.
func (c *CPU) fetchOperandByte() uint8 {
	v, speed := c.bus.Read(c.state.Regs.PC, c.state.Regs.PBR)
	c.clock.Advance(speed)
	c.emit(CycleEvent{Addr24: addr24(c.state.Regs.PBR, c.state.Regs.PC), Value: v, Tag: CycleRead})
	c.state.Regs.PC++
	return v
}

func addr24(bank uint8, addr uint16) uint32 {
	return uint32(bank)<<16 | uint32(addr)
}

// readData reads one data byte at (bank,addr), recording it as a
// CycleRead.
func (c *CPU) readData(bank uint8, addr uint16) uint8 {
	v, speed := c.bus.Read(addr, bank)
	c.clock.Advance(speed)
	c.emit(CycleEvent{Addr24: addr24(bank, addr), Value: v, Tag: CycleRead})
	return v
}

func (c *CPU) writeData(bank uint8, addr uint16, v uint8) {
	speed := c.bus.Write(addr, bank, v)
	c.clock.Advance(speed)
	c.emit(CycleEvent{Addr24: addr24(bank, addr), Value: v, Tag: CycleWrite})
}

func (c *CPU) readBank0(addr uint16) uint8 {
	v, speed := c.bus.ReadBank0(addr)
	c.clock.Advance(speed)
	c.emit(CycleEvent{Addr24: uint32(addr), Value: v, Tag: CycleRead})
	return v
}

func (c *CPU) writeBank0(addr uint16, v uint8) {
	speed := c.bus.WriteBank0(addr, v)
	c.clock.Advance(speed)
	c.emit(CycleEvent{Addr24: uint32(addr), Value: v, Tag: CycleWrite})
}

// read16 / read24 read a little-endian 16/24-bit value starting at
// (bank,addr), each byte a separate bus cycle.
func (c *CPU) read16(bank uint8, addr uint16) uint16 {
	lo := c.readData(bank, addr)
	hi := c.readData(bank, addr+1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) read16Bank0(addr uint16) uint16 {
	lo := c.readBank0(addr)
	hi := c.readBank0(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// emit forwards a cycle event to the installed observer, if any.
func (c *CPU) emit(ev CycleEvent) {
	if c.observer != nil {
		c.observer(ev)
	}
}

// resolveAddress runs the addressing-mode prefix for info, leaving the
// effective address in c.state.address/c.state.bank (memory modes) or
// marking valAccumulator (accumulator mode). Size/immediate-width modes
// leave the fetched operand in c.state.operand instead.
func (c *CPU) resolveAddress(mode AddrMode) valueKind {
	r := &c.state.Regs
	switch mode {
	case ModeImplied:
		return valMemory // unused by implied opcodes

	case ModeAccumulator:
		return valAccumulator

	case ModeImmediateM:
		lo := c.fetchOperandByte()
		if c.accumWidthIs8() {
			c.state.operand = uint16(lo)
		} else {
			hi := c.fetchOperandByte()
			c.state.operand = uint16(hi)<<8 | uint16(lo)
		}
		return valMemory

	case ModeImmediateX:
		lo := c.fetchOperandByte()
		if c.indexWidthIs8() {
			c.state.operand = uint16(lo)
		} else {
			hi := c.fetchOperandByte()
			c.state.operand = uint16(hi)<<8 | uint16(lo)
		}
		return valMemory

	case ModeImmediate8:
		c.state.operand = uint16(c.fetchOperandByte())
		return valMemory

	case ModeDirectPage:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		c.state.address = r.D + dp
		c.state.bank = 0
		return valMemory

	case ModeDirectPageX:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		c.internalCycle()
		c.state.address = r.D + dp + r.X
		c.state.bank = 0
		return valMemory

	case ModeDirectPageY:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		c.internalCycle()
		c.state.address = r.D + dp + r.Y
		c.state.bank = 0
		return valMemory

	case ModeDirectPageIndirect:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		ptr := r.D + dp
		c.state.address = c.read16Bank0(ptr)
		c.state.bank = r.DBR
		return valMemory

	case ModeDirectPageIndirectLong:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		ptr := r.D + dp
		lo := c.readBank0(ptr)
		hi := c.readBank0(ptr + 1)
		bank := c.readBank0(ptr + 2)
		c.state.address = uint16(hi)<<8 | uint16(lo)
		c.state.bank = bank
		return valMemory

	case ModeDirectPageIndirectX:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		c.internalCycle()
		ptr := r.D + dp + r.X
		c.state.address = c.read16Bank0(ptr)
		c.state.bank = r.DBR
		return valMemory

	case ModeDirectPageIndirectY:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		ptr := r.D + dp
		base := c.read16Bank0(ptr)
		eff := base + r.Y
		c.state.boundaryCrossed = hiByte(base) != hiByte(eff)
		c.state.address = eff
		c.state.bank = r.DBR
		return valMemory

	case ModeDirectPageIndirectLongY:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		ptr := r.D + dp
		lo := c.readBank0(ptr)
		hi := c.readBank0(ptr + 1)
		bank := c.readBank0(ptr + 2)
		base := uint16(hi)<<8 | uint16(lo)
		eff := base + r.Y
		c.state.address = eff
		c.state.bank = bank
		return valMemory

	case ModeStackRelative:
		off := uint16(c.fetchOperandByte())
		c.internalCycle()
		c.state.address = r.S + off
		c.state.bank = 0
		return valMemory

	case ModeStackRelativeIndirectY:
		off := uint16(c.fetchOperandByte())
		c.internalCycle()
		ptr := r.S + off
		base := c.read16Bank0(ptr)
		c.internalCycle()
		c.state.address = base + r.Y
		c.state.bank = r.DBR
		return valMemory

	case ModeAbsolute:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		c.state.address = uint16(hi)<<8 | uint16(lo)
		c.state.bank = r.DBR
		return valMemory

	case ModeAbsoluteLong:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		bank := c.fetchOperandByte()
		c.state.address = uint16(hi)<<8 | uint16(lo)
		c.state.bank = bank
		return valMemory

	case ModeAbsoluteX:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		base := uint16(hi)<<8 | uint16(lo)
		eff := base + r.X
		c.state.boundaryCrossed = hiByte(base) != hiByte(eff)
		c.state.address = eff
		c.state.bank = r.DBR
		return valMemory

	case ModeAbsoluteY:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		base := uint16(hi)<<8 | uint16(lo)
		eff := base + r.Y
		c.state.boundaryCrossed = hiByte(base) != hiByte(eff)
		c.state.address = eff
		c.state.bank = r.DBR
		return valMemory

	case ModeAbsoluteLongX:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		bank := c.fetchOperandByte()
		c.state.address = uint16(hi)<<8 | uint16(lo) + r.X
		c.state.bank = bank
		return valMemory

	case ModeAbsoluteIndirect:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		ptr := uint16(hi)<<8 | uint16(lo)
		c.state.address = c.read16Bank0(ptr)
		c.state.bank = 0
		return valMemory

	case ModeAbsoluteIndirectLong:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		ptr := uint16(hi)<<8 | uint16(lo)
		pl := c.readBank0(ptr)
		ph := c.readBank0(ptr + 1)
		pb := c.readBank0(ptr + 2)
		c.state.address = uint16(ph)<<8 | uint16(pl)
		c.state.bank = pb
		return valMemory

	case ModeAbsoluteIndirectX:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		base := uint16(hi)<<8 | uint16(lo)
		ptr := base + r.X
		c.internalCycle()
		c.state.address = c.read16(r.PBR, ptr)
		c.state.bank = r.PBR
		return valMemory

	case ModeRelative8:
		off := c.fetchOperandByte()
		c.state.operand = uint16(int16(int8(off)))
		return valMemory

	case ModeRelativeLong:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		c.state.operand = uint16(hi)<<8 | uint16(lo)
		return valMemory

	case ModeBlockMove:
		dst := c.fetchOperandByte()
		src := c.fetchOperandByte()
		c.state.bank = src  // source bank
		c.state.address = uint16(dst)<<8 | uint16(dst) // placeholder; real value set by semantic
		c.state.operand = uint16(dst)
		return valMemory

	case ModeStackPEA:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		c.state.operand = uint16(hi)<<8 | uint16(lo)
		return valMemory

	case ModeStackPEI:
		dp := uint16(c.fetchOperandByte())
		if c.directPageExtraCycle() {
			c.internalCycle()
		}
		ptr := r.D + dp
		c.state.operand = c.read16Bank0(ptr)
		return valMemory

	case ModeStackPER:
		lo := c.fetchOperandByte()
		hi := c.fetchOperandByte()
		disp := uint16(hi)<<8 | uint16(lo)
		c.internalCycle()
		c.state.operand = r.PC + disp
		return valMemory
	}
	return valMemory
}

func hiByte(v uint16) uint8 { return uint8(v >> 8) }
