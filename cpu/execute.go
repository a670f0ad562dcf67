package cpu

// execute dispatches a fetched opcode byte to its addressing-mode
// prefix and semantic suffix. This switch is the instruction table:
// each case names the addressing mode and operation a disassembler
// would print, rather than indexing into a parallel metadata array.
func (c *CPU) execute(opcode uint8) {
	switch opcode {
	case 0x00:
		c.opBRK()
	case 0x01:
		c.readOp(ModeDirectPageIndirectX, c.doORA)
	case 0x02:
		c.opCOP()
	case 0x03:
		c.readOp(ModeStackRelative, c.doORA)
	case 0x04:
		c.rmwOp(ModeDirectPage, c.doTSB)
	case 0x05:
		c.readOp(ModeDirectPage, c.doORA)
	case 0x06:
		c.rmwOp(ModeDirectPage, c.doASL)
	case 0x07:
		c.readOp(ModeDirectPageIndirectLong, c.doORA)
	case 0x08:
		c.opPHP()
	case 0x09:
		c.readOp(ModeImmediateM, c.doORA)
	case 0x0A:
		c.rmwOp(ModeAccumulator, c.doASL)
	case 0x0B:
		c.opPHD()
	case 0x0C:
		c.rmwOp(ModeAbsolute, c.doTSB)
	case 0x0D:
		c.readOp(ModeAbsolute, c.doORA)
	case 0x0E:
		c.rmwOp(ModeAbsolute, c.doASL)
	case 0x0F:
		c.readOp(ModeAbsoluteLong, c.doORA)

	case 0x10:
		c.opBranch(c.state.Regs.P&FlagN == 0)
	case 0x11:
		c.readOp(ModeDirectPageIndirectY, c.doORA)
	case 0x12:
		c.readOp(ModeDirectPageIndirect, c.doORA)
	case 0x13:
		c.readOp(ModeStackRelativeIndirectY, c.doORA)
	case 0x14:
		c.rmwOp(ModeDirectPage, c.doTRB)
	case 0x15:
		c.readOp(ModeDirectPageX, c.doORA)
	case 0x16:
		c.rmwOp(ModeDirectPageX, c.doASL)
	case 0x17:
		c.readOp(ModeDirectPageIndirectLongY, c.doORA)
	case 0x18:
		c.state.Regs.P &^= FlagC
		c.internalCycle()
	case 0x19:
		c.readOp(ModeAbsoluteY, c.doORA)
	case 0x1A:
		c.rmwOp(ModeAccumulator, c.doINC)
	case 0x1B:
		c.state.Regs.S = c.state.Regs.A
		c.internalCycle()
	case 0x1C:
		c.rmwOp(ModeAbsolute, c.doTRB)
	case 0x1D:
		c.readOp(ModeAbsoluteX, c.doORA)
	case 0x1E:
		c.rmwOp(ModeAbsoluteX, c.doASL)
	case 0x1F:
		c.readOp(ModeAbsoluteLongX, c.doORA)

	case 0x20:
		c.opJSR()
	case 0x21:
		c.readOp(ModeDirectPageIndirectX, c.doAND)
	case 0x22:
		c.opJSL()
	case 0x23:
		c.readOp(ModeStackRelative, c.doAND)
	case 0x24:
		c.readOp(ModeDirectPage, c.doBIT)
	case 0x25:
		c.readOp(ModeDirectPage, c.doAND)
	case 0x26:
		c.rmwOp(ModeDirectPage, c.doROL)
	case 0x27:
		c.readOp(ModeDirectPageIndirectLong, c.doAND)
	case 0x28:
		c.opPLP()
	case 0x29:
		c.readOp(ModeImmediateM, c.doAND)
	case 0x2A:
		c.rmwOp(ModeAccumulator, c.doROL)
	case 0x2B:
		c.opPLD()
	case 0x2C:
		c.readOp(ModeAbsolute, c.doBIT)
	case 0x2D:
		c.readOp(ModeAbsolute, c.doAND)
	case 0x2E:
		c.rmwOp(ModeAbsolute, c.doROL)
	case 0x2F:
		c.readOp(ModeAbsoluteLong, c.doAND)

	case 0x30:
		c.opBranch(c.state.Regs.P&FlagN != 0)
	case 0x31:
		c.readOp(ModeDirectPageIndirectY, c.doAND)
	case 0x32:
		c.readOp(ModeDirectPageIndirect, c.doAND)
	case 0x33:
		c.readOp(ModeStackRelativeIndirectY, c.doAND)
	case 0x34:
		c.readOp(ModeDirectPageX, c.doBIT)
	case 0x35:
		c.readOp(ModeDirectPageX, c.doAND)
	case 0x36:
		c.rmwOp(ModeDirectPageX, c.doROL)
	case 0x37:
		c.readOp(ModeDirectPageIndirectLongY, c.doAND)
	case 0x38:
		c.state.Regs.P |= FlagC
		c.internalCycle()
	case 0x39:
		c.readOp(ModeAbsoluteY, c.doAND)
	case 0x3A:
		c.rmwOp(ModeAccumulator, c.doDEC)
	case 0x3B:
		c.state.Regs.A = c.state.Regs.S
		c.setNZ16(c.state.Regs.A)
		c.internalCycle()
	case 0x3C:
		c.readOp(ModeAbsoluteX, c.doBIT)
	case 0x3D:
		c.readOp(ModeAbsoluteX, c.doAND)
	case 0x3E:
		c.rmwOp(ModeAbsoluteX, c.doROL)
	case 0x3F:
		c.readOp(ModeAbsoluteLongX, c.doAND)

	case 0x40:
		c.opRTI()
	case 0x41:
		c.readOp(ModeDirectPageIndirectX, c.doEOR)
	case 0x42:
		c.fetchOperandByte() // WDM: reserved, one operand byte, no effect
	case 0x43:
		c.readOp(ModeStackRelative, c.doEOR)
	case 0x44:
		c.opMVP()
	case 0x45:
		c.readOp(ModeDirectPage, c.doEOR)
	case 0x46:
		c.rmwOp(ModeDirectPage, c.doLSR)
	case 0x47:
		c.readOp(ModeDirectPageIndirectLong, c.doEOR)
	case 0x48:
		c.opPHA()
	case 0x49:
		c.readOp(ModeImmediateM, c.doEOR)
	case 0x4A:
		c.rmwOp(ModeAccumulator, c.doLSR)
	case 0x4B:
		c.push8(c.state.Regs.PBR)
		c.internalCycle()
	case 0x4C:
		c.opJMP()
	case 0x4D:
		c.readOp(ModeAbsolute, c.doEOR)
	case 0x4E:
		c.rmwOp(ModeAbsolute, c.doLSR)
	case 0x4F:
		c.readOp(ModeAbsoluteLong, c.doEOR)

	case 0x50:
		c.opBranch(c.state.Regs.P&FlagV == 0)
	case 0x51:
		c.readOp(ModeDirectPageIndirectY, c.doEOR)
	case 0x52:
		c.readOp(ModeDirectPageIndirect, c.doEOR)
	case 0x53:
		c.readOp(ModeStackRelativeIndirectY, c.doEOR)
	case 0x54:
		c.opMVN()
	case 0x55:
		c.readOp(ModeDirectPageX, c.doEOR)
	case 0x56:
		c.rmwOp(ModeDirectPageX, c.doLSR)
	case 0x57:
		c.readOp(ModeDirectPageIndirectLongY, c.doEOR)
	case 0x58:
		c.state.Regs.P &^= FlagI
		c.internalCycle()
	case 0x59:
		c.readOp(ModeAbsoluteY, c.doEOR)
	case 0x5A:
		c.opPHY()
	case 0x5B:
		c.state.Regs.D = c.state.Regs.A
		c.setNZ16(c.state.Regs.D)
		c.internalCycle()
	case 0x5C:
		c.opJML()
	case 0x5D:
		c.readOp(ModeAbsoluteX, c.doEOR)
	case 0x5E:
		c.rmwOp(ModeAbsoluteX, c.doLSR)
	case 0x5F:
		c.readOp(ModeAbsoluteLongX, c.doEOR)

	case 0x60:
		c.opRTS()
	case 0x61:
		c.readOp(ModeDirectPageIndirectX, c.doADC)
	case 0x62:
		c.opPER()
	case 0x63:
		c.readOp(ModeStackRelative, c.doADC)
	case 0x64:
		c.writeOp(ModeDirectPage, c.valZero)
	case 0x65:
		c.readOp(ModeDirectPage, c.doADC)
	case 0x66:
		c.rmwOp(ModeDirectPage, c.doROR)
	case 0x67:
		c.readOp(ModeDirectPageIndirectLong, c.doADC)
	case 0x68:
		c.opPLA()
	case 0x69:
		c.readOp(ModeImmediateM, c.doADC)
	case 0x6A:
		c.rmwOp(ModeAccumulator, c.doROR)
	case 0x6B:
		c.opRTL()
	case 0x6C:
		c.opJMPIndirect()
	case 0x6D:
		c.readOp(ModeAbsolute, c.doADC)
	case 0x6E:
		c.rmwOp(ModeAbsolute, c.doROR)
	case 0x6F:
		c.readOp(ModeAbsoluteLong, c.doADC)

	case 0x70:
		c.opBranch(c.state.Regs.P&FlagV != 0)
	case 0x71:
		c.readOp(ModeDirectPageIndirectY, c.doADC)
	case 0x72:
		c.readOp(ModeDirectPageIndirect, c.doADC)
	case 0x73:
		c.readOp(ModeStackRelativeIndirectY, c.doADC)
	case 0x74:
		c.writeOp(ModeDirectPageX, c.valZero)
	case 0x75:
		c.readOp(ModeDirectPageX, c.doADC)
	case 0x76:
		c.rmwOp(ModeDirectPageX, c.doROR)
	case 0x77:
		c.readOp(ModeDirectPageIndirectLongY, c.doADC)
	case 0x78:
		c.state.Regs.P |= FlagI
		c.internalCycle()
	case 0x79:
		c.readOp(ModeAbsoluteY, c.doADC)
	case 0x7A:
		c.opPLY()
	case 0x7B:
		c.state.Regs.A = c.state.Regs.D
		c.setNZ16(c.state.Regs.A)
		c.internalCycle()
	case 0x7C:
		c.opJMPIndirectX()
	case 0x7D:
		c.readOp(ModeAbsoluteX, c.doADC)
	case 0x7E:
		c.rmwOp(ModeAbsoluteX, c.doROR)
	case 0x7F:
		c.readOp(ModeAbsoluteLongX, c.doADC)

	case 0x80:
		c.opBranch(true)
	case 0x81:
		c.writeOp(ModeDirectPageIndirectX, c.valA)
	case 0x82:
		c.opBRL()
	case 0x83:
		c.writeOp(ModeStackRelative, c.valA)
	case 0x84:
		c.writeIndexOp(ModeDirectPage, c.valY)
	case 0x85:
		c.writeOp(ModeDirectPage, c.valA)
	case 0x86:
		c.writeIndexOp(ModeDirectPage, c.valX)
	case 0x87:
		c.writeOp(ModeDirectPageIndirectLong, c.valA)
	case 0x88:
		c.opDEY()
	case 0x89:
		c.readOp(ModeImmediateM, c.bitImmediate)
	case 0x8A:
		c.opTXA()
	case 0x8B:
		c.opPHB()
	case 0x8C:
		c.writeIndexOp(ModeAbsolute, c.valY)
	case 0x8D:
		c.writeOp(ModeAbsolute, c.valA)
	case 0x8E:
		c.writeIndexOp(ModeAbsolute, c.valX)
	case 0x8F:
		c.writeOp(ModeAbsoluteLong, c.valA)

	case 0x90:
		c.opBranch(c.state.Regs.P&FlagC == 0)
	case 0x91:
		c.writeOp(ModeDirectPageIndirectY, c.valA)
	case 0x92:
		c.writeOp(ModeDirectPageIndirect, c.valA)
	case 0x93:
		c.writeOp(ModeStackRelativeIndirectY, c.valA)
	case 0x94:
		c.writeIndexOp(ModeDirectPageX, c.valY)
	case 0x95:
		c.writeOp(ModeDirectPageX, c.valA)
	case 0x96:
		c.writeIndexOp(ModeDirectPageY, c.valX)
	case 0x97:
		c.writeOp(ModeDirectPageIndirectLongY, c.valA)
	case 0x98:
		c.opTYA()
	case 0x99:
		c.writeOp(ModeAbsoluteY, c.valA)
	case 0x9A:
		c.opTXS()
	case 0x9B:
		c.opTXY()
	case 0x9C:
		c.writeOp(ModeAbsolute, c.valZero)
	case 0x9D:
		c.writeOp(ModeAbsoluteX, c.valA)
	case 0x9E:
		c.writeOp(ModeAbsoluteX, c.valZero)
	case 0x9F:
		c.writeOp(ModeAbsoluteLongX, c.valA)

	case 0xA0:
		c.readOpX(ModeImmediateX, c.doLDY)
	case 0xA1:
		c.readOp(ModeDirectPageIndirectX, c.doLDA)
	case 0xA2:
		c.readOpX(ModeImmediateX, c.doLDX)
	case 0xA3:
		c.readOp(ModeStackRelative, c.doLDA)
	case 0xA4:
		c.readOpX(ModeDirectPage, c.doLDY)
	case 0xA5:
		c.readOp(ModeDirectPage, c.doLDA)
	case 0xA6:
		c.readOpX(ModeDirectPage, c.doLDX)
	case 0xA7:
		c.readOp(ModeDirectPageIndirectLong, c.doLDA)
	case 0xA8:
		c.opTAY()
	case 0xA9:
		c.readOp(ModeImmediateM, c.doLDA)
	case 0xAA:
		c.opTAX()
	case 0xAB:
		c.opPLB()
	case 0xAC:
		c.readOpX(ModeAbsolute, c.doLDY)
	case 0xAD:
		c.readOp(ModeAbsolute, c.doLDA)
	case 0xAE:
		c.readOpX(ModeAbsolute, c.doLDX)
	case 0xAF:
		c.readOp(ModeAbsoluteLong, c.doLDA)

	case 0xB0:
		c.opBranch(c.state.Regs.P&FlagC != 0)
	case 0xB1:
		c.readOp(ModeDirectPageIndirectY, c.doLDA)
	case 0xB2:
		c.readOp(ModeDirectPageIndirect, c.doLDA)
	case 0xB3:
		c.readOp(ModeStackRelativeIndirectY, c.doLDA)
	case 0xB4:
		c.readOpX(ModeDirectPageX, c.doLDY)
	case 0xB5:
		c.readOp(ModeDirectPageX, c.doLDA)
	case 0xB6:
		c.readOpX(ModeDirectPageY, c.doLDX)
	case 0xB7:
		c.readOp(ModeDirectPageIndirectLongY, c.doLDA)
	case 0xB8:
		c.state.Regs.P &^= FlagV
		c.internalCycle()
	case 0xB9:
		c.readOp(ModeAbsoluteY, c.doLDA)
	case 0xBA:
		c.opTSX()
	case 0xBB:
		c.opTYX()
	case 0xBC:
		c.readOpX(ModeAbsoluteX, c.doLDY)
	case 0xBD:
		c.readOp(ModeAbsoluteX, c.doLDA)
	case 0xBE:
		c.readOpX(ModeAbsoluteY, c.doLDX)
	case 0xBF:
		c.readOp(ModeAbsoluteLongX, c.doLDA)

	case 0xC0:
		c.readOpX(ModeImmediateX, c.doCPY)
	case 0xC1:
		c.readOp(ModeDirectPageIndirectX, c.doCMP)
	case 0xC2:
		c.opREP()
	case 0xC3:
		c.readOp(ModeStackRelative, c.doCMP)
	case 0xC4:
		c.readOpX(ModeDirectPage, c.doCPY)
	case 0xC5:
		c.readOp(ModeDirectPage, c.doCMP)
	case 0xC6:
		c.rmwOp(ModeDirectPage, c.doDEC)
	case 0xC7:
		c.readOp(ModeDirectPageIndirectLong, c.doCMP)
	case 0xC8:
		c.opINY()
	case 0xC9:
		c.readOp(ModeImmediateM, c.doCMP)
	case 0xCA:
		c.opDEX()
	case 0xCB:
		c.opWAI()
	case 0xCC:
		c.readOpX(ModeAbsolute, c.doCPY)
	case 0xCD:
		c.readOp(ModeAbsolute, c.doCMP)
	case 0xCE:
		c.rmwOp(ModeAbsolute, c.doDEC)
	case 0xCF:
		c.readOp(ModeAbsoluteLong, c.doCMP)

	case 0xD0:
		c.opBranch(c.state.Regs.P&FlagZ == 0)
	case 0xD1:
		c.readOp(ModeDirectPageIndirectY, c.doCMP)
	case 0xD2:
		c.readOp(ModeDirectPageIndirect, c.doCMP)
	case 0xD3:
		c.readOp(ModeStackRelativeIndirectY, c.doCMP)
	case 0xD4:
		c.opPEI()
	case 0xD5:
		c.readOp(ModeDirectPageX, c.doCMP)
	case 0xD6:
		c.rmwOp(ModeDirectPageX, c.doDEC)
	case 0xD7:
		c.readOp(ModeDirectPageIndirectLongY, c.doCMP)
	case 0xD8:
		c.state.Regs.P &^= FlagD
		c.internalCycle()
	case 0xD9:
		c.readOp(ModeAbsoluteY, c.doCMP)
	case 0xDA:
		c.opPHX()
	case 0xDB:
		c.opSTP()
	case 0xDC:
		c.opJMLIndirectLong()
	case 0xDD:
		c.readOp(ModeAbsoluteX, c.doCMP)
	case 0xDE:
		c.rmwOp(ModeAbsoluteX, c.doDEC)
	case 0xDF:
		c.readOp(ModeAbsoluteLongX, c.doCMP)

	case 0xE0:
		c.readOpX(ModeImmediateX, c.doCPX)
	case 0xE1:
		c.readOp(ModeDirectPageIndirectX, c.doSBC)
	case 0xE2:
		c.opSEP()
	case 0xE3:
		c.readOp(ModeStackRelative, c.doSBC)
	case 0xE4:
		c.readOpX(ModeDirectPage, c.doCPX)
	case 0xE5:
		c.readOp(ModeDirectPage, c.doSBC)
	case 0xE6:
		c.rmwOp(ModeDirectPage, c.doINC)
	case 0xE7:
		c.readOp(ModeDirectPageIndirectLong, c.doSBC)
	case 0xE8:
		c.opINX()
	case 0xE9:
		c.readOp(ModeImmediateM, c.doSBC)
	case 0xEA:
		c.internalCycle() // NOP
	case 0xEB:
		c.opXBA()
	case 0xEC:
		c.readOpX(ModeAbsolute, c.doCPX)
	case 0xED:
		c.readOp(ModeAbsolute, c.doSBC)
	case 0xEE:
		c.rmwOp(ModeAbsolute, c.doINC)
	case 0xEF:
		c.readOp(ModeAbsoluteLong, c.doSBC)

	case 0xF0:
		c.opBranch(c.state.Regs.P&FlagZ != 0)
	case 0xF1:
		c.readOp(ModeDirectPageIndirectY, c.doSBC)
	case 0xF2:
		c.readOp(ModeDirectPageIndirect, c.doSBC)
	case 0xF3:
		c.readOp(ModeStackRelativeIndirectY, c.doSBC)
	case 0xF4:
		c.opPEA()
	case 0xF5:
		c.readOp(ModeDirectPageX, c.doSBC)
	case 0xF6:
		c.rmwOp(ModeDirectPageX, c.doINC)
	case 0xF7:
		c.readOp(ModeDirectPageIndirectLongY, c.doSBC)
	case 0xF8:
		c.state.Regs.P |= FlagD
		c.internalCycle()
	case 0xF9:
		c.readOp(ModeAbsoluteY, c.doSBC)
	case 0xFA:
		c.opPLX()
	case 0xFB:
		c.opXCE()
	case 0xFC:
		c.opJSRIndirectX()
	case 0xFD:
		c.readOp(ModeAbsoluteX, c.doSBC)
	case 0xFE:
		c.rmwOp(ModeAbsoluteX, c.doINC)
	case 0xFF:
		c.readOp(ModeAbsoluteLongX, c.doSBC)
	}
}

// writeIndexOp is writeOp sized by the index-register width, for
// STX/STY.
func (c *CPU) writeIndexOp(mode AddrMode, value func() uint16) {
	kind := c.resolveAddress(mode)
	wide := !c.indexWidthIs8()
	c.storeOperand(kind, wide, value())
}
