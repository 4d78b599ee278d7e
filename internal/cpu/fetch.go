package cpu

// FetchInstruction reads the opcode byte at PC, advances PC, and resolves
// the static instruction descriptor. Charges 1 m-cycle.
func (c *CPU) FetchInstruction() {
	c.CurOpcode = c.read8(c.Regs.PC)
	c.Regs.PC++
	c.CurInstr = InstructionByOpcode(c.CurOpcode)
}

// FetchData materializes fetched_data / mem_dest / dest_is_mem for the
// current instruction's addressing mode, charging one m-cycle per byte
// read from the bus, as the fetch unit contract requires.
func (c *CPU) FetchData() {
	c.MemDest = 0
	c.DestIsMem = false

	if c.CurInstr == nil {
		return
	}

	switch c.CurInstr.Mode {
	case AmIMP:
		return

	case AmR:
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg1)
		return

	case AmR_R:
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg2)
		return

	case AmR_D8:
		c.FetchedData = uint16(c.read8(c.Regs.PC))
		c.Regs.PC++
		return

	case AmR_D16, AmD16:
		lo := uint16(c.read8(c.Regs.PC))
		hi := uint16(c.read8(c.Regs.PC + 1))
		c.FetchedData = lo | hi<<8
		c.Regs.PC += 2
		return

	case AmMR_R:
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg2)
		c.MemDest = c.readOperandReg(c.CurInstr.Reg1)
		c.DestIsMem = true
		if c.CurInstr.Reg1 == RegC {
			c.MemDest |= 0xFF00
		}
		return

	case AmR_MR:
		addr := c.readOperandReg(c.CurInstr.Reg2)
		if c.CurInstr.Reg2 == RegC {
			addr |= 0xFF00
		}
		c.FetchedData = uint16(c.read8(addr))
		return

	case AmR_HLI:
		hl := c.Regs.HL()
		c.FetchedData = uint16(c.read8(hl))
		c.Regs.SetHL(hl + 1)
		return

	case AmR_HLD:
		hl := c.Regs.HL()
		c.FetchedData = uint16(c.read8(hl))
		c.Regs.SetHL(hl - 1)
		return

	case AmHLI_R:
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg2)
		c.MemDest = c.Regs.HL()
		c.DestIsMem = true
		c.Regs.SetHL(c.Regs.HL() + 1)
		return

	case AmHLD_R:
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg2)
		c.MemDest = c.Regs.HL()
		c.DestIsMem = true
		c.Regs.SetHL(c.Regs.HL() - 1)
		return

	case AmR_A8:
		c.FetchedData = uint16(c.read8(c.Regs.PC))
		c.Regs.PC++
		return

	case AmA8_R:
		c.MemDest = uint16(c.read8(c.Regs.PC)) | 0xFF00
		c.DestIsMem = true
		c.Regs.PC++
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg2)
		return

	case AmHL_SPR:
		c.FetchedData = uint16(c.read8(c.Regs.PC))
		c.Regs.PC++
		return

	case AmD8:
		c.FetchedData = uint16(c.read8(c.Regs.PC))
		c.Regs.PC++
		return

	case AmA16_R, AmD16_R:
		lo := uint16(c.read8(c.Regs.PC))
		hi := uint16(c.read8(c.Regs.PC + 1))
		c.MemDest = lo | hi<<8
		c.DestIsMem = true
		c.Regs.PC += 2
		c.FetchedData = c.readOperandReg(c.CurInstr.Reg2)
		return

	case AmMR_D8:
		c.FetchedData = uint16(c.read8(c.Regs.PC))
		c.Regs.PC++
		c.MemDest = c.readOperandReg(c.CurInstr.Reg1)
		c.DestIsMem = true
		return

	case AmMR:
		c.MemDest = c.readOperandReg(c.CurInstr.Reg1)
		c.DestIsMem = true
		c.FetchedData = uint16(c.read8(c.MemDest))
		return

	case AmR_A16:
		lo := uint16(c.read8(c.Regs.PC))
		hi := uint16(c.read8(c.Regs.PC + 1))
		addr := lo | hi<<8
		c.Regs.PC += 2
		c.FetchedData = uint16(c.read8(addr))
		return
	}
}

// readOperandReg reads an 8- or 16-bit register by ID without charging a
// bus cycle (register access is internal, not a bus transaction).
func (c *CPU) readOperandReg(reg RegisterID) uint16 {
	if reg == RegNone {
		return 0
	}
	if Is16Bit(reg) {
		return c.Regs.Get16(reg)
	}
	return uint16(c.Regs.Get8(reg))
}
