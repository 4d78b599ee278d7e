package cpu

// checkCond evaluates a branch condition against the current flags.
func (c *CPU) checkCond(cond Condition) bool {
	switch cond {
	case CondNONE:
		return true
	case CondNZ:
		return !c.Regs.Z()
	case CondZ:
		return c.Regs.Z()
	case CondNC:
		return !c.Regs.C()
	case CondC:
		return c.Regs.C()
	}
	return false
}

// jumpTo sets PC to addr, optionally pushing the current PC first (CALL,
// RST), and charges the internal decision cycle every taken branch pays.
func (c *CPU) jumpTo(addr uint16, pushPC bool) {
	if pushPC {
		c.push16(c.Regs.PC)
	}
	c.Regs.PC = addr
	c.EmuCycles(1)
}

// Execute runs the currently fetched instruction against FetchedData /
// MemDest / DestIsMem, mutating registers and the bus and charging every
// cycle the handler's addressing mode and control-flow path imply.
func (c *CPU) Execute() error {
	switch c.CurInstr.Mnemonic {
	case MnNONE, MnERR:
		return &DecodeError{PC: c.Regs.PC - 1, Opcode: c.CurOpcode}

	case MnNOP:
		// nothing

	case MnLD:
		c.execLD()

	case MnLDH:
		c.execLDH()

	case MnINC:
		c.execIncDec(1)

	case MnDEC:
		c.execIncDec(-1)

	case MnADD:
		c.execADD()

	case MnADC:
		c.execAddWithCarry()

	case MnSUB:
		c.execSUB()

	case MnSBC:
		c.execSubWithCarry()

	case MnAND:
		c.Regs.A &= uint8(c.FetchedData)
		c.Regs.SetFlags(c.Regs.A == 0, false, true, false)

	case MnXOR:
		c.Regs.A ^= uint8(c.FetchedData)
		c.Regs.SetFlags(c.Regs.A == 0, false, false, false)

	case MnOR:
		c.Regs.A |= uint8(c.FetchedData)
		c.Regs.SetFlags(c.Regs.A == 0, false, false, false)

	case MnCP:
		a, op := c.Regs.A, uint8(c.FetchedData)
		res := a - op
		c.Regs.SetFlags(res == 0, true, a&0xF < op&0xF, a < op)

	case MnDAA:
		c.execDAA()

	case MnCPL:
		c.Regs.A = ^c.Regs.A
		c.Regs.SetN(true)
		c.Regs.SetH(true)

	case MnSCF:
		c.Regs.SetN(false)
		c.Regs.SetH(false)
		c.Regs.SetC(true)

	case MnCCF:
		c.Regs.SetN(false)
		c.Regs.SetH(false)
		c.Regs.SetC(!c.Regs.C())

	case MnRLCA:
		carry := c.Regs.A&0x80 != 0
		c.Regs.A = c.Regs.A<<1 | boolToU8(carry)
		c.Regs.SetFlags(false, false, false, carry)

	case MnRLA:
		carry := c.Regs.A&0x80 != 0
		c.Regs.A = c.Regs.A<<1 | boolToU8(c.Regs.C())
		c.Regs.SetFlags(false, false, false, carry)

	case MnRRCA:
		carry := c.Regs.A&0x01 != 0
		c.Regs.A = c.Regs.A>>1 | boolToU8(carry)<<7
		c.Regs.SetFlags(false, false, false, carry)

	case MnRRA:
		carry := c.Regs.A&0x01 != 0
		c.Regs.A = c.Regs.A>>1 | boolToU8(c.Regs.C())<<7
		c.Regs.SetFlags(false, false, false, carry)

	case MnJR:
		offset := int8(c.FetchedData)
		addr := uint16(int32(c.Regs.PC) + int32(offset))
		if c.checkCond(c.CurInstr.Cond) {
			c.jumpTo(addr, false)
		}

	case MnJP:
		if c.checkCond(c.CurInstr.Cond) {
			c.jumpTo(c.FetchedData, false)
		}

	case MnJPHL:
		c.Regs.PC = c.Regs.HL()

	case MnCALL:
		if c.checkCond(c.CurInstr.Cond) {
			c.jumpTo(c.FetchedData, true)
		}

	case MnRET:
		if c.CurInstr.Cond != CondNONE {
			c.EmuCycles(1)
		}
		if c.checkCond(c.CurInstr.Cond) {
			c.Regs.PC = c.pop16()
			c.EmuCycles(1)
		}

	case MnRETI:
		c.Regs.PC = c.pop16()
		c.EmuCycles(1)
		c.IME = true

	case MnRST:
		c.jumpTo(uint16(c.CurInstr.Param), true)

	case MnPUSH:
		c.push16(c.Regs.Get16(c.CurInstr.Reg1))
		c.EmuCycles(1)

	case MnPOP:
		v := c.pop16()
		c.Regs.Set16(c.CurInstr.Reg1, v)

	case MnDI:
		c.IME = false
		c.imePending = false

	case MnEI:
		c.imePending = true

	case MnHALT:
		c.Halted = true

	case MnSTOP:
		// Minimal stub: the following dummy byte was already consumed by
		// the fetch unit; nothing else observable happens in this core.

	case MnCB:
		c.CbOpcode = uint8(c.FetchedData)
		c.executeCB()

	default:
		return &DecodeError{PC: c.Regs.PC - 1, Opcode: c.CurOpcode}
	}
	return nil
}

func (c *CPU) execLD() {
	if c.CurInstr.Mode == AmHL_SPR {
		e := int8(c.FetchedData)
		sp := c.Regs.SP
		result := uint16(int32(sp) + int32(e))
		h := (sp&0xF)+uint16(uint8(e)&0xF) > 0xF
		carry := (sp&0xFF)+uint16(uint8(e)) > 0xFF
		c.Regs.SetHL(result)
		c.Regs.SetFlags(false, false, h, carry)
		c.EmuCycles(1)
		return
	}

	if c.DestIsMem {
		if Is16Bit(c.CurInstr.Reg2) {
			c.write16(c.MemDest, c.FetchedData)
		} else {
			c.write8(c.MemDest, uint8(c.FetchedData))
		}
		return
	}

	if c.CurInstr.Reg1 == RegSP && c.CurInstr.Reg2 == RegHL {
		c.Regs.SP = c.FetchedData
		c.EmuCycles(1)
		return
	}

	if Is16Bit(c.CurInstr.Reg1) {
		c.Regs.Set16(c.CurInstr.Reg1, c.FetchedData)
	} else {
		c.Regs.Set8(c.CurInstr.Reg1, uint8(c.FetchedData))
	}
}

func (c *CPU) execLDH() {
	if c.CurInstr.Mode == AmA8_R {
		c.write8(c.MemDest, uint8(c.FetchedData))
		return
	}
	addr := 0xFF00 | c.FetchedData
	c.Regs.Set8(c.CurInstr.Reg1, c.read8(addr))
}

// execIncDec handles both INC (delta=1) and DEC (delta=-1), covering the
// register, register-pair, and (HL) operand forms.
func (c *CPU) execIncDec(delta int) {
	reg := c.CurInstr.Reg1

	if c.CurInstr.Mode == AmMR {
		before := uint8(c.FetchedData)
		after := before + uint8(delta)
		c.write8(c.MemDest, after)
		c.Regs.SetZ(after == 0)
		c.Regs.SetN(delta < 0)
		if delta > 0 {
			c.Regs.SetH(before&0xF == 0xF)
		} else {
			c.Regs.SetH(before&0xF == 0)
		}
		return
	}

	if Is16Bit(reg) {
		c.Regs.Set16(reg, c.Regs.Get16(reg)+uint16(delta))
		c.EmuCycles(1)
		return
	}

	before := c.Regs.Get8(reg)
	after := before + uint8(delta)
	c.Regs.Set8(reg, after)
	c.Regs.SetZ(after == 0)
	c.Regs.SetN(delta < 0)
	if delta > 0 {
		c.Regs.SetH(before&0xF == 0xF)
	} else {
		c.Regs.SetH(before&0xF == 0)
	}
}

func (c *CPU) execADD() {
	switch {
	case c.CurInstr.Reg1 == RegHL:
		hl, operand := c.Regs.HL(), c.FetchedData
		result := uint32(hl) + uint32(operand)
		c.Regs.SetN(false)
		c.Regs.SetH((hl&0xFFF)+(operand&0xFFF) > 0xFFF)
		c.Regs.SetC(result > 0xFFFF)
		c.Regs.SetHL(uint16(result))
		c.EmuCycles(1)

	case c.CurInstr.Reg1 == RegSP:
		e := int8(c.FetchedData)
		sp := c.Regs.SP
		result := uint16(int32(sp) + int32(e))
		h := (sp&0xF)+uint16(uint8(e)&0xF) > 0xF
		carry := (sp&0xFF)+uint16(uint8(e)) > 0xFF
		c.Regs.SP = result
		c.Regs.SetFlags(false, false, h, carry)
		c.EmuCycles(2)

	default:
		a, operand := c.Regs.A, uint8(c.FetchedData)
		result := uint16(a) + uint16(operand)
		c.Regs.A = uint8(result)
		c.Regs.SetFlags(uint8(result) == 0, false, (a&0xF)+(operand&0xF) > 0xF, result > 0xFF)
	}
}

func (c *CPU) execAddWithCarry() {
	carry := boolToU8(c.Regs.C())
	a, operand := c.Regs.A, uint8(c.FetchedData)
	result := uint16(a) + uint16(operand) + uint16(carry)
	c.Regs.A = uint8(result)
	c.Regs.SetFlags(uint8(result) == 0, false, (a&0xF)+(operand&0xF)+carry > 0xF, result > 0xFF)
}

func (c *CPU) execSUB() {
	a, operand := c.Regs.A, uint8(c.FetchedData)
	result := a - operand
	c.Regs.A = result
	c.Regs.SetFlags(result == 0, true, a&0xF < operand&0xF, a < operand)
}

func (c *CPU) execSubWithCarry() {
	carry := int(boolToU8(c.Regs.C()))
	a, operand := c.Regs.A, uint8(c.FetchedData)
	result := int(a) - int(operand) - carry
	c.Regs.A = uint8(result)
	c.Regs.SetFlags(uint8(result) == 0, true, int(a&0xF)-int(operand&0xF)-carry < 0, result < 0)
}

func (c *CPU) execDAA() {
	a := c.Regs.A
	var adjust uint8
	carry := c.Regs.C()

	if c.Regs.N() {
		if c.Regs.H() {
			adjust += 0x06
		}
		if carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if c.Regs.H() || a&0xF > 0x09 {
			adjust += 0x06
		}
		if carry || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}

	c.Regs.A = a
	c.Regs.SetZ(a == 0)
	c.Regs.SetH(false)
	c.Regs.SetC(carry)
}
