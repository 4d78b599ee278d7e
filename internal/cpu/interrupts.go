package cpu

// handleInterrupts wakes the CPU from Halted whenever a source is both
// pending and enabled, regardless of IME, then - only if IME is set -
// services the lowest-numbered such source: pushes PC, jumps to the
// source's vector, clears IME, and clears its IF bit. Costs 5 m-cycles.
// Returns true if an interrupt was actually dispatched.
func (c *CPU) handleInterrupts() bool {
	pending := c.IE() & c.IF()
	if pending == 0 {
		return false
	}
	c.Halted = false
	if !c.IME {
		return false
	}

	sources := [5]uint8{IntVBlank, IntLCDStat, IntTimer, IntSerial, IntJoypad}
	for i, mask := range sources {
		if pending&mask == 0 {
			continue
		}
		c.IME = false
		c.setIF(c.IF() &^ mask)
		c.EmuCycles(2)
		c.push16(c.Regs.PC)
		c.Regs.PC = interruptVectors[i]
		c.EmuCycles(1)
		return true
	}
	return false
}
