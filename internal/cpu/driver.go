package cpu

import "fmt"

// Step advances the CPU by exactly one instruction (or one halted tick)
// and returns the sole fatal error this core raises: an unknown opcode.
//
// Order of operations, in the documented sequence: if halted, burn a tick,
// then check for a requested-and-enabled interrupt (which wakes the CPU
// even when IME is clear, and is serviced at once when IME is set) and
// return; otherwise service such an interrupt if IME allows, or else
// fetch, fetch operand data, and execute. The delayed-EI latch set by an EI instruction takes effect only
// after the instruction immediately following EI has itself retired, never
// the instant EI executes.
func (c *CPU) Step() error {
	if c.Halted {
		c.EmuCycles(1)
		c.handleInterrupts()
		return nil
	}

	if c.handleInterrupts() {
		return nil
	}

	imeWasPending := c.imePending
	pcAtFetch := c.Regs.PC

	c.FetchInstruction()
	c.FetchData()
	err := c.Execute()

	if imeWasPending && c.imePending {
		c.IME = true
		c.imePending = false
	}

	if c.trace != nil {
		c.trace(fmt.Sprintf("%04X: %-4s ticks=%d", pcAtFetch, mnemonicName(c.CurInstr.Mnemonic), c.ticks))
	}

	if err != nil {
		c.die = true
	}
	return err
}

// Run steps the CPU until a decode error, an external stop request, or the
// supplied shouldStop callback returning true, returning the first decode
// error encountered, if any. With Stepping set it returns after one step.
func (c *CPU) Run(shouldStop func() bool) error {
	for !c.die {
		if shouldStop != nil && shouldStop() {
			return nil
		}
		if err := c.Step(); err != nil {
			return err
		}
		if c.Stepping {
			return nil
		}
	}
	return nil
}

func mnemonicName(m Mnemonic) string {
	names := map[Mnemonic]string{
		MnNOP: "NOP", MnLD: "LD", MnINC: "INC", MnDEC: "DEC", MnRLCA: "RLCA",
		MnADD: "ADD", MnRRCA: "RRCA", MnSTOP: "STOP", MnRLA: "RLA", MnJR: "JR",
		MnRRA: "RRA", MnDAA: "DAA", MnCPL: "CPL", MnSCF: "SCF", MnCCF: "CCF",
		MnHALT: "HALT", MnADC: "ADC", MnSUB: "SUB", MnSBC: "SBC", MnAND: "AND",
		MnXOR: "XOR", MnOR: "OR", MnCP: "CP", MnPOP: "POP", MnJP: "JP",
		MnPUSH: "PUSH", MnRET: "RET", MnCB: "CB", MnCALL: "CALL", MnRETI: "RETI",
		MnLDH: "LDH", MnJPHL: "JP", MnDI: "DI", MnEI: "EI", MnRST: "RST",
	}
	if n, ok := names[m]; ok {
		return n
	}
	return "???"
}
