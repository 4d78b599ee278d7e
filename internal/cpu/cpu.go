// Package cpu implements the Sharp SM83 CPU interpreter at the heart of
// this core: the instruction table, fetch/decode/execute pipeline, the
// interrupt controller, and the step-driven cycle accountant that every
// bus access charges against.
package cpu

import "fmt"

// Bus is the address-space contract the CPU drives. gbcore/internal/bus.Bus
// satisfies this without the cpu package importing it directly: bus never
// imports cpu, and cpu depends only on this Bus interface.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Read16(addr uint16) uint16
	Write16(addr uint16, value uint16)
}

// Interrupt sources, in priority order (lowest bit serviced first).
const (
	IntVBlank  uint8 = 1 << 0
	IntLCDStat uint8 = 1 << 1
	IntTimer   uint8 = 1 << 2
	IntSerial  uint8 = 1 << 3
	IntJoypad  uint8 = 1 << 4
)

var interruptVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// DecodeError is the single fatal error this core raises: decode produced
// an unknown opcode. The driver surfaces it rather than panicking.
type DecodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode %#02x at PC=%#04x", e.Opcode, e.PC)
}

// CPU holds the full execution context: the register file plus the
// per-instruction scratch state (fetched_data, mem_dest, dest_is_mem),
// halt/IME state, and the cycle counter.
type CPU struct {
	Regs Registers

	bus Bus

	CurOpcode uint8
	CurInstr  *Instruction
	CbOpcode  uint8 // valid only when CurInstr.Mnemonic == MnCB

	FetchedData uint16
	MemDest     uint16
	DestIsMem   bool

	Halted   bool
	Stepping bool

	IME        bool
	imePending bool

	// ticks counts m-cycles (one m-cycle = 4 T-states); EmuCycles is the
	// sole point that advances it, per the cycle-accounting invariant.
	ticks uint64

	// onCycles is an optional hook future timer/PPU code can attach to
	// observe every cycle charge as it happens.
	onCycles func(mCycles int)

	// trace, if set, receives one line per retired instruction.
	trace func(line string)

	die bool
}

// New creates a CPU wired to bus and resets it to the documented post-boot
// state.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset restores the documented DMG post-boot register/flag state and
// clears all execution-context scratch fields.
func (c *CPU) Reset() {
	c.Regs.Reset()
	c.CurOpcode = 0
	c.CurInstr = nil
	c.FetchedData = 0
	c.MemDest = 0
	c.DestIsMem = false
	c.Halted = false
	c.Stepping = false
	c.IME = false
	c.imePending = false
	c.ticks = 0
	c.die = false
}

// Ticks returns the total number of m-cycles charged so far.
func (c *CPU) Ticks() uint64 { return c.ticks }

// RequestStop asks the driver to stop at the next instruction boundary,
// a cooperative "die" flag the host can set to end a run cleanly.
func (c *CPU) RequestStop() { c.die = true }

// StopRequested reports whether RequestStop has been called.
func (c *CPU) StopRequested() bool { return c.die }

// SetCycleHook installs a callback invoked on every EmuCycles charge, the
// hook point for a future timer or PPU to piggyback on the CPU's clock.
func (c *CPU) SetCycleHook(hook func(mCycles int)) { c.onCycles = hook }

// SetTrace installs a per-instruction trace sink; pass nil to disable.
func (c *CPU) SetTrace(sink func(line string)) { c.trace = sink }

// EmuCycles is the cycle accountant (C12): every bus read, bus write,
// internal decision cycle, branch-taken cycle, and halt tick charges
// through here, in program order, with no deferred accumulation.
func (c *CPU) EmuCycles(n int) {
	c.ticks += uint64(n)
	if c.onCycles != nil {
		c.onCycles(n)
	}
}

// read8 is a bus read that charges one m-cycle.
func (c *CPU) read8(addr uint16) uint8 {
	v := c.bus.Read(addr)
	c.EmuCycles(1)
	return v
}

// write8 is a bus write that charges one m-cycle.
func (c *CPU) write8(addr uint16, v uint8) {
	c.bus.Write(addr, v)
	c.EmuCycles(1)
}

// read16 reads a 16-bit little-endian value as two charged byte reads.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read8(addr))
	hi := uint16(c.read8(addr + 1))
	return lo | hi<<8
}

// write16 writes a 16-bit little-endian value as two charged byte writes.
func (c *CPU) write16(addr uint16, v uint16) {
	c.write8(addr, uint8(v&0xFF))
	c.write8(addr+1, uint8(v>>8))
}

// IE returns the interrupt-enable register (bus address 0xFFFF).
func (c *CPU) IE() uint8 { return c.bus.Read(0xFFFF) }

// IF returns the interrupt-flag register (bus address 0xFF0F).
func (c *CPU) IF() uint8 { return c.bus.Read(0xFF0F) }

func (c *CPU) setIF(v uint8) { c.bus.Write(0xFF0F, v&0x1F) }
