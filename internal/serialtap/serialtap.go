// Package serialtap implements a passive observer on the serial port
// registers, the channel Blargg-style CPU test ROMs use to report a
// pass/fail string: they stage a byte in SB, then write SC=0x81 to signal
// a transfer request. Real hardware would clock that byte out over a
// link cable; this core has no link partner, so the tap simply captures
// the byte and clears SC, which is enough to keep the test ROM's transfer
// loop from stalling.
package serialtap

import "strings"

// Bus is the narrow read/write contract the tap needs from the address
// bus, satisfied structurally by *gbcore/internal/bus.Bus.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

const (
	regSB = 0xFF01
	regSC = 0xFF02
)

// Tap accumulates serial output bytes into a string buffer.
type Tap struct {
	bus Bus
	buf strings.Builder
}

// New creates a Tap observing bus.
func New(bus Bus) *Tap {
	return &Tap{bus: bus}
}

// Observe must be called once per retired instruction (or at any coarser
// interval the caller is confident can't miss a transfer-requested byte).
// Per the tap's invariant: if SC&0x81==0x81, the pending byte in SB is
// appended to the buffer and SC is cleared.
func (t *Tap) Observe() {
	sc := t.bus.Read(regSC)
	if sc&0x81 != 0x81 {
		return
	}
	t.buf.WriteByte(t.bus.Read(regSB))
	t.bus.Write(regSC, 0)
}

// String returns the accumulated serial output captured so far.
func (t *Tap) String() string {
	return t.buf.String()
}

// Len returns the number of bytes captured so far.
func (t *Tap) Len() int {
	return t.buf.Len()
}
