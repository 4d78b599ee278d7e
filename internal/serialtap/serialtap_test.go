package serialtap

import "testing"

type fakeBus struct {
	mem map[uint16]uint8
}

func newFakeBus() *fakeBus { return &fakeBus{mem: map[uint16]uint8{}} }

func (f *fakeBus) Read(addr uint16) uint8        { return f.mem[addr] }
func (f *fakeBus) Write(addr uint16, value uint8) { f.mem[addr] = value }

func TestCapturesByteAndClearsSC(t *testing.T) {
	b := newFakeBus()
	b.Write(regSB, 0x42)
	b.Write(regSC, 0x81)

	tap := New(b)
	tap.Observe()

	if got := tap.String(); got != "\x42" {
		t.Errorf("buffer = %q, want %q", got, "\x42")
	}
	if b.Read(regSC) != 0 {
		t.Error("expected SC cleared after observation")
	}
}

func TestIgnoresTransferNotRequested(t *testing.T) {
	b := newFakeBus()
	b.Write(regSB, 0x99)
	b.Write(regSC, 0x01) // high bit not set: no transfer requested

	tap := New(b)
	tap.Observe()

	if tap.Len() != 0 {
		t.Errorf("buffer len = %d, want 0", tap.Len())
	}
}

func TestAccumulatesMultipleBytes(t *testing.T) {
	b := newFakeBus()
	tap := New(b)

	for _, c := range []byte("OK") {
		b.Write(regSB, c)
		b.Write(regSC, 0x81)
		tap.Observe()
	}

	if got := tap.String(); got != "OK" {
		t.Errorf("buffer = %q, want %q", got, "OK")
	}
}
