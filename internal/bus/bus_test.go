package bus

import (
	"testing"

	"gbcore/internal/cartridge"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	rom := make([]byte, 0x8000)
	cart, err := cartridge.LoadBytes(rom)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	return New(cart)
}

func TestRoutesROM(t *testing.T) {
	b := newTestBus(t)
	b.Cart.Write(0x0100, 0xAA) // no-op on a ROM-only cartridge
	if got := b.Read(0x0100); got != 0x00 {
		t.Errorf("Read(0x0100) = %#x, want 0x00 (write dropped)", got)
	}
}

func TestRoutesWRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xC010, 0x55)
	if got := b.Read(0xC010); got != 0x55 {
		t.Errorf("Read(0xC010) = %#x, want 0x55", got)
	}
}

func TestRoutesHRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFF80, 0x77)
	if got := b.Read(0xFF80); got != 0x77 {
		t.Errorf("Read(0xFF80) = %#x, want 0x77", got)
	}
}

func TestRoutesIE(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFFFF, 0x1F)
	if got := b.Read(0xFFFF); got != 0x1F {
		t.Errorf("Read(0xFFFF) = %#x, want 0x1F", got)
	}
}

func TestUnimplementedRangesReadZeroAndDropWrites(t *testing.T) {
	b := newTestBus(t)
	ranges := []uint16{0x8000, 0x9FFF, 0xE000, 0xFDFF, 0xFE00, 0xFE9F, 0xFEA0, 0xFEFF}
	for _, addr := range ranges {
		b.Write(addr, 0xFF)
		if got := b.Read(addr); got != 0 {
			t.Errorf("Read(%#x) = %#x, want 0", addr, got)
		}
	}
}

func TestRoutesIO(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xFF01, 0x42) // SB
	b.Write(0xFF02, 0x81) // SC
	if got := b.Read(0xFF01); got != 0x42 {
		t.Errorf("Read(0xFF01) = %#x, want 0x42", got)
	}
	if got := b.Read(0xFF02); got != 0x81 {
		t.Errorf("Read(0xFF02) = %#x, want 0x81", got)
	}
}

func TestRead16LittleEndian(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xC000, 0x34)
	b.Write(0xC001, 0x12)
	if got := b.Read16(0xC000); got != 0x1234 {
		t.Errorf("Read16(0xC000) = %#x, want 0x1234", got)
	}
}

func TestWrite16LittleEndian(t *testing.T) {
	b := newTestBus(t)
	b.Write16(0xC000, 0xBEEF)
	if got := b.Read(0xC000); got != 0xEF {
		t.Errorf("low byte = %#x, want 0xEF", got)
	}
	if got := b.Read(0xC001); got != 0xBE {
		t.Errorf("high byte = %#x, want 0xBE", got)
	}
}

func TestCartridgeRAMStubbed(t *testing.T) {
	b := newTestBus(t)
	b.Write(0xA000, 0x42)
	if got := b.Read(0xA000); got != 0 {
		t.Errorf("Read(0xA000) = %#x, want 0 (ROM-only has no SRAM)", got)
	}
}
