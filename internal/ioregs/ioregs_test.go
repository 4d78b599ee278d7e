package ioregs

import "testing"

func TestSerialRegistersRoundTrip(t *testing.T) {
	r := New()
	r.Write(regSB, 0x42)
	r.Write(regSC, 0x81)
	if got := r.Read(regSB); got != 0x42 {
		t.Errorf("Read(SB) = %#x, want 0x42", got)
	}
	if got := r.Read(regSC); got != 0x81 {
		t.Errorf("Read(SC) = %#x, want 0x81", got)
	}
}

func TestClearSC(t *testing.T) {
	r := New()
	r.Write(regSC, 0x81)
	r.ClearSC()
	if got := r.Read(regSC); got != 0 {
		t.Errorf("Read(SC) after ClearSC = %#x, want 0", got)
	}
}

func TestUnimplementedRegisterStub(t *testing.T) {
	r := New()
	r.Write(0x40, 0x99) // e.g. LCDC, not modeled here
	if got := r.Read(0x40); got != 0 {
		t.Errorf("Read(unimplemented) = %#x, want 0", got)
	}
}

func TestIFMasksToFiveBits(t *testing.T) {
	r := New()
	r.SetIF(0xFF)
	if got := r.IF(); got != 0x1F {
		t.Errorf("IF() = %#x, want 0x1F", got)
	}
	if got := r.Read(regIF); got != 0xFF {
		t.Errorf("Read(IF) = %#x, want 0xFF (top bits read high)", got)
	}
}

func TestRequestAndClearInterrupt(t *testing.T) {
	r := New()
	r.RequestInterrupt(0x01)
	r.RequestInterrupt(0x04)
	if got := r.IF(); got != 0x05 {
		t.Errorf("IF() = %#x, want 0x05", got)
	}
	r.ClearInterrupt(0x01)
	if got := r.IF(); got != 0x04 {
		t.Errorf("IF() = %#x, want 0x04", got)
	}
}
