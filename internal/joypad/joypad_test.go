package joypad

import "testing"

func TestNothingPressedByDefault(t *testing.T) {
	j := New()
	j.Write(0x00) // select both lines
	if got := j.Read(); got&0x0F != 0x0F {
		t.Errorf("Read() low nibble = %#x, want 0xF (nothing pressed)", got&0x0F)
	}
}

func TestSetPressedReflectsOnSelectedLine(t *testing.T) {
	j := New()
	j.SetPressed(BitUpOrSelect)
	j.Write(0x00) // select direction and button lines
	if got := j.Read(); got&BitUpOrSelect != 0 {
		t.Errorf("Read() bit for pressed button = 1, want 0 (active-low)")
	}
}

func TestNeitherLineSelectedReadsAllHigh(t *testing.T) {
	j := New()
	j.SetPressed(BitUpOrSelect)
	j.Write(selectDirection | selectButtons) // neither line selected
	if got := j.Read(); got&0x0F != 0x0F {
		t.Errorf("Read() low nibble = %#x, want 0xF when no line is selected", got&0x0F)
	}
}
