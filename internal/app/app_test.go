package app

import (
	"os"
	"path/filepath"
	"testing"

	"gbcore/internal/host"
)

const (
	testTitleStart       = 0x0134
	testTitleEnd         = 0x0144
	testChecksumRangeEnd = 0x014C
)

func buildTestROM(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[testTitleStart:testTitleEnd], "APPTEST")
	copy(rom[0x0100:], program)

	var x uint8
	for i := testTitleStart; i <= testChecksumRangeEnd; i++ {
		x = x - rom[i] - 1
	}
	if x == 0 {
		rom[testChecksumRangeEnd] ^= 0x01
	}
	return rom
}

func writeTestROM(t *testing.T, program ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.gb")
	if err := os.WriteFile(path, buildTestROM(program...), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestNewWiresHeadlessApplication(t *testing.T) {
	cfg := NewConfig()
	cfg.Emulation.Headless = true
	romPath := writeTestROM(t, 0x00) // NOP

	a, err := New(cfg, romPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.CPU() == nil || a.Bus() == nil {
		t.Fatal("expected CPU and Bus to be wired")
	}
}

func TestNewRejectsMissingROM(t *testing.T) {
	cfg := NewConfig()
	cfg.Emulation.Headless = true
	if _, err := New(cfg, filepath.Join(t.TempDir(), "missing.gb")); err == nil {
		t.Fatal("expected an error loading a missing ROM")
	}
}

// A decode error during Run surfaces to the caller rather than panicking,
// since the first instruction in this ROM is illegal on the SM83.
func TestRunSurfacesDecodeError(t *testing.T) {
	cfg := NewConfig()
	cfg.Emulation.Headless = true
	cfg.Emulation.FrameRate = 0 // run flat-out, no pacing sleep in the test
	romPath := writeTestROM(t, 0xD3)

	a, err := New(cfg, romPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.Run(); err == nil {
		t.Fatal("expected Run to surface the decode error")
	}
}

// A host that already wants to quit before Run starts exits the loop
// immediately with no error.
func TestRunStopsWhenHostAlreadyQuit(t *testing.T) {
	cfg := NewConfig()
	cfg.Emulation.Headless = true
	cfg.Emulation.FrameRate = 0
	romPath := writeTestROM(t, 0x00) // NOP

	a, err := New(cfg, romPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	hh, ok := a.host.(*host.HeadlessHost)
	if !ok {
		t.Fatal("expected a HeadlessHost when Emulation.Headless is set")
	}
	hh.RequestQuit()

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.CPU().Ticks() != 0 {
		t.Errorf("expected no instructions stepped, ticks = %d", a.CPU().Ticks())
	}
}
