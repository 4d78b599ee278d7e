// Package cartridge implements ROM loading and header parsing for Game Boy cartridges.
package cartridge

import (
	"fmt"
	"os"
)

// Header layout offsets within the ROM image, per the Game Boy cartridge
// header spec (0x0100-0x014F).
const (
	titleStart         = 0x0134
	titleEnd           = 0x0144 // exclusive
	newLicenseeStart   = 0x0144
	cgbFlagOffset      = 0x0143
	cartTypeOffset     = 0x0147
	romSizeOffset      = 0x0148
	ramSizeOffset      = 0x0149
	oldLicenseeOffset  = 0x014B
	maskROMVerOffset   = 0x014C
	headerChecksumByte = 0x014D

	checksumRangeStart = 0x0134
	checksumRangeEnd   = 0x014C // inclusive

	minHeaderSize = 0x0150
)

// Header holds the parsed fields of a cartridge header. Fields are exposed
// read-only; nothing in this spec banks on ROM/RAM size beyond reporting them.
type Header struct {
	Title            string
	CGBFlag          uint8
	CartridgeType    uint8
	ROMSizeCode      uint8
	RAMSizeCode      uint8
	OldLicenseeCode  uint8
	NewLicenseeCode  string
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	ChecksumValid    bool
}

// Cartridge is a ROM-only (MBC-less) mapper: the whole 0x0000-0x7FFF range
// is a direct index into the ROM image, cartridge RAM reads return 0, and
// all writes are dropped. No bank switching is implemented.
type Cartridge struct {
	rom    []byte
	header Header
}

// Load reads a ROM image from path and parses its header.
func Load(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: read %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a ROM image already in memory. Used directly by tests
// that synthesize tiny ROMs rather than reading them from disk.
func LoadBytes(data []byte) (*Cartridge, error) {
	if len(data) < minHeaderSize {
		return nil, fmt.Errorf("cartridge: image too small (%d bytes) to contain a header", len(data))
	}

	c := &Cartridge{rom: data}
	c.header = parseHeader(data)
	return c, nil
}

func parseHeader(rom []byte) Header {
	h := Header{
		Title:           decodeTitle(rom[titleStart:titleEnd]),
		CGBFlag:         rom[cgbFlagOffset],
		CartridgeType:   rom[cartTypeOffset],
		ROMSizeCode:     rom[romSizeOffset],
		RAMSizeCode:     rom[ramSizeOffset],
		OldLicenseeCode: rom[oldLicenseeOffset],
		MaskROMVersion:  rom[maskROMVerOffset],
		HeaderChecksum:  rom[headerChecksumByte],
	}
	if h.OldLicenseeCode == 0x33 {
		h.NewLicenseeCode = string(rom[newLicenseeStart : newLicenseeStart+2])
	}
	h.ChecksumValid = verifyChecksum(rom)
	return h
}

// decodeTitle strips the null padding from the 16-byte title field.
func decodeTitle(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return string(raw[:end])
}

// verifyChecksum runs the standard header checksum algorithm:
// x := 0; for i in 0x134..=0x14C { x = x - rom[i] - 1 }; valid iff x & 0xFF != 0.
func verifyChecksum(rom []byte) bool {
	var x uint8
	for i := checksumRangeStart; i <= checksumRangeEnd; i++ {
		x = x - rom[i] - 1
	}
	return x&0xFF != 0
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Size returns the length of the loaded ROM image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Read services a bus read anywhere in 0x0000-0x7FFF: a direct index into
// the ROM image. Reads past the end of a short (e.g. synthetic test) image
// return 0 rather than panicking.
func (c *Cartridge) Read(addr uint16) uint8 {
	if int(addr) >= len(c.rom) {
		return 0
	}
	return c.rom[addr]
}

// Write is a no-op: this mapper has no banking registers to latch.
func (c *Cartridge) Write(addr uint16, value uint8) {
	// ROM-only: nothing to bank, writes are dropped.
}

// ReadRAM services 0xA000-0xBFFF. A ROM-only cartridge carries no external
// RAM, so reads return 0.
func (c *Cartridge) ReadRAM(addr uint16) uint8 {
	return 0
}

// WriteRAM drops writes to the (absent) external RAM window.
func (c *Cartridge) WriteRAM(addr uint16, value uint8) {
	// No cartridge RAM on this mapper.
}
