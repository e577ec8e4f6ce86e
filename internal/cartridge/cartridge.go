// Package cartridge parses game cartridge images and pre-fills
// memory with them. Bank switching is not modelled: only the first
// 32kB of a cartridge are ever visible.
package cartridge

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	headerSize = 0x50
	// VisibleSize is the amount of cartridge ROM mapped without a
	// memory bank controller.
	VisibleSize = 0x8000
)

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom    []byte
	header Header
}

// NewCartridge parses the header of rom and returns the cartridge.
// The ROM must be at least large enough to hold the header.
func NewCartridge(rom []byte) (*Cartridge, error) {
	end := int(types.CartridgeHeader) + headerSize
	if len(rom) < end {
		return nil, fmt.Errorf("cartridge: rom too short for header: %d bytes", len(rom))
	}
	header, err := parseHeader(rom[types.CartridgeHeader:end])
	if err != nil {
		return nil, err
	}
	return &Cartridge{
		rom:    rom,
		header: header,
	}, nil
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Read returns the byte at the given address, or 0xFF past the end
// of the ROM.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[address]
}

// Load copies the visible part of the cartridge into memory starting
// at 0x0000 and returns the number of bytes copied.
func (c *Cartridge) Load(m *mmu.MMU) int {
	rom := c.rom
	if len(rom) > VisibleSize {
		rom = rom[:VisibleSize]
	}
	n, _ := m.LoadAt(0, rom)
	return n
}
