// Package boot wraps the boot image, the program the CPU starts
// executing from address 0x0000. The image is copied into the low
// region of memory before the first step.
package boot

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
)

const (
	// DMGSize is the size of the DMG/MGB/SGB boot images.
	DMGSize = 256
	// CGBSize is the size of the CGB boot images.
	CGBSize = 2304
)

// ROM is a boot image. Any length is accepted, an image that does
// not fit in memory is truncated when loaded.
type ROM struct {
	raw         []byte
	checksum    string // MD5, used to identify known images
	fingerprint uint64 // xxhash, used to tell images apart quickly
}

// LoadBootROM wraps b in a new ROM, computing its checksums. The
// slice is not copied.
func LoadBootROM(b []byte) *ROM {
	sum := md5.Sum(b)
	return &ROM{
		raw:         b,
		checksum:    hex.EncodeToString(sum[:]),
		fingerprint: xxhash.Sum64(b),
	}
}

// Read returns the byte at the given address, or 0xFF past the end
// of the image.
func (b *ROM) Read(addr uint16) byte {
	if int(addr) >= len(b.raw) {
		return 0xFF
	}
	return b.raw[addr]
}

// Len returns the length of the image in bytes.
func (b *ROM) Len() int {
	if b == nil {
		return 0
	}
	return len(b.raw)
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Fingerprint returns the xxhash of the boot rom.
func (b *ROM) Fingerprint() uint64 {
	if b == nil {
		return 0
	}
	return b.fingerprint
}

// Model returns the model of the boot rom, as determined by its
// checksum.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// Load copies the image into memory starting at 0x0000 and returns
// the number of bytes copied.
func (b *ROM) Load(m *mmu.MMU) int {
	if b == nil {
		return 0
	}
	// offset 0 is always in range
	n, _ := m.LoadAt(0, b.raw)
	return n
}

// knownBootROMChecksums maps the MD5 checksums of known boot images
// to the model they were dumped from.
var knownBootROMChecksums = map[string]string{
	DMG0:         "Game Boy (DMG-0)",
	DMG:          "Game Boy (DMG-01)",
	MGB:          "Game Boy Pocket",
	SGB:          "Super Game Boy",
	SGB2:         "Super Game Boy 2",
	CGB0:         "Game Boy Color (CGB-0)",
	CGB:          "Game Boy Color (CGB-A/B/C/D/E)",
	CGB_AGB:      "Game Boy Advance (AGB-001)",
	FORTUNE:      "Fortune/Bitman 3000B",
	GAME_FIGHTER: "Game Fighter",
	MAX_STATION:  "Max Station",
}

const (
	// DMG0 is the early DMG boot image, only sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot image of the original DMG-01.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB sends the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB the way MGB differs from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// CGB0 is the early CGB boot image.
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	// CGB is the common CGB boot image, 2304 bytes long.
	CGB = "dbfce9db9deaa2567f6a84fde55f9680"
	// CGB_AGB is found in the GBA's compatibility mode.
	CGB_AGB = "e6cefb5f7d352fab6681989763917c73"
	// FORTUNE, GAME_FIGHTER and MAX_STATION are found in clones.
	FORTUNE      = "92ed4eca17d61fcd53f8a64c3ce84743"
	GAME_FIGHTER = "6a7b8ee12a793f66a969c6a2b8926cc9"
	MAX_STATION  = "77a7021db824010a678791f6d062943d"
)
