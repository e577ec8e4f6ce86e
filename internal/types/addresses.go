package types

// HardwareAddress is the address of a memory mapped hardware
// register. The core stores them as ordinary bytes; only the
// component that owns a register gives it a meaning.
type HardwareAddress = uint16

const (
	// IF requests interrupts, one bit per source:
	//
	//  Bit 0: V-Blank
	//  Bit 1: LCD STAT
	//  Bit 2: Timer
	//  Bit 3: Serial
	//  Bit 4: Joypad
	//
	// A halted CPU resumes once a bit is set here and in IE.
	IF HardwareAddress = 0xFF0F
	// LY holds the scanline currently being drawn, 0-153. It is
	// advanced by the scheduler and read by the renderer; lines
	// 144-153 are the vertical blanking period.
	LY HardwareAddress = 0xFF44
	// BDIS unmaps the boot ROM once bit 0 is written by the boot
	// program. It is set directly when the boot is skipped.
	BDIS HardwareAddress = 0xFF50
	// IE enables interrupts, with the same layout as IF.
	IE HardwareAddress = 0xFFFF
)

// CartridgeHeader is the start of the cartridge header, which is
// also where execution begins after the boot ROM.
const CartridgeHeader uint16 = 0x0100
