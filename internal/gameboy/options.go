package gameboy

import (
	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug traces every executed instruction at debug level.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
		gb.CPU.SetLogger(log)
	}
}

// WithBootROM sets the boot ROM for the emulator. The CPU starts
// executing it from 0x0000 with every register cleared.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = boot.LoadBootROM(rom)
	}
}

// WithCartridge inserts a cartridge. Its first 32kB are copied into
// memory below the boot ROM.
func WithCartridge(rom []byte) Opt {
	return func(gb *GameBoy) {
		cart, err := cartridge.NewCartridge(rom)
		if err != nil {
			if gb.err == nil {
				gb.err = err
			}
			return
		}
		gb.cartridge = cart
	}
}

// SkipBoot starts the emulator at 0x0100 with the registers set to
// the values upon completion of the boot ROM.
func SkipBoot() Opt {
	return func(gb *GameBoy) {
		gb.skipBoot = true
	}
}

// WithState resumes the emulator from a state written by SaveState.
func WithState(s *types.State) Opt {
	return func(gb *GameBoy) {
		gb.state = s
	}
}

// WithScanlineHandler calls fn with the new value of LY every time
// the scheduler advances the scanline.
func WithScanlineHandler(fn func(ly uint8)) Opt {
	return func(gb *GameBoy) {
		gb.scanlineHandlers = append(gb.scanlineHandlers, fn)
	}
}

// WithVBlankHandler calls fn every time LY enters the vertical
// blanking period. fn runs between two instructions, so it may read
// memory without racing the CPU.
func WithVBlankHandler(fn func()) Opt {
	return func(gb *GameBoy) {
		gb.vblankHandlers = append(gb.vblankHandlers, fn)
	}
}

// WithInstructionHook calls h after every executed instruction.
func WithInstructionHook(h cpu.Hook) Opt {
	return func(gb *GameBoy) {
		gb.CPU.SetHook(h)
	}
}
