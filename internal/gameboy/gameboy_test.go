package gameboy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/scheduler"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

// LD A, 5; LD B, 3; ADD A, B; NOP
var bootProgram = []byte{0x3E, 0x05, 0x06, 0x03, 0x80, 0x00}

func newGameBoy(t *testing.T, opts ...Opt) *GameBoy {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// cartridgeROM returns a 32kB ROM with a valid header and the given
// program at 0x0150, jumped to from the entry point.
func cartridgeROM(program ...byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(rom[0x134:], "TEST")
	var x uint8
	for _, b := range rom[0x134:0x14D] {
		x = x - b - 1
	}
	rom[0x14D] = x
	copy(rom[0x150:], program)
	return rom
}

func TestGameBoy_Boot(t *testing.T) {
	g := newGameBoy(t, WithBootROM(bootProgram))
	if n, err := g.StepN(4); err != nil || n != 4 {
		t.Fatalf("expected 4 steps, got %d: %v", n, err)
	}
	if g.CPU.A != 8 {
		t.Errorf("expected A to be 8, got %d", g.CPU.A)
	}
	if g.CPU.Zero || g.CPU.Carry || g.CPU.HalfCarry {
		t.Errorf("expected flags to be clear, got %+v", g.CPU.Flags)
	}
	if g.Cycles() != 24 {
		t.Errorf("expected 24 cycles, got %d", g.Cycles())
	}
}

func TestGameBoy_Cartridge(t *testing.T) {
	t.Run("boot overlay", func(t *testing.T) {
		g := newGameBoy(t, WithCartridge(cartridgeROM()), WithBootROM(bootProgram))
		if g.MMU.Read(0x0000) != 0x3E {
			t.Errorf("expected the boot image at 0x0000, got 0x%02X", g.MMU.Read(0x0000))
		}
		if g.MMU.Read(0x0101) != 0xC3 {
			t.Errorf("expected the cartridge at 0x0101, got 0x%02X", g.MMU.Read(0x0101))
		}
		if g.Cartridge().Title() != "TEST" {
			t.Errorf("expected title TEST, got %q", g.Cartridge().Title())
		}
	})
	t.Run("skip boot", func(t *testing.T) {
		// LD A, 0x42
		g := newGameBoy(t, WithCartridge(cartridgeROM(0x3E, 0x42)), SkipBoot())
		if g.CPU.PC != 0x0100 || g.CPU.SP != 0xFFFE {
			t.Fatalf("expected PC 0x0100 SP 0xFFFE, got PC 0x%04X SP 0x%04X", g.CPU.PC, g.CPU.SP)
		}
		if _, err := g.StepN(3); err != nil {
			t.Fatal(err)
		}
		if g.CPU.A != 0x42 {
			t.Errorf("expected A to be 0x42, got 0x%02X", g.CPU.A)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if _, err := New(WithCartridge(make([]byte, 0x100))); err == nil {
			t.Errorf("expected an error for an invalid cartridge")
		}
	})
}

func TestGameBoy_Errors(t *testing.T) {
	g := newGameBoy(t, WithBootROM([]byte{0x00, 0xDD}))
	n, err := g.StepN(10)
	if n != 1 {
		t.Errorf("expected 1 step before the error, got %d", n)
	}
	if !errors.Is(err, cpu.ErrUnsupportedOpcode) {
		t.Fatalf("expected ErrUnsupportedOpcode, got %v", err)
	}
	var opErr *cpu.UnsupportedOpcodeError
	if !errors.As(err, &opErr) || opErr.PC != 0x0001 {
		t.Errorf("expected the opcode at 0x0001 to be reported, got %v", err)
	}

	if _, err := g.ReadAt(mmu.Size); !errors.Is(err, mmu.ErrAddressOutOfRange) {
		t.Errorf("expected ErrAddressOutOfRange, got %v", err)
	}
	if err := g.WriteAt(-1, 0); !errors.Is(err, mmu.ErrAddressOutOfRange) {
		t.Errorf("expected ErrAddressOutOfRange, got %v", err)
	}
}

func TestGameBoy_Frame(t *testing.T) {
	var scanlines []uint8
	vblanks := 0
	// JR -2
	g := newGameBoy(t,
		WithBootROM([]byte{0x18, 0xFE}),
		WithScanlineHandler(func(ly uint8) { scanlines = append(scanlines, ly) }),
		WithVBlankHandler(func() { vblanks++ }),
	)

	if err := g.Frame(); err != nil {
		t.Fatal(err)
	}
	if ly := g.MMU.Read(types.LY); ly != scheduler.VBlankScanline {
		t.Errorf("expected LY to be %d, got %d", scheduler.VBlankScanline, ly)
	}
	if vblanks != 1 {
		t.Errorf("expected 1 vblank, got %d", vblanks)
	}
	if len(scanlines) != scheduler.VBlankScanline || scanlines[len(scanlines)-1] != scheduler.VBlankScanline {
		t.Errorf("expected scanlines 1..%d, got %d events", scheduler.VBlankScanline, len(scanlines))
	}
	if g.Cycles() != scheduler.VBlankScanline*scheduler.CyclesPerScanline {
		t.Errorf("expected %d cycles, got %d", scheduler.VBlankScanline*scheduler.CyclesPerScanline, g.Cycles())
	}
}

func TestGameBoy_RunUntil(t *testing.T) {
	g := newGameBoy(t, WithBootROM([]byte{0x18, 0xFE}))
	n, err := g.RunUntil(nil, 100)
	if err != nil || n != 100 {
		t.Errorf("expected 100 steps, got %d: %v", n, err)
	}

	n, err = g.RunUntil(func() bool { return g.Cycles() >= 1500 }, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 25 {
		t.Errorf("expected 25 steps to reach 1500 cycles, got %d", n)
	}
}

func TestGameBoy_State(t *testing.T) {
	g := newGameBoy(t, WithBootROM(bootProgram))
	if _, err := g.StepN(3); err != nil {
		t.Fatal(err)
	}

	data, err := g.SaveState().Compress()
	if err != nil {
		t.Fatal(err)
	}
	s, err := types.StateFromCompressed(data)
	if err != nil {
		t.Fatal(err)
	}

	restored := newGameBoy(t, WithState(s))
	if restored.CPU.PC != g.CPU.PC || restored.CPU.A != g.CPU.A || restored.CPU.B != g.CPU.B {
		t.Errorf("expected CPU to be restored")
	}
	if restored.Cycles() != g.Cycles() {
		t.Errorf("expected %d cycles, got %d", g.Cycles(), restored.Cycles())
	}
	if !bytes.Equal(restored.Snapshot(nil), g.Snapshot(nil)) {
		t.Errorf("expected memory to be restored")
	}

	// the restored machine carries on where the original left off
	if err := restored.Step(); err != nil {
		t.Fatal(err)
	}
	if restored.CPU.A != 8 {
		t.Errorf("expected A to be 8, got %d", restored.CPU.A)
	}

	if err := restored.LoadState(types.StateFromBytes([]byte{0x01})); err == nil {
		t.Errorf("expected an error for a truncated state")
	}
}

func TestGameBoy_LoadTruncatedState(t *testing.T) {
	g := newGameBoy(t, WithBootROM(bootProgram))
	if _, err := g.StepN(4); err != nil {
		t.Fatal(err)
	}
	pc, a, cycles := g.CPU.PC, g.CPU.A, g.Cycles()
	memory := g.Snapshot(nil)

	// registers survive, memory and scheduler are cut off
	truncated := types.StateFromBytes(g.SaveState().Bytes()[:20])
	if err := g.LoadState(truncated); !errors.Is(err, types.ErrShortState) {
		t.Fatalf("expected ErrShortState, got %v", err)
	}

	if g.CPU.PC != pc || g.CPU.A != a {
		t.Errorf("expected PC %04X and A %02X to be kept, got %04X and %02X", pc, a, g.CPU.PC, g.CPU.A)
	}
	if g.Cycles() != cycles {
		t.Errorf("expected %d cycles to be kept, got %d", cycles, g.Cycles())
	}
	if !bytes.Equal(g.Snapshot(nil), memory) {
		t.Errorf("expected memory to be kept")
	}
}
