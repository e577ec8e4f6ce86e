// Package gameboy composes the memory, CPU and timing scheduler into
// a machine that can be stepped one instruction at a time.
package gameboy

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/boot"
	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/scheduler"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = scheduler.CyclesPerScanline * (scheduler.MaxScanline + 1)
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	Scheduler *scheduler.Scheduler

	log.Logger

	bootROM   *boot.ROM
	cartridge *cartridge.Cartridge
	state     *types.State
	skipBoot  bool

	scanlineHandlers []func(ly uint8)
	vblankHandlers   []func()
	vblank           bool

	err error // first error raised by an option
}

// New returns a new GameBoy configured by opts. The cartridge is
// copied into memory first and the boot image over it, so the boot
// image owns the low region until the program unmaps it.
func New(opts ...Opt) (*GameBoy, error) {
	memBus := mmu.NewMMU()
	sched := scheduler.NewScheduler(memBus)
	g := &GameBoy{
		CPU:       cpu.NewCPU(memBus, sched),
		MMU:       memBus,
		Scheduler: sched,
		Logger:    log.NewNullLogger(),
	}
	sched.RegisterEvent(scheduler.EventScanline, g.onScanline)
	sched.RegisterEvent(scheduler.EventVBlank, g.onVBlank)

	for _, opt := range opts {
		opt(g)
	}
	if g.err != nil {
		return nil, g.err
	}

	if g.cartridge != nil {
		n := g.cartridge.Load(g.MMU)
		g.Infof("cartridge: %s (%d bytes mapped)", g.cartridge.Header().String(), n)
	}
	if g.bootROM != nil {
		n := g.bootROM.Load(g.MMU)
		g.Infof("boot: %s %s (%d bytes loaded)", g.bootROM.Model(), g.bootROM.Checksum(), n)
	}
	if g.skipBoot {
		g.CPU.ResetNoBoot()
		g.MMU.Write(types.BDIS, 0x01)
	}
	if g.state != nil {
		if err := g.LoadState(g.state); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *GameBoy) onScanline() {
	ly := g.MMU.Read(types.LY)
	for _, fn := range g.scanlineHandlers {
		fn(ly)
	}
}

func (g *GameBoy) onVBlank() {
	g.vblank = true
	for _, fn := range g.vblankHandlers {
		fn()
	}
}

// BootROM returns the boot image, or nil if none was given.
func (g *GameBoy) BootROM() *boot.ROM {
	return g.bootROM
}

// Cartridge returns the cartridge, or nil if none was given.
func (g *GameBoy) Cartridge() *cartridge.Cartridge {
	return g.cartridge
}

// Cycles returns the number of cycles executed since power on.
func (g *GameBoy) Cycles() uint64 {
	return g.Scheduler.Cycle()
}

// Step executes a single instruction.
func (g *GameBoy) Step() error {
	if err := g.CPU.Step(); err != nil {
		return fmt.Errorf("gameboy: cycle %d: %w", g.Scheduler.Cycle(), err)
	}
	return nil
}

// StepN executes up to n instructions, stopping at the first error.
// The number of instructions executed is returned.
func (g *GameBoy) StepN(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := g.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// RunUntil steps until stop returns true, an instruction fails or,
// if limit is positive, limit instructions have been executed. stop
// is checked before every instruction.
func (g *GameBoy) RunUntil(stop func() bool, limit int) (int, error) {
	steps := 0
	for limit <= 0 || steps < limit {
		if stop != nil && stop() {
			break
		}
		if err := g.Step(); err != nil {
			return steps, err
		}
		steps++
	}
	return steps, nil
}

// Frame steps the emulation until the scanline counter enters the
// vertical blanking period.
func (g *GameBoy) Frame() error {
	g.vblank = false
	_, err := g.RunUntil(func() bool { return g.vblank }, 0)
	return err
}

// Snapshot copies the whole address space into dst. See mmu.MMU.Snapshot.
func (g *GameBoy) Snapshot(dst []byte) []byte {
	return g.MMU.Snapshot(dst)
}

// ReadAt reads a byte at an address that may lie outside of the
// address space.
func (g *GameBoy) ReadAt(address int) (uint8, error) {
	return g.MMU.ReadAt(address)
}

// WriteAt writes a byte at an address that may lie outside of the
// address space.
func (g *GameBoy) WriteAt(address int, value uint8) error {
	return g.MMU.WriteAt(address, value)
}

// SaveState saves the CPU, memory and scheduler to a new state.
func (g *GameBoy) SaveState() *types.State {
	s := types.NewState()
	g.CPU.Save(s)
	g.MMU.Save(s)
	g.Scheduler.Save(s)
	return s
}

// LoadState restores the CPU, memory and scheduler from a state
// written by SaveState. The state is read into scratch components
// first, so a short or corrupt state leaves the GameBoy untouched.
func (g *GameBoy) LoadState(s *types.State) error {
	s.ResetPosition()
	memBus := mmu.NewMMU()
	sched := scheduler.NewScheduler(memBus)
	cpu.NewCPU(memBus, sched).Load(s)
	memBus.Load(s)
	sched.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("gameboy: load state: %w", err)
	}

	s.ResetPosition()
	g.CPU.Load(s)
	g.MMU.Load(s)
	g.Scheduler.Load(s)
	return s.Err()
}
