// Package scheduler provides the timing scheduler, which turns the
// cycles spent by executed instructions into scanline advances of
// the LY register.
package scheduler

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
)

const (
	// CyclesPerScanline is the number of cycles it takes to draw
	// a single scanline.
	CyclesPerScanline = 456
	// MaxScanline is the last scanline before LY wraps to 0.
	MaxScanline = 153
	// VBlankScanline is the first scanline of the vertical blanking
	// period.
	VBlankScanline = 144
)

// Scheduler accumulates the cycles reported by the CPU. Once a
// scanline's worth of cycles has elapsed, the counter is reset and
// LY is advanced in memory, wrapping to 0 after MaxScanline.
type Scheduler struct {
	bus mmu.IOBus

	cycles  uint64 // total cycles since reset
	counter uint64 // cycles into the current scanline

	eventHandlers [eventTypes]func()
}

var (
	_ types.Stater     = (*Scheduler)(nil)
	_ types.Resettable = (*Scheduler)(nil)
)

// NewScheduler returns a Scheduler advancing LY in the given memory.
func NewScheduler(bus mmu.IOBus) *Scheduler {
	return &Scheduler{bus: bus}
}

// Cycle returns the total number of cycles the scheduler has been
// ticked by.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// Counter returns the number of cycles into the current scanline.
func (s *Scheduler) Counter() uint64 {
	return s.counter
}

// RegisterEvent registers a function to be called when the event
// occurs. Only one function can be registered per EventType, a
// later registration replaces the earlier.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.eventHandlers[eventType] = fn
}

// Tick advances the scheduler by the given number of cycles. When
// the counter reaches CyclesPerScanline it is reset to 0, dropping
// any excess, and the scanline is advanced.
func (s *Scheduler) Tick(c uint64) {
	s.cycles += c
	s.counter += c

	if s.counter >= CyclesPerScanline {
		s.counter = 0
		s.advance()
	}
}

func (s *Scheduler) advance() {
	next := s.bus.Read(types.LY) + 1
	if next > MaxScanline {
		next = 0
	}
	s.bus.Write(types.LY, next)

	s.fire(EventScanline)
	if next == VBlankScanline {
		s.fire(EventVBlank)
	}
}

func (s *Scheduler) fire(eventType EventType) {
	if fn := s.eventHandlers[eventType]; fn != nil {
		fn()
	}
}

// Reset zeroes the counters. Registered events are kept.
func (s *Scheduler) Reset() {
	s.cycles = 0
	s.counter = 0
}

// Load restores the counters from the state.
func (s *Scheduler) Load(st *types.State) {
	s.cycles = uint64(st.Read32()) | uint64(st.Read32())<<32
	s.counter = uint64(st.Read16())
}

// Save writes the counters to the state.
func (s *Scheduler) Save(st *types.State) {
	st.Write32(uint32(s.cycles))
	st.Write32(uint32(s.cycles >> 32))
	st.Write16(uint16(s.counter))
}

func (s *Scheduler) String() string {
	return fmt.Sprintf("cycle %d, scanline %d+%d", s.cycles, s.bus.Read(types.LY), s.counter)
}
