// Package mmu provides the memory of the emulated machine: a single
// flat 64kB address space. Hardware registers such as LY live in the
// same array as everything else; the MMU gives them no special
// meaning, the surrounding components decide what they mean.
package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

// Size is the size of the address space in bytes.
const Size = 0x10000

// ErrAddressOutOfRange is returned by the checked accessors when an
// address falls outside of the 16-bit address space.
var ErrAddressOutOfRange = errors.New("mmu: address out of range")

// AddressError describes a checked access that fell outside of the
// address space.
type AddressError struct {
	Op      string
	Address int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("mmu: %s at %#x: address out of range", e.Op, e.Address)
}

// Is reports whether target is ErrAddressOutOfRange.
func (e *AddressError) Is(target error) bool {
	return target == ErrAddressOutOfRange
}

// IOBus is the interface that the CPU uses to access memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory of the machine. Writes are visible to every
// reader immediately, there is no buffering between the CPU and
// anything inspecting the memory (e.g. a renderer).
type MMU struct {
	// 64kB address space
	raw [Size]uint8
}

var (
	_ IOBus            = (*MMU)(nil)
	_ types.Stater     = (*MMU)(nil)
	_ types.Resettable = (*MMU)(nil)
)

// NewMMU returns a new, zeroed MMU.
func NewMMU() *MMU {
	return &MMU{}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Read16 reads a little-endian 16-bit value. The high byte is read
// from address+1, wrapping to 0x0000 at the top of memory.
func (m *MMU) Read16(address uint16) uint16 {
	return utils.BytesToUint16(m.raw[address+1], m.raw[address])
}

// Write16 writes a little-endian 16-bit value.
func (m *MMU) Write16(address uint16, value uint16) {
	m.raw[address+1], m.raw[address] = utils.Uint16ToBytes(value)
}

// ReadAt is the checked form of Read, for callers that compute
// addresses outside of the 16-bit domain.
func (m *MMU) ReadAt(address int) (uint8, error) {
	if address < 0 || address >= Size {
		return 0, &AddressError{Op: "read", Address: address}
	}
	return m.raw[address], nil
}

// WriteAt is the checked form of Write.
func (m *MMU) WriteAt(address int, value uint8) error {
	if address < 0 || address >= Size {
		return &AddressError{Op: "write", Address: address}
	}
	m.raw[address] = value
	return nil
}

// LoadAt copies data into memory starting at offset. The offset must
// lie within the address space; data that runs past the end of
// memory is truncated. The number of bytes copied is returned.
func (m *MMU) LoadAt(offset int, data []byte) (int, error) {
	if offset < 0 || offset >= Size {
		return 0, &AddressError{Op: "load", Address: offset}
	}
	return copy(m.raw[offset:], data), nil
}

// Snapshot copies the whole address space into dst, which must be
// at least Size bytes long, and returns it. A nil dst allocates.
func (m *MMU) Snapshot(dst []byte) []byte {
	if len(dst) < Size {
		dst = make([]byte, Size)
	}
	copy(dst, m.raw[:])
	return dst[:Size]
}

// Reset zeroes the whole address space.
func (m *MMU) Reset() {
	m.raw = [Size]uint8{}
}

// Load restores the address space from the state.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

// Save writes the whole address space to the state.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
