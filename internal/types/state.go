package types

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
)

// ErrShortState is returned when a State is read past its end.
var ErrShortState = errors.New("state: read past end of data")

// stateMagic prefixes every serialized state, so that a random
// file is rejected before any component tries to read from it.
var stateMagic = []byte{'G', 'B', 'C', 'S'}

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State represents the emulated machine state. This is used to
// save and load states between runs.
type State struct {
	raw           []byte // raw state data (for serialization)
	readPosition  int    // current read position
	writePosition int    // current write position
	err           error  // first read error encountered
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// ResetPosition resets the read and write positions,
// allowing the state to be read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.writePosition = 0
	s.err = nil
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// Err returns the first error encountered while reading the
// state. Reads after an error return zero values.
func (s *State) Err() error {
	return s.err
}

func (s *State) need(n int) bool {
	if s.err != nil {
		return false
	}
	if s.readPosition+n > len(s.raw) {
		s.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortState, n, s.readPosition, len(s.raw))
		return false
	}
	return true
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
	s.writePosition++
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
	s.writePosition += 2
}

func (s *State) Write32(value uint32) {
	s.raw = append(s.raw, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
	s.writePosition += 4
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
	s.writePosition++
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
	s.writePosition += len(data)
}

func (s *State) Read8() uint8 {
	if !s.need(1) {
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	if !s.need(2) {
		return 0
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) Read32() uint32 {
	if !s.need(4) {
		return 0
	}
	value := uint32(s.raw[s.readPosition]) | uint32(s.raw[s.readPosition+1])<<8 | uint32(s.raw[s.readPosition+2])<<16 | uint32(s.raw[s.readPosition+3])<<24
	s.readPosition += 4
	return value
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

func (s *State) ReadData(p []byte) {
	if !s.need(len(p)) {
		return
	}
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Bytes returns the raw state data.
func (s *State) Bytes() []byte {
	return s.raw
}

// Checksum returns the xxhash of the raw state data. Two states
// with the same checksum describe the same machine.
func (s *State) Checksum() uint64 {
	return xxhash.Sum64(s.raw)
}

// Compress returns the state data prefixed with a magic header and
// compressed with brotli.
func (s *State) Compress() ([]byte, error) {
	return cbrotli.Encode(append(append([]byte{}, stateMagic...), s.raw...), cbrotli.WriterOptions{
		Quality: 9,
	})
}

// StateFromCompressed decodes data produced by State.Compress.
func StateFromCompressed(data []byte) (*State, error) {
	raw, err := cbrotli.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("state: decompress: %w", err)
	}
	if len(raw) < len(stateMagic) || string(raw[:len(stateMagic)]) != string(stateMagic) {
		return nil, errors.New("state: bad magic header")
	}
	return StateFromBytes(raw[len(stateMagic):]), nil
}

// SaveToFile writes the compressed state to the given file.
func (s *State) SaveToFile(filename string) error {
	data, err := s.Compress()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// StateFromFile reads a state written by SaveToFile.
func StateFromFile(filename string) (*State, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return StateFromCompressed(data)
}
