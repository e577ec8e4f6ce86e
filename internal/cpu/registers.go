package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-core/internal/types"
)

type (
	Register     = types.Register
	RegisterPair = types.RegisterPair
)

// Reg8 names one of the eight 8-bit registers.
type Reg8 uint8

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegA
	RegF
)

var reg8Names = [...]string{"B", "C", "D", "E", "H", "L", "A", "F"}

func (r Reg8) String() string {
	if int(r) < len(reg8Names) {
		return reg8Names[r]
	}
	return fmt.Sprintf("Reg8(%d)", uint8(r))
}

// Pair names a 16-bit view over the register file. Most pairs read
// and write two 8-bit cells, SP is a cell of its own, and HLI/HLD
// view HL while post-incrementing or post-decrementing it on every
// access.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
	PairHLI
	PairHLD
)

var pairNames = [...]string{"BC", "DE", "HL", "SP", "AF", "HL+", "HL-"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers contains the 8-bit registers, the stack pointer and
// the register pairs viewing them. Registers must not be copied
// once initialised, as the pairs point into the struct.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// initPairs points the register pairs at their cells.
func (r *Registers) initPairs() {
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
	r.AF = types.NewRegisterPair(&r.A, &r.F)
}

// Get returns the value of the given 8-bit register.
func (r *Registers) Get(reg Reg8) uint8 {
	switch reg {
	case RegA:
		return r.A
	case RegB:
		return r.B
	case RegC:
		return r.C
	case RegD:
		return r.D
	case RegE:
		return r.E
	case RegF:
		return r.F
	case RegH:
		return r.H
	case RegL:
		return r.L
	}
	panic(fmt.Sprintf("invalid register: %d", reg))
}

// Set sets the value of the given 8-bit register.
func (r *Registers) Set(reg Reg8, value uint8) {
	switch reg {
	case RegA:
		r.A = value
	case RegB:
		r.B = value
	case RegC:
		r.C = value
	case RegD:
		r.D = value
	case RegE:
		r.E = value
	case RegF:
		r.F = value
	case RegH:
		r.H = value
	case RegL:
		r.L = value
	default:
		panic(fmt.Sprintf("invalid register: %d", reg))
	}
}

// ReadPair reads the given pair. Reading HLI or HLD returns the
// current HL and then moves HL by one, wrapping at 16 bits.
func (r *Registers) ReadPair(p Pair) uint16 {
	switch p {
	case PairBC:
		return r.BC.Uint16()
	case PairDE:
		return r.DE.Uint16()
	case PairHL:
		return r.HL.Uint16()
	case PairAF:
		return r.AF.Uint16()
	case PairSP:
		return r.SP
	case PairHLI:
		value := r.HL.Uint16()
		r.HL.SetUint16(value + 1)
		return value
	case PairHLD:
		value := r.HL.Uint16()
		r.HL.SetUint16(value - 1)
		return value
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// WritePair writes the given pair. Writing HLI or HLD stores the
// value moved by one, as the write itself counts as the access.
func (r *Registers) WritePair(p Pair, value uint16) {
	switch p {
	case PairBC:
		r.BC.SetUint16(value)
	case PairDE:
		r.DE.SetUint16(value)
	case PairHL:
		r.HL.SetUint16(value)
	case PairAF:
		r.AF.SetUint16(value)
	case PairSP:
		r.SP = value
	case PairHLI:
		r.HL.SetUint16(value + 1)
	case PairHLD:
		r.HL.SetUint16(value - 1)
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}
