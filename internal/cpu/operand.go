package cpu

import "fmt"

// OperandKind is the addressing mode of an 8-bit operand.
type OperandKind uint8

const (
	// OperandRegister is one of the 8-bit registers.
	OperandRegister OperandKind = iota
	// OperandIndirect is the byte in memory addressed by a register
	// pair, including the auto-incrementing HLI and HLD views.
	OperandIndirect
	// OperandImmediate is the byte following the opcode.
	OperandImmediate
	// OperandAbsolute is the byte in memory addressed by the 16-bit
	// immediate following the opcode.
	OperandAbsolute
	// OperandHigh is the byte at 0xFF00 plus the immediate byte.
	OperandHigh
	// OperandHighC is the byte at 0xFF00 plus the C register.
	OperandHighC
)

// Operand8 describes where an 8-bit value is read from or written to.
type Operand8 struct {
	Kind OperandKind
	Reg  Reg8
	Pair Pair
}

func reg(r Reg8) Operand8      { return Operand8{Kind: OperandRegister, Reg: r} }
func indirect(p Pair) Operand8 { return Operand8{Kind: OperandIndirect, Pair: p} }
func immediate8() Operand8     { return Operand8{Kind: OperandImmediate} }
func absolute8() Operand8      { return Operand8{Kind: OperandAbsolute} }
func high8() Operand8          { return Operand8{Kind: OperandHigh} }
func highC() Operand8          { return Operand8{Kind: OperandHighC} }

func (o Operand8) String() string {
	switch o.Kind {
	case OperandRegister:
		return o.Reg.String()
	case OperandIndirect:
		return "(" + o.Pair.String() + ")"
	case OperandImmediate:
		return "d8"
	case OperandAbsolute:
		return "(a16)"
	case OperandHigh:
		return "(a8)"
	case OperandHighC:
		return "(C)"
	}
	return fmt.Sprintf("Operand8(%d)", o.Kind)
}

// Operand16Kind is the addressing mode of a 16-bit operand.
type Operand16Kind uint8

const (
	// Operand16Pair is a register pair.
	Operand16Pair Operand16Kind = iota
	// Operand16Immediate is the little-endian word following the opcode.
	Operand16Immediate
	// Operand16Absolute is the word in memory addressed by the
	// immediate word following the opcode.
	Operand16Absolute
)

// Operand16 describes where a 16-bit value is read from or written to.
type Operand16 struct {
	Kind Operand16Kind
	Pair Pair
}

func pair16(p Pair) Operand16 { return Operand16{Kind: Operand16Pair, Pair: p} }
func immediate16() Operand16  { return Operand16{Kind: Operand16Immediate} }
func absolute16() Operand16   { return Operand16{Kind: Operand16Absolute} }

func (o Operand16) String() string {
	switch o.Kind {
	case Operand16Pair:
		return o.Pair.String()
	case Operand16Immediate:
		return "d16"
	case Operand16Absolute:
		return "(a16)"
	}
	return fmt.Sprintf("Operand16(%d)", o.Kind)
}
