package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// Flag is the bit position of a flag when packed into the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four CPU flags. They are recomputed by every
// instruction that affects them and only packed into F when the
// AF pair is read.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// setFlags sets all four flags at once.
func (f *Flags) setFlags(zero, subtract, halfCarry, carry bool) {
	f.Zero = zero
	f.Subtract = subtract
	f.HalfCarry = halfCarry
	f.Carry = carry
}

// Pack returns the flags in the layout of the F register. The lower
// nibble is always zero.
func (f Flags) Pack() uint8 {
	var v uint8
	if f.Zero {
		v = bits.Set(v, FlagZero)
	}
	if f.Subtract {
		v = bits.Set(v, FlagSubtract)
	}
	if f.HalfCarry {
		v = bits.Set(v, FlagHalfCarry)
	}
	if f.Carry {
		v = bits.Set(v, FlagCarry)
	}
	return v
}

// Unpack sets the flags from a value in the layout of the F register.
func (f *Flags) Unpack(v uint8) {
	f.Zero = bits.Test(v, FlagZero)
	f.Subtract = bits.Test(v, FlagSubtract)
	f.HalfCarry = bits.Test(v, FlagHalfCarry)
	f.Carry = bits.Test(v, FlagCarry)
}

// Condition is a branch condition of the conditional jump, call and
// return instructions.
type Condition uint8

const (
	ConditionNotZero Condition = iota
	ConditionZero
	ConditionNotCarry
	ConditionCarry
)

var conditionNames = [...]string{"NZ", "Z", "NC", "C"}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return "?"
}

// Holds reports whether the condition holds for the flags.
func (f Flags) Holds(c Condition) bool {
	switch c {
	case ConditionNotZero:
		return !f.Zero
	case ConditionZero:
		return f.Zero
	case ConditionNotCarry:
		return !f.Carry
	case ConditionCarry:
		return f.Carry
	}
	return false
}
