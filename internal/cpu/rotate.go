package cpu

import "github.com/thelolagemann/gomeboy-core/internal/types"

// rotateLeft rotates n left by 1 bit. Without throughCarry the most
// significant bit is copied to both the carry flag and the least
// significant bit, with it the carry flag is copied to the least
// significant bit and the most significant bit becomes the carry.
//
//	RLC n
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(n uint8, throughCarry bool) uint8 {
	carry := n&types.Bit7 != 0
	computed := n << 1
	if throughCarry && c.Carry || !throughCarry && carry {
		computed |= types.Bit0
	}
	c.setFlags(computed == 0, false, false, carry)
	return computed
}

// rotateRight rotates n right by 1 bit, the mirror of rotateLeft.
//
//	RRC n
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(n uint8, throughCarry bool) uint8 {
	carry := n&types.Bit0 != 0
	computed := n >> 1
	if throughCarry && c.Carry || !throughCarry && carry {
		computed |= types.Bit7
	}
	c.setFlags(computed == 0, false, false, carry)
	return computed
}

// rotateLeftAccumulator is the accumulator form of rotateLeft. The
// zero flag is always reset.
//
//	RLCA
//	RLA
func (c *CPU) rotateLeftAccumulator(throughCarry bool) {
	c.A = c.rotateLeft(c.A, throughCarry)
	c.Zero = false
}

// rotateRightAccumulator is the accumulator form of rotateRight.
//
//	RRCA
//	RRA
func (c *CPU) rotateRightAccumulator(throughCarry bool) {
	c.A = c.rotateRight(c.A, throughCarry)
	c.Zero = false
}

// shiftLeftArithmetic shifts n left by 1 bit into the carry flag.
// The least significant bit is reset.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// shiftRightArithmetic shifts n right by 1 bit into the carry flag.
// The most significant bit does not change.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftRightLogical shifts n right by 1 bit into the carry flag.
// The most significant bit is reset.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// swap the upper and lower nibbles of a byte
//
//	SWAP n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}
