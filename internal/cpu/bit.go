package cpu

import "github.com/thelolagemann/gomeboy-core/pkg/bits"

// testBit tests the bit at the given position in n.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, bit uint8) {
	c.Zero = !bits.Test(n, bit)
	c.Subtract = false
	c.HalfCarry = true
}

// resetBit clears the bit at the given position in n.
//
//	RES b, r
//
// Flags affected: none.
func resetBit(n uint8, bit uint8) uint8 {
	return bits.Reset(n, bit)
}

// setBit sets the bit at the given position in n.
//
//	SET b, r
//
// Flags affected: none.
func setBit(n uint8, bit uint8) uint8 {
	return bits.Set(n, bit)
}
