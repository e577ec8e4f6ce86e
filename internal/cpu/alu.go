package cpu

// Half carry is detected by repeating an operation on the operands
// shifted left by 4 bits: only the lower nibbles survive the shift,
// so the shifted operation overflows exactly when the nibbles do.

// borrow subtracts b from a, reporting whether it borrowed.
func borrow(a, b uint8) (uint8, bool) {
	return a - b, b > a
}

// add adds n to the A Register. If withCarry is set, the carry flag
// is added as well.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.Carry {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	half := uint16(c.A<<4) + uint16(n<<4) + uint16(carry<<4)
	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, half > 0xFF, sum > 0xFF)
}

// sub subtracts n from the A Register. If withCarry is set, the
// carry flag is subtracted from the intermediate result, and a
// borrow in either subtraction sets the carry flags.
//
//	SUB A, n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.Carry {
		carry = 1
	}
	first, borrowed := borrow(c.A, n)
	result, borrowedCarry := borrow(first, carry)
	_, half := borrow(c.A<<4, n<<4)
	_, halfCarry := borrow(first<<4, carry<<4)

	c.A = result
	c.setFlags(result == 0, true, half || halfCarry, borrowed || borrowedCarry)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register. This is a subtraction whose
// result is thrown away, only the flags are kept.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero. (Set if A = n.)
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set for no borrow. (Set if A < n.)
func (c *CPU) compare(n uint8) {
	a := c.A
	c.sub(n, false)
	c.A = a
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.Zero = result == 0
	c.Subtract = false
	c.HalfCarry = uint16(n<<4)+0x10 > 0xFF
	return result
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	_, half := borrow(n<<4, 0x10)
	c.Zero = result == 0
	c.Subtract = true
	c.HalfCarry = half
	return result
}

// incrementNN increments the given 16-bit value by 1.
//
//	INC nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Not affected.
func (c *CPU) incrementNN(nn uint16) uint16 {
	result := nn + 1
	c.Zero = result == 0
	c.Subtract = false
	c.HalfCarry = uint32(nn<<4)+0x10 > 0xFFFF
	return result
}

// decrementNN decrements the given 16-bit value by 1.
//
//	DEC nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 12.
//	C - Not affected.
func (c *CPU) decrementNN(nn uint16) uint16 {
	result := nn - 1
	c.Zero = result == 0
	c.Subtract = true
	c.HalfCarry = nn<<4 < 0x10
	return result
}

// addHLRR adds the given 16-bit value to the HL register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(nn uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(nn)
	half := uint32(hl<<4) + uint32(nn<<4)
	c.HL.SetUint16(uint16(sum))
	c.Subtract = false
	c.HalfCarry = half > 0xFFFF
	c.Carry = sum > 0xFFFF
}

// addSPSigned returns SP plus the signed 8-bit displacement e. The
// flags are computed from the unsigned addition of the low byte of
// SP and e.
//
//	ADD SP, e8
//	LD HL, SP+e8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	sp := c.SP
	low := uint8(sp)
	c.setFlags(false, false, uint16(low<<4)+uint16(e<<4) > 0xFF, uint16(low)+uint16(e) > 0xFF)
	return sp + uint16(int16(int8(e)))
}

// decimalAdjust adjusts the A Register so that the correct
// representation of Binary Coded Decimal (BCD) is obtained.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	if !c.Subtract {
		if c.Carry || c.A > 0x99 {
			c.A += 0x60
			c.Carry = true
		}
		if c.HalfCarry || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if c.Carry {
			c.A -= 0x60
		}
		if c.HalfCarry {
			c.A -= 0x06
		}
	}
	c.Zero = c.A == 0
	c.HalfCarry = false
}

// complement the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.Subtract = true
	c.HalfCarry = true
}

// setCarry sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarry() {
	c.Subtract = false
	c.HalfCarry = false
	c.Carry = true
}

// complementCarry flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarry() {
	c.Subtract = false
	c.HalfCarry = false
	c.Carry = !c.Carry
}
