package cpu

// read8 reads the value of an 8-bit operand, consuming any inline
// operand bytes it addresses with.
func (c *CPU) read8(o Operand8) uint8 {
	switch o.Kind {
	case OperandRegister:
		return c.Get(o.Reg)
	case OperandIndirect:
		return c.b.Read(c.readPair(o.Pair))
	case OperandImmediate:
		return c.readOperand()
	case OperandAbsolute:
		return c.b.Read(c.readOperand16())
	case OperandHigh:
		return c.b.Read(0xFF00 | uint16(c.readOperand()))
	case OperandHighC:
		return c.b.Read(0xFF00 | uint16(c.C))
	}
	panic("cpu: invalid 8-bit operand " + o.String())
}

// write8 writes value to an 8-bit operand. Immediate operands can
// not be written to.
func (c *CPU) write8(o Operand8, value uint8) {
	switch o.Kind {
	case OperandRegister:
		c.Set(o.Reg, value)
	case OperandIndirect:
		c.b.Write(c.readPair(o.Pair), value)
	case OperandAbsolute:
		c.b.Write(c.readOperand16(), value)
	case OperandHigh:
		c.b.Write(0xFF00|uint16(c.readOperand()), value)
	case OperandHighC:
		c.b.Write(0xFF00|uint16(c.C), value)
	default:
		panic("cpu: invalid 8-bit destination " + o.String())
	}
}

func (c *CPU) readOperand16Value(o Operand16) uint16 {
	switch o.Kind {
	case Operand16Pair:
		return c.readPair(o.Pair)
	case Operand16Immediate:
		return c.readOperand16()
	case Operand16Absolute:
		return c.read16(c.readOperand16())
	}
	panic("cpu: invalid 16-bit operand " + o.String())
}

func (c *CPU) writeOperand16Value(o Operand16, value uint16) {
	switch o.Kind {
	case Operand16Pair:
		c.writePair(o.Pair, value)
	case Operand16Absolute:
		c.write16(c.readOperand16(), value)
	default:
		panic("cpu: invalid 16-bit destination " + o.String())
	}
}

// load copies an 8-bit value from src to dst.
//
//	LD dst, src
//
// Flags affected: none.
func (c *CPU) load(dst, src Operand8) {
	c.write8(dst, c.read8(src))
}

// load16 copies a 16-bit value from src to dst.
//
//	LD rr, d16
//	LD (a16), SP
//	LD SP, HL
//
// Flags affected: none.
func (c *CPU) load16(dst, src Operand16) {
	c.writeOperand16Value(dst, c.readOperand16Value(src))
}

// push decrements the stack pointer by 2 and writes value to the
// new top of the stack.
func (c *CPU) push(value uint16) {
	c.SP -= 2
	c.write16(c.SP, value)
}

// pop reads the value at the top of the stack and increments the
// stack pointer by 2.
func (c *CPU) pop() uint16 {
	value := c.read16(c.SP)
	c.SP += 2
	return value
}
