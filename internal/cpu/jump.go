package cpu

// jumpAbsolute jumps to the address given by the next two operands.
//
//	JP nn
func (c *CPU) jumpAbsolute() {
	c.PC = c.readOperand16()
}

// jumpAbsoluteConditional jumps to the address given by the next two
// operands if the condition holds, otherwise the operands are skipped.
//
//	JP cc, nn
func (c *CPU) jumpAbsoluteConditional(cond Condition) {
	if c.Holds(cond) {
		c.jumpAbsolute()
	} else {
		c.skipOperands(2)
	}
}

// jumpRelative adds the next operand, as a signed displacement, to
// the address of the following instruction.
//
//	JR e
func (c *CPU) jumpRelative() {
	e := c.readOperand()
	c.PC += uint16(int16(int8(e)))
}

// jumpRelativeConditional performs a relative jump if the condition
// holds, otherwise the displacement is skipped.
//
//	JR cc, e
func (c *CPU) jumpRelativeConditional(cond Condition) {
	if c.Holds(cond) {
		c.jumpRelative()
	} else {
		c.skipOperands(1)
	}
}

// call pushes the address of the next instruction onto the stack
// and then jumps to the address given by the next two operands.
//
//	CALL nn
func (c *CPU) call() {
	target := c.readOperand16()
	c.push(c.PC)
	c.PC = target
}

// callConditional calls if the condition holds, otherwise the
// operands are skipped.
//
//	CALL cc, nn
func (c *CPU) callConditional(cond Condition) {
	if c.Holds(cond) {
		c.call()
	} else {
		c.skipOperands(2)
	}
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

// retConditional returns if the condition holds. RET cc carries no
// operand, so nothing is skipped otherwise.
//
//	RET cc
func (c *CPU) retConditional(cond Condition) {
	if c.Holds(cond) {
		c.ret()
	}
}

// retInterrupt returns and enables interrupts.
//
//	RETI
//
// Flags affected: none.
func (c *CPU) retInterrupt() {
	c.ret()
	c.IME = true
}

// rst pushes the address of the next instruction onto the stack and
// jumps to the fixed address.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
//
// Flags affected: none.
func (c *CPU) rst(address uint16) {
	c.push(c.PC)
	c.PC = address
}
