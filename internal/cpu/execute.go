package cpu

// execute performs the operation of ins against the registers and
// memory. Inline operands are fetched as the operation needs them.
func (c *CPU) execute(ins Instruction) error {
	switch ins.Kind {
	case KindNop:
	case KindStop:
		// STOP is followed by a padding byte
		c.readOperand()
	case KindHalt:
		c.halted = true

	case KindAdd:
		c.add(c.read8(ins.Src), ins.Carry)
	case KindSub:
		c.sub(c.read8(ins.Src), ins.Carry)
	case KindAnd:
		c.and(c.read8(ins.Src))
	case KindXor:
		c.xor(c.read8(ins.Src))
	case KindOr:
		c.or(c.read8(ins.Src))
	case KindCompare:
		c.compare(c.read8(ins.Src))
	case KindAddHL:
		c.addHLRR(c.readPair(ins.Pair))
	case KindAddSP:
		c.SP = c.addSPSigned(c.readOperand())
	case KindInc:
		c.write8(ins.Dst, c.increment(c.read8(ins.Dst)))
	case KindDec:
		c.write8(ins.Dst, c.decrement(c.read8(ins.Dst)))
	case KindInc16:
		c.writePair(ins.Pair, c.incrementNN(c.readPair(ins.Pair)))
	case KindDec16:
		c.writePair(ins.Pair, c.decrementNN(c.readPair(ins.Pair)))
	case KindRotateLeftA:
		c.rotateLeftAccumulator(ins.Carry)
	case KindRotateRightA:
		c.rotateRightAccumulator(ins.Carry)

	case KindLoad:
		c.load(ins.Dst, ins.Src)
	case KindLoad16:
		c.load16(ins.Dst16, ins.Src16)
	case KindLoadHLSP:
		c.HL.SetUint16(c.addSPSigned(c.readOperand()))

	case KindPush:
		c.push(c.readPair(ins.Pair))
	case KindPop:
		c.writePair(ins.Pair, c.pop())
	case KindJump:
		c.jumpAbsolute()
	case KindJumpIf:
		c.jumpAbsoluteConditional(ins.Condition)
	case KindJumpHL:
		c.PC = c.HL.Uint16()
	case KindJumpRelative:
		c.jumpRelative()
	case KindJumpRelativeIf:
		c.jumpRelativeConditional(ins.Condition)
	case KindCall:
		c.call()
	case KindCallIf:
		c.callConditional(ins.Condition)
	case KindReturn:
		c.ret()
	case KindReturnIf:
		c.retConditional(ins.Condition)
	case KindReturnInterrupt:
		c.retInterrupt()
	case KindRestart:
		c.rst(ins.Target)

	case KindDecimalAdjust:
		c.decimalAdjust()
	case KindComplement:
		c.complement()
	case KindSetCarry:
		c.setCarry()
	case KindComplementCarry:
		c.complementCarry()
	case KindInterrupts:
		c.IME = ins.Enable

	case KindPrefix:
		c.extended = c.readOperand()
		return c.execute(DecodeExtended(c.extended))

	case KindRotateLeft:
		c.write8(ins.Dst, c.rotateLeft(c.read8(ins.Dst), ins.Carry))
	case KindRotateRight:
		c.write8(ins.Dst, c.rotateRight(c.read8(ins.Dst), ins.Carry))
	case KindShiftLeftArithmetic:
		c.write8(ins.Dst, c.shiftLeftArithmetic(c.read8(ins.Dst)))
	case KindShiftRightArithmetic:
		c.write8(ins.Dst, c.shiftRightArithmetic(c.read8(ins.Dst)))
	case KindSwap:
		c.write8(ins.Dst, c.swap(c.read8(ins.Dst)))
	case KindShiftRightLogical:
		c.write8(ins.Dst, c.shiftRightLogical(c.read8(ins.Dst)))
	case KindBitTest:
		c.testBit(c.read8(ins.Dst), ins.Bit)
	case KindBitReset:
		c.write8(ins.Dst, resetBit(c.read8(ins.Dst), ins.Bit))
	case KindBitSet:
		c.write8(ins.Dst, setBit(c.read8(ins.Dst), ins.Bit))

	default:
		return &UnimplementedInstructionError{Instruction: ins}
	}
	return nil
}
