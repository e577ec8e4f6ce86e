package cpu

// Cycles returns the number of clock cycles the instruction decoded
// from the primary opcode op took. Conditional instructions cost
// more when the branch was taken, which is decided from flags. For
// the extended opcodes, Cycles returns the cost of the 0xCB prefix
// alone; see ExtendedCycles.
func Cycles(ins Instruction, op uint8, flags Flags) int {
	switch ins.Kind {
	case KindNop, KindStop, KindHalt:
		return 4
	case KindAdd, KindSub, KindAnd, KindXor, KindOr, KindCompare:
		// (HL) and d8 operands
		if column(op) == 6 {
			return 8
		}
		return 4
	case KindAddHL:
		return 8
	case KindAddSP:
		return 16
	case KindLoadHLSP:
		return 12
	case KindInc, KindDec:
		if op == 0x34 || op == 0x35 {
			return 12
		}
		return 4
	case KindInc16, KindDec16:
		return 8
	case KindRotateLeftA, KindRotateRightA:
		return 4
	case KindLoad:
		return loadCycles(op)
	case KindLoad16:
		switch op {
		case 0x08:
			return 20
		case 0xF9:
			return 8
		}
		return 12
	case KindPush:
		return 16
	case KindPop:
		return 12
	case KindJump:
		return 16
	case KindJumpIf:
		return branchCycles(flags.Holds(ins.Condition), 16, 12)
	case KindJumpHL:
		return 4
	case KindJumpRelative:
		return 12
	case KindJumpRelativeIf:
		return branchCycles(flags.Holds(ins.Condition), 12, 8)
	case KindCall:
		return 24
	case KindCallIf:
		return branchCycles(flags.Holds(ins.Condition), 24, 12)
	case KindReturn, KindReturnInterrupt, KindRestart:
		return 16
	case KindReturnIf:
		return branchCycles(flags.Holds(ins.Condition), 20, 8)
	case KindDecimalAdjust, KindComplement, KindSetCarry, KindComplementCarry, KindInterrupts:
		return 4
	case KindPrefix:
		return 4
	}
	return 0
}

// ExtendedCycles returns the number of clock cycles the instruction
// decoded from the extended opcode op took, on top of the prefix.
func ExtendedCycles(ins Instruction, op uint8) int {
	if column(op) != 6 {
		return 4
	}
	if ins.Kind == KindBitTest {
		return 8
	}
	return 12
}

func loadCycles(op uint8) int {
	switch op {
	case 0x36:
		return 12
	case 0xE0, 0xF0:
		return 12
	case 0xE2, 0xF2:
		return 8
	case 0xEA, 0xFA:
		return 16
	}
	switch block(op) {
	case 0:
		// LD r, d8 and the accumulator loads through a pair
		if column(op) == 6 || column(op) == 2 {
			return 8
		}
	case 1:
		if row(op) == 6 || column(op) == 6 {
			return 8
		}
	}
	return 4
}

func branchCycles(taken bool, ifTaken, otherwise int) int {
	if taken {
		return ifTaken
	}
	return otherwise
}
