package cpu

// An opcode is split into bit fields shared by both tables:
//
//	 7 6 | 5 4 3 | 2 1 0
//	block|  row  | column
//
// with the row further split into a pair index (bits 5-4) and a
// condition index (bits 4-3) for the 16-bit and branch opcodes.

func block(op uint8) uint8     { return op >> 6 }
func row(op uint8) uint8       { return op >> 3 & 7 }
func column(op uint8) uint8    { return op & 7 }
func pairIndex(op uint8) uint8 { return op >> 4 & 3 }
func condIndex(op uint8) uint8 { return op >> 3 & 3 }
func oddRow(op uint8) bool     { return op&0x08 != 0 }

// operands maps a 3-bit index to its operand. Index 6 is the byte
// at the address in HL.
var operands = [8]Operand8{
	reg(RegB), reg(RegC), reg(RegD), reg(RegE),
	reg(RegH), reg(RegL), indirect(PairHL), reg(RegA),
}

var (
	// pairs is indexed by the pair index of 16-bit load/inc/dec/add opcodes.
	pairs = [4]Pair{PairBC, PairDE, PairHL, PairSP}
	// stackPairs is indexed by the pair index of push/pop opcodes.
	stackPairs = [4]Pair{PairBC, PairDE, PairHL, PairAF}
	// accumulatorPairs is indexed by the pair index of the LD (rr), A
	// and LD A, (rr) opcodes.
	accumulatorPairs = [4]Pair{PairBC, PairDE, PairHLI, PairHLD}
	conditions       = [4]Condition{ConditionNotZero, ConditionZero, ConditionNotCarry, ConditionCarry}
	// aluKinds is indexed by the row of the 8-bit arithmetic opcodes.
	aluKinds = [8]Instruction{
		{Kind: KindAdd}, {Kind: KindAdd, Carry: true},
		{Kind: KindSub}, {Kind: KindSub, Carry: true},
		{Kind: KindAnd}, {Kind: KindXor},
		{Kind: KindOr}, {Kind: KindCompare},
	}
	// accumulatorOps is indexed by the row of the column 7 opcodes
	// in the first block.
	accumulatorOps = [8]Instruction{
		{Kind: KindRotateLeftA}, {Kind: KindRotateRightA},
		{Kind: KindRotateLeftA, Carry: true}, {Kind: KindRotateRightA, Carry: true},
		{Kind: KindDecimalAdjust}, {Kind: KindComplement},
		{Kind: KindSetCarry}, {Kind: KindComplementCarry},
	}
	// rotateKinds is indexed by the row of the first block of the
	// extended table.
	rotateKinds = [8]Instruction{
		{Kind: KindRotateLeft}, {Kind: KindRotateRight},
		{Kind: KindRotateLeft, Carry: true}, {Kind: KindRotateRight, Carry: true},
		{Kind: KindShiftLeftArithmetic}, {Kind: KindShiftRightArithmetic},
		{Kind: KindSwap}, {Kind: KindShiftRightLogical},
	}
)

// InstructionSet holds the decoded primary table. Opcodes with no
// meaning on the hardware hold an Instruction of KindInvalid.
var InstructionSet [256]Instruction

// InstructionSetCB holds the decoded extended table, reached through
// the 0xCB escape opcode. Every entry is valid.
var InstructionSetCB [256]Instruction

func init() {
	for op := 0; op < 256; op++ {
		InstructionSet[op] = decodePrimary(uint8(op))
		InstructionSetCB[op] = decodeExtended(uint8(op))
	}
}

// Decode returns the Instruction denoted by the given primary
// opcode, or an *UnsupportedOpcodeError if the opcode has no meaning.
func Decode(op uint8) (Instruction, error) {
	ins := InstructionSet[op]
	if ins.Kind == KindInvalid {
		return ins, &UnsupportedOpcodeError{Opcode: op}
	}
	return ins, nil
}

// DecodeExtended returns the Instruction denoted by the byte that
// follows the 0xCB escape opcode.
func DecodeExtended(op uint8) Instruction {
	return InstructionSetCB[op]
}

func decodePrimary(op uint8) Instruction {
	switch block(op) {
	case 0:
		return decodeBlock0(op)
	case 1:
		if op == 0x76 {
			return Instruction{Kind: KindHalt}
		}
		// the diagonal (LD B, B ...) would load a register into itself
		if row(op) == column(op) {
			return Instruction{Kind: KindNop}
		}
		return Instruction{Kind: KindLoad, Dst: operands[row(op)], Src: operands[column(op)]}
	case 2:
		ins := aluKinds[row(op)]
		ins.Src = operands[column(op)]
		return ins
	default:
		return decodeBlock3(op)
	}
}

func decodeBlock0(op uint8) Instruction {
	switch column(op) {
	case 0:
		switch row(op) {
		case 0:
			return Instruction{Kind: KindNop}
		case 1:
			return Instruction{Kind: KindLoad16, Dst16: absolute16(), Src16: pair16(PairSP)}
		case 2:
			return Instruction{Kind: KindStop}
		case 3:
			return Instruction{Kind: KindJumpRelative}
		default:
			return Instruction{Kind: KindJumpRelativeIf, Condition: conditions[condIndex(op)]}
		}
	case 1:
		if oddRow(op) {
			return Instruction{Kind: KindAddHL, Pair: pairs[pairIndex(op)]}
		}
		return Instruction{Kind: KindLoad16, Dst16: pair16(pairs[pairIndex(op)]), Src16: immediate16()}
	case 2:
		p := indirect(accumulatorPairs[pairIndex(op)])
		if oddRow(op) {
			return Instruction{Kind: KindLoad, Dst: reg(RegA), Src: p}
		}
		return Instruction{Kind: KindLoad, Dst: p, Src: reg(RegA)}
	case 3:
		if oddRow(op) {
			return Instruction{Kind: KindDec16, Pair: pairs[pairIndex(op)]}
		}
		return Instruction{Kind: KindInc16, Pair: pairs[pairIndex(op)]}
	case 4:
		return Instruction{Kind: KindInc, Dst: operands[row(op)]}
	case 5:
		return Instruction{Kind: KindDec, Dst: operands[row(op)]}
	case 6:
		return Instruction{Kind: KindLoad, Dst: operands[row(op)], Src: immediate8()}
	default:
		return accumulatorOps[row(op)]
	}
}

func decodeBlock3(op uint8) Instruction {
	switch column(op) {
	case 0:
		switch row(op) {
		case 4:
			return Instruction{Kind: KindLoad, Dst: high8(), Src: reg(RegA)}
		case 5:
			return Instruction{Kind: KindAddSP}
		case 6:
			return Instruction{Kind: KindLoad, Dst: reg(RegA), Src: high8()}
		case 7:
			return Instruction{Kind: KindLoadHLSP}
		default:
			return Instruction{Kind: KindReturnIf, Condition: conditions[condIndex(op)]}
		}
	case 1:
		if !oddRow(op) {
			return Instruction{Kind: KindPop, Pair: stackPairs[pairIndex(op)]}
		}
		switch pairIndex(op) {
		case 0:
			return Instruction{Kind: KindReturn}
		case 1:
			return Instruction{Kind: KindReturnInterrupt}
		case 2:
			return Instruction{Kind: KindJumpHL}
		default:
			return Instruction{Kind: KindLoad16, Dst16: pair16(PairSP), Src16: pair16(PairHL)}
		}
	case 2:
		switch row(op) {
		case 4:
			return Instruction{Kind: KindLoad, Dst: highC(), Src: reg(RegA)}
		case 5:
			return Instruction{Kind: KindLoad, Dst: absolute8(), Src: reg(RegA)}
		case 6:
			return Instruction{Kind: KindLoad, Dst: reg(RegA), Src: highC()}
		case 7:
			return Instruction{Kind: KindLoad, Dst: reg(RegA), Src: absolute8()}
		default:
			return Instruction{Kind: KindJumpIf, Condition: conditions[condIndex(op)]}
		}
	case 3:
		switch row(op) {
		case 0:
			return Instruction{Kind: KindJump}
		case 1:
			return Instruction{Kind: KindPrefix}
		case 6:
			return Instruction{Kind: KindInterrupts, Enable: false}
		case 7:
			return Instruction{Kind: KindInterrupts, Enable: true}
		}
	case 4:
		if row(op) < 4 {
			return Instruction{Kind: KindCallIf, Condition: conditions[condIndex(op)]}
		}
	case 5:
		if !oddRow(op) {
			return Instruction{Kind: KindPush, Pair: stackPairs[pairIndex(op)]}
		}
		if pairIndex(op) == 0 {
			return Instruction{Kind: KindCall}
		}
	case 6:
		ins := aluKinds[row(op)]
		ins.Src = immediate8()
		return ins
	case 7:
		return Instruction{Kind: KindRestart, Target: uint16(row(op)) * 8}
	}

	// 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD
	return Instruction{Kind: KindInvalid}
}

func decodeExtended(op uint8) Instruction {
	var ins Instruction
	switch block(op) {
	case 0:
		ins = rotateKinds[row(op)]
	case 1:
		ins = Instruction{Kind: KindBitTest, Bit: row(op)}
	case 2:
		ins = Instruction{Kind: KindBitReset, Bit: row(op)}
	default:
		ins = Instruction{Kind: KindBitSet, Bit: row(op)}
	}
	ins.Dst = operands[column(op)]
	return ins
}
