package cpu

import "fmt"

// Kind identifies the operation an Instruction performs.
type Kind uint8

const (
	// KindInvalid is the zero Kind. The decoder never produces it for
	// a supported opcode.
	KindInvalid Kind = iota

	KindNop
	KindStop
	KindHalt

	KindAdd      // ADD/ADC A, Src
	KindAddHL    // ADD HL, Pair
	KindAddSP    // ADD SP, e8
	KindSub      // SUB/SBC A, Src
	KindAnd      // AND A, Src
	KindXor      // XOR A, Src
	KindOr       // OR A, Src
	KindCompare  // CP A, Src
	KindInc      // INC Dst
	KindInc16    // INC Pair
	KindDec      // DEC Dst
	KindDec16    // DEC Pair
	KindRotateLeftA
	KindRotateRightA

	KindLoad     // LD Dst, Src
	KindLoad16   // LD Dst16, Src16
	KindLoadHLSP // LD HL, SP+e8

	KindPush
	KindPop
	KindJump
	KindJumpIf
	KindJumpHL
	KindJumpRelative
	KindJumpRelativeIf
	KindCall
	KindCallIf
	KindReturn
	KindReturnIf
	KindReturnInterrupt
	KindRestart

	KindDecimalAdjust
	KindComplement
	KindSetCarry
	KindComplementCarry
	KindInterrupts // DI/EI

	KindPrefix // escape into the extended table

	KindRotateLeft
	KindRotateRight
	KindShiftLeftArithmetic
	KindShiftRightArithmetic
	KindSwap
	KindShiftRightLogical
	KindBitTest
	KindBitReset
	KindBitSet
)

var kindNames = [...]string{
	KindInvalid:              "invalid",
	KindNop:                  "NOP",
	KindStop:                 "STOP",
	KindHalt:                 "HALT",
	KindAdd:                  "ADD",
	KindAddHL:                "ADD HL",
	KindAddSP:                "ADD SP",
	KindSub:                  "SUB",
	KindAnd:                  "AND",
	KindXor:                  "XOR",
	KindOr:                   "OR",
	KindCompare:              "CP",
	KindInc:                  "INC",
	KindInc16:                "INC16",
	KindDec:                  "DEC",
	KindDec16:                "DEC16",
	KindRotateLeftA:          "RLA",
	KindRotateRightA:         "RRA",
	KindLoad:                 "LD",
	KindLoad16:               "LD16",
	KindLoadHLSP:             "LD HL, SP+e8",
	KindPush:                 "PUSH",
	KindPop:                  "POP",
	KindJump:                 "JP",
	KindJumpIf:               "JP cc",
	KindJumpHL:               "JP HL",
	KindJumpRelative:         "JR",
	KindJumpRelativeIf:       "JR cc",
	KindCall:                 "CALL",
	KindCallIf:               "CALL cc",
	KindReturn:               "RET",
	KindReturnIf:             "RET cc",
	KindReturnInterrupt:      "RETI",
	KindRestart:              "RST",
	KindDecimalAdjust:        "DAA",
	KindComplement:           "CPL",
	KindSetCarry:             "SCF",
	KindComplementCarry:      "CCF",
	KindInterrupts:           "DI/EI",
	KindPrefix:               "PREFIX CB",
	KindRotateLeft:           "RL",
	KindRotateRight:          "RR",
	KindShiftLeftArithmetic:  "SLA",
	KindShiftRightArithmetic: "SRA",
	KindSwap:                 "SWAP",
	KindShiftRightLogical:    "SRL",
	KindBitTest:              "BIT",
	KindBitReset:             "RES",
	KindBitSet:               "SET",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Instruction is a decoded opcode. Only the fields its Kind uses
// are set; it is built fresh by the decoder on every fetch and
// consumed immediately by the interpreter.
type Instruction struct {
	Kind Kind

	Dst, Src     Operand8
	Dst16, Src16 Operand16
	Pair         Pair

	// Carry selects the carry-using variant: ADC/SBC, or the
	// through-carry rotates RLA/RRA/RL/RR.
	Carry bool
	// Condition is the branch condition of the conditional variants.
	Condition Condition
	// Target is the fixed jump target of RST.
	Target uint16
	// Bit is the bit index of BIT/RES/SET.
	Bit uint8
	// Enable distinguishes EI from DI.
	Enable bool
}

// String returns the mnemonic of the instruction, e.g. "LD B, (HL)".
func (i Instruction) String() string {
	switch i.Kind {
	case KindAdd:
		if i.Carry {
			return "ADC A, " + i.Src.String()
		}
		return "ADD A, " + i.Src.String()
	case KindSub:
		if i.Carry {
			return "SBC A, " + i.Src.String()
		}
		return "SUB A, " + i.Src.String()
	case KindAnd, KindXor, KindOr, KindCompare:
		return i.Kind.String() + " A, " + i.Src.String()
	case KindAddHL:
		return "ADD HL, " + i.Pair.String()
	case KindAddSP:
		return "ADD SP, e8"
	case KindInc, KindDec:
		return i.Kind.String() + " " + i.Dst.String()
	case KindInc16:
		return "INC " + i.Pair.String()
	case KindDec16:
		return "DEC " + i.Pair.String()
	case KindRotateLeftA:
		if i.Carry {
			return "RLA"
		}
		return "RLCA"
	case KindRotateRightA:
		if i.Carry {
			return "RRA"
		}
		return "RRCA"
	case KindLoad:
		return "LD " + i.Dst.String() + ", " + i.Src.String()
	case KindLoad16:
		return "LD " + i.Dst16.String() + ", " + i.Src16.String()
	case KindPush, KindPop:
		return i.Kind.String() + " " + i.Pair.String()
	case KindJump:
		return "JP a16"
	case KindJumpIf:
		return "JP " + i.Condition.String() + ", a16"
	case KindJumpRelative:
		return "JR e8"
	case KindJumpRelativeIf:
		return "JR " + i.Condition.String() + ", e8"
	case KindCall:
		return "CALL a16"
	case KindCallIf:
		return "CALL " + i.Condition.String() + ", a16"
	case KindReturnIf:
		return "RET " + i.Condition.String()
	case KindRestart:
		return fmt.Sprintf("RST %02XH", i.Target)
	case KindInterrupts:
		if i.Enable {
			return "EI"
		}
		return "DI"
	case KindRotateLeft:
		if i.Carry {
			return "RL " + i.Dst.String()
		}
		return "RLC " + i.Dst.String()
	case KindRotateRight:
		if i.Carry {
			return "RR " + i.Dst.String()
		}
		return "RRC " + i.Dst.String()
	case KindShiftLeftArithmetic, KindShiftRightArithmetic, KindSwap, KindShiftRightLogical:
		return i.Kind.String() + " " + i.Dst.String()
	case KindBitTest, KindBitReset, KindBitSet:
		return fmt.Sprintf("%s %d, %s", i.Kind, i.Bit, i.Dst)
	}
	return i.Kind.String()
}
