package cpu

import "testing"

// machine cycles per opcode with branches not taken, 0 for opcodes
// that are skipped
var timings = [256]uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4,
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4,
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4,
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4,
}

// machine cycles per extended opcode, including the prefix
var timingsCB = [256]uint8{
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
	2, 2, 2, 2, 2, 2, 4, 2, 2, 2, 2, 2, 2, 2, 4, 2,
}

// notTaken returns flags for which cond does not hold.
func notTaken(cond Condition) Flags {
	return Flags{Zero: cond == ConditionNotZero, Carry: cond == ConditionNotCarry}
}

func isConditional(k Kind) bool {
	switch k {
	case KindJumpIf, KindJumpRelativeIf, KindCallIf, KindReturnIf:
		return true
	}
	return false
}

func TestCycles(t *testing.T) {
	for op, timing := range timings {
		if timing == 0 {
			continue
		}
		ins := InstructionSet[op]
		t.Run(ins.String(), func(t *testing.T) {
			if got := Cycles(ins, uint8(op), notTaken(ins.Condition)); got != int(timing)*4 {
				t.Errorf("0x%02X: expected %d cycles, got %d", op, int(timing)*4, got)
			}
		})
	}

	for op, timing := range timingsCB {
		ins := InstructionSetCB[op]
		got := Cycles(InstructionSet[0xCB], 0xCB, Flags{}) + ExtendedCycles(ins, uint8(op))
		if got != int(timing)*4 {
			t.Errorf("CB 0x%02X: expected %d cycles, got %d", op, int(timing)*4, got)
		}
	}
}

func TestCycles_Taken(t *testing.T) {
	taken := map[Kind]int{
		KindJumpIf:         16,
		KindJumpRelativeIf: 12,
		KindCallIf:         24,
		KindReturnIf:       20,
	}
	for op := 0; op < 256; op++ {
		ins := InstructionSet[op]
		if !isConditional(ins.Kind) {
			continue
		}
		flags := notTaken(ins.Condition)
		flags.Zero, flags.Carry = !flags.Zero, !flags.Carry
		if got := Cycles(ins, uint8(op), flags); got != taken[ins.Kind] {
			t.Errorf("0x%02X %s: expected %d cycles when taken, got %d", op, ins, taken[ins.Kind], got)
		}
	}
}
