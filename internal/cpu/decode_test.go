package cpu

import (
	"errors"
	"testing"
)

var unsupportedOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
	0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestDecode_Total(t *testing.T) {
	for op := 0; op < 256; op++ {
		ins, err := Decode(uint8(op))
		if unsupportedOpcodes[uint8(op)] {
			if !errors.Is(err, ErrUnsupportedOpcode) {
				t.Errorf("0x%02X: expected ErrUnsupportedOpcode, got %v", op, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("0x%02X: unexpected error %v", op, err)
		}
		if ins.Kind == KindInvalid {
			t.Errorf("0x%02X: decoded to an invalid instruction", op)
		}
	}

	for op := 0; op < 256; op++ {
		if ins := DecodeExtended(uint8(op)); ins.Kind < KindRotateLeft || ins.Kind > KindBitSet {
			t.Errorf("CB 0x%02X: decoded to %s", op, ins.Kind)
		}
	}
}

func TestDecode_LoadBlock(t *testing.T) {
	for op := 0x40; op < 0x80; op++ {
		ins, _ := Decode(uint8(op))
		switch {
		case op == 0x76:
			if ins.Kind != KindHalt {
				t.Errorf("0x76: expected HALT, got %s", ins)
			}
		case row(uint8(op)) == column(uint8(op)):
			if ins.Kind != KindNop {
				t.Errorf("0x%02X: expected NOP, got %s", op, ins)
			}
		default:
			if ins.Kind != KindLoad || ins.Dst != operands[row(uint8(op))] || ins.Src != operands[column(uint8(op))] {
				t.Errorf("0x%02X: unexpected %s", op, ins)
			}
		}
	}
}

func TestDecode_Extended(t *testing.T) {
	for op := 0; op < 256; op++ {
		ins := DecodeExtended(uint8(op))
		if ins.Dst != operands[op&7] {
			t.Errorf("CB 0x%02X: expected operand %s, got %s", op, operands[op&7], ins.Dst)
		}
		if op >= 0x40 && ins.Bit != uint8(op>>3&7) {
			t.Errorf("CB 0x%02X: expected bit %d, got %d", op, op>>3&7, ins.Bit)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	primary := map[uint8]string{
		0x00: "NOP",
		0x01: "LD BC, d16",
		0x02: "LD (BC), A",
		0x07: "RLCA",
		0x08: "LD (a16), SP",
		0x09: "ADD HL, BC",
		0x0F: "RRCA",
		0x10: "STOP",
		0x17: "RLA",
		0x1F: "RRA",
		0x20: "JR NZ, e8",
		0x22: "LD (HL+), A",
		0x27: "DAA",
		0x33: "INC SP",
		0x3A: "LD A, (HL-)",
		0x3D: "DEC A",
		0x76: "HALT",
		0x7E: "LD A, (HL)",
		0x88: "ADC A, B",
		0x96: "SUB A, (HL)",
		0xC0: "RET NZ",
		0xC5: "PUSH BC",
		0xC6: "ADD A, d8",
		0xC9: "RET",
		0xCB: "PREFIX CB",
		0xCC: "CALL Z, a16",
		0xD9: "RETI",
		0xDA: "JP C, a16",
		0xE0: "LD (a8), A",
		0xE2: "LD (C), A",
		0xE8: "ADD SP, e8",
		0xE9: "JP HL",
		0xEA: "LD (a16), A",
		0xF1: "POP AF",
		0xF3: "DI",
		0xF8: "LD HL, SP+e8",
		0xF9: "LD SP, HL",
		0xFB: "EI",
		0xFE: "CP A, d8",
		0xFF: "RST 38H",
	}
	for op, want := range primary {
		if got := InstructionSet[op].String(); got != want {
			t.Errorf("0x%02X: expected %q, got %q", op, want, got)
		}
	}

	extended := map[uint8]string{
		0x00: "RLC B",
		0x08: "RRC B",
		0x11: "RL C",
		0x18: "RR B",
		0x20: "SLA B",
		0x2E: "SRA (HL)",
		0x37: "SWAP A",
		0x3F: "SRL A",
		0x7C: "BIT 7, H",
		0x86: "RES 0, (HL)",
		0xFF: "SET 7, A",
	}
	for op, want := range extended {
		if got := InstructionSetCB[op].String(); got != want {
			t.Errorf("CB 0x%02X: expected %q, got %q", op, want, got)
		}
	}
}
