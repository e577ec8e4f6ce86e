package cpu

import (
	"fmt"
	"testing"
)

// arithmeticFamilies maps the immediate opcode of each family to a
// reference implementation returning the result and the flags.
var arithmeticFamilies = []struct {
	name      string
	immediate uint8
	block     uint8
	reference func(a, n uint8, carry bool) (result uint8, half, full bool)
}{
	{"ADD", 0xC6, 0x80, func(a, n uint8, _ bool) (uint8, bool, bool) {
		return a + n, a&0xF+n&0xF > 0xF, int(a)+int(n) > 0xFF
	}},
	{"ADC", 0xCE, 0x88, func(a, n uint8, carry bool) (uint8, bool, bool) {
		c := b2i(carry)
		return a + n + uint8(c), int(a&0xF)+int(n&0xF)+c > 0xF, int(a)+int(n)+c > 0xFF
	}},
	{"SUB", 0xD6, 0x90, func(a, n uint8, _ bool) (uint8, bool, bool) {
		return a - n, a&0xF < n&0xF, a < n
	}},
	{"SBC", 0xDE, 0x98, func(a, n uint8, carry bool) (uint8, bool, bool) {
		c := b2i(carry)
		return a - n - uint8(c), int(a&0xF)-int(n&0xF)-c < 0, int(a)-int(n)-c < 0
	}},
	{"AND", 0xE6, 0xA0, func(a, n uint8, _ bool) (uint8, bool, bool) {
		return a & n, true, false
	}},
	{"XOR", 0xEE, 0xA8, func(a, n uint8, _ bool) (uint8, bool, bool) {
		return a ^ n, false, false
	}},
	{"OR", 0xF6, 0xB0, func(a, n uint8, _ bool) (uint8, bool, bool) {
		return a | n, false, false
	}},
	{"CP", 0xFE, 0xB8, func(a, n uint8, _ bool) (uint8, bool, bool) {
		return a - n, a&0xF < n&0xF, a < n
	}},
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestALU_Exhaustive(t *testing.T) {
	for _, family := range arithmeticFamilies {
		t.Run(family.name, func(t *testing.T) {
			c, m, _ := newTestCPU(t)
			m.Write(0, family.immediate)
			subtract := family.immediate >= 0xD6 && family.immediate <= 0xDE || family.name == "CP"

			for a := 0; a < 256; a++ {
				for n := 0; n < 256; n++ {
					for _, carry := range []bool{false, true} {
						c.PC = 0
						c.A = uint8(a)
						c.Flags = Flags{Carry: carry}
						m.Write(1, uint8(n))
						step(t, c, 1)

						result, half, full := family.reference(uint8(a), uint8(n), carry)
						want := Flags{Zero: result == 0, Subtract: subtract, HalfCarry: half, Carry: full}
						if c.Flags != want {
							t.Fatalf("0x%02X, 0x%02X (carry %v): expected %+v, got %+v", a, n, carry, want, c.Flags)
						}
						if family.name == "CP" {
							result = uint8(a)
						}
						if c.A != result {
							t.Fatalf("0x%02X, 0x%02X (carry %v): expected A to be 0x%02X, got 0x%02X", a, n, carry, result, c.A)
						}
					}
				}
			}
		})
	}
}

func TestALU_Operands(t *testing.T) {
	values := map[Reg8]uint8{RegB: 0x01, RegC: 0x02, RegD: 0x04, RegE: 0x08, RegH: 0xC0, RegL: 0x10, RegA: 0x20}
	for _, family := range arithmeticFamilies {
		for col := uint8(0); col < 8; col++ {
			op := family.block | col
			t.Run(fmt.Sprintf("%s_%02X", family.name, op), func(t *testing.T) {
				c, m, _ := newTestCPU(t, op)
				for r, v := range values {
					c.Set(r, v)
				}
				m.Write(0xC010, 0x55)

				var n uint8
				if col == 6 {
					n = m.Read(0xC010)
				} else {
					n = values[operands[col].Reg]
				}
				step(t, c, 1)

				result, _, _ := family.reference(0x20, n, false)
				if family.name == "CP" {
					result = 0x20
				}
				if c.A != result {
					t.Errorf("expected A to be 0x%02X, got 0x%02X", result, c.A)
				}
			})
		}
	}
}

func TestALU_HalfCarry(t *testing.T) {
	t.Run("0x0F + 0x01", func(t *testing.T) {
		c, _, _ := newTestCPU(t)
		c.A = 0x0F
		c.add(0x01, false)
		if c.A != 0x10 || !c.HalfCarry || c.Carry || c.Zero {
			t.Errorf("expected 0x10 with H, got 0x%02X %+v", c.A, c.Flags)
		}
	})
	t.Run("0xFF + 0x01", func(t *testing.T) {
		c, _, _ := newTestCPU(t)
		c.A = 0xFF
		c.add(0x01, false)
		if c.A != 0x00 || !c.HalfCarry || !c.Carry || !c.Zero {
			t.Errorf("expected 0x00 with Z H C, got 0x%02X %+v", c.A, c.Flags)
		}
	})
	t.Run("0x00 - 0x00 - 1", func(t *testing.T) {
		c, _, _ := newTestCPU(t)
		c.A = 0x00
		c.Carry = true
		c.sub(0x00, true)
		if c.A != 0xFF || !c.HalfCarry || !c.Carry || c.Zero || !c.Subtract {
			t.Errorf("expected 0xFF with N H C, got 0x%02X %+v", c.A, c.Flags)
		}
	})
}

func TestALU_IncDec(t *testing.T) {
	for _, carry := range []bool{false, true} {
		for v := 0; v < 256; v++ {
			c, _, _ := newTestCPU(t)
			c.Carry = carry

			got := c.increment(uint8(v))
			want := Flags{Zero: uint8(v+1) == 0, HalfCarry: v&0xF == 0xF, Carry: carry}
			if got != uint8(v+1) || c.Flags != want {
				t.Fatalf("INC 0x%02X: expected 0x%02X %+v, got 0x%02X %+v", v, uint8(v+1), want, got, c.Flags)
			}

			got = c.decrement(uint8(v))
			want = Flags{Zero: uint8(v-1) == 0, Subtract: true, HalfCarry: v&0xF == 0, Carry: carry}
			if got != uint8(v-1) || c.Flags != want {
				t.Fatalf("DEC 0x%02X: expected 0x%02X %+v, got 0x%02X %+v", v, uint8(v-1), want, got, c.Flags)
			}
		}
	}

	t.Run("INC (HL)", func(t *testing.T) {
		c, m, _ := newTestCPU(t, 0x34)
		c.HL.SetUint16(0xC000)
		m.Write(0xC000, 0x42)
		step(t, c, 1)
		if m.Read(0xC000) != 0x43 {
			t.Errorf("expected 0x43, got 0x%02X", m.Read(0xC000))
		}
	})
	t.Run("INC BC wraps", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0x03)
		c.BC.SetUint16(0xFFFF)
		c.Carry = true
		step(t, c, 1)
		if c.BC.Uint16() != 0 || !c.Zero || !c.Carry || c.Subtract {
			t.Errorf("expected BC 0x0000 with Z C, got 0x%04X %+v", c.BC.Uint16(), c.Flags)
		}
	})
	t.Run("DEC SP wraps", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0x3B)
		c.SP = 0x0000
		step(t, c, 1)
		if c.SP != 0xFFFF || c.Zero || !c.Subtract || !c.HalfCarry || c.Carry {
			t.Errorf("expected SP 0xFFFF with N H, got 0x%04X %+v", c.SP, c.Flags)
		}
	})
}

func TestALU_Add16(t *testing.T) {
	t.Run("ADD HL, BC", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0x09)
		c.HL.SetUint16(0x0FFF)
		c.BC.SetUint16(0x0001)
		c.Zero = true
		step(t, c, 1)
		if c.HL.Uint16() != 0x1000 || !c.HalfCarry || c.Carry || !c.Zero {
			t.Errorf("expected 0x1000 with Z H, got 0x%04X %+v", c.HL.Uint16(), c.Flags)
		}
	})
	t.Run("ADD HL, HL", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0x29)
		c.HL.SetUint16(0x8000)
		step(t, c, 1)
		if c.HL.Uint16() != 0x0000 || c.HalfCarry || !c.Carry {
			t.Errorf("expected 0x0000 with C, got 0x%04X %+v", c.HL.Uint16(), c.Flags)
		}
	})
	t.Run("ADD SP, e8", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0xE8, 0x08)
		c.SP = 0xFFF8
		c.Zero = true
		step(t, c, 1)
		if c.SP != 0x0000 || !c.HalfCarry || !c.Carry || c.Zero {
			t.Errorf("expected 0x0000 with H C, got 0x%04X %+v", c.SP, c.Flags)
		}
	})
	t.Run("LD HL, SP-1", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0xF8, 0xFF)
		c.SP = 0x0005
		step(t, c, 1)
		if c.HL.Uint16() != 0x0004 || !c.HalfCarry || !c.Carry {
			t.Errorf("expected 0x0004 with H C, got 0x%04X %+v", c.HL.Uint16(), c.Flags)
		}
		if c.SP != 0x0005 {
			t.Errorf("expected SP to be untouched, got 0x%04X", c.SP)
		}
	})
}

func TestALU_Misc(t *testing.T) {
	t.Run("DAA add", func(t *testing.T) {
		c, _, _ := newTestCPU(t)
		c.A = 0x15
		c.add(0x27, false)
		c.decimalAdjust()
		if c.A != 0x42 || c.Carry || c.Zero {
			t.Errorf("expected 0x42, got 0x%02X %+v", c.A, c.Flags)
		}
	})
	t.Run("DAA sub", func(t *testing.T) {
		c, _, _ := newTestCPU(t)
		c.A = 0x42
		c.sub(0x15, false)
		c.decimalAdjust()
		if c.A != 0x27 || !c.Subtract {
			t.Errorf("expected 0x27, got 0x%02X %+v", c.A, c.Flags)
		}
	})
	t.Run("DAA carry", func(t *testing.T) {
		c, _, _ := newTestCPU(t)
		c.A = 0x99
		c.add(0x01, false)
		c.decimalAdjust()
		if c.A != 0x00 || !c.Carry || !c.Zero {
			t.Errorf("expected 0x00 with Z C, got 0x%02X %+v", c.A, c.Flags)
		}
	})
	t.Run("CPL", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0x2F)
		c.A = 0x35
		step(t, c, 1)
		if c.A != 0xCA || !c.Subtract || !c.HalfCarry {
			t.Errorf("expected 0xCA with N H, got 0x%02X %+v", c.A, c.Flags)
		}
	})
	t.Run("SCF CCF", func(t *testing.T) {
		c, _, _ := newTestCPU(t, 0x37, 0x3F)
		c.Flags = Flags{Zero: true, Subtract: true, HalfCarry: true}
		step(t, c, 1)
		if c.Flags != (Flags{Zero: true, Carry: true}) {
			t.Errorf("expected Z C after SCF, got %+v", c.Flags)
		}
		step(t, c, 1)
		if c.Flags != (Flags{Zero: true}) {
			t.Errorf("expected Z after CCF, got %+v", c.Flags)
		}
	})
}

func TestALU_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name   string
		op     uint8
		a      uint8
		carry  bool
		want   uint8
		wantCy bool
	}{
		{"RLCA", 0x07, 0x80, false, 0x01, true},
		{"RLCA zero", 0x07, 0x00, true, 0x00, false},
		{"RLA", 0x17, 0x80, false, 0x00, true},
		{"RLA carry in", 0x17, 0x01, true, 0x03, false},
		{"RRCA", 0x0F, 0x01, false, 0x80, true},
		{"RRA", 0x1F, 0x01, false, 0x00, true},
		{"RRA carry in", 0x1F, 0x02, true, 0x81, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU(t, tt.op)
			c.A = tt.a
			c.Carry = tt.carry
			c.Zero = true
			step(t, c, 1)
			if c.A != tt.want || c.Carry != tt.wantCy {
				t.Errorf("expected 0x%02X carry %v, got 0x%02X carry %v", tt.want, tt.wantCy, c.A, c.Carry)
			}
			if c.Zero {
				t.Errorf("expected zero flag to be reset")
			}
		})
	}
}
