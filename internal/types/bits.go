package types

// Single-bit masks, Bit0 being the least significant bit.
const (
	Bit0 = 1 << iota
	Bit1
	Bit2
	Bit3
	Bit4
	Bit5
	Bit6
	Bit7
)
