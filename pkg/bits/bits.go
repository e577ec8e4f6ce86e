// Package bits provides helpers for addressing single bits of a byte
// by their position, 0 being the least significant bit.
package bits

// Reset returns b with bit i cleared.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set returns b with bit i set.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test reports whether bit i of b is set.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}
