package utils

// BytesToUint16 joins a high and a low byte into a word.
func BytesToUint16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Uint16ToBytes splits a word into its high and low byte.
func Uint16ToBytes(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
