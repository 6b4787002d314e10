package util

// IntLowHigh splits n into b little-endian bytes, low byte first, the way
// ESC/POS encodes multi-byte numeric parameters. b must be 1 to 4 and n
// must fit in b bytes; violating either is a programming error.
func IntLowHigh(n int, b int) []byte {
	if b < 1 || b > 4 {
		panic("util: IntLowHigh outputs 1-4 bytes")
	}
	if n < 0 || (b < 4 && n >= 1<<(uint(b)*8)) {
		panic("util: IntLowHigh value out of range")
	}

	out := make([]byte, b)
	for i := 0; i < b; i++ {
		out[i] = byte(n % 256)
		n = n / 256
	}
	return out
}
