package bitio

import "fmt"

// Get reads count bits starting at bit offset start and returns them
// right-aligned in a uint64. Bit 0 of a byte is its least-significant bit;
// the range may straddle byte boundaries.
func Get(data []byte, start, count int) uint64 {
	checkRange(len(data), start, count)

	var result uint64
	for i := 0; i < count; i++ {
		bit := start + i
		if data[bit/8]>>(bit%8)&1 == 1 {
			result |= 1 << i
		}
	}
	return result
}

// Set writes the low count bits of value starting at bit offset start.
// Zero bits are cleared explicitly so repeated sets overwrite cleanly.
func Set(data []byte, start, count int, value uint64) {
	checkRange(len(data), start, count)

	for i := 0; i < count; i++ {
		bit := start + i
		if value>>i&1 == 1 {
			data[bit/8] |= 1 << (bit % 8)
		} else {
			data[bit/8] &^= 1 << (bit % 8)
		}
	}
}

// Callers derive ranges from validated layouts, so a bad range is a
// programming error, not an input error.
func checkRange(byteLen, start, count int) {
	if start < 0 || count < 0 || count > 64 || start+count > byteLen*8 {
		panic(fmt.Sprintf("bitio: range [%d, %d+%d) exceeds %d bits", start, start, count, byteLen*8))
	}
}
