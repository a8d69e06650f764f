package bitio

import "testing"

func TestRoundTripAllWidths(t *testing.T) {
	// decode(encode(v)) == v for every width 1..=64 and a spread of values
	data := make([]byte, 8)

	for width := 1; width <= 64; width++ {
		var maxVal uint64
		if width == 64 {
			maxVal = ^uint64(0)
		} else {
			maxVal = 1<<width - 1
		}

		values := []uint64{0, 1, maxVal, maxVal / 2, maxVal / 3}
		for _, v := range values {
			v &= maxVal
			Set(data, 0, width, v)
			if got := Get(data, 0, width); got != v {
				t.Fatalf("width %d: Get = %d, want %d", width, got, v)
			}
		}
	}
}

func TestCrossByteBoundary(t *testing.T) {
	data := make([]byte, 3)

	// 5 bits starting at bit 6 straddle bytes 0 and 1
	Set(data, 6, 5, 0b10110)
	if got := Get(data, 6, 5); got != 0b10110 {
		t.Errorf("Get(6, 5) = %#b, want 0b10110", got)
	}
	if data[0] != 0b10000000 {
		t.Errorf("byte 0 = %#08b, want 0b10000000", data[0])
	}
	if data[1] != 0b00000101 {
		t.Errorf("byte 1 = %#08b, want 0b00000101", data[1])
	}
}

func TestOverwriteClearsStaleBits(t *testing.T) {
	data := make([]byte, 2)

	Set(data, 3, 5, 0b11111)
	Set(data, 3, 5, 0b00000)
	if got := Get(data, 3, 5); got != 0 {
		t.Errorf("Get after clearing set = %#b, want 0", got)
	}
	Set(data, 3, 5, 0b10101)
	Set(data, 3, 5, 0b01010)
	if got := Get(data, 3, 5); got != 0b01010 {
		t.Errorf("Get after overwrite = %#b, want 0b01010", got)
	}
}

func TestNeighboringBitsUntouched(t *testing.T) {
	data := make([]byte, 2)
	for i := range data {
		data[i] = 0xFF
	}

	Set(data, 4, 4, 0)
	if got := Get(data, 0, 4); got != 0b1111 {
		t.Errorf("bits below range disturbed: %#b", got)
	}
	if got := Get(data, 8, 8); got != 0xFF {
		t.Errorf("bits above range disturbed: %#b", got)
	}
}

func TestFullWidth64(t *testing.T) {
	data := make([]byte, 8)
	v := uint64(0xDEADBEEFCAFEF00D)

	Set(data, 0, 64, v)
	if got := Get(data, 0, 64); got != v {
		t.Errorf("Get(0, 64) = %#x, want %#x", got, v)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name  string
		start int
		count int
	}{
		{"past end", 12, 8},
		{"negative start", -1, 4},
		{"negative count", 0, -1},
		{"count over 64", 0, 65},
	}

	data := make([]byte, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d, %d) did not panic", tt.start, tt.count)
				}
			}()
			Get(data, tt.start, tt.count)
		})
	}
}
