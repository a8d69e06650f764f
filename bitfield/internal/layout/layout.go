package layout

// Info is the computed layout of one record: per-field bit offsets in
// declaration order, the total bit width, and the byte size it rounds to.
type Info struct {
	Offsets   []int
	TotalBits int
	ByteSize  int
}

// Plan assigns a starting bit offset to every field width, left to right.
// The first width occupies bits starting at offset 0; declaration order is
// layout order and no reordering is performed.
func Plan(widths []int) Info {
	offsets := make([]int, len(widths))
	total := 0

	for i, w := range widths {
		offsets[i] = total
		total += w
	}

	return Info{
		Offsets:   offsets,
		TotalBits: total,
		ByteSize:  (total + 7) / 8,
	}
}

// Aligned reports whether the total width packs into whole bytes.
func (in Info) Aligned() bool {
	return in.TotalBits%8 == 0
}
