// Package bitfield compiles ordered field lists into dense bit-packed
// record layouts and provides type-safe accessors over the packed bytes.
//
// # Layout
//
// Fields pack low-to-high in declaration order: the first field occupies
// bits starting at offset 0, bit 0 of a byte is its least-significant bit,
// and a field may straddle byte boundaries. The packed byte image is the
// wire format.
//
//	Specifier       Bits    Carrier
//	────────────────────────────────
//	Bits(n)         n       u8/u16/u32/u64 (narrowest >= n)
//	Bool()          1       u8
//	Enum (N cases)  log2 N  per bit count
//
// # Compilation
//
// A record type is built once from its field list and validated before any
// instance can exist:
//
//	kind := bitfield.AutoEnum("frame-kind", "data", "ack", "nack", "ping")
//	rec, err := bitfield.Compile("header", []bitfield.FieldSpec{
//		{Name: "version", Spec: bitfield.Bits(3)},
//		{Name: "flags", Spec: bitfield.Bits(5), DeclaredBits: 5},
//		{Name: "kind", Spec: kind},
//		{Name: "length", Spec: bitfield.Bits(16)},
//	})
//
// Compile rejects widths outside 1..=64, declared widths that disagree with
// their specifier, enums whose variant count is not a power of two or whose
// discriminants exceed the computed width, duplicate field names, and any
// total width that is not a multiple of 8 bits. There is no recovery path:
// an invalid schema never yields a usable record type.
//
// # Records
//
// Instances are zero-initialized and mutated only through field accessors:
//
//	r := bitfield.New(rec)
//	r.SetUint("version", 5)
//	r.SetVariant("kind", "ack")
//	v, err := r.Uint("version")
//
// Setting one field never disturbs another. Decoding an enum field whose
// bit pattern matches no variant returns an unmapped_pattern error.
//
// # Thread Safety
//
// CompiledRecord is immutable and safe for concurrent use. Record is a
// plain owned buffer with no internal locking; accessor calls are bounded
// O(width) bit loops and callers provide exclusive access when sharing.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[validate] invalid_variant_count at header.kind: variant count 3 is not a power of two
//	[encode] overflow at header.version: value 9 does not fit in 3 bits
package bitfield
