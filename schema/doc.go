// Package schema provides the textual schema format for bit-packed records.
//
// A schema file is a sequence of s-expression definitions:
//
//	(enum frame-kind
//		(variant data 0)
//		(variant ack 1)
//		(variant nack)      ;; implicit: previous + 1
//		(variant ping))
//
//	(record header
//		(field version (bits 3))
//		(field flags (bits 5) (expect 5))
//		(field kind (enum frame-kind))
//		(field length u16))
//
// Field types are bool, u8, u16, u32, u64, an explicit (bits N) width for
// any N in 1..=64, or an (enum name) reference. An (expect N) clause is an
// author-asserted width checked against the resolved specifier. Records may
// reference enums defined anywhere in the file. Comments: line (;;) and
// block (; ;).
//
// Compile turns schema text into validated record types:
//
//	records, err := schema.Compile(source)
//
// All bitfield validation rules apply: enum variant counts must be powers
// of two, discriminants must fit their computed width, and each record's
// total width must be a multiple of 8 bits.
package schema
