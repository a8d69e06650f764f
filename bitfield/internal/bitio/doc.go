// Package bitio provides bit-granular reads and writes over a byte slice.
//
// Bits are indexed from 0, LSB-first within each byte. A range may span
// byte boundaries; the loop is bit-granular so no boundary special-casing
// is needed. Ranges are at most 64 bits wide.
//
// This package is internal to the bitfield compiler; callers always pass
// ranges derived from a validated layout, so out-of-range access panics
// rather than returning an error.
package bitio
