// Package layout computes bit offsets for packed records.
//
// A record's layout is a single left-to-right fold over the declared field
// widths: each field starts where the previous one ended, the first at bit 0.
// The fold is a pure function of the width sequence and has no failure modes;
// validity checks (byte alignment, width ranges) belong to the compiler,
// which runs them over the same input before trusting the plan.
//
// This package is internal to the bitfield compiler.
package layout
