// Package errors provides structured error types for the bitpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, got/want descriptions, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindWidthMismatch).
//		Path("header", "flags").
//		Got("5 bits").
//		Want("4 bits").
//		Detail("declared width does not match specifier").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidVariantCount(path, 3)
//	err := errors.Overflow(path, 256, 8)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
