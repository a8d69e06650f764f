package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile  Phase = "compile"  // schema compilation
	PhaseValidate Phase = "validate" // schema validation
	PhaseEncode   Phase = "encode"   // value to bits
	PhaseDecode   Phase = "decode"   // bits to value
	PhaseParse    Phase = "parse"    // schema text parsing
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidWidth           Kind = "invalid_width"
	KindWidthMismatch          Kind = "width_mismatch"
	KindInvalidVariantCount    Kind = "invalid_variant_count"
	KindDiscriminantOutOfRange Kind = "discriminant_out_of_range"
	KindSizeNotByteAligned     Kind = "size_not_byte_aligned"
	KindDuplicateField         Kind = "duplicate_field"
	KindDuplicateVariant       Kind = "duplicate_variant"
	KindTypeMismatch           Kind = "type_mismatch"
	KindOverflow               Kind = "overflow"
	KindUnmappedPattern        Kind = "unmapped_pattern"
	KindNotFound               Kind = "not_found"
	KindInvalidData            Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Got    string
	Want   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Got != "" || e.Want != "" {
		b.WriteString(": ")
		if e.Got != "" && e.Want != "" {
			b.WriteString("got ")
			b.WriteString(e.Got)
			b.WriteString(", want ")
			b.WriteString(e.Want)
		} else if e.Got != "" {
			b.WriteString("got ")
			b.WriteString(e.Got)
		} else {
			b.WriteString("want ")
			b.WriteString(e.Want)
		}
	}

	if e.Detail != "" {
		if e.Got != "" || e.Want != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Got sets the actual value description
func (b *Builder) Got(s string) *Builder {
	b.err.Got = s
	return b
}

// Want sets the expected value description
func (b *Builder) Want(s string) *Builder {
	b.err.Want = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidWidth creates an error for a field width outside 1..=64
func InvalidWidth(path []string, width int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidWidth,
		Path:   path,
		Detail: fmt.Sprintf("width %d outside 1..=64", width),
		Value:  width,
	}
}

// WidthMismatch creates an error for a declared bit width that does not
// match the specifier's actual width
func WidthMismatch(path []string, declared, actual int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindWidthMismatch,
		Path:   path,
		Got:    fmt.Sprintf("%d bits", actual),
		Want:   fmt.Sprintf("%d bits", declared),
		Detail: "declared width does not match specifier",
	}
}

// InvalidVariantCount creates an error for an enum whose variant count is
// not a power of two
func InvalidVariantCount(path []string, count int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidVariantCount,
		Path:   path,
		Detail: fmt.Sprintf("variant count %d is not a power of two", count),
		Value:  count,
	}
}

// DiscriminantOutOfRange creates an error naming the variant whose
// discriminant does not fit the enum's bit width
func DiscriminantOutOfRange(path []string, variant string, disc uint64, bits int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDiscriminantOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("variant %q has discriminant %d, max for %d bits is %d", variant, disc, bits, uint64(1)<<bits-1),
		Value:  disc,
	}
}

// SizeNotByteAligned creates an error for a record whose total bit width
// is not a multiple of 8
func SizeNotByteAligned(path []string, totalBits int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindSizeNotByteAligned,
		Path:   path,
		Detail: fmt.Sprintf("total width %d bits is not a multiple of 8 (remainder %d)", totalBits, totalBits%8),
		Value:  totalBits,
	}
}

// DuplicateField creates an error for a repeated field name
func DuplicateField(path []string, name string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDuplicateField,
		Path:   path,
		Detail: fmt.Sprintf("field %q declared more than once", name),
	}
}

// DuplicateVariant creates an error for a repeated variant name or discriminant
func DuplicateVariant(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDuplicateVariant,
		Path:   path,
		Detail: detail,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeMismatch,
		Path:  path,
		Got:   got,
		Want:  want,
	}
}

// Overflow creates an error for a value that does not fit a field's width
func Overflow(path []string, value uint64, bits int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %d does not fit in %d bits", value, bits),
		Value:  value,
	}
}

// UnmappedPattern creates an error for a raw bit pattern that matches no
// enum variant
func UnmappedPattern(path []string, raw uint64, enumName string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnmappedPattern,
		Path:   path,
		Detail: fmt.Sprintf("bit pattern %d matches no variant of %s", raw, enumName),
		Value:  raw,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// ParseFailed creates a parsing error with a source line number
func ParseFailed(line int, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("line %d: %s", line, detail),
		Value:  line,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
